// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrSyntax is returned, possibly wrapped, for text that is not a number.
	ErrSyntax = errors.New("invalid syntax")
	// ErrNotFinite is returned when an exact decimal is requested for NaN or Inf.
	ErrNotFinite = errors.New("value is not finite")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func (pe posError) Unwrap() error {
	return ErrSyntax
}

// Parse converts s to the nearest T under rm. It accepts
//   - decimal numbers with an optional sign, fraction and exponent: "-1.5e-3";
//   - "inf", "infinity" and "nan", in any case and with an optional sign;
//   - bit patterns: "0x" followed by up to Width/4 hex digits, taken as is.
// Leading and trailing spaces are ignored. A syntax error matches ErrSyntax.
func Parse[T Float[T]](s string, rm RoundingMode) (T, ExceptionFlags, error) {
	var zero T
	body, offset, neg, err := prepareString(s)
	if err != nil {
		return zero, 0, errors.Wrapf(err, "parsing %q", s)
	}
	switch strings.ToLower(body) {
	case "inf", "infinity":
		if neg {
			return Inf[T](-1), 0, nil
		}
		return Inf[T](1), 0, nil
	case "nan":
		if neg {
			return NaN[T]().Neg(), 0, nil
		}
		return NaN[T](), 0, nil
	}
	if len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		b, err := parseBits(body[2:], FormatOf[T]())
		if err != nil {
			err = shiftPos(err, offset+2)
			return zero, 0, errors.Wrapf(err, "parsing %q", s)
		}
		if neg {
			return FromBits[T](b).Neg(), 0, nil
		}
		return FromBits[T](b), 0, nil
	}
	if err := checkDecimal(body); err != nil {
		err = shiftPos(err, offset)
		return zero, 0, errors.Wrapf(err, "parsing %q", s)
	}
	mant, exp := splitExponent(body)
	d, err := decimal.NewFromString(mant)
	if err != nil {
		return zero, 0, errors.Wrapf(ErrSyntax, "parsing %q: %v", s, err)
	}
	v, flags := zero.fromDecimal(neg, d.Coefficient(), int(d.Exponent())+exp, rm)
	return v, flags, nil
}

// maxDecimalExp bounds decimal exponents. Anything beyond it overflows or
// underflows every format, so larger exponents saturate to it.
const maxDecimalExp = 1 << 28

// splitExponent separates the exponent of a checked decimal from its mantissa.
func splitExponent(s string) (mant string, exp int) {
	idx := strings.IndexAny(s, "eE")
	if idx < 0 {
		return s, 0
	}
	// the syntax is already checked, so only a range error is possible.
	e, _ := strconv.ParseInt(s[idx+1:], 10, 64)
	switch {
	case e > maxDecimalExp:
		e = maxDecimalExp
	case e < -maxDecimalExp:
		e = -maxDecimalExp
	}
	return s[:idx], int(e)
}

// MustParse is like Parse but panics on a syntax error. Exceptions are dropped.
func MustParse[T Float[T]](s string, rm RoundingMode) T {
	v, _, err := Parse[T](s, rm)
	if err != nil {
		panic(err)
	}
	return v
}

func shiftPos(err error, offset int) error {
	var pe *posError
	if errors.As(err, &pe) {
		pe.pos += offset + 1 // +1 to start indices from 1.
	}
	return err
}

func prepareString(s string) (prepared string, offset int, neg bool, err error) {
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false, errors.Wrap(ErrSyntax, "empty input")
	}
	switch s[0] {
	case '-':
		neg = true
		fallthrough
	case '+':
		offset++
		s = s[1:]
	}
	if len(s) == 0 {
		return "", 0, false, errors.Wrap(ErrSyntax, "sign without a number")
	}
	return s, offset, neg, nil
}

// checkDecimal validates digits[.digits][(e|E)[sign]digits].
func checkDecimal(s string) error {
	var digits, delimSeen, expSeen, expDigits bool
	for i := 0; i < len(s); i++ {
		r := s[i]
		switch {
		case '0' <= r && r <= '9':
			if expSeen {
				expDigits = true
			} else {
				digits = true
			}
		case r == '.':
			if delimSeen || expSeen {
				return newPosError("unexpected delimiter", i)
			}
			delimSeen = true
		case r == 'e' || r == 'E':
			if expSeen || !digits {
				return newPosError("unexpected exponent", i)
			}
			expSeen = true
			if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
				i++
			}
		default:
			return newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if !digits {
		return newPosError("no digits", 0)
	}
	if expSeen && !expDigits {
		return newPosError("missing exponent digits", len(s)-1)
	}
	return nil
}

func parseBits(s string, f Format) (Uint128, error) {
	maxDigits := int(f.Width / 4)
	if len(s) == 0 {
		return Uint128{}, newPosError("no hex digits", 0)
	}
	if len(s) > maxDigits {
		return Uint128{}, newPosError(fmt.Sprintf("more than %d hex digits for %s", maxDigits, f.Name), maxDigits)
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return Uint128{}, newPosError(fmt.Sprintf("unexpected symbol %q", s[i]), i)
		}
	}
	var b Uint128
	if len(s) > 16 {
		b.Hi, _ = strconv.ParseUint(s[:len(s)-16], 16, 64)
		s = s[len(s)-16:]
	}
	b.Lo, _ = strconv.ParseUint(s, 16, 64)
	return b, nil
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// formatValue returns the shortest decimal that reads back as b.
func formatValue(f Format, b Uint128) string {
	neg, _, _ := f.Fields(b)
	switch f.Classify(b) {
	case ClassQuietNaN, ClassSignalingNaN:
		return "NaN"
	case ClassInfinity:
		if neg {
			return "-Inf"
		}
		return "+Inf"
	case ClassZero:
		if neg {
			return "-0"
		}
		return "0"
	}
	neg, m, e := f.unpack(b)
	if neg {
		m.Neg(m)
	}
	prec := f.Precision()
	switch n := uint(m.BitLen()); {
	case n < prec:
		// subnormal: only the bits present are significant.
		prec = n
	case m.TrailingZeroBits() == n-1:
		// a power of two is closer to its lower neighbor.
		prec++
	}
	v := new(big.Float).SetPrec(prec).SetInt(m)
	return v.SetMantExp(v, e).Text('g', -1)
}

// formatBits returns b as "0x" and Width/4 hex digits.
func formatBits(f Format, b Uint128) string {
	s := b.String()
	return "0x" + s[len(s)-int(f.Width/4):]
}

func unmarshalText[T Float[T]](x *T, text []byte) error {
	v, _, err := Parse[T](string(text), TiesToEven)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// String returns the shortest decimal representation that parses back to x,
// "NaN", "+Inf" or "-Inf".
func (x F16) String() string { return formatValue(Binary16, x.Uint128()) }

// GoString returns x with its bit pattern, for debugging.
func (x F16) GoString() string { return x.String() + " {" + formatBits(Binary16, x.Uint128()) + "}" }

// MarshalText encodes the bit pattern of x, so that NaN payloads survive.
func (x F16) MarshalText() ([]byte, error) { return []byte(formatBits(Binary16, x.Uint128())), nil }

// UnmarshalText accepts anything Parse does, rounding decimals to nearest even.
func (x *F16) UnmarshalText(text []byte) error { return unmarshalText(x, text) }

func (x F32) String() string                   { return formatValue(Binary32, x.Uint128()) }
func (x F32) GoString() string                 { return x.String() + " {" + formatBits(Binary32, x.Uint128()) + "}" }
func (x F32) MarshalText() ([]byte, error)     { return []byte(formatBits(Binary32, x.Uint128())), nil }
func (x *F32) UnmarshalText(text []byte) error { return unmarshalText(x, text) }

func (x F64) String() string                   { return formatValue(Binary64, x.Uint128()) }
func (x F64) GoString() string                 { return x.String() + " {" + formatBits(Binary64, x.Uint128()) + "}" }
func (x F64) MarshalText() ([]byte, error)     { return []byte(formatBits(Binary64, x.Uint128())), nil }
func (x *F64) UnmarshalText(text []byte) error { return unmarshalText(x, text) }

func (x F128) String() string                   { return formatValue(Binary128, x.Bits()) }
func (x F128) GoString() string                 { return x.String() + " {" + formatBits(Binary128, x.Bits()) + "}" }
func (x F128) MarshalText() ([]byte, error)     { return []byte(formatBits(Binary128, x.Bits())), nil }
func (x *F128) UnmarshalText(text []byte) error { return unmarshalText(x, text) }
