// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	mu "github.com/avdva/softfloat/internal/mathutil"
)

// exactDecimal returns the value of b without rounding.
// A binary fraction m*2^-k equals m*5^k * 10^-k, so it always terminates.
func exactDecimal(f Format, b Uint128) (decimal.Decimal, error) {
	switch f.Classify(b) {
	case ClassQuietNaN, ClassSignalingNaN, ClassInfinity:
		return decimal.Zero, errors.Wrapf(ErrNotFinite, "%s %s", f.Name, formatValue(f, b))
	case ClassZero:
		return decimal.Zero, nil
	}
	neg, m, e := f.unpack(b)
	if e >= 0 {
		m.Lsh(m, uint(e))
		e = 0
	} else {
		m.Mul(m, mu.Pow5(-e))
	}
	if neg {
		m.Neg(m)
	}
	return decimal.NewFromBigInt(m, int32(e)), nil
}

// Decimal returns the exact value of x. The sign of zero is lost.
// It fails with ErrNotFinite for NaN and infinities.
func (x F16) Decimal() (decimal.Decimal, error) { return exactDecimal(Binary16, x.Uint128()) }

func (x F32) Decimal() (decimal.Decimal, error)  { return exactDecimal(Binary32, x.Uint128()) }
func (x F64) Decimal() (decimal.Decimal, error)  { return exactDecimal(Binary64, x.Uint128()) }
func (x F128) Decimal() (decimal.Decimal, error) { return exactDecimal(Binary128, x.Bits()) }

// FromDecimal rounds d to T under rm.
func FromDecimal[T Float[T]](d decimal.Decimal, rm RoundingMode) (T, ExceptionFlags) {
	var zero T
	coef := d.Coefficient()
	neg := coef.Sign() < 0
	if neg {
		coef.Neg(coef)
	}
	return zero.fromDecimal(neg, coef, int(d.Exponent()), rm)
}
