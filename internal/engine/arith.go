package engine

import (
	"math/big"

	mu "github.com/avdva/softfloat/internal/mathutil"
)

// exactSum rounds the exact sum of two signed finite nonzero terms.
func (l *layout) exactSum(negA bool, ma *big.Int, ea int, negB bool, mb *big.Int, eb int) *big.Int {
	x, y, e := mu.Align(ma, ea, mb, eb)
	if negA {
		x.Neg(x)
	}
	if negB {
		y.Neg(y)
	}
	x.Add(x, y)
	if x.Sign() == 0 {
		return l.zero(roundingMode == RoundMin)
	}
	neg := x.Sign() < 0
	return l.roundPack(neg, x.Abs(x), e, false)
}

func (l *layout) add(x, y *big.Int, subtract bool) *big.Int {
	a, b := l.unpack(x), l.unpack(y)
	if subtract {
		b.neg = !b.neg
	}
	if a.isNaN() || b.isNaN() {
		return l.propagateNaN(a, b)
	}
	switch {
	case a.kind == kindInf && b.kind == kindInf:
		if a.neg != b.neg {
			return l.invalid()
		}
		return l.inf(a.neg)
	case a.kind == kindInf:
		return l.inf(a.neg)
	case b.kind == kindInf:
		return l.inf(b.neg)
	case a.kind == kindZero && b.kind == kindZero:
		if a.neg == b.neg {
			return l.zero(a.neg)
		}
		return l.zero(roundingMode == RoundMin)
	case a.kind == kindZero:
		return l.repack(b)
	case b.kind == kindZero:
		return l.repack(a)
	}
	return l.exactSum(a.neg, a.m, a.e, b.neg, b.m, b.e)
}

func (l *layout) mul(x, y *big.Int) *big.Int {
	a, b := l.unpack(x), l.unpack(y)
	if a.isNaN() || b.isNaN() {
		return l.propagateNaN(a, b)
	}
	neg := a.neg != b.neg
	switch {
	case a.kind == kindInf || b.kind == kindInf:
		if a.kind == kindZero || b.kind == kindZero {
			return l.invalid()
		}
		return l.inf(neg)
	case a.kind == kindZero || b.kind == kindZero:
		return l.zero(neg)
	}
	return l.roundPack(neg, new(big.Int).Mul(a.m, b.m), a.e+b.e, false)
}

// mulAdd computes x*y + z with a single rounding.
func (l *layout) mulAdd(x, y, z *big.Int) *big.Int {
	a, b, c := l.unpack(x), l.unpack(y), l.unpack(z)
	infTimesZero := (a.kind == kindInf && b.kind == kindZero) || (a.kind == kindZero && b.kind == kindInf)
	if a.isNaN() || b.isNaN() || c.isNaN() {
		if infTimesZero {
			raise(FlagInvalid)
		}
		return l.propagateNaN(a, b, c)
	}
	if infTimesZero {
		return l.invalid()
	}
	neg := a.neg != b.neg
	switch {
	case a.kind == kindInf || b.kind == kindInf:
		if c.kind == kindInf && c.neg != neg {
			return l.invalid()
		}
		return l.inf(neg)
	case c.kind == kindInf:
		return l.inf(c.neg)
	case a.kind == kindZero || b.kind == kindZero:
		if c.kind != kindZero {
			return l.repack(c)
		}
		if neg == c.neg {
			return l.zero(neg)
		}
		return l.zero(roundingMode == RoundMin)
	}
	pm, pe := new(big.Int).Mul(a.m, b.m), a.e+b.e
	if c.kind == kindZero {
		return l.roundPack(neg, pm, pe, false)
	}
	return l.exactSum(neg, pm, pe, c.neg, c.m, c.e)
}

func (l *layout) div(x, y *big.Int) *big.Int {
	a, b := l.unpack(x), l.unpack(y)
	if a.isNaN() || b.isNaN() {
		return l.propagateNaN(a, b)
	}
	neg := a.neg != b.neg
	switch {
	case a.kind == kindInf:
		if b.kind == kindInf {
			return l.invalid()
		}
		return l.inf(neg)
	case b.kind == kindInf:
		return l.zero(neg)
	case b.kind == kindZero:
		if a.kind == kindZero {
			return l.invalid()
		}
		raise(FlagInfinite)
		return l.inf(neg)
	case a.kind == kindZero:
		return l.zero(neg)
	}
	// scale the dividend so that the quotient carries at least prec+2 bits.
	shift := l.prec() + 2 + b.m.BitLen() - a.m.BitLen()
	if shift < 0 {
		shift = 0
	}
	num := new(big.Int).Lsh(a.m, uint(shift))
	quo, rem := new(big.Int).QuoRem(num, b.m, new(big.Int))
	return l.roundPack(neg, quo, a.e-b.e-shift, rem.Sign() != 0)
}

func (l *layout) sqrt(x *big.Int) *big.Int {
	a := l.unpack(x)
	switch {
	case a.isNaN():
		return l.propagateNaN(a)
	case a.kind == kindZero:
		return l.zero(a.neg)
	case a.neg:
		return l.invalid()
	case a.kind == kindInf:
		return l.inf(false)
	}
	m, e := new(big.Int).Set(a.m), a.e
	if e%2 != 0 {
		m.Lsh(m, 1)
		e--
	}
	// the root needs prec+2 bits, the radicand twice as many.
	if shift := 2*(l.prec()+2) - m.BitLen(); shift > 0 {
		shift += shift % 2
		m.Lsh(m, uint(shift))
		e -= shift
	}
	root := new(big.Int).Sqrt(m)
	exact := new(big.Int).Mul(root, root).Cmp(m) == 0
	return l.roundPack(false, root, e/2, !exact)
}

// rem computes the IEEE remainder x - n*y, n being x/y rounded to nearest even.
// The result is always exact.
func (l *layout) rem(x, y *big.Int) *big.Int {
	a, b := l.unpack(x), l.unpack(y)
	if a.isNaN() || b.isNaN() {
		return l.propagateNaN(a, b)
	}
	switch {
	case a.kind == kindInf || b.kind == kindZero:
		return l.invalid()
	case b.kind == kindInf || a.kind == kindZero:
		return l.repack(a)
	}
	xm, ym, e := mu.Align(a.m, a.e, b.m, b.e)
	quo, r := new(big.Int).QuoRem(xm, ym, new(big.Int))
	twice := new(big.Int).Lsh(r, 1)
	if c := twice.Cmp(ym); c > 0 || (c == 0 && quo.Bit(0) == 1) {
		r.Sub(r, ym)
	}
	neg := a.neg
	if r.Sign() < 0 {
		neg = !neg
		r.Neg(r)
	}
	if r.Sign() == 0 {
		return l.zero(a.neg)
	}
	return l.roundPack(neg, r, e, false)
}

// roundToInt rounds x to an integral value in the same format.
// mode is explicit; exact asks for the inexact flag when x was not integral.
func (l *layout) roundToInt(x *big.Int, mode uint8, exact bool) *big.Int {
	a := l.unpack(x)
	switch a.kind {
	case kindQNaN, kindSNaN:
		return l.propagateNaN(a)
	case kindZero, kindInf:
		return l.repack(a)
	}
	if a.e >= 0 {
		return l.repack(a)
	}
	sig, inexact := roundBits(a.neg, a.m, a.e, false, 0, mode)
	if inexact && exact {
		raise(FlagInexact)
	}
	if sig.Sign() == 0 {
		return l.zero(a.neg)
	}
	// integral values below 2^prec are representable, so this packs exactly.
	return l.roundPack(a.neg, sig, 0, false)
}
