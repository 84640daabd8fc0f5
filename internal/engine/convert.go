package engine

import (
	"math"
	"math/big"

	mu "github.com/avdva/softfloat/internal/mathutil"
)

// toInt rounds x to an integer of the given width under mode.
// Out-of-range values and NaNs raise invalid and saturate: NaN and positive
// overflow give the maximum, negative overflow the minimum (0 when unsigned).
// The result is returned in two's complement.
func (l *layout) toInt(x *big.Int, mode uint8, exact bool, width uint, signed bool) uint64 {
	maxU := uint64(math.MaxUint64) >> (64 - width)
	maxS := maxU >> 1
	minS := ^maxS & maxU
	a := l.unpack(x)
	posOverflow, negOverflow := maxU, uint64(0)
	if signed {
		posOverflow, negOverflow = maxS, minS
	}
	switch a.kind {
	case kindZero:
		return 0
	case kindQNaN, kindSNaN:
		raise(FlagInvalid)
		return posOverflow
	case kindInf:
		raise(FlagInvalid)
		if a.neg {
			return negOverflow
		}
		return posOverflow
	}
	// values of 2^(width+1) or more overflow whatever the rounding.
	if a.e+a.m.BitLen() > int(width)+1 {
		raise(FlagInvalid)
		if a.neg {
			return negOverflow
		}
		return posOverflow
	}
	sig, inexact := roundBits(a.neg, a.m, a.e, false, 0, mode)
	limit := new(big.Int).SetUint64(maxU)
	if signed {
		limit.SetUint64(maxS)
		if a.neg {
			limit.Add(limit, big.NewInt(1))
		}
	} else if a.neg && sig.Sign() != 0 {
		raise(FlagInvalid)
		return negOverflow
	}
	if sig.Cmp(limit) > 0 {
		raise(FlagInvalid)
		if a.neg {
			return negOverflow
		}
		return posOverflow
	}
	if inexact && exact {
		raise(FlagInexact)
	}
	v := sig.Uint64()
	if a.neg {
		v = -v & maxU
	}
	return v
}

// fromInt converts the integer (-1)^neg * mag.
func (l *layout) fromInt(neg bool, mag uint64) *big.Int {
	if mag == 0 {
		return l.zero(false)
	}
	return l.roundPack(neg, new(big.Int).SetUint64(mag), 0, false)
}

func signedMagnitude(v int64) (neg bool, mag uint64) {
	if v < 0 {
		return true, uint64(-v)
	}
	return false, uint64(v)
}

// convert rounds x from layout src to l.
func (l *layout) convert(src *layout, x *big.Int) *big.Int {
	a := src.unpack(x)
	if a.isNaN() {
		return l.propagateNaN(a)
	}
	return l.repack(a)
}

// fromDecimal rounds (-1)^neg * coef * 10^exp to l; coef must not be negative.
func (l *layout) fromDecimal(neg bool, coef *big.Int, exp int) *big.Int {
	if coef.Sign() == 0 {
		return l.zero(neg)
	}
	// the value lies in [10^(d-1), 10^d).
	d := mu.DecimalDigits(coef) + exp
	if lo, _ := mu.Log2Pow10Bounds(d - 1); lo > float64(l.emax()+2) {
		return l.roundPack(neg, big.NewInt(1), l.emax()+2, true)
	}
	if _, hi := mu.Log2Pow10Bounds(d); hi < float64(l.qmin()-2) {
		// far below half the smallest subnormal: only the direction matters.
		return l.roundPack(neg, big.NewInt(1), l.qmin()-3, true)
	}
	if exp >= 0 {
		m := new(big.Int).Mul(coef, mu.Pow10(exp))
		return l.roundPack(neg, m, 0, false)
	}
	den := mu.Pow10(-exp)
	shift := l.prec() + 2 + den.BitLen() - coef.BitLen()
	if shift < 0 {
		shift = 0
	}
	num := new(big.Int).Lsh(coef, uint(shift))
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	return l.roundPack(neg, quo, -shift, rem.Sign() != 0)
}
