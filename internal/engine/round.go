package engine

import (
	"math/big"

	mu "github.com/avdva/softfloat/internal/mathutil"
)

// roundBits rounds m*2^e to a multiple of 2^q and returns the multiplier.
// sticky reports that the exact value lies strictly between m*2^e and (m+1)*2^e.
func roundBits(neg bool, m *big.Int, e int, sticky bool, q int, mode uint8) (sig *big.Int, inexact bool) {
	sig, half, rest := mu.ShiftRightSticky(m, q-e)
	rest = rest || sticky
	if !half && !rest {
		return sig, false
	}
	var up bool
	switch mode {
	case RoundNearEven:
		up = half && (rest || sig.Bit(0) == 1)
	case RoundNearMaxMag:
		up = half
	case RoundMin:
		up = neg
	case RoundMax:
		up = !neg
	case RoundOdd:
		sig.SetBit(sig, 0, 1)
	}
	if up {
		sig.Add(sig, big.NewInt(1))
	}
	return sig, true
}

// overflowsToInf tells whether an overflow under mode produces an infinity
// rather than the largest finite number.
func overflowsToInf(neg bool, mode uint8) bool {
	switch mode {
	case RoundNearEven, RoundNearMaxMag:
		return true
	case RoundMin:
		return neg
	case RoundMax:
		return !neg
	default:
		return false
	}
}

// roundPack rounds (-1)^neg * m * 2^e (plus a sticky remainder) to l
// under the rounding-mode register and raises the resulting exceptions.
// m must be positive.
func (l *layout) roundPack(neg bool, m *big.Int, e int, sticky bool) *big.Int {
	mode := roundingMode
	p := l.prec()
	top := e + m.BitLen() - 1
	q := top - p + 1
	if q < l.qmin() {
		q = l.qmin()
	}
	sig, inexact := roundBits(neg, m, e, sticky, q, mode)
	if sig.BitLen() > p {
		sig.Rsh(sig, 1)
		q++
	}
	if inexact && top < l.emin() {
		// tininess is detected after rounding: a value just below the
		// smallest normal that rounds up to it is not tiny.
		tiny := top < l.emin()-1
		if !tiny {
			unbounded, _ := roundBits(neg, m, e, sticky, top-p+1, mode)
			tiny = unbounded.BitLen() <= p
		}
		if tiny {
			raise(FlagUnderflow)
		}
	}
	if sig.BitLen() < p {
		if inexact {
			raise(FlagInexact)
		}
		return l.pack(neg, 0, sig)
	}
	biased := int64(q + p - 1 + l.bias)
	if biased >= l.maxExp {
		raise(FlagOverflow | FlagInexact)
		if overflowsToInf(neg, mode) {
			return l.inf(neg)
		}
		return l.maxFinite(neg)
	}
	if inexact {
		raise(FlagInexact)
	}
	sig.SetBit(sig, p-1, 0)
	return l.pack(neg, biased, sig)
}
