package engine

import (
	"math/big"

	mu "github.com/avdva/softfloat/internal/mathutil"
)

// compare orders x and y. For NaN operands it reports unordered and raises
// invalid if signaling is set or an operand is a signaling NaN.
func (l *layout) compare(x, y *big.Int, signaling bool) (cmp int, unordered bool) {
	a, b := l.unpack(x), l.unpack(y)
	if a.isNaN() || b.isNaN() {
		if signaling || a.kind == kindSNaN || b.kind == kindSNaN {
			raise(FlagInvalid)
		}
		return 0, true
	}
	sa, sb := signOf(a), signOf(b)
	switch {
	case sa != sb:
		if sa < sb {
			return -1, false
		}
		return 1, false
	case sa == 0:
		return 0, false
	}
	return sa * cmpMagnitude(a, b), false
}

func signOf(u unpacked) int {
	switch {
	case u.kind == kindZero:
		return 0
	case u.neg:
		return -1
	default:
		return 1
	}
}

func cmpMagnitude(a, b unpacked) int {
	switch {
	case a.kind == kindInf && b.kind == kindInf:
		return 0
	case a.kind == kindInf:
		return 1
	case b.kind == kindInf:
		return -1
	}
	x, y, _ := mu.Align(a.m, a.e, b.m, b.e)
	return x.Cmp(y)
}

func (l *layout) eq(x, y *big.Int, signaling bool) bool {
	c, unordered := l.compare(x, y, signaling)
	return !unordered && c == 0
}

func (l *layout) lt(x, y *big.Int, signaling bool) bool {
	c, unordered := l.compare(x, y, signaling)
	return !unordered && c < 0
}

func (l *layout) le(x, y *big.Int, signaling bool) bool {
	c, unordered := l.compare(x, y, signaling)
	return !unordered && c <= 0
}
