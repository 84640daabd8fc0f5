// Package mathutil holds big-integer helpers shared by the engine and the
// decimal conversions.
package mathutil

import (
	"math"
	"math/big"
)

var (
	bigTen = big.NewInt(10)

	// log2(10), rounded up and down, for bounding decimal magnitudes.
	log2TenHi = math.Nextafter(math.Log2(10), math.Inf(1))
	log2TenLo = math.Nextafter(math.Log2(10), math.Inf(-1))
)

// Pow10 returns 10^n as a new big.Int.
func Pow10(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// Pow5 returns 5^n as a new big.Int.
func Pow5(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(n)), nil)
}

// LowBitsNonZero reports whether any of the n lowest bits of m are set.
func LowBitsNonZero(m *big.Int, n int) bool {
	if n <= 0 || m.Sign() == 0 {
		return false
	}
	return int(m.TrailingZeroBits()) < n
}

// ShiftRightSticky returns m >> n, the highest bit shifted out (half),
// and whether any lower bit shifted out was set (sticky).
// For n <= 0 it returns m << -n with both flags cleared.
func ShiftRightSticky(m *big.Int, n int) (q *big.Int, half, sticky bool) {
	if n <= 0 {
		return new(big.Int).Lsh(m, uint(-n)), false, false
	}
	q = new(big.Int).Rsh(m, uint(n))
	half = m.Bit(n-1) == 1
	sticky = LowBitsNonZero(m, n-1)
	return q, half, sticky
}

// Align returns a and b scaled to the common exponent min(ea, eb),
// so that a*2^ea and b*2^eb become x*2^e and y*2^e.
func Align(a *big.Int, ea int, b *big.Int, eb int) (x, y *big.Int, e int) {
	e = ea
	if eb < e {
		e = eb
	}
	x = new(big.Int).Lsh(a, uint(ea-e))
	y = new(big.Int).Lsh(b, uint(eb-e))
	return x, y, e
}

// DecimalDigits returns the number of decimal digits of |v|, 1 for zero.
func DecimalDigits(v *big.Int) int {
	if v.Sign() == 0 {
		return 1
	}
	// the estimate from the bit length is low by at most one digit.
	n := int(float64(v.BitLen()-1)*math.Log10(2)) + 1
	if new(big.Int).Abs(v).Cmp(Pow10(n)) >= 0 {
		n++
	}
	return n
}

// Log2Pow10Bounds returns lo, hi such that lo <= log2(10^n) <= hi.
func Log2Pow10Bounds(n int) (lo, hi float64) {
	f := float64(n)
	if n < 0 {
		return f * log2TenHi, f * log2TenLo
	}
	return f * log2TenLo, f * log2TenHi
}
