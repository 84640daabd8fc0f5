package mathutil

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftRightSticky(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m            int64
		n            int
		q            int64
		half, sticky bool
	}{
		{0b1011, 0, 0b1011, false, false},
		{0b1011, -2, 0b101100, false, false},
		{0b1011, 1, 0b101, true, false},
		{0b1011, 2, 0b10, true, true},
		{0b1000, 3, 0b1, false, false},
		{0b1100, 3, 0b1, true, false},
		{0b1001, 3, 0b1, false, true},
		{0b1011, 10, 0, false, true},
		{0b1000, 10, 0, false, true},
		{0b1000000000, 10, 0, true, false},
		{0b11000000000, 10, 1, true, false},
		{0, 10, 0, false, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			q, half, sticky := ShiftRightSticky(big.NewInt(test.m), test.n)
			a.Equal(test.q, q.Int64())
			a.Equal(test.half, half)
			a.Equal(test.sticky, sticky)
		})
	}
}

func TestLowBitsNonZero(t *testing.T) {
	a := assert.New(t)
	a.False(LowBitsNonZero(big.NewInt(0), 10))
	a.False(LowBitsNonZero(big.NewInt(8), 3))
	a.True(LowBitsNonZero(big.NewInt(8), 4))
	a.False(LowBitsNonZero(big.NewInt(1), 0))
}

func TestAlign(t *testing.T) {
	a := assert.New(t)
	x, y, e := Align(big.NewInt(3), 4, big.NewInt(5), 1)
	a.Equal(1, e)
	a.Equal(int64(24), x.Int64())
	a.Equal(int64(5), y.Int64())
	x, y, e = Align(big.NewInt(3), -2, big.NewInt(5), 0)
	a.Equal(-2, e)
	a.Equal(int64(3), x.Int64())
	a.Equal(int64(20), y.Int64())
}

func TestPow(t *testing.T) {
	a := assert.New(t)
	a.Equal(int64(1), Pow10(0).Int64())
	a.Equal(int64(1), Pow10(-3).Int64())
	a.Equal(int64(1000000), Pow10(6).Int64())
	a.Equal(int64(1), Pow5(0).Int64())
	a.Equal(int64(3125), Pow5(5).Int64())
}

func TestDecimalDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   string
		res int
	}{
		{"0", 1},
		{"1", 1},
		{"9", 1},
		{"10", 2},
		{"-99", 2},
		{"100", 3},
		{"999999999999999999999", 21},
		{"1000000000000000000000", 22},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, ok := new(big.Int).SetString(test.v, 10)
			a.True(ok)
			a.Equal(test.res, DecimalDigits(v))
		})
	}
}

func TestLog2Pow10Bounds(t *testing.T) {
	a := assert.New(t)
	for _, n := range []int{-400, -17, -1, 0, 1, 3, 308, 5000} {
		lo, hi := Log2Pow10Bounds(n)
		exact := float64(n) * math.Log2(10)
		a.LessOrEqual(lo, exact, "n=%d", n)
		a.GreaterOrEqual(hi, exact, "n=%d", n)
	}
}
