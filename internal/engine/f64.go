package engine

import "math/big"

func of64(a uint64) *big.Int {
	return new(big.Int).SetUint64(a)
}

func to64(b *big.Int) uint64 {
	return b.Uint64()
}

// F64Add returns a+b.
func F64Add(a, b uint64) uint64 {
	defer enter()()
	return to64(f64.add(of64(a), of64(b), false))
}

// F64Sub returns a-b.
func F64Sub(a, b uint64) uint64 {
	defer enter()()
	return to64(f64.add(of64(a), of64(b), true))
}

// F64Mul returns a*b.
func F64Mul(a, b uint64) uint64 {
	defer enter()()
	return to64(f64.mul(of64(a), of64(b)))
}

// F64MulAdd returns a*b+c rounded once.
func F64MulAdd(a, b, c uint64) uint64 {
	defer enter()()
	return to64(f64.mulAdd(of64(a), of64(b), of64(c)))
}

// F64Div returns a/b.
func F64Div(a, b uint64) uint64 {
	defer enter()()
	return to64(f64.div(of64(a), of64(b)))
}

// F64Rem returns the IEEE remainder of a/b.
func F64Rem(a, b uint64) uint64 {
	defer enter()()
	return to64(f64.rem(of64(a), of64(b)))
}

// F64Sqrt returns the square root of a.
func F64Sqrt(a uint64) uint64 {
	defer enter()()
	return to64(f64.sqrt(of64(a)))
}

// F64RoundToInt rounds a to an integral value under mode.
func F64RoundToInt(a uint64, mode uint8, exact bool) uint64 {
	defer enter()()
	return to64(f64.roundToInt(of64(a), mode, exact))
}

// F64Eq is a quiet equality test.
func F64Eq(a, b uint64) bool {
	defer enter()()
	return f64.eq(of64(a), of64(b), false)
}

// F64Le is a signaling a <= b.
func F64Le(a, b uint64) bool {
	defer enter()()
	return f64.le(of64(a), of64(b), true)
}

// F64Lt is a signaling a < b.
func F64Lt(a, b uint64) bool {
	defer enter()()
	return f64.lt(of64(a), of64(b), true)
}

// F64EqSignaling is an equality test that raises invalid on any NaN.
func F64EqSignaling(a, b uint64) bool {
	defer enter()()
	return f64.eq(of64(a), of64(b), true)
}

// F64LeQuiet is a quiet a <= b.
func F64LeQuiet(a, b uint64) bool {
	defer enter()()
	return f64.le(of64(a), of64(b), false)
}

// F64LtQuiet is a quiet a < b.
func F64LtQuiet(a, b uint64) bool {
	defer enter()()
	return f64.lt(of64(a), of64(b), false)
}

func F64ToUI32(a uint64, mode uint8, exact bool) uint32 {
	defer enter()()
	return uint32(f64.toInt(of64(a), mode, exact, 32, false))
}

func F64ToUI64(a uint64, mode uint8, exact bool) uint64 {
	defer enter()()
	return f64.toInt(of64(a), mode, exact, 64, false)
}

func F64ToI32(a uint64, mode uint8, exact bool) int32 {
	defer enter()()
	return int32(f64.toInt(of64(a), mode, exact, 32, true))
}

func F64ToI64(a uint64, mode uint8, exact bool) int64 {
	defer enter()()
	return int64(f64.toInt(of64(a), mode, exact, 64, true))
}

func UI32ToF64(a uint32) uint64 {
	defer enter()()
	return to64(f64.fromInt(false, uint64(a)))
}

func UI64ToF64(a uint64) uint64 {
	defer enter()()
	return to64(f64.fromInt(false, a))
}

func I32ToF64(a int32) uint64 {
	defer enter()()
	return to64(f64.fromInt(signedMagnitude(int64(a))))
}

func I64ToF64(a int64) uint64 {
	defer enter()()
	return to64(f64.fromInt(signedMagnitude(a)))
}

// DecimalToF64 rounds (-1)^neg * coef * 10^exp.
func DecimalToF64(neg bool, coef *big.Int, exp int) uint64 {
	defer enter()()
	return to64(f64.fromDecimal(neg, coef, exp))
}

func F64ToF16(a uint64) uint16 {
	defer enter()()
	return to16(f16.convert(f64, of64(a)))
}

func F64ToF32(a uint64) uint32 {
	defer enter()()
	return to32(f32.convert(f64, of64(a)))
}

func F64ToF128(a uint64) Float128 {
	defer enter()()
	return to128(f128.convert(f64, of64(a)))
}
