package engine

import "math/big"

func of32(a uint32) *big.Int {
	return new(big.Int).SetUint64(uint64(a))
}

func to32(b *big.Int) uint32 {
	return uint32(b.Uint64())
}

// F32Add returns a+b.
func F32Add(a, b uint32) uint32 {
	defer enter()()
	return to32(f32.add(of32(a), of32(b), false))
}

// F32Sub returns a-b.
func F32Sub(a, b uint32) uint32 {
	defer enter()()
	return to32(f32.add(of32(a), of32(b), true))
}

// F32Mul returns a*b.
func F32Mul(a, b uint32) uint32 {
	defer enter()()
	return to32(f32.mul(of32(a), of32(b)))
}

// F32MulAdd returns a*b+c rounded once.
func F32MulAdd(a, b, c uint32) uint32 {
	defer enter()()
	return to32(f32.mulAdd(of32(a), of32(b), of32(c)))
}

// F32Div returns a/b.
func F32Div(a, b uint32) uint32 {
	defer enter()()
	return to32(f32.div(of32(a), of32(b)))
}

// F32Rem returns the IEEE remainder of a/b.
func F32Rem(a, b uint32) uint32 {
	defer enter()()
	return to32(f32.rem(of32(a), of32(b)))
}

// F32Sqrt returns the square root of a.
func F32Sqrt(a uint32) uint32 {
	defer enter()()
	return to32(f32.sqrt(of32(a)))
}

// F32RoundToInt rounds a to an integral value under mode.
func F32RoundToInt(a uint32, mode uint8, exact bool) uint32 {
	defer enter()()
	return to32(f32.roundToInt(of32(a), mode, exact))
}

// F32Eq is a quiet equality test.
func F32Eq(a, b uint32) bool {
	defer enter()()
	return f32.eq(of32(a), of32(b), false)
}

// F32Le is a signaling a <= b.
func F32Le(a, b uint32) bool {
	defer enter()()
	return f32.le(of32(a), of32(b), true)
}

// F32Lt is a signaling a < b.
func F32Lt(a, b uint32) bool {
	defer enter()()
	return f32.lt(of32(a), of32(b), true)
}

// F32EqSignaling is an equality test that raises invalid on any NaN.
func F32EqSignaling(a, b uint32) bool {
	defer enter()()
	return f32.eq(of32(a), of32(b), true)
}

// F32LeQuiet is a quiet a <= b.
func F32LeQuiet(a, b uint32) bool {
	defer enter()()
	return f32.le(of32(a), of32(b), false)
}

// F32LtQuiet is a quiet a < b.
func F32LtQuiet(a, b uint32) bool {
	defer enter()()
	return f32.lt(of32(a), of32(b), false)
}

func F32ToUI32(a uint32, mode uint8, exact bool) uint32 {
	defer enter()()
	return uint32(f32.toInt(of32(a), mode, exact, 32, false))
}

func F32ToUI64(a uint32, mode uint8, exact bool) uint64 {
	defer enter()()
	return f32.toInt(of32(a), mode, exact, 64, false)
}

func F32ToI32(a uint32, mode uint8, exact bool) int32 {
	defer enter()()
	return int32(f32.toInt(of32(a), mode, exact, 32, true))
}

func F32ToI64(a uint32, mode uint8, exact bool) int64 {
	defer enter()()
	return int64(f32.toInt(of32(a), mode, exact, 64, true))
}

func UI32ToF32(a uint32) uint32 {
	defer enter()()
	return to32(f32.fromInt(false, uint64(a)))
}

func UI64ToF32(a uint64) uint32 {
	defer enter()()
	return to32(f32.fromInt(false, a))
}

func I32ToF32(a int32) uint32 {
	defer enter()()
	return to32(f32.fromInt(signedMagnitude(int64(a))))
}

func I64ToF32(a int64) uint32 {
	defer enter()()
	return to32(f32.fromInt(signedMagnitude(a)))
}

// DecimalToF32 rounds (-1)^neg * coef * 10^exp.
func DecimalToF32(neg bool, coef *big.Int, exp int) uint32 {
	defer enter()()
	return to32(f32.fromDecimal(neg, coef, exp))
}

func F32ToF16(a uint32) uint16 {
	defer enter()()
	return to16(f16.convert(f32, of32(a)))
}

func F32ToF64(a uint32) uint64 {
	defer enter()()
	return to64(f64.convert(f32, of32(a)))
}

func F32ToF128(a uint32) Float128 {
	defer enter()()
	return to128(f128.convert(f32, of32(a)))
}
