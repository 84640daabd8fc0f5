package engine

import "math/big"

// Half-precision entry points; see their F32 counterparts.

func of16(a uint16) *big.Int {
	return new(big.Int).SetUint64(uint64(a))
}

func to16(b *big.Int) uint16 {
	return uint16(b.Uint64())
}

func F16Add(a, b uint16) uint16 {
	defer enter()()
	return to16(f16.add(of16(a), of16(b), false))
}

func F16Sub(a, b uint16) uint16 {
	defer enter()()
	return to16(f16.add(of16(a), of16(b), true))
}

func F16Mul(a, b uint16) uint16 {
	defer enter()()
	return to16(f16.mul(of16(a), of16(b)))
}

func F16MulAdd(a, b, c uint16) uint16 {
	defer enter()()
	return to16(f16.mulAdd(of16(a), of16(b), of16(c)))
}

func F16Div(a, b uint16) uint16 {
	defer enter()()
	return to16(f16.div(of16(a), of16(b)))
}

func F16Rem(a, b uint16) uint16 {
	defer enter()()
	return to16(f16.rem(of16(a), of16(b)))
}

func F16Sqrt(a uint16) uint16 {
	defer enter()()
	return to16(f16.sqrt(of16(a)))
}

func F16RoundToInt(a uint16, mode uint8, exact bool) uint16 {
	defer enter()()
	return to16(f16.roundToInt(of16(a), mode, exact))
}

func F16Eq(a, b uint16) bool {
	defer enter()()
	return f16.eq(of16(a), of16(b), false)
}

func F16Le(a, b uint16) bool {
	defer enter()()
	return f16.le(of16(a), of16(b), true)
}

func F16Lt(a, b uint16) bool {
	defer enter()()
	return f16.lt(of16(a), of16(b), true)
}

func F16EqSignaling(a, b uint16) bool {
	defer enter()()
	return f16.eq(of16(a), of16(b), true)
}

func F16LeQuiet(a, b uint16) bool {
	defer enter()()
	return f16.le(of16(a), of16(b), false)
}

func F16LtQuiet(a, b uint16) bool {
	defer enter()()
	return f16.lt(of16(a), of16(b), false)
}

func F16ToUI32(a uint16, mode uint8, exact bool) uint32 {
	defer enter()()
	return uint32(f16.toInt(of16(a), mode, exact, 32, false))
}

func F16ToUI64(a uint16, mode uint8, exact bool) uint64 {
	defer enter()()
	return f16.toInt(of16(a), mode, exact, 64, false)
}

func F16ToI32(a uint16, mode uint8, exact bool) int32 {
	defer enter()()
	return int32(f16.toInt(of16(a), mode, exact, 32, true))
}

func F16ToI64(a uint16, mode uint8, exact bool) int64 {
	defer enter()()
	return int64(f16.toInt(of16(a), mode, exact, 64, true))
}

func UI32ToF16(a uint32) uint16 {
	defer enter()()
	return to16(f16.fromInt(false, uint64(a)))
}

func UI64ToF16(a uint64) uint16 {
	defer enter()()
	return to16(f16.fromInt(false, a))
}

func I32ToF16(a int32) uint16 {
	defer enter()()
	return to16(f16.fromInt(signedMagnitude(int64(a))))
}

func I64ToF16(a int64) uint16 {
	defer enter()()
	return to16(f16.fromInt(signedMagnitude(a)))
}

func DecimalToF16(neg bool, coef *big.Int, exp int) uint16 {
	defer enter()()
	return to16(f16.fromDecimal(neg, coef, exp))
}

func F16ToF32(a uint16) uint32 {
	defer enter()()
	return to32(f32.convert(f16, of16(a)))
}

func F16ToF64(a uint16) uint64 {
	defer enter()()
	return to64(f64.convert(f16, of16(a)))
}

func F16ToF128(a uint16) Float128 {
	defer enter()()
	return to128(f128.convert(f16, of16(a)))
}
