package engine

import "math/big"

// Float128 holds a quadruple-precision bit pattern.
type Float128 struct {
	Hi, Lo uint64
}

var mask64 = new(big.Int).SetUint64(^uint64(0))

func of128(a Float128) *big.Int {
	b := new(big.Int).SetUint64(a.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(a.Lo))
}

func to128(b *big.Int) Float128 {
	return Float128{
		Hi: new(big.Int).Rsh(b, 64).Uint64(),
		Lo: new(big.Int).And(b, mask64).Uint64(),
	}
}

func F128Add(a, b Float128) Float128 {
	defer enter()()
	return to128(f128.add(of128(a), of128(b), false))
}

func F128Sub(a, b Float128) Float128 {
	defer enter()()
	return to128(f128.add(of128(a), of128(b), true))
}

func F128Mul(a, b Float128) Float128 {
	defer enter()()
	return to128(f128.mul(of128(a), of128(b)))
}

func F128MulAdd(a, b, c Float128) Float128 {
	defer enter()()
	return to128(f128.mulAdd(of128(a), of128(b), of128(c)))
}

func F128Div(a, b Float128) Float128 {
	defer enter()()
	return to128(f128.div(of128(a), of128(b)))
}

func F128Rem(a, b Float128) Float128 {
	defer enter()()
	return to128(f128.rem(of128(a), of128(b)))
}

func F128Sqrt(a Float128) Float128 {
	defer enter()()
	return to128(f128.sqrt(of128(a)))
}

func F128RoundToInt(a Float128, mode uint8, exact bool) Float128 {
	defer enter()()
	return to128(f128.roundToInt(of128(a), mode, exact))
}

func F128Eq(a, b Float128) bool {
	defer enter()()
	return f128.eq(of128(a), of128(b), false)
}

func F128Le(a, b Float128) bool {
	defer enter()()
	return f128.le(of128(a), of128(b), true)
}

func F128Lt(a, b Float128) bool {
	defer enter()()
	return f128.lt(of128(a), of128(b), true)
}

func F128EqSignaling(a, b Float128) bool {
	defer enter()()
	return f128.eq(of128(a), of128(b), true)
}

func F128LeQuiet(a, b Float128) bool {
	defer enter()()
	return f128.le(of128(a), of128(b), false)
}

func F128LtQuiet(a, b Float128) bool {
	defer enter()()
	return f128.lt(of128(a), of128(b), false)
}

func F128ToUI32(a Float128, mode uint8, exact bool) uint32 {
	defer enter()()
	return uint32(f128.toInt(of128(a), mode, exact, 32, false))
}

func F128ToUI64(a Float128, mode uint8, exact bool) uint64 {
	defer enter()()
	return f128.toInt(of128(a), mode, exact, 64, false)
}

func F128ToI32(a Float128, mode uint8, exact bool) int32 {
	defer enter()()
	return int32(f128.toInt(of128(a), mode, exact, 32, true))
}

func F128ToI64(a Float128, mode uint8, exact bool) int64 {
	defer enter()()
	return int64(f128.toInt(of128(a), mode, exact, 64, true))
}

func UI32ToF128(a uint32) Float128 {
	defer enter()()
	return to128(f128.fromInt(false, uint64(a)))
}

func UI64ToF128(a uint64) Float128 {
	defer enter()()
	return to128(f128.fromInt(false, a))
}

func I32ToF128(a int32) Float128 {
	defer enter()()
	return to128(f128.fromInt(signedMagnitude(int64(a))))
}

func I64ToF128(a int64) Float128 {
	defer enter()()
	return to128(f128.fromInt(signedMagnitude(a)))
}

func DecimalToF128(neg bool, coef *big.Int, exp int) Float128 {
	defer enter()()
	return to128(f128.fromDecimal(neg, coef, exp))
}

func F128ToF16(a Float128) uint16 {
	defer enter()()
	return to16(f16.convert(f128, of128(a)))
}

func F128ToF32(a Float128) uint32 {
	defer enter()()
	return to32(f32.convert(f128, of128(a)))
}

func F128ToF64(a Float128) uint64 {
	defer enter()()
	return to64(f64.convert(f128, of128(a)))
}
