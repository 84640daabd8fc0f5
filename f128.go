// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"math/big"

	"github.com/avdva/softfloat/internal/engine"
)

// F128 is an IEEE 754 quadruple-precision number stored as its bit pattern.
// Go has no native counterpart, so F128 only converts through other formats.
type F128 struct {
	hi, lo uint64
}

const signHi = 1 << 63

// F128FromBits returns the value with bit pattern b.
func F128FromBits(b Uint128) F128 {
	return F128{hi: b.Hi, lo: b.Lo}
}

// Bits returns the bit pattern of x.
func (x F128) Bits() Uint128 {
	return Uint128{Hi: x.hi, Lo: x.lo}
}

// Uint128 is the same as Bits.
func (x F128) Uint128() Uint128 {
	return x.Bits()
}

func (x F128) Format() Format {
	return Binary128
}

func (x F128) raw() engine.Float128 {
	return engine.Float128{Hi: x.hi, Lo: x.lo}
}

func f128FromEngine(f engine.Float128) F128 {
	return F128{hi: f.Hi, lo: f.Lo}
}

func (x F128) Classify() Class {
	return Binary128.Classify(x.Bits())
}

func (x F128) IsNaN() bool {
	c := x.Classify()
	return c == ClassQuietNaN || c == ClassSignalingNaN
}

func (x F128) IsSignalingNaN() bool { return x.Classify() == ClassSignalingNaN }
func (x F128) IsInf() bool          { return x.Classify() == ClassInfinity }
func (x F128) IsZero() bool         { return x.Classify() == ClassZero }
func (x F128) IsSubnormal() bool    { return x.Classify() == ClassSubnormal }
func (x F128) IsNormal() bool       { return x.Classify() == ClassNormal }

func (x F128) IsFinite() bool {
	c := x.Classify()
	return c != ClassInfinity && c != ClassQuietNaN && c != ClassSignalingNaN
}

func (x F128) Signbit() bool {
	return x.hi&signHi != 0
}

// Exponent returns the biased exponent field.
func (x F128) Exponent() uint16 {
	return uint16(x.hi>>48) & 0x7fff
}

// Mantissa returns the 112-bit fraction field.
func (x F128) Mantissa() Uint128 {
	return x.Bits().And(Binary128.fracMask())
}

func (x F128) Neg() F128 {
	return F128{hi: x.hi ^ signHi, lo: x.lo}
}

func (x F128) Abs() F128 {
	return F128{hi: x.hi &^ signHi, lo: x.lo}
}

func (x F128) CopySign(y F128) F128 {
	return F128{hi: x.hi&^signHi | y.hi&signHi, lo: x.lo}
}

func (x F128) WithSign(neg bool) F128 {
	if neg {
		return F128{hi: x.hi | signHi, lo: x.lo}
	}
	return x.Abs()
}

// WithExponent returns x with the biased exponent field replaced by the
// low 15 bits of e.
func (x F128) WithExponent(e uint16) F128 {
	const mask = 0x7fff << 48
	return F128{hi: x.hi&^mask | uint64(e)<<48&mask, lo: x.lo}
}

// WithMantissa returns x with the fraction field replaced by the low 112
// bits of m.
func (x F128) WithMantissa(m Uint128) F128 {
	frac := Binary128.fracMask()
	return F128FromBits(x.Bits().AndNot(frac).Or(m.And(frac)))
}

func (x F128) Add(y F128, rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.F128Add(x.raw(), y.raw())) })
}

func (x F128) Sub(y F128, rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.F128Sub(x.raw(), y.raw())) })
}

func (x F128) Mul(y F128, rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.F128Mul(x.raw(), y.raw())) })
}

func (x F128) Div(y F128, rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.F128Div(x.raw(), y.raw())) })
}

func (x F128) Rem(y F128, rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.F128Rem(x.raw(), y.raw())) })
}

func (x F128) FMA(y, z F128, rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.F128MulAdd(x.raw(), y.raw(), z.raw())) })
}

func (x F128) Sqrt(rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.F128Sqrt(x.raw())) })
}

func (x F128) RoundToIntegral(rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.F128RoundToInt(x.raw(), rm.engineMode(), false)) })
}

func (x F128) RoundToIntegralExact(rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.F128RoundToInt(x.raw(), rm.engineMode(), true)) })
}

func (x F128) Eq(y F128) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F128Eq(x.raw(), y.raw()) })
}

func (x F128) Lt(y F128) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F128Lt(x.raw(), y.raw()) })
}

func (x F128) Le(y F128) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F128Le(x.raw(), y.raw()) })
}

func (x F128) LtQuiet(y F128) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F128LtQuiet(x.raw(), y.raw()) })
}

func (x F128) LeQuiet(y F128) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F128LeQuiet(x.raw(), y.raw()) })
}

func (x F128) EqSignaling(y F128) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F128EqSignaling(x.raw(), y.raw()) })
}

func (x F128) ToInt32(rm RoundingMode, exact bool) (int32, ExceptionFlags) {
	return call(rm, func() int32 { return engine.F128ToI32(x.raw(), rm.engineMode(), exact) })
}

func (x F128) ToInt64(rm RoundingMode, exact bool) (int64, ExceptionFlags) {
	return call(rm, func() int64 { return engine.F128ToI64(x.raw(), rm.engineMode(), exact) })
}

func (x F128) ToUint32(rm RoundingMode, exact bool) (uint32, ExceptionFlags) {
	return call(rm, func() uint32 { return engine.F128ToUI32(x.raw(), rm.engineMode(), exact) })
}

func (x F128) ToUint64(rm RoundingMode, exact bool) (uint64, ExceptionFlags) {
	return call(rm, func() uint64 { return engine.F128ToUI64(x.raw(), rm.engineMode(), exact) })
}

func (x F128) ToF16(rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.F128ToF16(x.raw())) })
}

func (x F128) ToF32(rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.F128ToF32(x.raw())) })
}

func (x F128) ToF64(rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.F128ToF64(x.raw())) })
}

// ToF128 returns x unchanged.
func (x F128) ToF128(RoundingMode) (F128, ExceptionFlags) {
	return x, 0
}

func (x F128) fromUint128(u Uint128) F128 {
	return F128FromBits(u)
}

func (x F128) fromInt32(v int32, rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.I32ToF128(v)) })
}

func (x F128) fromInt64(v int64, rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.I64ToF128(v)) })
}

func (x F128) fromUint32(v uint32, rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.UI32ToF128(v)) })
}

func (x F128) fromUint64(v uint64, rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.UI64ToF128(v)) })
}

func (x F128) fromDecimal(neg bool, coef *big.Int, exp int, rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.DecimalToF128(neg, coef, exp)) })
}
