// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"math/big"

	"github.com/avdva/softfloat/internal/engine"
)

// F16 is an IEEE 754 half-precision number stored as its bit pattern.
// Go has no native half-precision type, so F16 offers no native conversions;
// see Float16 for interop with github.com/x448/float16.
type F16 struct{ bits uint16 }

// F16FromBits returns the value with bit pattern b.
func F16FromBits(b uint16) F16 {
	return F16{bits: b}
}

// Bits returns the bit pattern of x.
func (x F16) Bits() uint16 {
	return x.bits
}

// Uint128 returns the bit pattern of x zero-extended to 128 bits.
func (x F16) Uint128() Uint128 {
	return Uint128From64(uint64(x.bits))
}

// Format returns Binary16.
func (x F16) Format() Format {
	return Binary16
}

// Classify returns the class of x.
func (x F16) Classify() Class {
	return Binary16.Classify(x.Uint128())
}

func (x F16) IsNaN() bool {
	c := x.Classify()
	return c == ClassQuietNaN || c == ClassSignalingNaN
}

func (x F16) IsSignalingNaN() bool { return x.Classify() == ClassSignalingNaN }
func (x F16) IsInf() bool          { return x.Classify() == ClassInfinity }
func (x F16) IsZero() bool         { return x.Classify() == ClassZero }
func (x F16) IsSubnormal() bool    { return x.Classify() == ClassSubnormal }
func (x F16) IsNormal() bool       { return x.Classify() == ClassNormal }

// IsFinite reports whether x is neither infinite nor NaN.
func (x F16) IsFinite() bool {
	c := x.Classify()
	return c != ClassInfinity && c != ClassQuietNaN && c != ClassSignalingNaN
}

// Signbit reports whether the sign bit of x is set.
func (x F16) Signbit() bool {
	return x.bits>>15 != 0
}

// Exponent returns the biased exponent field.
func (x F16) Exponent() uint16 {
	return x.bits>>10&0x1f
}

// Mantissa returns the fraction field.
func (x F16) Mantissa() uint16 {
	return x.bits & (1<<10 - 1)
}

// Neg flips the sign bit. No exception is raised, NaN payloads are kept.
func (x F16) Neg() F16 {
	return F16{bits: x.bits ^ 1<<15}
}

// Abs clears the sign bit.
func (x F16) Abs() F16 {
	return F16{bits: x.bits &^ (1 << 15)}
}

// CopySign returns x with the sign of y.
func (x F16) CopySign(y F16) F16 {
	return F16{bits: x.bits&^(1<<15) | y.bits&(1<<15)}
}

// WithSign returns x with the sign bit set to neg.
func (x F16) WithSign(neg bool) F16 {
	if neg {
		return F16{bits: x.bits | 1<<15}
	}
	return x.Abs()
}

// WithExponent returns x with the biased exponent field replaced by the
// low bits of e.
func (x F16) WithExponent(e uint16) F16 {
	const mask = 0x1f << 10
	return F16{bits: x.bits&^mask | e<<10&mask}
}

// WithMantissa returns x with the fraction field replaced by the low bits of m.
func (x F16) WithMantissa(m uint16) F16 {
	const mask = 1<<10 - 1
	return F16{bits: x.bits&^mask | m&mask}
}

// Arithmetic and comparisons behave as their F32 counterparts.

func (x F16) Add(y F16, rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.F16Add(x.bits, y.bits)) })
}

func (x F16) Sub(y F16, rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.F16Sub(x.bits, y.bits)) })
}

func (x F16) Mul(y F16, rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.F16Mul(x.bits, y.bits)) })
}

func (x F16) Div(y F16, rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.F16Div(x.bits, y.bits)) })
}

func (x F16) Rem(y F16, rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.F16Rem(x.bits, y.bits)) })
}

func (x F16) FMA(y, z F16, rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.F16MulAdd(x.bits, y.bits, z.bits)) })
}

func (x F16) Sqrt(rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.F16Sqrt(x.bits)) })
}

func (x F16) RoundToIntegral(rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.F16RoundToInt(x.bits, rm.engineMode(), false)) })
}

func (x F16) RoundToIntegralExact(rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.F16RoundToInt(x.bits, rm.engineMode(), true)) })
}

func (x F16) Eq(y F16) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F16Eq(x.bits, y.bits) })
}

func (x F16) Lt(y F16) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F16Lt(x.bits, y.bits) })
}

func (x F16) Le(y F16) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F16Le(x.bits, y.bits) })
}

func (x F16) LtQuiet(y F16) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F16LtQuiet(x.bits, y.bits) })
}

func (x F16) LeQuiet(y F16) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F16LeQuiet(x.bits, y.bits) })
}

func (x F16) EqSignaling(y F16) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F16EqSignaling(x.bits, y.bits) })
}

func (x F16) ToInt32(rm RoundingMode, exact bool) (int32, ExceptionFlags) {
	return call(rm, func() int32 { return engine.F16ToI32(x.bits, rm.engineMode(), exact) })
}

func (x F16) ToInt64(rm RoundingMode, exact bool) (int64, ExceptionFlags) {
	return call(rm, func() int64 { return engine.F16ToI64(x.bits, rm.engineMode(), exact) })
}

func (x F16) ToUint32(rm RoundingMode, exact bool) (uint32, ExceptionFlags) {
	return call(rm, func() uint32 { return engine.F16ToUI32(x.bits, rm.engineMode(), exact) })
}

func (x F16) ToUint64(rm RoundingMode, exact bool) (uint64, ExceptionFlags) {
	return call(rm, func() uint64 { return engine.F16ToUI64(x.bits, rm.engineMode(), exact) })
}

// ToF16 returns x unchanged.
func (x F16) ToF16(RoundingMode) (F16, ExceptionFlags) {
	return x, 0
}

// ToF32 widens x to single precision.
func (x F16) ToF32(rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.F16ToF32(x.bits)) })
}

func (x F16) ToF64(rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.F16ToF64(x.bits)) })
}

func (x F16) ToF128(rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.F16ToF128(x.bits)) })
}

func (x F16) fromUint128(u Uint128) F16 {
	return F16{bits: uint16(u.Lo)}
}

func (x F16) fromInt32(v int32, rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.I32ToF16(v)) })
}

func (x F16) fromInt64(v int64, rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.I64ToF16(v)) })
}

func (x F16) fromUint32(v uint32, rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.UI32ToF16(v)) })
}

func (x F16) fromUint64(v uint64, rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.UI64ToF16(v)) })
}

func (x F16) fromDecimal(neg bool, coef *big.Int, exp int, rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.DecimalToF16(neg, coef, exp)) })
}
