// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"math/big"

	"github.com/avdva/softfloat/internal/engine"
)

// F32 is an IEEE 754 single-precision number stored as its bit pattern.
//   31       22                                                     0
//   _|________|______________________________________________________
//   seeeeeeeemmmmmmmmmmmmmmmmmmmmmmm
//
// Values are immutable: operations return new values together with the
// exceptions they raised. == compares bit patterns, not numbers; use Eq
// for IEEE equality.
type F32 struct{ bits uint32 }

// F32FromBits returns the value with bit pattern b.
func F32FromBits(b uint32) F32 {
	return F32{bits: b}
}

// Bits returns the bit pattern of x.
func (x F32) Bits() uint32 {
	return x.bits
}

// Uint128 returns the bit pattern of x zero-extended to 128 bits.
func (x F32) Uint128() Uint128 {
	return Uint128From64(uint64(x.bits))
}

// Format returns Binary32.
func (x F32) Format() Format {
	return Binary32
}

// Classify returns the class of x.
func (x F32) Classify() Class {
	return Binary32.Classify(x.Uint128())
}

func (x F32) IsNaN() bool {
	c := x.Classify()
	return c == ClassQuietNaN || c == ClassSignalingNaN
}

func (x F32) IsSignalingNaN() bool { return x.Classify() == ClassSignalingNaN }
func (x F32) IsInf() bool          { return x.Classify() == ClassInfinity }
func (x F32) IsZero() bool         { return x.Classify() == ClassZero }
func (x F32) IsSubnormal() bool    { return x.Classify() == ClassSubnormal }
func (x F32) IsNormal() bool       { return x.Classify() == ClassNormal }

// IsFinite reports whether x is neither infinite nor NaN.
func (x F32) IsFinite() bool {
	c := x.Classify()
	return c != ClassInfinity && c != ClassQuietNaN && c != ClassSignalingNaN
}

// Signbit reports whether the sign bit of x is set.
func (x F32) Signbit() bool {
	return x.bits>>31 != 0
}

// Exponent returns the biased exponent field.
func (x F32) Exponent() uint32 {
	return x.bits>>23&0xff
}

// Mantissa returns the fraction field.
func (x F32) Mantissa() uint32 {
	return x.bits & (1<<23 - 1)
}

// Neg flips the sign bit. No exception is raised, NaN payloads are kept.
func (x F32) Neg() F32 {
	return F32{bits: x.bits ^ 1<<31}
}

// Abs clears the sign bit.
func (x F32) Abs() F32 {
	return F32{bits: x.bits &^ (1 << 31)}
}

// CopySign returns x with the sign of y.
func (x F32) CopySign(y F32) F32 {
	return F32{bits: x.bits&^(1<<31) | y.bits&(1<<31)}
}

// WithSign returns x with the sign bit set to neg.
func (x F32) WithSign(neg bool) F32 {
	if neg {
		return F32{bits: x.bits | 1<<31}
	}
	return x.Abs()
}

// WithExponent returns x with the biased exponent field replaced by the
// low bits of e.
func (x F32) WithExponent(e uint32) F32 {
	const mask = 0xff << 23
	return F32{bits: x.bits&^mask | e<<23&mask}
}

// WithMantissa returns x with the fraction field replaced by the low bits of m.
func (x F32) WithMantissa(m uint32) F32 {
	const mask = 1<<23 - 1
	return F32{bits: x.bits&^mask | m&mask}
}

// Add returns x+y rounded under rm.
func (x F32) Add(y F32, rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.F32Add(x.bits, y.bits)) })
}

// Sub returns x-y rounded under rm.
func (x F32) Sub(y F32, rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.F32Sub(x.bits, y.bits)) })
}

// Mul returns x*y rounded under rm.
func (x F32) Mul(y F32, rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.F32Mul(x.bits, y.bits)) })
}

// Div returns x/y rounded under rm.
func (x F32) Div(y F32, rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.F32Div(x.bits, y.bits)) })
}

// Rem returns the IEEE remainder x - n*y, where n is x/y rounded to the
// nearest integer, ties to even. The result is exact, so rm has no effect
// on it.
func (x F32) Rem(y F32, rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.F32Rem(x.bits, y.bits)) })
}

// FMA returns x*y+z computed with a single rounding under rm.
func (x F32) FMA(y, z F32, rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.F32MulAdd(x.bits, y.bits, z.bits)) })
}

// Sqrt returns the square root of x rounded under rm.
func (x F32) Sqrt(rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.F32Sqrt(x.bits)) })
}

// RoundToIntegral rounds x to an integral value under rm without raising inexact.
func (x F32) RoundToIntegral(rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.F32RoundToInt(x.bits, rm.engineMode(), false)) })
}

// RoundToIntegralExact is RoundToIntegral that raises inexact when x was not integral.
func (x F32) RoundToIntegralExact(rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.F32RoundToInt(x.bits, rm.engineMode(), true)) })
}

// Eq reports x == y. +0 equals -0, NaN equals nothing.
// Only a signaling NaN raises invalid.
func (x F32) Eq(y F32) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F32Eq(x.bits, y.bits) })
}

// Lt reports x < y, raising invalid if either operand is NaN.
func (x F32) Lt(y F32) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F32Lt(x.bits, y.bits) })
}

// Le reports x <= y, raising invalid if either operand is NaN.
func (x F32) Le(y F32) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F32Le(x.bits, y.bits) })
}

// LtQuiet reports x < y; only a signaling NaN raises invalid.
func (x F32) LtQuiet(y F32) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F32LtQuiet(x.bits, y.bits) })
}

// LeQuiet reports x <= y; only a signaling NaN raises invalid.
func (x F32) LeQuiet(y F32) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F32LeQuiet(x.bits, y.bits) })
}

// EqSignaling reports x == y, raising invalid if either operand is NaN.
func (x F32) EqSignaling(y F32) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F32EqSignaling(x.bits, y.bits) })
}

// ToInt32 rounds x to an int32 under rm. NaN and out-of-range values raise
// invalid and saturate. If exact is set, a rounded result raises inexact.
func (x F32) ToInt32(rm RoundingMode, exact bool) (int32, ExceptionFlags) {
	return call(rm, func() int32 { return engine.F32ToI32(x.bits, rm.engineMode(), exact) })
}

// ToInt64 is like ToInt32 for int64.
func (x F32) ToInt64(rm RoundingMode, exact bool) (int64, ExceptionFlags) {
	return call(rm, func() int64 { return engine.F32ToI64(x.bits, rm.engineMode(), exact) })
}

// ToUint32 is like ToInt32 for uint32. Negative values that do not round
// to zero are out of range.
func (x F32) ToUint32(rm RoundingMode, exact bool) (uint32, ExceptionFlags) {
	return call(rm, func() uint32 { return engine.F32ToUI32(x.bits, rm.engineMode(), exact) })
}

// ToUint64 is like ToUint32 for uint64.
func (x F32) ToUint64(rm RoundingMode, exact bool) (uint64, ExceptionFlags) {
	return call(rm, func() uint64 { return engine.F32ToUI64(x.bits, rm.engineMode(), exact) })
}

// ToF16 narrows x to half precision under rm.
func (x F32) ToF16(rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.F32ToF16(x.bits)) })
}

// ToF32 returns x unchanged.
func (x F32) ToF32(RoundingMode) (F32, ExceptionFlags) {
	return x, 0
}

// ToF64 widens x to double precision. The result is exact; a signaling NaN
// raises invalid.
func (x F32) ToF64(rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.F32ToF64(x.bits)) })
}

// ToF128 widens x to quadruple precision.
func (x F32) ToF128(rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.F32ToF128(x.bits)) })
}

func (x F32) fromUint128(u Uint128) F32 {
	return F32{bits: uint32(u.Lo)}
}

func (x F32) fromInt32(v int32, rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.I32ToF32(v)) })
}

func (x F32) fromInt64(v int64, rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.I64ToF32(v)) })
}

func (x F32) fromUint32(v uint32, rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.UI32ToF32(v)) })
}

func (x F32) fromUint64(v uint64, rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.UI64ToF32(v)) })
}

func (x F32) fromDecimal(neg bool, coef *big.Int, exp int, rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.DecimalToF32(neg, coef, exp)) })
}
