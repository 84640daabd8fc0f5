// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"math/big"

	"github.com/avdva/softfloat/internal/engine"
)

// F64 is an IEEE 754 double-precision number stored as its bit pattern.
// It converts to and from float64 bit for bit.
type F64 struct{ bits uint64 }

// F64FromBits returns the value with bit pattern b.
func F64FromBits(b uint64) F64 {
	return F64{bits: b}
}

// Bits returns the bit pattern of x.
func (x F64) Bits() uint64 {
	return x.bits
}

// Uint128 returns the bit pattern of x zero-extended to 128 bits.
func (x F64) Uint128() Uint128 {
	return Uint128From64(x.bits)
}

// Format returns Binary64.
func (x F64) Format() Format {
	return Binary64
}

// Classify returns the class of x.
func (x F64) Classify() Class {
	return Binary64.Classify(x.Uint128())
}

func (x F64) IsNaN() bool {
	c := x.Classify()
	return c == ClassQuietNaN || c == ClassSignalingNaN
}

func (x F64) IsSignalingNaN() bool { return x.Classify() == ClassSignalingNaN }
func (x F64) IsInf() bool          { return x.Classify() == ClassInfinity }
func (x F64) IsZero() bool         { return x.Classify() == ClassZero }
func (x F64) IsSubnormal() bool    { return x.Classify() == ClassSubnormal }
func (x F64) IsNormal() bool       { return x.Classify() == ClassNormal }

// IsFinite reports whether x is neither infinite nor NaN.
func (x F64) IsFinite() bool {
	c := x.Classify()
	return c != ClassInfinity && c != ClassQuietNaN && c != ClassSignalingNaN
}

// Signbit reports whether the sign bit of x is set.
func (x F64) Signbit() bool {
	return x.bits>>63 != 0
}

// Exponent returns the biased exponent field.
func (x F64) Exponent() uint64 {
	return x.bits>>52&0x7ff
}

// Mantissa returns the fraction field.
func (x F64) Mantissa() uint64 {
	return x.bits & (1<<52 - 1)
}

// Neg flips the sign bit. No exception is raised, NaN payloads are kept.
func (x F64) Neg() F64 {
	return F64{bits: x.bits ^ 1<<63}
}

// Abs clears the sign bit.
func (x F64) Abs() F64 {
	return F64{bits: x.bits &^ (1 << 63)}
}

// CopySign returns x with the sign of y.
func (x F64) CopySign(y F64) F64 {
	return F64{bits: x.bits&^(1<<63) | y.bits&(1<<63)}
}

// WithSign returns x with the sign bit set to neg.
func (x F64) WithSign(neg bool) F64 {
	if neg {
		return F64{bits: x.bits | 1<<63}
	}
	return x.Abs()
}

// WithExponent returns x with the biased exponent field replaced by the
// low bits of e.
func (x F64) WithExponent(e uint64) F64 {
	const mask = 0x7ff << 52
	return F64{bits: x.bits&^mask | e<<52&mask}
}

// WithMantissa returns x with the fraction field replaced by the low bits of m.
func (x F64) WithMantissa(m uint64) F64 {
	const mask = 1<<52 - 1
	return F64{bits: x.bits&^mask | m&mask}
}

// Add returns x+y rounded under rm.
func (x F64) Add(y F64, rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.F64Add(x.bits, y.bits)) })
}

// Sub returns x-y rounded under rm.
func (x F64) Sub(y F64, rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.F64Sub(x.bits, y.bits)) })
}

// Mul returns x*y rounded under rm.
func (x F64) Mul(y F64, rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.F64Mul(x.bits, y.bits)) })
}

// Div returns x/y rounded under rm.
func (x F64) Div(y F64, rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.F64Div(x.bits, y.bits)) })
}

// Rem returns the IEEE remainder x - n*y, where n is x/y rounded to the
// nearest integer, ties to even. The result is exact, so rm has no effect
// on it.
func (x F64) Rem(y F64, rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.F64Rem(x.bits, y.bits)) })
}

// FMA returns x*y+z computed with a single rounding under rm.
func (x F64) FMA(y, z F64, rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.F64MulAdd(x.bits, y.bits, z.bits)) })
}

// Sqrt returns the square root of x rounded under rm.
func (x F64) Sqrt(rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.F64Sqrt(x.bits)) })
}

// RoundToIntegral rounds x to an integral value under rm without raising inexact.
func (x F64) RoundToIntegral(rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.F64RoundToInt(x.bits, rm.engineMode(), false)) })
}

// RoundToIntegralExact is RoundToIntegral that raises inexact when x was not integral.
func (x F64) RoundToIntegralExact(rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.F64RoundToInt(x.bits, rm.engineMode(), true)) })
}

// Eq reports x == y. +0 equals -0, NaN equals nothing.
// Only a signaling NaN raises invalid.
func (x F64) Eq(y F64) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F64Eq(x.bits, y.bits) })
}

// Lt reports x < y, raising invalid if either operand is NaN.
func (x F64) Lt(y F64) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F64Lt(x.bits, y.bits) })
}

// Le reports x <= y, raising invalid if either operand is NaN.
func (x F64) Le(y F64) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F64Le(x.bits, y.bits) })
}

// LtQuiet reports x < y; only a signaling NaN raises invalid.
func (x F64) LtQuiet(y F64) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F64LtQuiet(x.bits, y.bits) })
}

// LeQuiet reports x <= y; only a signaling NaN raises invalid.
func (x F64) LeQuiet(y F64) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F64LeQuiet(x.bits, y.bits) })
}

// EqSignaling reports x == y, raising invalid if either operand is NaN.
func (x F64) EqSignaling(y F64) (bool, ExceptionFlags) {
	return predicate(func() bool { return engine.F64EqSignaling(x.bits, y.bits) })
}

// ToInt32 rounds x to an int32 under rm. NaN and out-of-range values raise
// invalid and saturate. If exact is set, a rounded result raises inexact.
func (x F64) ToInt32(rm RoundingMode, exact bool) (int32, ExceptionFlags) {
	return call(rm, func() int32 { return engine.F64ToI32(x.bits, rm.engineMode(), exact) })
}

// ToInt64 is like ToInt32 for int64.
func (x F64) ToInt64(rm RoundingMode, exact bool) (int64, ExceptionFlags) {
	return call(rm, func() int64 { return engine.F64ToI64(x.bits, rm.engineMode(), exact) })
}

// ToUint32 is like ToInt32 for uint32. Negative values that do not round
// to zero are out of range.
func (x F64) ToUint32(rm RoundingMode, exact bool) (uint32, ExceptionFlags) {
	return call(rm, func() uint32 { return engine.F64ToUI32(x.bits, rm.engineMode(), exact) })
}

// ToUint64 is like ToUint32 for uint64.
func (x F64) ToUint64(rm RoundingMode, exact bool) (uint64, ExceptionFlags) {
	return call(rm, func() uint64 { return engine.F64ToUI64(x.bits, rm.engineMode(), exact) })
}

// ToF16 narrows x to half precision under rm.
func (x F64) ToF16(rm RoundingMode) (F16, ExceptionFlags) {
	return call(rm, func() F16 { return F16FromBits(engine.F64ToF16(x.bits)) })
}

// ToF32 narrows x to single precision under rm. Values beyond the single
// range overflow to an infinity or the largest finite value, depending on rm.
func (x F64) ToF32(rm RoundingMode) (F32, ExceptionFlags) {
	return call(rm, func() F32 { return F32FromBits(engine.F64ToF32(x.bits)) })
}

// ToF64 returns x unchanged.
func (x F64) ToF64(RoundingMode) (F64, ExceptionFlags) {
	return x, 0
}

// ToF128 widens x to quadruple precision; the result is exact.
func (x F64) ToF128(rm RoundingMode) (F128, ExceptionFlags) {
	return call(rm, func() F128 { return f128FromEngine(engine.F64ToF128(x.bits)) })
}

func (x F64) fromUint128(u Uint128) F64 {
	return F64{bits: u.Lo}
}

func (x F64) fromInt32(v int32, rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.I32ToF64(v)) })
}

func (x F64) fromInt64(v int64, rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.I64ToF64(v)) })
}

func (x F64) fromUint32(v uint32, rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.UI32ToF64(v)) })
}

func (x F64) fromUint64(v uint64, rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.UI64ToF64(v)) })
}

func (x F64) fromDecimal(neg bool, coef *big.Int, exp int, rm RoundingMode) (F64, ExceptionFlags) {
	return call(rm, func() F64 { return F64FromBits(engine.DecimalToF64(neg, coef, exp)) })
}
