// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"math/big"
	"unsafe"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Float is the set of operations shared by F16, F32, F64 and F128.
// It is meant for generic code; it cannot be implemented outside this package.
//
// Binary operations take operands of the same type only: mixing formats
// requires an explicit conversion first.
type Float[T any] interface {
	comparable

	Format() Format
	Uint128() Uint128
	Classify() Class
	IsNaN() bool
	IsSignalingNaN() bool
	IsInf() bool
	IsZero() bool
	IsSubnormal() bool
	IsNormal() bool
	IsFinite() bool
	Signbit() bool
	Neg() T
	Abs() T
	CopySign(y T) T

	Add(y T, rm RoundingMode) (T, ExceptionFlags)
	Sub(y T, rm RoundingMode) (T, ExceptionFlags)
	Mul(y T, rm RoundingMode) (T, ExceptionFlags)
	Div(y T, rm RoundingMode) (T, ExceptionFlags)
	Rem(y T, rm RoundingMode) (T, ExceptionFlags)
	FMA(y, z T, rm RoundingMode) (T, ExceptionFlags)
	Sqrt(rm RoundingMode) (T, ExceptionFlags)
	RoundToIntegral(rm RoundingMode) (T, ExceptionFlags)
	RoundToIntegralExact(rm RoundingMode) (T, ExceptionFlags)

	Eq(y T) (bool, ExceptionFlags)
	Lt(y T) (bool, ExceptionFlags)
	Le(y T) (bool, ExceptionFlags)
	LtQuiet(y T) (bool, ExceptionFlags)
	LeQuiet(y T) (bool, ExceptionFlags)
	EqSignaling(y T) (bool, ExceptionFlags)

	ToInt32(rm RoundingMode, exact bool) (int32, ExceptionFlags)
	ToInt64(rm RoundingMode, exact bool) (int64, ExceptionFlags)
	ToUint32(rm RoundingMode, exact bool) (uint32, ExceptionFlags)
	ToUint64(rm RoundingMode, exact bool) (uint64, ExceptionFlags)

	ToF16(rm RoundingMode) (F16, ExceptionFlags)
	ToF32(rm RoundingMode) (F32, ExceptionFlags)
	ToF64(rm RoundingMode) (F64, ExceptionFlags)
	ToF128(rm RoundingMode) (F128, ExceptionFlags)

	String() string
	MarshalText() ([]byte, error)
	Decimal() (decimal.Decimal, error)

	fromUint128(u Uint128) T
	fromInt32(v int32, rm RoundingMode) (T, ExceptionFlags)
	fromInt64(v int64, rm RoundingMode) (T, ExceptionFlags)
	fromUint32(v uint32, rm RoundingMode) (T, ExceptionFlags)
	fromUint64(v uint64, rm RoundingMode) (T, ExceptionFlags)
	fromDecimal(neg bool, coef *big.Int, exp int, rm RoundingMode) (T, ExceptionFlags)
}

var (
	_ = FormatOf[F16]
	_ = FormatOf[F32]
	_ = FormatOf[F64]
	_ = FormatOf[F128]
)

// FromBits returns the T with bit pattern b. Bits above T's width are ignored.
func FromBits[T Float[T]](b Uint128) T {
	var z T
	return z.fromUint128(b.And(lowMask(z.Format().Width)))
}

// FormatOf returns the format of T.
func FormatOf[T Float[T]]() Format {
	var z T
	return z.Format()
}

// NaN returns the canonical quiet NaN of T.
func NaN[T Float[T]]() T {
	return FromBits[T](FormatOf[T]().QuietNaN())
}

// Inf returns +Inf if sign >= 0, -Inf otherwise.
func Inf[T Float[T]](sign int) T {
	return FromBits[T](FormatOf[T]().Inf(sign < 0))
}

// Zero returns +0, or -0 if neg is set.
func Zero[T Float[T]](neg bool) T {
	return FromBits[T](FormatOf[T]().Zero(neg))
}

// MaxFinite returns the largest finite T.
func MaxFinite[T Float[T]]() T {
	return FromBits[T](FormatOf[T]().MaxFinite(false))
}

// Identical reports whether x and y have the same bit pattern. Unlike Eq it
// tells -0 from +0 and holds for a NaN compared with itself.
func Identical[T Float[T]](x, y T) bool {
	return x == y
}

// FromInt converts v to T under rm.
func FromInt[T Float[T], I constraints.Signed](v I, rm RoundingMode) (T, ExceptionFlags) {
	var z T
	if unsafe.Sizeof(v) <= 4 {
		return z.fromInt32(int32(v), rm)
	}
	return z.fromInt64(int64(v), rm)
}

// FromUint converts v to T under rm.
func FromUint[T Float[T], U constraints.Unsigned](v U, rm RoundingMode) (T, ExceptionFlags) {
	var z T
	if unsafe.Sizeof(v) <= 4 {
		return z.fromUint32(uint32(v), rm)
	}
	return z.fromUint64(uint64(v), rm)
}

// ToInt rounds x to the signed integer type I under rm. NaN and values out
// of I's range raise invalid (and nothing else) and saturate; NaN gives the
// maximum. If exact is set, a rounded result raises inexact.
func ToInt[I constraints.Signed, T Float[T]](x T, rm RoundingMode, exact bool) (I, ExceptionFlags) {
	var zero I
	size := unsafe.Sizeof(zero) * 8
	if size == 64 {
		v, flags := x.ToInt64(rm, exact)
		return I(v), flags
	}
	v, flags := x.ToInt32(rm, exact)
	if size == 32 {
		return I(v), flags
	}
	maxV := int32(1)<<(size-1) - 1
	minV := -maxV - 1
	switch {
	case v > maxV:
		return I(maxV), FlagInvalid
	case v < minV:
		return I(minV), FlagInvalid
	}
	return I(v), flags
}

// ToUint is ToInt for unsigned integer types. Negative values that do not
// round to zero are out of range and give 0.
func ToUint[U constraints.Unsigned, T Float[T]](x T, rm RoundingMode, exact bool) (U, ExceptionFlags) {
	var zero U
	size := unsafe.Sizeof(zero) * 8
	if size == 64 {
		v, flags := x.ToUint64(rm, exact)
		return U(v), flags
	}
	v, flags := x.ToUint32(rm, exact)
	if size == 32 {
		return U(v), flags
	}
	if maxV := uint32(1)<<size - 1; v > maxV {
		return U(maxV), FlagInvalid
	}
	return U(v), flags
}

// Convert converts x to the format D under rm. Widening is exact.
func Convert[D Float[D], S Float[S]](x S, rm RoundingMode) (D, ExceptionFlags) {
	var (
		d     D
		flags ExceptionFlags
	)
	switch any(d).(type) {
	case F16:
		var v F16
		v, flags = x.ToF16(rm)
		d = any(v).(D)
	case F32:
		var v F32
		v, flags = x.ToF32(rm)
		d = any(v).(D)
	case F64:
		var v F64
		v, flags = x.ToF64(rm)
		d = any(v).(D)
	case F128:
		var v F128
		v, flags = x.ToF128(rm)
		d = any(v).(D)
	}
	return d, flags
}

// Compare orders x and y quietly: it returns -1, 0 or +1 and ordered set,
// or ordered unset if either operand is NaN. Only a signaling NaN raises
// invalid.
func Compare[T Float[T]](x, y T) (cmp int, ordered bool, flags ExceptionFlags) {
	eq, eqFlags := x.Eq(y)
	lt, ltFlags := x.LtQuiet(y)
	flags = eqFlags | ltFlags
	switch {
	case x.IsNaN() || y.IsNaN():
		return 0, false, flags
	case eq:
		return 0, true, flags
	case lt:
		return -1, true, flags
	default:
		return 1, true, flags
	}
}
