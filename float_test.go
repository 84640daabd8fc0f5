// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToIntSaturation(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v     float64
		rm    RoundingMode
		exact bool
		i8    int8
		u8    uint8
		i16   int16
		flags ExceptionFlags
	}{
		{3.7, TowardZero, false, 3, 3, 3, 0},
		{3.7, TowardZero, true, 3, 3, 3, FlagInexact},
		{3.5, TiesToEven, true, 4, 4, 4, FlagInexact},
		{-0.4, TowardZero, false, 0, 0, 0, 0},
		{127, TiesToEven, false, 127, 127, 127, 0},
		{200, TiesToEven, false, 127, 200, 200, FlagInvalid},
		{300, TiesToEven, false, 127, 255, 300, FlagInvalid},
		{-129, TiesToEven, false, -128, 0, -129, FlagInvalid},
		{70000, TiesToEven, false, 127, 255, 32767, FlagInvalid},
		{math.NaN(), TiesToEven, false, 127, 255, 32767, FlagInvalid},
		{math.Inf(-1), TiesToEven, false, -128, 0, -32768, FlagInvalid},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := F64FromFloat64(test.v)
			i8, flags := ToInt[int8](x, test.rm, test.exact)
			a.Equal(test.i8, i8)
			a.Equal(test.flags, flags)
			u8, _ := ToUint[uint8](x, test.rm, test.exact)
			a.Equal(test.u8, u8)
			i16, _ := ToInt[int16](x, test.rm, test.exact)
			a.Equal(test.i16, i16)
		})
	}
	u8, flags := ToUint[uint8](F32FromFloat32(300), TiesToEven, false)
	a.Equal(uint8(255), u8)
	a.Equal(FlagInvalid, flags)
}

func TestToIntWidths(t *testing.T) {
	a := assert.New(t)
	x := F32FromFloat32(-3e9)
	v32, flags := ToInt[int32](x, TiesToEven, false)
	a.Equal(int32(math.MinInt32), v32)
	a.Equal(FlagInvalid, flags)
	v64, flags := ToInt[int64](x, TiesToEven, false)
	a.Equal(int64(-3e9), v64)
	a.Equal(ExceptionFlags(0), flags)
	vi, _ := ToInt[int](x, TiesToEven, false)
	a.Equal(-3000000000, vi)

	u16, flags := ToUint[uint16](F32FromFloat32(-1), TiesToEven, false)
	a.Equal(uint16(0), u16)
	a.Equal(FlagInvalid, flags)
	u64, flags := ToUint[uint64](F64FromFloat64(1<<63), TiesToEven, false)
	a.Equal(uint64(1<<63), u64)
	a.Equal(ExceptionFlags(0), flags)
	u64, flags = ToUint[uint64](F64FromFloat64(1<<64), TiesToEven, false)
	a.Equal(uint64(math.MaxUint64), u64)
	a.Equal(FlagInvalid, flags)
	i64, flags := F128FromBits(Uint128{Hi: 0xc03e000000000000}).ToInt64(TiesToEven, false) // -2^63
	a.Equal(int64(math.MinInt64), i64)
	a.Equal(ExceptionFlags(0), flags)
}

func TestFromIntegers(t *testing.T) {
	a := assert.New(t)
	h, flags := FromInt[F16](int8(-3), TiesToEven)
	a.Equal(F16FromBits(0xc200), h)
	a.Equal(ExceptionFlags(0), flags)
	h, flags = FromInt[F16](70000, TiesToEven)
	a.Equal(Inf[F16](1), h)
	a.Equal(FlagOverflow|FlagInexact, flags)
	h, flags = FromUint[F16](uint16(65519), TowardZero)
	a.Equal(MaxFinite[F16](), h)
	a.Equal(FlagInexact, flags)

	s, flags := FromUint[F32](uint64(1<<63+1), TiesToEven)
	a.Equal(F32FromBits(0x5f000000), s)
	a.Equal(FlagInexact, flags)
	s, flags = FromUint[F32](uint64(1<<63+1), TowardPositive)
	a.Equal(F32FromBits(0x5f000001), s)
	a.Equal(FlagInexact, flags)
	s, flags = FromInt[F32](int64(math.MinInt64), TiesToEven)
	a.Equal(F32FromBits(0xdf000000), s)
	a.Equal(ExceptionFlags(0), flags)

	d, flags := FromInt[F64](int32(math.MinInt32), TiesToEven)
	a.Equal(-2147483648.0, d.Float64())
	a.Equal(ExceptionFlags(0), flags)
	d, _ = FromUint[F64](uint(math.MaxUint64), TiesToEven)
	a.Equal(18446744073709551616.0, d.Float64())

	q, flags := FromUint[F128](uint64(math.MaxUint64), TiesToEven)
	a.Equal(ExceptionFlags(0), flags)
	back, flags := q.ToUint64(TiesToEven, true)
	a.Equal(uint64(math.MaxUint64), back)
	a.Equal(ExceptionFlags(0), flags)

	z, _ := FromInt[F32](0, TowardNegative)
	a.Equal(Zero[F32](false), z)
}

func TestConvert(t *testing.T) {
	a := assert.New(t)
	tenth := MustParse[F32]("0.1", TiesToEven)
	d, flags := Convert[F64](tenth, TiesToEven)
	a.Equal(F64FromBits(0x3fb99999a0000000), d)
	a.Equal(ExceptionFlags(0), flags)

	h, flags := Convert[F16](F64FromFloat64(1e-10), TiesToEven)
	a.Equal(Zero[F16](false), h)
	a.Equal(FlagUnderflow|FlagInexact, flags)

	q, flags := Convert[F128](F16FromBits(0x3c00), TiesToEven)
	a.Equal(F128FromBits(Uint128{Hi: 0x3fff000000000000}), q)
	a.Equal(ExceptionFlags(0), flags)

	same, flags := Convert[F32](tenth, TowardZero)
	a.Equal(tenth, same)
	a.Equal(ExceptionFlags(0), flags)

	// a signaling NaN becomes the canonical NaN of the target and raises invalid.
	n, flags := Convert[F64](F32FromBits(0x7f800001), TiesToEven)
	a.Equal(NaN[F64](), n)
	a.Equal(FlagInvalid, flags)
	n, flags = Convert[F64](F32FromBits(0xffc00123), TiesToEven)
	a.Equal(NaN[F64](), n)
	a.Equal(ExceptionFlags(0), flags)

	// the smallest F16 subnormal widens exactly.
	w, flags := Convert[F64](F16FromBits(0x0001), TiesToEven)
	a.Equal(math.Ldexp(1, -24), w.Float64())
	a.Equal(ExceptionFlags(0), flags)
}

func TestCompare(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y    F64
		cmp     int
		ordered bool
		flags   ExceptionFlags
	}{
		{F64FromFloat64(1), F64FromFloat64(2), -1, true, 0},
		{F64FromFloat64(2), F64FromFloat64(1), 1, true, 0},
		{Zero[F64](true), Zero[F64](false), 0, true, 0},
		{Inf[F64](-1), F64FromFloat64(-math.MaxFloat64), -1, true, 0},
		{NaN[F64](), F64FromFloat64(1), 0, false, 0},
		{F64FromBits(0x7ff0000000000001), F64FromFloat64(1), 0, false, FlagInvalid},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			cmp, ordered, flags := Compare(test.x, test.y)
			a.Equal(test.cmp, cmp)
			a.Equal(test.ordered, ordered)
			a.Equal(test.flags, flags)
		})
	}
}

func TestComparisons(t *testing.T) {
	a := assert.New(t)
	one, two := F16FromBits(0x3c00), F16FromBits(0x4000)
	qnan, snan := NaN[F16](), F16FromBits(0x7c01)
	check := func(res bool, flags ExceptionFlags, wantRes bool, wantFlags ExceptionFlags) {
		a.Equal(wantRes, res)
		a.Equal(wantFlags, flags)
	}
	res, flags := one.Lt(two)
	check(res, flags, true, 0)
	res, flags = two.Le(two)
	check(res, flags, true, 0)
	res, flags = one.Lt(qnan)
	check(res, flags, false, FlagInvalid)
	res, flags = one.LtQuiet(qnan)
	check(res, flags, false, 0)
	res, flags = qnan.LeQuiet(one)
	check(res, flags, false, 0)
	res, flags = snan.LeQuiet(one)
	check(res, flags, false, FlagInvalid)
	res, flags = snan.Eq(snan)
	check(res, flags, false, FlagInvalid)
	res, flags = one.EqSignaling(one)
	check(res, flags, true, 0)
}

func TestArithmetic(t *testing.T) {
	a := assert.New(t)
	f := F64FromFloat64
	// fused multiply-add rounds once: (1+2^-30)^2 - 1 keeps the 2^-60 term.
	x := f(1 + 0x1p-30)
	fma, flags := x.FMA(x, f(-1), TiesToEven)
	a.Equal(0x1p-29+0x1p-60, fma.Float64())
	a.Equal(ExceptionFlags(0), flags)
	sq, _ := x.Mul(x, TiesToEven)
	sep, _ := sq.Sub(f(-1).Neg(), TiesToEven)
	a.NotEqual(fma, sep)

	r, flags := f(5).Rem(f(3), TiesToEven)
	a.Equal(-1.0, r.Float64())
	a.Equal(ExceptionFlags(0), flags)
	r, flags = f(-4).Rem(f(2), TiesToEven)
	a.Equal(Zero[F64](true), r)
	a.Equal(ExceptionFlags(0), flags)
	r, flags = f(1).Rem(Zero[F64](false), TiesToEven)
	a.Equal(NaN[F64](), r)
	a.Equal(FlagInvalid, flags)

	s, flags := f(2).Sqrt(TowardZero)
	a.Equal(F64FromBits(0x3ff6a09e667f3bcc), s)
	a.Equal(FlagInexact, flags)
	s, flags = Zero[F64](true).Sqrt(TiesToEven)
	a.Equal(Zero[F64](true), s)
	a.Equal(ExceptionFlags(0), flags)

	// x - x is +0, except toward negative.
	z, _ := f(3).Sub(f(3), TiesToEven)
	a.Equal(Zero[F64](false), z)
	z, _ = f(3).Sub(f(3), TowardNegative)
	a.Equal(Zero[F64](true), z)

	i, flags := Inf[F64](1).Add(Inf[F64](-1), TiesToEven)
	a.Equal(NaN[F64](), i)
	a.Equal(FlagInvalid, flags)
	i, flags = Inf[F64](1).Mul(Zero[F64](true), TiesToEven)
	a.Equal(NaN[F64](), i)
	a.Equal(FlagInvalid, flags)
}

func TestGenericConstructors(t *testing.T) {
	a := assert.New(t)
	a.Equal(Binary64, FormatOf[F64]())
	a.Equal(F32FromBits(0xff800000), Inf[F32](-1))
	a.Equal(F16FromBits(0x8000), Zero[F16](true))
	a.Equal(F64FromBits(0x7fefffffffffffff), MaxFinite[F64]())
	a.Equal(F128FromBits(Uint128{Hi: 0x7ffeffffffffffff, Lo: ^uint64(0)}), MaxFinite[F128]())
	a.True(Identical(F32FromBits(0x7fc00001), F32FromBits(0x7fc00001)))
	a.False(Identical(F32FromBits(0x7fc00001), F32FromBits(0x7fc00000)))
}
