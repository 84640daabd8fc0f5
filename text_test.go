// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s     string
		rm    RoundingMode
		bits  uint32
		flags ExceptionFlags
	}{
		{"1", TiesToEven, 0x3f800000, 0},
		{"  +1.5  ", TiesToEven, 0x3fc00000, 0},
		{"-2", TiesToEven, 0xc0000000, 0},
		{"0.1", TiesToEven, 0x3dcccccd, FlagInexact},
		{"0.1", TowardZero, 0x3dcccccc, FlagInexact},
		{"1e-1", TowardPositive, 0x3dcccccd, FlagInexact},
		{"-0", TiesToEven, 0x80000000, 0},
		{"0.000", TiesToEven, 0x00000000, 0},
		{"1E10", TiesToEven, 0x501502f9, 0},
		{"16777217", TiesToEven, 0x4b800000, FlagInexact},
		{"16777217", TiesToAway, 0x4b800001, FlagInexact},
		{"1e39", TiesToEven, 0x7f800000, FlagOverflow | FlagInexact},
		{"1e39", TowardZero, 0x7f7fffff, FlagOverflow | FlagInexact},
		{"1e-50", TiesToEven, 0x00000000, FlagUnderflow | FlagInexact},
		{"1e-50", TowardPositive, 0x00000001, FlagUnderflow | FlagInexact},
		{"-1e-50", TowardNegative, 0x80000001, FlagUnderflow | FlagInexact},
		{"1e-99999", TiesToEven, 0x00000000, FlagUnderflow | FlagInexact},
		{"1e99999", TowardNegative, 0x7f7fffff, FlagOverflow | FlagInexact},
		{"1e3000000000", TiesToEven, 0x7f800000, FlagOverflow | FlagInexact},
		{"-1e-3000000000", TiesToEven, 0x80000000, FlagUnderflow | FlagInexact},
		{"1.5e-99999999999999999999", TowardPositive, 0x00000001, FlagUnderflow | FlagInexact},
		{"0e3000000000", TiesToEven, 0x00000000, 0},
		{"0.001e+41", TiesToEven, 0x7e967699, FlagInexact},
		{"inf", TiesToEven, 0x7f800000, 0},
		{"-Infinity", TiesToEven, 0xff800000, 0},
		{"NaN", TiesToEven, 0x7fc00000, 0},
		{"0x7f800001", TiesToEven, 0x7f800001, 0},
		{"0X3F800000", TiesToEven, 0x3f800000, 0},
		{"-0x3f800000", TiesToEven, 0xbf800000, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, flags, err := Parse[F32](test.s, test.rm)
			a.NoError(err)
			a.Equal(F32FromBits(test.bits), v, "%#x", v.Bits())
			a.Equal(test.flags, flags)
		})
	}
}

func TestParseErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		pos int
	}{
		{"", 0},
		{"   ", 0},
		{"-", 0},
		{"1.2.3", 4},
		{"12a", 3},
		{" 1x", 3},
		{"e5", 1},
		{"1e", 2},
		{"1e+", 3},
		{"0x", 0},
		{"0x1g", 4},
		{"0x123456789", 11},
		{"nanx", 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, _, err := Parse[F32](test.s, TiesToEven)
			a.Error(err)
			a.True(errors.Is(err, ErrSyntax), "%v", err)
			var pe *posError
			if test.pos > 0 && a.True(errors.As(err, &pe), "%v", err) {
				a.Equal(test.pos, pe.pos, "%v", err)
			}
		})
	}
	a.Panics(func() { MustParse[F64]("one", TiesToEven) })
}

func TestParseF128(t *testing.T) {
	a := assert.New(t)
	v, flags, err := Parse[F128]("1", TiesToEven)
	a.NoError(err)
	a.Equal(F128FromBits(Uint128{Hi: 0x3fff000000000000}), v)
	a.Equal(ExceptionFlags(0), flags)

	// 0.1 needs more than 64 bits of significand; binary128 rounds it at bit 113.
	v = MustParse[F128]("0.1", TiesToEven)
	a.Equal(F128FromBits(Uint128{Hi: 0x3ffb999999999999, Lo: 0x999999999999999a}), v)
	v, flags, err = Parse[F128]("0.1", TowardZero)
	a.NoError(err)
	a.Equal(F128FromBits(Uint128{Hi: 0x3ffb999999999999, Lo: 0x9999999999999999}), v)
	a.Equal(FlagInexact, flags)

	v, _, err = Parse[F128]("0xffff", TiesToEven)
	a.NoError(err)
	a.Equal(F128FromBits(Uint128From64(0xffff)), v)
}

func TestString(t *testing.T) {
	a := assert.New(t)
	a.Equal("1", F32FromFloat32(1).String())
	a.Equal("0.1", MustParse[F32]("0.1", TiesToEven).String())
	a.Equal("0.1", F64FromFloat64(0.1).String())
	a.Equal("0.1", MustParse[F16]("0.1", TiesToEven).String())
	a.Equal("0.1", MustParse[F128]("0.1", TiesToEven).String())
	a.Equal("-2.5", F64FromFloat64(-2.5).String())
	a.Equal("65500", MaxFinite[F16]().String())
	a.Equal(MaxFinite[F16](), MustParse[F16]("65500", TiesToEven))
	a.Equal("3.4028235e+38", MaxFinite[F32]().String())
	a.Equal("1e+300", F64FromFloat64(1e300).String())
	a.Equal("1.0000001", F32FromBits(0x3f800001).String())
	a.Equal("-0", Zero[F64](true).String())
	a.Equal("0", Zero[F128](false).String())
	a.Equal("+Inf", Inf[F16](1).String())
	a.Equal("-Inf", Inf[F128](-1).String())
	a.Equal("NaN", F32FromBits(0x7f800001).String())
	a.Equal("1 {0x3c00}", F16FromBits(0x3c00).GoString())
	a.Equal("1 {0x3ff0000000000000}", fmt.Sprintf("%#v", F64FromFloat64(1)))
	a.Equal("1 {0x3fff0000000000000000000000000000}", F128FromBits(Uint128{Hi: 0x3fff000000000000}).GoString())
}

func TestStringRoundTrip(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		x32 := F32FromBits(rnd.Uint32())
		if !x32.IsNaN() {
			back, _, err := Parse[F32](x32.String(), TiesToEven)
			a.NoError(err)
			a.Equal(x32, back, "%s", x32)
		}
		x64 := F64FromBits(rnd.Uint64())
		if !x64.IsNaN() {
			back, _, err := Parse[F64](x64.String(), TiesToEven)
			a.NoError(err)
			a.Equal(x64, back, "%s", x64)
		}
	}
	for b := 0; b <= math.MaxUint16; b += 7 {
		x := F16FromBits(uint16(b))
		if x.IsNaN() {
			continue
		}
		back, _, err := Parse[F16](x.String(), TiesToEven)
		a.NoError(err)
		a.Equal(x, back, "%s", x)
	}
}

func TestStringMatchesHost(t *testing.T) {
	a := assert.New(t)
	for _, f := range []float64{0.1, 1.5, -123.456, 1e-7, 6.02214076e23, math.Pi, 1e21, 123456789, 5e-324, math.MaxFloat64} {
		a.Equal(strconv.FormatFloat(f, 'g', -1, 64), F64FromFloat64(f).String())
		f32 := float32(f)
		a.Equal(strconv.FormatFloat(float64(f32), 'g', -1, 32), F32FromFloat32(f32).String())
	}
}

func TestJSON(t *testing.T) {
	a := assert.New(t)
	type point struct {
		X F32
		Y F64
		H F16
		Q F128
	}
	p := point{
		X: F32FromBits(0x7f800001),
		Y: F64FromFloat64(-0.5),
		H: Zero[F16](true),
		Q: F128FromBits(Uint128{Hi: 0x3fff000000000000, Lo: 1}),
	}
	data, err := json.Marshal(p)
	a.NoError(err)
	a.Equal(`{"X":"0x7f800001","Y":"0xbfe0000000000000","H":"0x8000","Q":"0x3fff0000000000000000000000000001"}`, string(data))
	var back point
	a.NoError(json.Unmarshal(data, &back))
	a.Equal(p, back)

	a.NoError(json.Unmarshal([]byte(`{"X":"0.1","Y":"-inf","H":"1","Q":"2"}`), &back))
	a.Equal(F32FromBits(0x3dcccccd), back.X)
	a.Equal(Inf[F64](-1), back.Y)
	a.Equal(F16FromBits(0x3c00), back.H)
	a.Equal(F128FromBits(Uint128{Hi: 0x4000000000000000}), back.Q)

	err = json.Unmarshal([]byte(`{"X":"zero"}`), &back)
	a.True(errors.Is(err, ErrSyntax))
}
