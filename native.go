// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import "math"

// HasFloat32 is implemented by formats that convert to and from float32
// bit for bit. Only F32 does.
type HasFloat32 interface {
	Float32() float32
}

// HasFloat64 is implemented by formats that convert to and from float64
// bit for bit. Only F64 does.
type HasFloat64 interface {
	Float64() float64
}

var (
	_ HasFloat32 = F32{}
	_ HasFloat64 = F64{}
)

// F32FromFloat32 returns the F32 with the bit pattern of f.
func F32FromFloat32(f float32) F32 {
	return F32{bits: math.Float32bits(f)}
}

// Float32 returns the float32 with the bit pattern of x.
func (x F32) Float32() float32 {
	return math.Float32frombits(x.bits)
}

// F64FromFloat64 returns the F64 with the bit pattern of f.
func F64FromFloat64(f float64) F64 {
	return F64{bits: math.Float64bits(f)}
}

// Float64 returns the float64 with the bit pattern of x.
func (x F64) Float64() float64 {
	return math.Float64frombits(x.bits)
}

// F32FromFloat64 rounds f to single precision under rm.
func F32FromFloat64(f float64, rm RoundingMode) (F32, ExceptionFlags) {
	return F64FromFloat64(f).ToF32(rm)
}

// ToFloat64 widens x to a float64. The result is exact; only a signaling
// NaN raises invalid.
func (x F32) ToFloat64() (float64, ExceptionFlags) {
	v, flags := x.ToF64(TiesToEven)
	return v.Float64(), flags
}

// ToFloat32 narrows x to a float32 under rm.
func (x F64) ToFloat32(rm RoundingMode) (float32, ExceptionFlags) {
	v, flags := x.ToF32(rm)
	return v.Float32(), flags
}
