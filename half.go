// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import "github.com/x448/float16"

// F16FromFloat16 returns the F16 with the bit pattern of f.
func F16FromFloat16(f float16.Float16) F16 {
	return F16{bits: f.Bits()}
}

// Float16 returns x as a float16.Float16, bit for bit.
func (x F16) Float16() float16.Float16 {
	return float16.Frombits(x.bits)
}
