// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/x448/float16"
)

// Widening binary16 is exact, so every non-NaN pattern must agree with float16.
func TestF16WideningMatchesFloat16(t *testing.T) {
	a := assert.New(t)
	for b := 0; b <= math.MaxUint16; b++ {
		h := F16FromBits(uint16(b))
		if h.IsNaN() {
			continue
		}
		want := F32FromFloat32(h.Float16().Float32())
		got, flags := h.ToF32(TiesToEven)
		if !a.Equal(want, got, "%#04x", b) || !a.Equal(ExceptionFlags(0), flags) {
			return
		}
	}
}

func TestF16NarrowingMatchesFloat16(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(16))
	for i := 0; i < 20000; i++ {
		// bias the exponents towards the binary16 range.
		bits := rnd.Uint32()&0x83ffffff | uint32(rnd.Intn(48)+100)<<23
		f := math.Float32frombits(bits)
		want := F16FromFloat16(float16.Fromfloat32(f))
		got, _ := F32FromFloat32(f).ToF16(TiesToEven)
		if !a.Equal(want, got, "%v", f) {
			return
		}
	}
}

func TestFloat16RoundTrip(t *testing.T) {
	a := assert.New(t)
	f := float16.Fromfloat32(-1.5)
	h := F16FromFloat16(f)
	a.Equal(F16FromBits(0xbe00), h)
	a.Equal(f, h.Float16())
	a.Equal(float32(-1.5), h.Float16().Float32())
}
