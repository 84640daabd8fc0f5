// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

func BenchmarkMulF64(b *testing.B) {
	f0 := F64FromFloat64(123456789.9)
	f1 := F64FromFloat64(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1, TiesToEven)
	}
}

func BenchmarkMulF128(b *testing.B) {
	f0, _ := F64FromFloat64(123456789.9).ToF128(TiesToEven)
	f1, _ := F64FromFloat64(1234.9).ToF128(TiesToEven)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1, TiesToEven)
	}
}

func BenchmarkMulOtherFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	f1 := of.NewF(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(123456789.9)
	f1 := decimal.NewFromFloat(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkParseF64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Parse[F64]("123456789.987654321", TiesToEven)
	}
}

func BenchmarkParseOtherFixed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		of.NewS("123456789.987654321")
	}
}

func BenchmarkParallelAdd(b *testing.B) {
	x := F32FromFloat32(1)
	y := F32FromFloat32(1e-8)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			x.Add(y, TowardPositive)
		}
	})
}
