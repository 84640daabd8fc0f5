// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package softfloat implements IEEE 754 binary floating-point arithmetic
// in software for the binary16, binary32, binary64 and binary128 formats.
//
// Values are immutable bit patterns. Every operation takes its rounding mode
// as an argument and returns the exceptions it raised along with the result,
// so the outcome of a call depends on its arguments only:
//
//	one := softfloat.F32FromFloat32(1)
//	tiny := softfloat.F32FromBits(0x30800000) // 2^-30
//	sum, flags := one.Add(tiny, softfloat.TowardPositive)
//	// sum == 0x3f800001, flags == softfloat.FlagInexact
//
// The package is safe for concurrent use. The computations are done by a
// software floating-point unit with global rounding-mode and flags registers;
// calls into it are serialized by one package-wide lock.
//
// NaN results of invalid operations are the canonical quiet NaN of the
// format (see Format.QuietNaN). Tininess is detected after rounding.
// Conversions to integers saturate.
package softfloat
