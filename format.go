// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import "math/big"

// Format describes the bit layout of an IEEE 754 binary interchange format.
//   width-1  width-2        SigBits  SigBits-1            0
//   ________|_______________________|______________________
//   s        eeeeeeeeeeeeeeeeeeeeeee mmmmmmmmmmmmmmmmmmmmmm
type Format struct {
	Name    string
	Width   uint
	ExpBits uint
	SigBits uint // stored fraction bits, without the hidden bit
	Bias    int
}

var (
	// Binary16 is IEEE 754 half precision.
	Binary16 = newFormat("binary16", 16, 5)
	// Binary32 is IEEE 754 single precision.
	Binary32 = newFormat("binary32", 32, 8)
	// Binary64 is IEEE 754 double precision.
	Binary64 = newFormat("binary64", 64, 11)
	// Binary128 is IEEE 754 quadruple precision.
	Binary128 = newFormat("binary128", 128, 15)
)

func newFormat(name string, width, expBits uint) Format {
	return Format{
		Name:    name,
		Width:   width,
		ExpBits: expBits,
		SigBits: width - expBits - 1,
		Bias:    1<<(expBits-1) - 1,
	}
}

// Precision returns the number of significand bits including the hidden one.
func (f Format) Precision() uint {
	return f.SigBits + 1
}

// Emin returns the exponent of the smallest positive normal number.
func (f Format) Emin() int {
	return 1 - f.Bias
}

// Emax returns the exponent of the largest finite number.
func (f Format) Emax() int {
	return f.Bias
}

// ExactIntBits returns n such that every integer of magnitude up to 2^n
// is exactly representable.
func (f Format) ExactIntBits() uint {
	return f.Precision()
}

// MaxExactInt returns 2^ExactIntBits.
func (f Format) MaxExactInt() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), f.ExactIntBits())
}

func (f Format) expMask() uint64 {
	return 1<<f.ExpBits - 1
}

func (f Format) fracMask() Uint128 {
	return lowMask(f.SigBits)
}

func (f Format) signMask() Uint128 {
	return Uint128From64(1).Lsh(f.Width - 1)
}

func (f Format) pack(neg bool, exp uint64, frac Uint128) Uint128 {
	b := Uint128From64(exp).Lsh(f.SigBits).Or(frac.And(f.fracMask()))
	if neg {
		b = b.Or(f.signMask())
	}
	return b
}

// Fields splits b into its sign, biased exponent and fraction fields.
func (f Format) Fields(b Uint128) (neg bool, exp uint64, frac Uint128) {
	neg = b.Bit(f.Width-1) == 1
	exp = b.Rsh(f.SigBits).Lo & f.expMask()
	frac = b.And(f.fracMask())
	return neg, exp, frac
}

// Zero returns the bit pattern of a signed zero.
func (f Format) Zero(neg bool) Uint128 {
	return f.pack(neg, 0, Uint128{})
}

// Inf returns the bit pattern of a signed infinity.
func (f Format) Inf(neg bool) Uint128 {
	return f.pack(neg, f.expMask(), Uint128{})
}

// MaxFinite returns the bit pattern of the finite number of largest magnitude.
func (f Format) MaxFinite(neg bool) Uint128 {
	return f.pack(neg, f.expMask()-1, f.fracMask())
}

// QuietNaN returns the canonical quiet NaN: positive, with only the quiet bit
// of the fraction set. Operations producing a NaN return this pattern.
func (f Format) QuietNaN() Uint128 {
	return f.pack(false, f.expMask(), Uint128From64(1).Lsh(f.SigBits-1))
}

// Class is the IEEE 754 class of a value, ignoring its sign.
type Class uint8

const (
	ClassSignalingNaN Class = iota
	ClassQuietNaN
	ClassInfinity
	ClassNormal
	ClassSubnormal
	ClassZero
)

func (c Class) String() string {
	switch c {
	case ClassSignalingNaN:
		return "signaling NaN"
	case ClassQuietNaN:
		return "quiet NaN"
	case ClassInfinity:
		return "infinity"
	case ClassNormal:
		return "normal"
	case ClassSubnormal:
		return "subnormal"
	case ClassZero:
		return "zero"
	default:
		return "unknown"
	}
}

// Classify returns the class of the bit pattern b. It is a pure bit-mask
// computation and does not involve the engine.
func (f Format) Classify(b Uint128) Class {
	_, exp, frac := f.Fields(b)
	switch {
	case exp == f.expMask():
		switch {
		case frac.IsZero():
			return ClassInfinity
		case frac.Bit(f.SigBits-1) == 1:
			return ClassQuietNaN
		default:
			return ClassSignalingNaN
		}
	case exp == 0:
		if frac.IsZero() {
			return ClassZero
		}
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

// unpack returns the finite nonzero value of b as (-1)^neg * m * 2^e.
func (f Format) unpack(b Uint128) (neg bool, m *big.Int, e int) {
	neg, exp, frac := f.Fields(b)
	m = frac.Big()
	if exp == 0 {
		return neg, m, f.Emin() - int(f.SigBits)
	}
	m.SetBit(m, int(f.SigBits), 1)
	return neg, m, int(exp) - f.Bias - int(f.SigBits)
}
