package engine

import "math/big"

// layout is the bit layout of a binary interchange format.
type layout struct {
	width   uint
	expBits uint
	sigBits uint // stored fraction bits, without the hidden bit

	bias     int
	maxExp   int64 // all-ones biased exponent
	fracMask *big.Int
}

func newLayout(width, expBits uint) *layout {
	l := &layout{
		width:   width,
		expBits: expBits,
		sigBits: width - expBits - 1,
		bias:    1<<(expBits-1) - 1,
		maxExp:  1<<expBits - 1,
	}
	l.fracMask = new(big.Int).Lsh(big.NewInt(1), l.sigBits)
	l.fracMask.Sub(l.fracMask, big.NewInt(1))
	return l
}

var (
	f16  = newLayout(16, 5)
	f32  = newLayout(32, 8)
	f64  = newLayout(64, 11)
	f128 = newLayout(128, 15)
)

// prec is the significand precision including the hidden bit.
func (l *layout) prec() int {
	return int(l.sigBits) + 1
}

// emin is the exponent of the smallest normal number.
func (l *layout) emin() int {
	return 1 - l.bias
}

// emax is the exponent of the largest finite number.
func (l *layout) emax() int {
	return l.bias
}

// qmin is the exponent of the least significant bit of a subnormal.
func (l *layout) qmin() int {
	return l.emin() - l.prec() + 1
}

type kind uint8

const (
	kindZero kind = iota
	kindFinite
	kindInf
	kindQNaN
	kindSNaN
)

// unpacked is a decoded operand. Finite values equal (-1)^neg * m * 2^e.
type unpacked struct {
	kind kind
	neg  bool
	m    *big.Int
	e    int
}

func (u unpacked) isNaN() bool {
	return u.kind == kindQNaN || u.kind == kindSNaN
}

func (l *layout) unpack(b *big.Int) unpacked {
	neg := b.Bit(int(l.width-1)) == 1
	be := new(big.Int).Rsh(b, l.sigBits)
	be.And(be, big.NewInt(l.maxExp))
	biased := be.Int64()
	frac := new(big.Int).And(b, l.fracMask)
	switch {
	case biased == l.maxExp:
		switch {
		case frac.Sign() == 0:
			return unpacked{kind: kindInf, neg: neg}
		case frac.Bit(int(l.sigBits-1)) == 1:
			return unpacked{kind: kindQNaN, neg: neg}
		default:
			return unpacked{kind: kindSNaN, neg: neg}
		}
	case biased == 0:
		if frac.Sign() == 0 {
			return unpacked{kind: kindZero, neg: neg}
		}
		return unpacked{kind: kindFinite, neg: neg, m: frac, e: l.qmin()}
	default:
		frac.SetBit(frac, int(l.sigBits), 1)
		return unpacked{kind: kindFinite, neg: neg, m: frac, e: int(biased) - l.bias - int(l.sigBits)}
	}
}

func (l *layout) pack(neg bool, biased int64, frac *big.Int) *big.Int {
	b := big.NewInt(biased)
	b.Lsh(b, l.sigBits)
	b.Or(b, frac)
	if neg {
		b.SetBit(b, int(l.width-1), 1)
	}
	return b
}

func (l *layout) zero(neg bool) *big.Int {
	return l.pack(neg, 0, new(big.Int))
}

func (l *layout) inf(neg bool) *big.Int {
	return l.pack(neg, l.maxExp, new(big.Int))
}

func (l *layout) maxFinite(neg bool) *big.Int {
	return l.pack(neg, l.maxExp-1, l.fracMask)
}

// defaultNaN is the canonical quiet NaN: positive, only the quiet bit set.
func (l *layout) defaultNaN() *big.Int {
	frac := new(big.Int).SetBit(new(big.Int), int(l.sigBits-1), 1)
	return l.pack(false, l.maxExp, frac)
}

// propagateNaN returns the default NaN, raising invalid if any operand is signaling.
func (l *layout) propagateNaN(ops ...unpacked) *big.Int {
	for _, op := range ops {
		if op.kind == kindSNaN {
			raise(FlagInvalid)
			break
		}
	}
	return l.defaultNaN()
}

// invalid raises the invalid flag and returns the default NaN.
func (l *layout) invalid() *big.Int {
	raise(FlagInvalid)
	return l.defaultNaN()
}

// repack re-encodes an operand that is already representable in l.
func (l *layout) repack(u unpacked) *big.Int {
	switch u.kind {
	case kindZero:
		return l.zero(u.neg)
	case kindInf:
		return l.inf(u.neg)
	case kindFinite:
		return l.roundPack(u.neg, u.m, u.e, false)
	default:
		return l.defaultNaN()
	}
}
