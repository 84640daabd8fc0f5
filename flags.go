// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"strings"

	"github.com/avdva/softfloat/internal/engine"
)

// ExceptionFlags is the set of IEEE 754 exceptions raised by one operation.
// Every operation returns a fresh value holding only its own exceptions.
type ExceptionFlags uint8

const (
	FlagInexact ExceptionFlags = 1 << iota
	FlagUnderflow
	FlagOverflow
	FlagDivByZero
	FlagInvalid
)

var flagNames = []struct {
	flag ExceptionFlags
	name string
}{
	{FlagInvalid, "invalid"},
	{FlagDivByZero, "divbyzero"},
	{FlagOverflow, "overflow"},
	{FlagUnderflow, "underflow"},
	{FlagInexact, "inexact"},
}

var engineFlags = []struct {
	reg  uint8
	flag ExceptionFlags
}{
	{engine.FlagInexact, FlagInexact},
	{engine.FlagUnderflow, FlagUnderflow},
	{engine.FlagOverflow, FlagOverflow},
	{engine.FlagInfinite, FlagDivByZero},
	{engine.FlagInvalid, FlagInvalid},
}

// FlagsFromBits returns the flags for a bit set built from the Flag* constants.
func FlagsFromBits(b uint8) ExceptionFlags {
	return ExceptionFlags(b) & (FlagInexact | FlagUnderflow | FlagOverflow | FlagDivByZero | FlagInvalid)
}

// Bits returns f as a bit set of the Flag* constants.
func (f ExceptionFlags) Bits() uint8 {
	return uint8(f)
}

// Has reports whether all flags in g are set in f.
func (f ExceptionFlags) Has(g ExceptionFlags) bool {
	return f&g == g
}

func (f ExceptionFlags) IsInexact() bool   { return f.Has(FlagInexact) }
func (f ExceptionFlags) IsUnderflow() bool { return f.Has(FlagUnderflow) }
func (f ExceptionFlags) IsOverflow() bool  { return f.Has(FlagOverflow) }
func (f ExceptionFlags) IsDivByZero() bool { return f.Has(FlagDivByZero) }
func (f ExceptionFlags) IsInvalid() bool   { return f.Has(FlagInvalid) }

// String returns the raised flags joined with '|', or "none".
func (f ExceptionFlags) String() string {
	if f == 0 {
		return "none"
	}
	var b strings.Builder
	for _, fn := range flagNames {
		if f&fn.flag == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(fn.name)
	}
	return b.String()
}

func flagsFromEngine(reg uint8) ExceptionFlags {
	var f ExceptionFlags
	for _, ef := range engineFlags {
		if reg&ef.reg != 0 {
			f |= ef.flag
		}
	}
	return f
}
