// Package engine is a software IEEE 754 binary floating-point unit.
//
// Like a hardware FPU (and like Berkeley SoftFloat, whose entry points it
// mirrors), it keeps the rounding mode and the accrued exception flags in two
// process-wide registers. Arithmetic entry points read the rounding-mode
// register and OR the exceptions they raise into the flags register.
// Nothing here is safe for concurrent use: callers must serialize every
// register access and every entry point behind a single lock.
package engine

import "sync/atomic"

// Rounding-mode register values.
const (
	RoundNearEven   uint8 = 0
	RoundMinMag     uint8 = 1
	RoundMin        uint8 = 2
	RoundMax        uint8 = 3
	RoundNearMaxMag uint8 = 4
	RoundOdd        uint8 = 6
)

// Exception flags register bits.
const (
	FlagInexact   uint8 = 1
	FlagUnderflow uint8 = 2
	FlagOverflow  uint8 = 4
	FlagInfinite  uint8 = 8
	FlagInvalid   uint8 = 16
)

var (
	roundingMode   = RoundNearEven
	exceptionFlags uint8

	busy atomic.Bool
)

// SetRoundingMode programs the rounding-mode register.
func SetRoundingMode(mode uint8) {
	roundingMode = mode
}

// RoundingMode returns the rounding-mode register.
func RoundingMode() uint8 {
	return roundingMode
}

// SetExceptionFlags overwrites the flags register.
func SetExceptionFlags(flags uint8) {
	exceptionFlags = flags
}

// ExceptionFlags returns the flags accrued since the register was last written.
func ExceptionFlags() uint8 {
	return exceptionFlags
}

func raise(flags uint8) {
	exceptionFlags |= flags
}

// enter marks the unit busy for the duration of one entry point.
// Overlapping entry means the caller broke the serialization contract,
// the registers can no longer be trusted, so it is fatal.
func enter() (leave func()) {
	if !busy.CompareAndSwap(false, true) {
		panic("engine: overlapping entry; calls must be serialized")
	}
	return func() { busy.Store(false) }
}
