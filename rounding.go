// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/avdva/softfloat/internal/engine"
)

// RoundingMode selects how an inexact result is rounded.
// It is passed to every operation and never kept as ambient state.
type RoundingMode uint8

const (
	// TiesToEven rounds to nearest, ties to the even significand.
	TiesToEven RoundingMode = iota
	// TowardZero truncates.
	TowardZero
	// TowardNegative rounds toward -Inf.
	TowardNegative
	// TowardPositive rounds toward +Inf.
	TowardPositive
	// TiesToAway rounds to nearest, ties away from zero.
	TiesToAway
	// ToOdd truncates and sets the last significand bit of any inexact result.
	ToOdd
)

var roundingModeNames = [...]struct {
	long, short string
}{
	TiesToEven:     {"ties-to-even", "rne"},
	TowardZero:     {"toward-zero", "rtz"},
	TowardNegative: {"toward-negative", "rdn"},
	TowardPositive: {"toward-positive", "rup"},
	TiesToAway:     {"ties-to-away", "rmm"},
	ToOdd:          {"to-odd", "rod"},
}

// RoundingModes returns all supported rounding modes.
func RoundingModes() []RoundingMode {
	return []RoundingMode{TiesToEven, TowardZero, TowardNegative, TowardPositive, TiesToAway, ToOdd}
}

// ParseRoundingMode accepts a mode's long name ("toward-zero")
// or its RISC-V mnemonic ("rtz"), case-insensitively.
func ParseRoundingMode(s string) (RoundingMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, names := range roundingModeNames {
		if s == names.long || s == names.short {
			return RoundingMode(m), nil
		}
	}
	return TiesToEven, errors.Errorf("unknown rounding mode %q", s)
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m].long
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// Set implements flag.Value.
func (m *RoundingMode) Set(s string) error {
	mode, err := ParseRoundingMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// engineMode maps m to the engine's rounding-mode register value.
// An out-of-range mode is a programming error.
func (m RoundingMode) engineMode() uint8 {
	switch m {
	case TiesToEven:
		return engine.RoundNearEven
	case TowardZero:
		return engine.RoundMinMag
	case TowardNegative:
		return engine.RoundMin
	case TowardPositive:
		return engine.RoundMax
	case TiesToAway:
		return engine.RoundNearMaxMag
	case ToOdd:
		return engine.RoundOdd
	default:
		panic(fmt.Sprintf("softfloat: invalid rounding mode %d", uint8(m)))
	}
}
