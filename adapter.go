// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"sync"

	"github.com/avdva/softfloat/internal/engine"
)

// engineMu guards the engine's rounding-mode and flags registers.
// There is one lock for every format: the registers are not partitioned.
var engineMu sync.Mutex

// call runs op as one engine operation under rm and returns its result with
// exactly the exceptions op raised. op must invoke a single engine entry point.
func call[R any](rm RoundingMode, op func() R) (R, ExceptionFlags) {
	mode := rm.engineMode()
	engineMu.Lock()
	defer engineMu.Unlock()
	engine.SetRoundingMode(mode)
	engine.SetExceptionFlags(0)
	r := op()
	return r, flagsFromEngine(engine.ExceptionFlags())
}

// predicate runs a comparison; comparisons do not round, so the mode is fixed.
func predicate(op func() bool) (bool, ExceptionFlags) {
	return call(TiesToEven, op)
}
