// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"bufio"
	"context"
	"encoding"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	sf "github.com/avdva/softfloat"
)

// config holds the settings shared by all expressions of one run.
type config struct {
	format   string
	mode     sf.RoundingMode
	exact    bool
	parallel int
}

type evalFunc func(op string, args []string, rm sf.RoundingMode, exact bool) (string, error)

var evaluators = map[string]evalFunc{
	"f16":       evaluate[sf.F16],
	"binary16":  evaluate[sf.F16],
	"f32":       evaluate[sf.F32],
	"binary32":  evaluate[sf.F32],
	"f64":       evaluate[sf.F64],
	"binary64":  evaluate[sf.F64],
	"f128":      evaluate[sf.F128],
	"binary128": evaluate[sf.F128],
}

// readExpressions returns the non-empty lines of r that are not comments.
func readExpressions(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, errors.Wrap(sc.Err(), "reading expressions")
}

// run evaluates every expression and writes the results to w in input order.
// A failed expression does not stop the others; all failures are returned together.
func run(ctx context.Context, w io.Writer, exprs []string, cfg config) error {
	eval, found := evaluators[strings.ToLower(cfg.format)]
	if !found {
		return errors.Errorf("unknown format %q", cfg.format)
	}
	results := make([]string, len(exprs))
	lineErrs := make([]error, len(exprs))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.parallel > 0 {
		g.SetLimit(cfg.parallel)
	}
	var mu sync.Mutex
	done := 0
	for i, expr := range exprs {
		i, expr := i, expr
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fields := strings.Fields(expr)
			res, err := eval(strings.ToLower(fields[0]), fields[1:], cfg.mode, cfg.exact)
			if err != nil {
				lineErrs[i] = errors.Wrapf(err, "expression %d %q", i+1, expr)
			} else {
				results[i] = res
			}
			mu.Lock()
			done++
			klog.V(2).Infof("%d/%d: %s -> %s", done, len(exprs), expr, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	var result *multierror.Error
	for i := range exprs {
		if lineErrs[i] != nil {
			result = multierror.Append(result, lineErrs[i])
			continue
		}
		if _, err := fmt.Fprintln(w, results[i]); err != nil {
			return errors.Wrap(err, "writing result")
		}
	}
	return result.ErrorOrNil()
}

func parseOperands[T sf.Float[T]](args []string, n int, rm sf.RoundingMode) ([]T, error) {
	if len(args) != n {
		return nil, errors.Errorf("want %d operands, got %d", n, len(args))
	}
	ops := make([]T, n)
	for i, arg := range args {
		v, flags, err := sf.Parse[T](arg, rm)
		if err != nil {
			return nil, err
		}
		if flags != 0 {
			klog.V(1).Infof("operand %q rounded to %s: %v", arg, v, flags)
		}
		ops[i] = v
	}
	return ops, nil
}

type value interface {
	fmt.Stringer
	encoding.TextMarshaler
}

// formatValue prints a value as "<decimal> <bits> <flags>".
func formatValue(v value, flags sf.ExceptionFlags) string {
	bits, _ := v.MarshalText()
	return fmt.Sprintf("%s %s %v", v, bits, flags)
}

func formatBool(v bool, flags sf.ExceptionFlags) string {
	return fmt.Sprintf("%t %v", v, flags)
}

func formatInt(v any, flags sf.ExceptionFlags) string {
	return fmt.Sprintf("%d %v", v, flags)
}

// arities maps operation names to their number of operands.
var arities = map[string]int{
	"add": 2, "sub": 2, "mul": 2, "div": 2, "rem": 2, "fma": 3,
	"sqrt": 1, "roundint": 1, "neg": 1, "abs": 1,
	"eq": 2, "lt": 2, "le": 2, "ltq": 2, "leq": 2, "eqs": 2, "cmp": 2,
	"toi32": 1, "toi64": 1, "tou32": 1, "tou64": 1,
	"tof16": 1, "tof32": 1, "tof64": 1, "tof128": 1,
	"classify": 1, "decimal": 1,
}

// evaluate computes one expression, an operation name followed by its
// operands, in the format T.
func evaluate[T sf.Float[T]](op string, args []string, rm sf.RoundingMode, exact bool) (string, error) {
	arity, found := arities[op]
	if !found {
		return "", errors.Errorf("unknown operation %q", op)
	}
	ops, err := parseOperands[T](args, arity, rm)
	if err != nil {
		return "", err
	}
	x := ops[0]
	switch op {
	case "add":
		return formatValue(x.Add(ops[1], rm)), nil
	case "sub":
		return formatValue(x.Sub(ops[1], rm)), nil
	case "mul":
		return formatValue(x.Mul(ops[1], rm)), nil
	case "div":
		return formatValue(x.Div(ops[1], rm)), nil
	case "rem":
		return formatValue(x.Rem(ops[1], rm)), nil
	case "fma":
		return formatValue(x.FMA(ops[1], ops[2], rm)), nil
	case "sqrt":
		return formatValue(x.Sqrt(rm)), nil
	case "roundint":
		if exact {
			return formatValue(x.RoundToIntegralExact(rm)), nil
		}
		return formatValue(x.RoundToIntegral(rm)), nil
	case "neg":
		return formatValue(x.Neg(), 0), nil
	case "abs":
		return formatValue(x.Abs(), 0), nil
	case "eq":
		return formatBool(x.Eq(ops[1])), nil
	case "lt":
		return formatBool(x.Lt(ops[1])), nil
	case "le":
		return formatBool(x.Le(ops[1])), nil
	case "ltq":
		return formatBool(x.LtQuiet(ops[1])), nil
	case "leq":
		return formatBool(x.LeQuiet(ops[1])), nil
	case "eqs":
		return formatBool(x.EqSignaling(ops[1])), nil
	case "cmp":
		cmp, ordered, flags := sf.Compare(x, ops[1])
		if !ordered {
			return fmt.Sprintf("unordered %v", flags), nil
		}
		return fmt.Sprintf("%d %v", cmp, flags), nil
	case "toi32":
		return formatInt(x.ToInt32(rm, exact)), nil
	case "toi64":
		return formatInt(x.ToInt64(rm, exact)), nil
	case "tou32":
		return formatInt(x.ToUint32(rm, exact)), nil
	case "tou64":
		return formatInt(x.ToUint64(rm, exact)), nil
	case "tof16":
		return formatValue(x.ToF16(rm)), nil
	case "tof32":
		return formatValue(x.ToF32(rm)), nil
	case "tof64":
		return formatValue(x.ToF64(rm)), nil
	case "tof128":
		return formatValue(x.ToF128(rm)), nil
	case "classify":
		return x.Classify().String(), nil
	case "decimal":
		d, err := x.Decimal()
		if err != nil {
			return "", err
		}
		return d.String(), nil
	}
	panic("unreachable")
}
