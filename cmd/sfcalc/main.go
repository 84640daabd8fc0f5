// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command sfcalc evaluates IEEE 754 expressions with the softfloat package
// and prints each result with its bit pattern and the raised exceptions.
//
// An expression is an operation followed by its operands, for example
//
//	sfcalc -format f32 -mode rup add 1 0x30800000
//	1.0000001 0x3f800001 inexact
//
// Operands are decimal numbers, inf, nan, or bit patterns written as 0x....
// With -f, expressions are read one per line from a file ("-" for stdin)
// and evaluated in parallel; results keep the input order.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"runtime"
	"strings"

	"k8s.io/klog/v2"

	sf "github.com/avdva/softfloat"
)

var (
	flagFormat   = flag.String("format", "f32", "Floating-point format: f16, f32, f64 or f128.")
	flagExact    = flag.Bool("exact", false, "Raise inexact when roundint or integer conversions round.")
	flagFile     = flag.String("f", "", "Read expressions from this file, one per line. '-' reads stdin.")
	flagParallel = flag.Int("parallel", runtime.GOMAXPROCS(0), "Maximum number of expressions evaluated at once.")
	flagMode     = sf.TiesToEven
)

func main() {
	flag.Var(&flagMode, "mode", "Rounding mode: rne, rtz, rdn, rup, rmm, rod or a long name like ties-to-even.")
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	exprs := check1(expressions())
	if len(exprs) == 0 {
		klog.Exitf("no expressions; pass one as arguments or use -f")
	}
	cfg := config{
		format:   *flagFormat,
		mode:     flagMode,
		exact:    *flagExact,
		parallel: *flagParallel,
	}
	klog.V(1).Infof("evaluating %d expressions as %s, mode %v", len(exprs), cfg.format, cfg.mode)
	check(run(context.Background(), os.Stdout, exprs, cfg))
}

func expressions() ([]string, error) {
	if *flagFile == "" {
		if flag.NArg() == 0 {
			return nil, nil
		}
		return []string{strings.Join(flag.Args(), " ")}, nil
	}
	var r io.Reader = os.Stdin
	if *flagFile != "-" {
		f, err := os.Open(*flagFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return readExpressions(r)
}

// check reports and exits on error.
func check(err error) {
	if err == nil {
		return
	}
	klog.Exitf("%+v", err)
}

// check1 reports and exits on error. Otherwise returns the value passed.
func check1[T any](v T, err error) T {
	check(err)
	return v
}
