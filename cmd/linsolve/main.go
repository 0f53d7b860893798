// SPDX-License-Identifier: MIT

// Command linsolve solves a linear system read from a YAML document and
// prints the classified solution as YAML.
//
//	linsolve -file system.yaml
//	linsolve -arith float64 < system.yaml
//
// Settings come from LINSOLVE_* environment variables; the document's own
// arithmetic, precision and tolerance override them, and -arith overrides
// both.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvalg/arith"
	"github.com/katalvlaran/lvalg/internal/config"
	"github.com/katalvlaran/lvalg/internal/logging"
	"github.com/katalvlaran/lvalg/internal/sysfile"
	"github.com/katalvlaran/lvalg/linear"
	"github.com/katalvlaran/lvalg/matrix"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "linsolve:", err)
		os.Exit(1)
	}
}

// run is main without the process exit.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("linsolve", flag.ContinueOnError)
	arithName := fs.String("arith", "", "arithmetic: float64, bigfloat, bigint, rational or complex")
	file := fs.String("file", "-", "YAML system document, - for stdin")
	if err = fs.Parse(args); err != nil {
		return err
	}

	data, err := readInput(*file, stdin)
	if err != nil {
		return err
	}
	doc, err := sysfile.Decode(data)
	if err != nil {
		return err
	}

	if doc.Arithmetic != "" {
		cfg.Arithmetic = doc.Arithmetic
	}
	if doc.Precision > 0 {
		cfg.Precision = doc.Precision
	}
	if doc.Tolerance != nil {
		cfg.Tolerance = *doc.Tolerance
	}
	if *arithName != "" {
		cfg.Arithmetic = *arithName
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("solving",
		zap.String("source", *file),
		zap.String("arithmetic", cfg.Arithmetic),
	)
	res, err := solveWith(cfg, doc, log)
	if err != nil {
		log.Error("solve failed", zap.Error(err))
		return err
	}
	log.Info("solved", zap.String("kind", res.Kind))

	out, err := sysfile.Encode(res)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

// readInput reads the named file, or stdin for "-".
func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// solveWith dispatches on the configured arithmetic. Integers are lifted to
// rationals so that elimination stays exact.
func solveWith(cfg *config.Config, doc *sysfile.Document, log *zap.Logger) (sysfile.Result, error) {
	switch cfg.Arithmetic {
	case config.ArithFloat64:
		return solve[float64](doc, arith.NewFloat64(arith.WithTolerance(cfg.Tolerance)), log)
	case config.ArithBigFloat:
		return solve[*big.Float](doc, arith.NewBigFloat(cfg.Precision), log)
	case config.ArithComplex:
		return solve[complex128](doc, arith.NewComplex(arith.WithTolerance(cfg.Tolerance)), log)
	case config.ArithBigInt:
		return solveLifted(doc, arith.NewIntToRational(), log)
	default:
		return solve[*big.Rat](doc, arith.NewRational(), log)
	}
}

func solve[T any](doc *sysfile.Document, a arith.Arithmetic[T], log *zap.Logger) (sysfile.Result, error) {
	system, err := sysfile.System(doc, a)
	if err != nil {
		return sysfile.Result{}, err
	}
	return solveSystem(system, a, log)
}

func solveSystem[T any](system *linear.System[T], a arith.Arithmetic[T], log *zap.Logger) (sysfile.Result, error) {
	sol, err := linear.Solve(system, linear.WithLogger(log))
	if err != nil {
		return sysfile.Result{}, err
	}
	return sysfile.NewResult(sol, a), nil
}

func solveLifted[T, R any](doc *sysfile.Document, ra arith.ResultArithmetic[T, R], log *zap.Logger) (sysfile.Result, error) {
	system, err := sysfile.System(doc, ra.Input())
	if err != nil {
		return sysfile.Result{}, err
	}
	lifted, err := matrix.Lift(system.Augmented(), ra)
	if err != nil {
		return sysfile.Result{}, err
	}
	exact, err := linear.OfAugmented(lifted)
	if err != nil {
		return sysfile.Result{}, err
	}
	return solveSystem(exact, ra.Output(), log.With(zap.String("lifted", "rational")))
}
