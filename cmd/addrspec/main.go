// Command addrspec validates email addresses and regenerates the
// automaton's transition tables.
//
// Usage:
//
//	addrspec [flags] [address ...]
//
// With no addresses on the command line, addrspec validates stdin one
// line at a time. The exit status is 1 if any input is invalid and 2 on
// usage or configuration errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/KromDaniel/addrspec/internal/compiler"
	"github.com/KromDaniel/addrspec/internal/fsm"
	"github.com/KromDaniel/addrspec/internal/logging"
	"github.com/KromDaniel/addrspec/stream"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	boot := logging.BootstrapLogger(stderr)

	cfg, err := loadConfig(args, stderr, boot)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "addrspec: %v\n", err)
		return exitUsage
	}

	logger, err := logging.BuildLogger(cfg.LogLevel, cfg.Env, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "addrspec: failed to build logger: %v\n", err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()

	switch {
	case cfg.Generate != "":
		return generate(cfg, logger, stderr)
	case cfg.Analyze:
		return analyze(cfg, stdout, stderr)
	}

	var invalid int
	if len(cfg.Inputs) > 0 {
		invalid, err = validateArgs(ctx, cfg, stdout)
	} else {
		invalid, err = validateStdin(ctx, cfg, stdin, stdout)
	}
	if err != nil {
		logger.Error("validation failed", zap.Error(err))
		fmt.Fprintf(stderr, "addrspec: %v\n", err)
		return exitInvalid
	}

	logger.Info("validation finished", zap.Int("invalid", invalid))
	if invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

func generate(cfg *Config, logger *zap.Logger, stderr io.Writer) int {
	genLogger := logger
	if cfg.Verbose && !logger.Core().Enabled(zap.InfoLevel) {
		// Verbose table construction logs at info.
		l, err := logging.BuildLogger("info", cfg.Env, stderr)
		if err == nil {
			genLogger = l
		}
	}

	c := compiler.New(compiler.Config{
		Package:    cfg.Package,
		OutputFile: cfg.Generate,
		Automaton:  fsm.Grammar{},
		Verbose:    cfg.Verbose,
		Logger:     genLogger,
	})
	if err := c.Generate(); err != nil {
		fmt.Fprintf(stderr, "addrspec: %v\n", err)
		return exitInvalid
	}
	logger.Info("generated transition tables", zap.String("file", cfg.Generate))
	return exitOK
}

func analyze(cfg *Config, stdout, stderr io.Writer) int {
	a, err := compiler.Analyze(fsm.Table{})
	if err == nil {
		err = writeAnalysis(stdout, cfg.Format, a)
	}
	if err != nil {
		fmt.Fprintf(stderr, "addrspec: %v\n", err)
		return exitInvalid
	}
	return exitOK
}

// newOutput returns the writer for cfg: the valid input lines only, or
// every result in cfg.Format.
func newOutput(cfg *Config, stdout io.Writer) resultWriter {
	if cfg.OnlyValid {
		return &validLineWriter{w: stdout}
	}
	return newResultWriter(cfg.Format, stdout)
}

// validateArgs validates the command line inputs in parallel and prints
// the results in input order.
func validateArgs(ctx context.Context, cfg *Config, stdout io.Writer) (int, error) {
	results, err := stream.ValidateAll(ctx, cfg.Inputs, cfg.Workers)
	if err != nil {
		return 0, err
	}

	invalid := 0
	out := newOutput(cfg, stdout)
	for _, r := range results {
		if !r.Valid() {
			invalid++
		}
		if err := out.Write(r); err != nil {
			return invalid, err
		}
	}
	return invalid, out.Close()
}

// validateStdin validates stdin one line at a time, stopping between
// lines once ctx is done.
func validateStdin(ctx context.Context, cfg *Config, stdin io.Reader, stdout io.Writer) (int, error) {
	invalid := 0

	out := newOutput(cfg, stdout)
	var werr error
	err := stream.ValidateReader(stdin, stream.Config{MaxLineLength: cfg.MaxLine}, func(r stream.Result) bool {
		if ctx.Err() != nil {
			return false
		}
		if !r.Valid() {
			invalid++
		}
		werr = out.Write(r)
		return werr == nil
	})
	if err == nil {
		err = werr
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return invalid, err
	}
	return invalid, out.Close()
}
