// Command polytool fits, evaluates and interpolates polynomials over datasets
// stored as YAML, TOML, JSON or CSV.
//
// Usage:
//
//	polytool fit    -in data.yaml -deg 2 [-plot fit.png]
//	polytool eval   -coef "1,0,1" (-x "0,1,2" | -in data.toml)
//	polytool interp -in knots.csv -x "0.5,1.5" [-left v] [-right v] [-plot interp.svg]
//
// Environment (POLYTOOL_ prefix): LOG_LEVEL, LOG_DEV, WORKERS, OUTPUT_FORMAT,
// PLOT_WIDTH_CM, PLOT_HEIGHT_CM. Flags override the environment.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvpoly/internal/config"
	"github.com/katalvlaran/lvpoly/internal/logging"
)

// exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// command runs one subcommand with its own flag set.
type command func(app *app, args []string) error

var commands = map[string]command{
	"fit":    runFit,
	"eval":   runEval,
	"interp": runInterp,
}

// app carries the per-invocation dependencies shared by every subcommand.
type app struct {
	cfg    *config.Config
	log    *logging.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)

		return exitUsage
	}
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "polytool: unknown command %q\n", name)
		usage(stderr)

		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "polytool:", err)

		return exitError
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Level
	logCfg.Development = cfg.Development
	base, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintln(stderr, "polytool: logger:", err)

		return exitError
	}
	logger := base.Command(name)
	defer func() { _ = logger.Sync() }()

	a := &app{cfg: cfg, log: logger, stdout: stdout, stderr: stderr}
	if err = cmd(a, args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		logger.Error("command failed", zap.Error(err))
		fmt.Fprintln(stderr, "polytool:", err)

		return exitError
	}

	return exitOK
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintf(w, "usage: polytool <%s> [flags]\n", strings.Join(names, "|"))
}
