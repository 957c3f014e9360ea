// Command fftbench times, verifies and benchmarks the ctfft transforms.
//
//	fftbench <size> [verify_file]
//
// transforms a 2^size two-tone signal and prints the execution time, or
// compares the result against a reference file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/ctfft"
	"github.com/cwbudde/ctfft/internal/bench"
	"github.com/cwbudde/ctfft/internal/config"
	"github.com/cwbudde/ctfft/internal/logging"
	m "github.com/cwbudde/ctfft/internal/math"
	"github.com/cwbudde/ctfft/internal/signalgen"
	"github.com/cwbudde/ctfft/internal/verify"
)

// errReported marks failures whose message was already written to stderr.
var errReported = errors.New("fftbench: failure reported")

type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	strategy   string
	logLevel   string
	tolerance  float64

	cfg *config.Config
	log logging.Logger
}

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}

		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:               "fftbench <size> [verify_file]",
		Short:             "radix-2 FFT timing and verification harness",
		Args:              cobra.RangeArgs(1, 2),
		PersistentPreRunE: a.setup,
		RunE:              a.runTransform,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&a.strategy, "strategy", "", "transform strategy: auto, recursive, scratch, iterative, parallel, table")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.Float64Var(&a.tolerance, "tolerance", 0, "verification tolerance")

	rootCmd.AddCommand(
		a.newReferenceCmd(),
		a.newBenchCmd(),
		a.newSpectrumCmd(),
		a.newCPUCmd(),
	)

	return rootCmd
}

// setup resolves the configuration: defaults, then the YAML file, then the
// environment, then flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultConfig()

	if a.configFile != "" {
		loaded, err := config.Load(a.configFile)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if err := config.LoadEnv(cfg); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = a.strategy
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	if flags.Changed("tolerance") {
		cfg.Tolerance = a.tolerance
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.NewLogger(a.stderr, a.stderr, logging.IsTerminal(a.stderr))
	logger.SetLevel(level)
	logging.SetGlobalLogger(logger)

	a.cfg = cfg
	a.log = logger

	if cfg.Bench.WisdomFile != "" {
		if err := ctfft.ImportWisdom(cfg.Bench.WisdomFile); err != nil {
			a.log.Warn("wisdom not loaded", logging.Fields{"file": cfg.Bench.WisdomFile, "error": err.Error()})
		}
	}

	return nil
}

// parseSize converts the size argument, an exponent in 0..30, to a length.
func parseSize(arg string) (int, error) {
	exp, err := strconv.Atoi(arg)
	if err != nil || exp < 0 || exp > m.MaxExponent {
		return 0, fmt.Errorf("invalid <size> %q; must be an integer between 0 and %d", arg, m.MaxExponent)
	}

	return 1 << exp, nil
}

func (a *app) newPlan(n int) (*ctfft.Plan, error) {
	strategy, err := a.cfg.ParsedStrategy()
	if err != nil {
		return nil, err
	}

	return ctfft.NewPlan(n, ctfft.WithStrategy(strategy), ctfft.WithGrainSize(a.cfg.GrainSize))
}

func (a *app) runTransform(cmd *cobra.Command, args []string) error {
	n, err := parseSize(args[0])
	if err != nil {
		return err
	}

	plan, err := a.newPlan(n)
	if err != nil {
		return err
	}

	sig := signalgen.TwoTone(n)

	var runErr error

	elapsed := bench.Measure(func() {
		runErr = plan.TransformContext(cmd.Context(), sig)
	})
	if runErr != nil {
		return runErr
	}

	a.log.Debug("transform finished", logging.Fields{
		"n":        n,
		"strategy": plan.Strategy().String(),
		"ns":       elapsed.Nanoseconds(),
	})

	if len(args) < 2 {
		fmt.Fprintf(a.stdout, "execution time: %.3f ms\n", float64(elapsed.Nanoseconds())/1e6)
		return nil
	}

	return a.verify(sig, args[1])
}

func (a *app) verify(sig ctfft.Signal, path string) error {
	want, err := verify.ReadFile(path)
	if err != nil {
		return err
	}

	err = verify.Compare(sig, want, a.cfg.Tolerance)

	var mismatch *verify.MismatchError
	if errors.As(err, &mismatch) {
		fmt.Fprintf(a.stderr, "Verification failed at index %d\n", mismatch.Index)
		fmt.Fprintf(a.stderr, "Expected: %s\n", verify.FormatComplex(mismatch.Expected))
		fmt.Fprintf(a.stderr, "Got: %s\n", verify.FormatComplex(mismatch.Got))

		return errReported
	}

	if err != nil {
		return err
	}

	a.log.Info("verification passed", logging.Fields{"values": len(want)})

	return nil
}
