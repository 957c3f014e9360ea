package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cwbudde/ctfft"
	"github.com/cwbudde/ctfft/internal/bench"
	"github.com/cwbudde/ctfft/internal/config"
	"github.com/cwbudde/ctfft/internal/cpu"
	"github.com/cwbudde/ctfft/internal/logging"
	"github.com/cwbudde/ctfft/internal/reference"
	"github.com/cwbudde/ctfft/internal/signalgen"
	"github.com/cwbudde/ctfft/internal/spectrum"
	"github.com/cwbudde/ctfft/internal/verify"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88")).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

func (a *app) newReferenceCmd() *cobra.Command {
	var engine string

	cmd := &cobra.Command{
		Use:   "reference <size> <out_file>",
		Short: "write the normalized DFT of the two-tone signal from an independent engine",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := parseSize(args[0])
			if err != nil {
				return err
			}

			e, err := reference.ParseEngine(engine)
			if err != nil {
				return err
			}

			out := e.Transform(signalgen.TwoTone(n))
			if err := verify.WriteFile(args[1], out); err != nil {
				return err
			}

			a.log.Info("reference written", logging.Fields{"file": args[1], "engine": string(e), "n": n})

			return nil
		},
	}
	cmd.Flags().StringVar(&engine, "engine", string(reference.EngineGonum), "reference engine: naive, godsp, gonum")

	return cmd
}

func (a *app) newBenchCmd() *cobra.Command {
	var (
		sizes      []int
		strategies []string
		iters      int
		warmup     int
		seed       uint64
		wisdomFile string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark every strategy across sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bc := a.cfg.Bench
			flags := cmd.Flags()

			if flags.Changed("sizes") {
				bc.Sizes = sizes
			}

			if flags.Changed("strategies") {
				bc.Strategies = strategies
			}

			if flags.Changed("iters") {
				bc.Iterations = iters
			}

			if flags.Changed("warmup") {
				bc.Warmup = warmup
			}

			if flags.Changed("seed") {
				bc.Seed = seed
			}

			if flags.Changed("wisdom") {
				bc.WisdomFile = wisdomFile
			}

			opts, err := benchOptions(bc, a.cfg.GrainSize, a.log)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, titleStyle.Render("fftbench "+cpu.DetectFeatures().String()))
			fmt.Fprintf(a.stdout, "iters=%d warmup=%d\n", opts.Iterations, opts.Warmup)

			results, err := bench.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, renderResults(results))

			if bc.WisdomFile == "" {
				return nil
			}

			// Merge with what the file already holds so other sizes survive.
			if err := ctfft.ImportWisdom(bc.WisdomFile); err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			w := ctfft.DefaultWisdom()
			stored := bench.RecordWisdom(w, results, time.Now())

			if err := ctfft.ExportWisdomTo(bc.WisdomFile, w); err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "\nWisdom exported to: %s (%d updated, %d total)\n", bc.WisdomFile, stored, w.Len())

			return nil
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&sizes, "sizes", nil, "size exponents, e.g. 10,12,14")
	f.StringSliceVar(&strategies, "strategies", nil, "strategies to compare")
	f.IntVar(&iters, "iters", 0, "timed iterations per strategy")
	f.IntVar(&warmup, "warmup", 0, "warmup iterations per strategy")
	f.Uint64Var(&seed, "seed", 0, "random input seed")
	f.StringVar(&wisdomFile, "wisdom", "", "export the winners to this wisdom file")

	return cmd
}

func benchOptions(bc config.BenchConfig, grain int, log logging.Logger) (bench.Options, error) {
	opts := bench.Options{
		Iterations: bc.Iterations,
		Warmup:     bc.Warmup,
		Seed:       bc.Seed,
		GrainSize:  grain,
		Logger:     log,
	}

	var err error

	if opts.Sizes, err = bc.Lengths(); err != nil {
		return opts, err
	}

	if opts.Strategies, err = bc.ParsedStrategies(); err != nil {
		return opts, err
	}

	return opts, nil
}

func renderResults(results []bench.Result) string {
	best := make(map[int]ctfft.Strategy)
	for _, r := range bench.Best(results) {
		best[r.Size] = r.Strategy
	}

	rows := make([][]string, 0, len(results))
	bestRows := make([]bool, 0, len(results))

	for _, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(r.Size),
			r.Strategy.String(),
			fmt.Sprintf("%.1f", r.NsPerOp()),
			fmt.Sprintf("%.1f", r.StdDev),
			fmt.Sprintf("%.1f", r.Min),
			fmt.Sprintf("%.1f", r.Median),
			fmt.Sprintf("%.0f", r.CyclesPerOp),
		})
		bestRows = append(bestRows, best[r.Size] == r.Strategy)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("size", "strategy", "ns/op", "stddev", "min", "median", "cycles/op").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(bestRows) && bestRows[row]:
				return bestStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}

func (a *app) newSpectrumCmd() *cobra.Command {
	var width, height, peaks int

	cmd := &cobra.Command{
		Use:   "spectrum <size>",
		Short: "plot the magnitude spectrum of the two-tone signal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize(args[0])
			if err != nil {
				return err
			}

			plan, err := a.newPlan(n)
			if err != nil {
				return err
			}

			sig := signalgen.TwoTone(n)
			if err := plan.TransformContext(cmd.Context(), sig); err != nil {
				return err
			}

			caption := fmt.Sprintf("|X[k]|, n=%d, %s", n, plan.Strategy())
			fmt.Fprintln(a.stdout, spectrum.Plot(sig, width, height, caption))
			fmt.Fprintln(a.stdout)

			for _, p := range spectrum.Peaks(sig, peaks) {
				fmt.Fprintf(a.stdout, "Bin %6d: %.6f\n", p.Bin, p.Magnitude)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&width, "width", 80, "plot width")
	f.IntVar(&height, "height", 15, "plot height")
	f.IntVar(&peaks, "peaks", 3, "number of strongest bins to list")

	return cmd
}

func (a *app) newCPUCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "show detected CPU features and the cycle counter frequency",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			f := cpu.DetectFeatures()

			flags := f.Flags()
			if len(flags) == 0 {
				flags = []string{"none"}
			}

			fmt.Fprintf(a.stdout, "architecture: %s\n", f.Architecture)
			fmt.Fprintf(a.stdout, "cpus:         %d\n", f.NumCPU)
			fmt.Fprintf(a.stdout, "features:     %s\n", strings.Join(flags, " "))
			fmt.Fprintf(a.stdout, "counter:      %.3f MHz\n", float64(cpu.CounterFrequencyHz())/1e6)
			fmt.Fprintf(a.stdout, "strategies:   %s\n", strings.Join(strategyNames(), " "))

			return nil
		},
	}
}

func strategyNames() []string {
	names := make([]string, 0, len(ctfft.Strategies()))
	for _, s := range ctfft.Strategies() {
		names = append(names, s.String())
	}

	return names
}
