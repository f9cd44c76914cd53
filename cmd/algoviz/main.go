package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/sim"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/tui"
	"github.com/san-kum/algoviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool
	logFile    string
	themeName  string

	numbers string
	preset  string
	delayMS int

	jsonOut bool
	plot    bool
	outFile string

	cfg       *config.Config
	logger    *log.Logger
	closeLogs func() error
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "algoviz",
		Short:         "step-by-step sorting and classification visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLogs != nil {
				return closeLogs()
			}
			return nil
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal app",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "animate one algorithm in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	runCmd.Flags().StringVar(&numbers, "input", input.Default, "comma-separated integers")
	runCmd.Flags().StringVar(&preset, "preset", "", "use a named input preset")
	runCmd.Flags().IntVar(&delayMS, "delay", config.DefaultDelayMS, "pause after each step (ms)")

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "record every step without pacing",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&numbers, "input", input.Default, "comma-separated integers")
	traceCmd.Flags().StringVar(&preset, "preset", "", "use a named input preset")
	traceCmd.Flags().BoolVar(&jsonOut, "json", false, "print the trace as JSON")
	traceCmd.Flags().BoolVar(&plot, "plot", false, "plot disorder per step")
	traceCmd.Flags().StringVar(&outFile, "out", "", "write the JSON trace to a file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list input presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVALUES")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\n", name, p)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "algoviz.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, runCmd, traceCmd, listCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// flagValues are the command-line values that can override the config file.
type flagValues struct {
	configFile string
	theme      string
	preset     string
	input      string
	delayMS    int
}

// resolveConfig builds the effective config: defaults, then the config file,
// then --preset, then the flags the user actually set. changed reports
// whether a flag was given explicitly.
func resolveConfig(v flagValues, changed func(name string) bool) (*config.Config, error) {
	c := config.DefaultConfig()
	if v.configFile != "" {
		loaded, err := config.Load(v.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		c = loaded
	}

	if changed("theme") {
		c.Theme = v.theme
	}
	if v.preset != "" {
		p, ok := config.GetPreset(v.preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", v.preset, config.ListPresets())
		}
		c.Input = p
	}
	if changed("input") {
		c.Input = v.input
	}
	if changed("delay") {
		if v.delayMS < 0 {
			return nil, fmt.Errorf("delay must not be negative, got %d", v.delayMS)
		}
		c.DelayMS = v.delayMS
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// setup resolves the config and builds the logger.
func setup(cmd *cobra.Command) error {
	resolved, err := resolveConfig(flagValues{
		configFile: configFile,
		theme:      themeName,
		preset:     preset,
		input:      numbers,
		delayMS:    delayMS,
	}, cmd.Flags().Changed)
	if err != nil {
		return err
	}
	cfg = resolved

	fullScreen := cmd.Name() == "algoviz" || cmd.Name() == "tui"
	l, closer, err := openLogger(logFile, cfg.LogLevel, verbose, fullScreen)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger, closeLogs = l, closer
	return nil
}

func algorithmArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Algorithm
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.RunInteractive(catalog.New(), cfg.Input, cfg.Delay(), viz.GetTheme(cfg.Theme), logger)
}

func runLive(cmd *cobra.Command, args []string) error {
	cat := catalog.New()
	entry, err := cat.Get(algorithmArg(args))
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(cat.IDs(), ", "))
	}
	values, err := cfg.Values()
	if err != nil {
		return err
	}

	renderer := tui.NewLiveRenderer(cmd.OutOrStdout(), entry.Title, viz.GetTheme(cfg.Theme))
	sched := sim.New(cat, renderer, sim.WithDelay(cfg.Delay()), sim.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer.Start()
	defer renderer.Stop()

	h, err := sched.Start(sim.RunRequest{Algorithm: entry.ID, Values: values})
	if err != nil {
		return err
	}

	select {
	case <-h.Done():
	case <-ctx.Done():
		h.Stop()
	}
	o := h.Wait()

	for _, name := range sortedKeys(o.Metrics) {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %.0f\n", name, o.Metrics[name])
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cat := catalog.New()
	entry, err := cat.Get(algorithmArg(args))
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(cat.IDs(), ", "))
	}
	values, err := cfg.Values()
	if err != nil {
		return err
	}

	start := time.Now()
	frames, o, err := sim.Trace(cat, sim.RunRequest{Algorithm: entry.ID, Values: values}, sim.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("trace recorded", "algorithm", entry.ID, "frames", len(frames), "elapsed", time.Since(start).Round(time.Microsecond))

	doc := export.NewTrace(entry.ID, values, frames, o)
	if outFile != "" {
		if err := export.ExportJSON(outFile, doc); err != nil {
			return err
		}
		logger.Info("trace written", "path", outFile)
	}
	if jsonOut {
		return export.WriteJSON(cmd.OutOrStdout(), doc)
	}

	out := cmd.OutOrStdout()
	if err := printFrames(out, frames); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s: %s after %d steps\n", entry.Title, o.State, o.Frames)
	fmt.Fprintf(out, "final: %s\n", input.Format(o.Values))
	for _, name := range sortedKeys(o.Metrics) {
		fmt.Fprintf(out, "  %s: %.0f\n", name, o.Metrics[name])
	}

	if plot {
		series := metrics.Series(frames)
		if len(series) == 0 {
			fmt.Fprintln(out, "\nnothing to plot")
			return nil
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("inversions per step"),
		))
	}
	return nil
}

func printFrames(out io.Writer, frames []step.Frame) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tVALUES\tHIGHLIGHT\tCOLORS")
	for i, f := range frames {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, input.Format(f.Values), input.Format(f.Highlighted), formatColors(f.Colors))
	}
	return w.Flush()
}

func formatColors(colors map[int]step.Color) string {
	if len(colors) == 0 {
		return "-"
	}
	idx := make([]int, 0, len(colors))
	for i := range colors {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	parts := make([]string, len(idx))
	for n, i := range idx {
		parts[n] = fmt.Sprintf("%d=%s", i, colors[i])
	}
	return strings.Join(parts, " ")
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tKIND\tDESCRIPTION")
	for _, e := range catalog.New().List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Title, e.Kind, e.Description)
	}
	return w.Flush()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
