package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/armchain/internal/automation"
	"github.com/san-kum/armchain/internal/chain"
	"github.com/san-kum/armchain/internal/config"
	"github.com/san-kum/armchain/internal/export"
	"github.com/san-kum/armchain/internal/gui"
	"github.com/san-kum/armchain/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	preset     string
	seed       int64
	width      int
	height     int
	fps        int
	themeName  string
	// Headless runs
	traceSegments int
	traceFrames   int
	traceDt       float64
	plot          bool
	snapSegments  int
	snapFrames    int
	snapDt        float64
	outFile       string
)

// main runs the window frontend when no subcommand is given. It exits with
// status 1 if a command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "armchain",
		Short:        "multi-arm pendulum",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "window width")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "window height")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the chain in a window",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the chain in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&themeName, "theme", viz.Themes[0].Name,
		fmt.Sprintf("color theme (%s)", strings.Join(viz.ThemeNames(), ", ")))

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run headless and print the tail trajectory",
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&traceSegments, "segments", 3, "segments to append")
	traceCmd.Flags().IntVar(&traceFrames, "frames", 120, "frames to simulate")
	traceCmd.Flags().Float64Var(&traceDt, "dt", 1.0/60, "frame time")
	traceCmd.Flags().BoolVar(&plot, "plot", false, "plot reach instead of printing a table")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame as SVG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapSegments, "segments", 5, "segments to append")
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", 60, "frames to simulate before rendering")
	snapshotCmd.Flags().Float64Var(&snapDt, "dt", 1.0/60, "frame time")
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, p := range config.ListPresets() {
				fmt.Fprintf(out, "  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, traceCmd, snapshotCmd, scenarioCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig applies preset, then config file, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if _, err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("fps") {
		cfg.Window.FPS = fps
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newChain(cmd *cobra.Command) (*config.Config, *chain.Chain, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	c, err := cfg.NewChain(chain.NewSource(cfg.Seed))
	if err != nil {
		return nil, nil, err
	}
	return cfg, c, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return gui.Run(cfg, chain.NewSource(cfg.Seed))
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !slices.Contains(viz.ThemeNames(), themeName) {
		return fmt.Errorf("unknown theme: %s (available: %v)", themeName, viz.ThemeNames())
	}
	cfg, c, err := newChain(cmd)
	if err != nil {
		return err
	}
	return viz.Run(c, float64(cfg.Window.Width), float64(cfg.Window.Height), cfg.Window.FPS, themeName)
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, c, err := newChain(cmd)
	if err != nil {
		return err
	}
	for i := 0; i < traceSegments; i++ {
		c.Append()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(cmd.ErrOrStderr(), "tracing %d segments for %d frames (seed %d)\n", traceSegments, traceFrames, cfg.Seed)

	reach := make([]float64, 0, traceFrames)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if !plot {
		fmt.Fprintln(w, "FRAME\tTIME\tTAIL_X\tTAIL_Y\tREACH")
	}
	t := 0.0
	for f := 0; f < traceFrames; f++ {
		c.Update(traceDt)
		t += traceDt
		reach = append(reach, c.Reach())
		if !plot {
			tail := c.Tail().Position
			fmt.Fprintf(w, "%d\t%.3f\t%.2f\t%.2f\t%.2f\n", f, t, tail.X, tail.Y, c.Reach())
		}
	}

	if plot {
		if len(reach) == 0 {
			return fmt.Errorf("no frames to plot")
		}
		graph := asciigraph.Plot(reach,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("reach (root to tail)"),
		)
		fmt.Fprintln(out, graph)
		return nil
	}
	return w.Flush()
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, c, err := newChain(cmd)
	if err != nil {
		return err
	}
	for i := 0; i < snapSegments; i++ {
		c.Append()
	}
	for f := 0; f < snapFrames; f++ {
		c.Update(snapDt)
	}

	style := export.DefaultStyle()
	if style.Link, err = cfg.LinkColor(); err != nil {
		return err
	}
	if style.Background, err = cfg.BackgroundColor(); err != nil {
		return err
	}
	svg := export.ChainToSVG(c.RenderData(), cfg.Window.Width, cfg.Window.Height, style)

	if outFile == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), svg)
		return err
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outFile)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if sc.Seed != 0 && !cmd.Flags().Changed("seed") {
		cfg.Seed = sc.Seed
	}
	c, err := cfg.NewChain(chain.NewSource(cfg.Seed))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "running scenario %s (%d steps)...\n", sc.Name, len(sc.Steps))
	start := time.Now()
	cps, runErr := automation.RunScenario(context.Background(), sc, c)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tACTION\tSEGMENTS\tREACH\tTIME")
	for _, cp := range cps {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%.3fs\n", cp.Step, cp.Action, cp.Len, cp.Reach, cp.Time)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	fmt.Fprintf(out, "completed in %v\n", time.Since(start))
	return nil
}
