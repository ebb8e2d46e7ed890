package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/glyphrain/internal/config"
	"github.com/san-kum/glyphrain/internal/export"
	"github.com/san-kum/glyphrain/internal/gui"
	"github.com/san-kum/glyphrain/internal/logging"
	"github.com/san-kum/glyphrain/internal/rain"
	"github.com/san-kum/glyphrain/internal/trace"
	"github.com/san-kum/glyphrain/internal/tui"
	"github.com/san-kum/glyphrain/internal/viz"
)

var (
	// Config file and environment overlays
	configFile string
	overlays   []string
	preset     string
	// Overrides
	theme    string
	fps      int
	seed     int64
	logFile  string
	logLevel string
	// Headless runs
	width   int
	height  int
	frames  int
	format  string
	outPath string
	gifPath string
	svgPath string
	plotSVG string
)

// main runs the root command, which shows the rain in the terminal when no
// subcommand is given.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd registers every command and flag. Flag defaults are reset on
// each call.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "glyphrain",
		Short:         "falling-glyph background for the landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringSliceVar(&overlays, "overlay", nil, "config overlays applied in order (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&theme, "theme", "", "color theme")
	pf.IntVar(&fps, "fps", 0, "frames per second")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&logLevel, "log-level", "", "log level")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "show the rain in a desktop window",
		RunE:  runWindow,
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run headless and export column resets",
		RunE:  runTrace,
	}
	addHeadlessFlags(traceCmd)
	traceCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json)")
	traceCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "plot resets per frame",
		RunE:  runStats,
	}
	addHeadlessFlags(statsCmd)
	statsCmd.Flags().StringVar(&plotSVG, "svg", "", "also write the plot as svg")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "render headless into an animated gif",
		RunE:  runRecord,
	}
	addHeadlessFlags(recordCmd)
	recordCmd.Flags().StringVarP(&gifPath, "out", "o", "rain.gif", "output gif")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render headless and save the last frame as svg",
		RunE:  runSnapshot,
	}
	addHeadlessFlags(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&svgPath, "out", "o", "rain.svg", "output svg")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  printConfig,
	}

	rootCmd.AddCommand(windowCmd, traceCmd, statsCmd, recordCmd, snapshotCmd, presetsCmd, themesCmd, configCmd)
	return rootCmd
}

func addHeadlessFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", 800, "viewport width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "viewport height in pixels")
	cmd.Flags().IntVar(&frames, "frames", 0, "frames to run (0 = config)")
}

// loadConfig resolves defaults, file, overlays, preset and flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile, overlays...)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" && !config.ApplyPreset(cfg, preset) {
		return nil, errors.Errorf("unknown preset: %s", preset)
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		if _, ok := viz.LookupTheme(theme); !ok {
			return nil, errors.Errorf("unknown theme: %s", theme)
		}
		cfg.Theme = theme
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("frames") {
		cfg.Record.Frames = frames
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the config and the logger shared by every command.
func setup(cmd *cobra.Command) (*config.Config, *log.Entry, io.Closer, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}
	entry := logger.WithField("cmd", cmd.Name())
	if _, ok := viz.LookupTheme(cfg.Theme); !ok {
		entry.WithField("theme", cfg.Theme).Warn("unknown theme, using default")
	}
	entry.WithFields(log.Fields{"theme": cfg.Theme, "fps": cfg.FPS, "seed": cfg.Seed}).Debug("config loaded")
	return cfg, entry, closer, nil
}

func resolveSeed(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

func rendererOptions(cfg *config.Config, logger *log.Entry) (rain.Options, int64) {
	t := viz.GetTheme(cfg.Theme)
	s := resolveSeed(cfg)
	return rain.Options{
		GlyphBase:  rune(cfg.GlyphBase),
		Resample:   cfg.ResampleGlyphs,
		Background: t.BackgroundColor(),
		Accent:     t.AccentColor(),
		Random:     rand.New(rand.NewSource(s)),
		Logger:     logger,
	}, s
}

func header(cfg *config.Config) viz.Header {
	return viz.Header{Title: cfg.Header.Title, Tagline: cfg.Header.Tagline}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, logger, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts, _ := rendererOptions(cfg, logger)
	t := viz.GetTheme(cfg.Theme)
	r := rain.New(opts)
	h := tui.NewTeaHost(cfg.FPS, cfg.CellPixels.X, cfg.CellPixels.Y)
	s := viz.NewCellSurface(cfg.CellPixels.X, cfg.CellPixels.Y, t.BackgroundColor())
	m := tui.NewModel(r, h, s, t, header(cfg), cfg.Header.Show, logger)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	// the model unmounts on quit keys; this covers signals and errors
	r.Unmount()
	return nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, logger, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts, _ := rendererOptions(cfg, logger)
	w := gui.NewWindow(gui.Config{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		FPS:        cfg.FPS,
		FontPath:   cfg.Window.Font,
		Theme:      viz.GetTheme(cfg.Theme),
		Header:     header(cfg),
		ShowHeader: cfg.Header.Show,
	}, logger)
	w.Run(rain.New(opts))
	return nil
}

// headless runs the renderer on a manual host until frames are exhausted
// or the process is interrupted.
func headless(cmd *cobra.Command, surface rain.Surface, after func(int)) (*trace.Recorder, trace.Meta, error) {
	cfg, logger, closer, err := setup(cmd)
	if err != nil {
		return nil, trace.Meta{}, err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts, s := rendererOptions(cfg, logger)
	n := cfg.Record.Frames
	rec, err := trace.Run(ctx, trace.RunConfig{
		Options:    opts,
		Width:      width,
		Height:     height,
		Frames:     n,
		Surface:    surface,
		AfterFrame: after,
	})
	meta := trace.Meta{Seed: s, Width: width, Height: height}
	if err != nil {
		return rec, meta, err
	}
	logger.WithFields(log.Fields{"frames": n, "resets": len(rec.Events)}).Info("headless run done")
	return rec, meta, nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	rec, meta, err := headless(cmd, nil, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "csv":
		return rec.WriteCSV(out)
	case "json":
		return rec.WriteJSON(out, meta)
	default:
		return errors.Errorf("unknown format: %s", format)
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	rec, meta, err := headless(cmd, nil, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	counts := rec.Counts()
	if len(counts) > 1 {
		graph := asciigraph.Plot(counts,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("resets per frame"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	if plotSVG != "" {
		doc := export.CountsToSVG(counts, 800, 200, "#00ff41")
		if err := os.WriteFile(plotSVG, []byte(doc), 0644); err != nil {
			return errors.Wrap(err, "write plot")
		}
	}

	sum := rec.Summary()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "seed\t%d\n", meta.Seed)
	fmt.Fprintf(w, "viewport\t%dx%d\n", meta.Width, meta.Height)
	fmt.Fprintf(w, "columns\t%d\n", sum.Columns)
	fmt.Fprintf(w, "frames\t%d\n", sum.Frames)
	fmt.Fprintf(w, "resets\t%d\n", sum.Resets)
	fmt.Fprintf(w, "mean reset position\t%.1f px\n", sum.MeanResetPosition)
	fmt.Fprintf(w, "mean frames between resets\t%.1f\n", sum.MeanFramesBetweenResets)
	return w.Flush()
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	t := viz.GetTheme(cfg.Theme)
	surface := viz.NewCellSurface(cfg.CellPixels.X, cfg.CellPixels.Y, t.BackgroundColor())
	recorder := viz.NewRecorder(t, cfg.Record.Delay)

	if _, _, err := headless(cmd, surface, func(int) { recorder.Capture(surface) }); err != nil {
		return err
	}

	f, err := os.Create(gifPath)
	if err != nil {
		return errors.Wrap(err, "create gif")
	}
	defer f.Close()
	if err := recorder.Encode(f); err != nil {
		return errors.Wrap(err, "encode gif")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", recorder.Frames(), gifPath)
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	t := viz.GetTheme(cfg.Theme)
	surface := viz.NewCellSurface(cfg.CellPixels.X, cfg.CellPixels.Y, t.BackgroundColor())

	if _, _, err := headless(cmd, surface, nil); err != nil {
		return err
	}

	doc := export.SurfaceToSVG(surface, 8)
	if err := os.WriteFile(svgPath, []byte(doc), 0644); err != nil {
		return errors.Wrap(err, "write svg")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d glyphs to %s\n", surface.Lit(), svgPath)
	return nil
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
