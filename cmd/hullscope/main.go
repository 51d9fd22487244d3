package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hullscope/hullscope/internal/analysis"
	"github.com/hullscope/hullscope/internal/compute"
	"github.com/hullscope/hullscope/internal/config"
	"github.com/hullscope/hullscope/internal/export"
	"github.com/hullscope/hullscope/internal/server"
	"github.com/hullscope/hullscope/internal/session"
	"github.com/hullscope/hullscope/internal/store"
	"github.com/hullscope/hullscope/internal/trace"
	"github.com/hullscope/hullscope/internal/tui"
	"github.com/hullscope/hullscope/internal/viz"
	"github.com/hullscope/hullscope/internal/wire"
)

var (
	dataDir string
	verbose bool

	numPoints int
	bboxSize  int
	seed      int64
	remote    string
	saveRun   bool
	// Replay
	intervalMS int
	autoPlay   bool
	loadRun    string
	// Sweep range
	startSize int
	endSize   int
	stepSize  int
	// Serve
	addr string
	// Export
	format   string
	stepNum  int
	algoName string
	// Config file and preset
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hullscope",
		Short: "convex hull algorithm replay and statistics lab",
		// Bare invocation opens the replay TUI with default settings
		RunE: runReplay,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run both algorithms on one point set",
		RunE:  runCompare,
	}
	compareCmd.Flags().IntVar(&numPoints, "points", wire.DefaultNumPoints, "number of points")
	compareCmd.Flags().IntVar(&bboxSize, "bbox", wire.DefaultBBoxSize, "bounding box size")
	compareCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	compareCmd.Flags().StringVar(&remote, "remote", "", "compute service url (empty = local)")
	compareCmd.Flags().BoolVar(&saveRun, "save", false, "save the run")
	compareCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	compareCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	replayCmd := &cobra.Command{
		Use:   "replay",
		Short: "step through both algorithms side by side",
		RunE:  runReplay,
	}
	replayCmd.Flags().IntVar(&numPoints, "points", wire.DefaultNumPoints, "number of points")
	replayCmd.Flags().IntVar(&bboxSize, "bbox", wire.DefaultBBoxSize, "bounding box size")
	replayCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	replayCmd.Flags().StringVar(&remote, "remote", "", "compute service url (empty = local)")
	replayCmd.Flags().IntVar(&intervalMS, "interval", config.DefaultIntervalMS, "step interval in milliseconds")
	replayCmd.Flags().BoolVar(&autoPlay, "autoplay", false, "start playing immediately")
	replayCmd.Flags().StringVar(&loadRun, "load", "", "replay a saved run id")
	replayCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	replayCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "benchmark both algorithms over a size range",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&startSize, "start", wire.DefaultStartSize, "smallest input size")
	sweepCmd.Flags().IntVar(&endSize, "end", wire.DefaultEndSize, "largest input size")
	sweepCmd.Flags().IntVar(&stepSize, "step", wire.DefaultStepSize, "size increment")
	sweepCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	sweepCmd.Flags().StringVar(&remote, "remote", "", "compute service url (empty = local)")
	sweepCmd.Flags().BoolVar(&saveRun, "save", false, "save the run")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the compute api over http",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HULLSCOPE_ADDR)")
	serveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")

	pointsCmd := &cobra.Command{
		Use:   "points",
		Short: "generate a random point set as json",
		RunE:  runPoints,
	}
	pointsCmd.Flags().IntVar(&numPoints, "points", wire.DefaultNumPoints, "number of points")
	pointsCmd.Flags().IntVar(&bboxSize, "bbox", wire.DefaultBBoxSize, "bounding box size")
	pointsCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	pointsCmd.Flags().StringVar(&remote, "remote", "", "compute service url (empty = local)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (json, csv, or svg)")
	exportCmd.Flags().IntVar(&stepNum, "step", -1, "replay step to render (svg only, -1 = final hull)")
	exportCmd.Flags().StringVar(&algoName, "algo", "jarvis", "trace to render with --step (jarvis or graham)")

	presetsCmd := &cobra.Command{
		Use:   "presets [command] [name]",
		Short: "list presets for a command, or show one resolved",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return showPreset(args[0], args[1])
			}
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for command: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(compareCmd, replayCmd, sweepCmd, serveCmd, pointsCmd, listCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadRunConfig folds preset and config-file values into the flag
// variables. A preset overrides registered defaults, the config file
// overrides the preset, explicit flags override everything.
func loadRunConfig(cmd *cobra.Command, command string) error {
	if preset != "" {
		cfg := config.GetPreset(command, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(command))
		}
		if cfg.NumPoints != 0 {
			numPoints = cfg.NumPoints
		}
		if cfg.BBoxSize != 0 {
			bboxSize = cfg.BBoxSize
		}
		if cfg.Playback.IntervalMS != 0 {
			intervalMS = cfg.Playback.IntervalMS
		}
		if cfg.Playback.AutoPlay {
			autoPlay = true
		}
		if cfg.Sweep.StartSize != 0 {
			startSize = cfg.Sweep.StartSize
		}
		if cfg.Sweep.EndSize != 0 {
			endSize = cfg.Sweep.EndSize
		}
		if cfg.Sweep.StepSize != 0 {
			stepSize = cfg.Sweep.StepSize
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("points") && cfg.NumPoints != 0 {
			numPoints = cfg.NumPoints
		}
		if !cmd.Flags().Changed("bbox") && cfg.BBoxSize != 0 {
			bboxSize = cfg.BBoxSize
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
		if !cmd.Flags().Changed("remote") && cfg.Remote != "" {
			remote = cfg.Remote
		}
		if !cmd.Flags().Changed("data") && cfg.DataDir != "" {
			dataDir = cfg.DataDir
		}
		if !cmd.Flags().Changed("interval") && cfg.Playback.IntervalMS != 0 {
			intervalMS = cfg.Playback.IntervalMS
		}
		if !cmd.Flags().Changed("autoplay") && cfg.Playback.AutoPlay {
			autoPlay = true
		}
		if !cmd.Flags().Changed("start") && cfg.Sweep.StartSize != 0 {
			startSize = cfg.Sweep.StartSize
		}
		if !cmd.Flags().Changed("end") && cfg.Sweep.EndSize != 0 {
			endSize = cfg.Sweep.EndSize
		}
		if !cmd.Flags().Changed("step") && cfg.Sweep.StepSize != 0 {
			stepSize = cfg.Sweep.StepSize
		}
	}

	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	if err := loadRunConfig(cmd, "compare"); err != nil {
		return err
	}

	provider := compute.SelectProvider(remote, seed)
	req := wire.CompareRequest{NumPoints: numPoints, BBoxSize: bboxSize}

	fmt.Printf("comparing algorithms on %d points (%s compute)...\n", numPoints, provider.Name())
	start := time.Now()
	res, err := provider.Compare(context.Background(), req)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	sess, err := session.Decode(*res)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tTIME\tSTEPS\tHULL")
	fmt.Fprintf(w, "%s\t%.6fs\t%d\t%d\n",
		res.JarvisResult.Algorithm,
		res.JarvisResult.ExecutionTime,
		len(res.JarvisResult.Steps),
		res.JarvisResult.HullSize,
	)
	fmt.Fprintf(w, "%s\t%.6fs\t%d\t%d\n",
		res.GrahamResult.Algorithm,
		res.GrahamResult.ExecutionTime,
		len(res.GrahamResult.Steps),
		res.GrahamResult.HullSize,
	)
	if err := w.Flush(); err != nil {
		return err
	}

	sum := sess.Summary()
	fmt.Printf("\nfaster: %s (%.2fx, diff %.6fs)\n", sum.Faster.DisplayName(), sum.SpeedRatio, sum.TimeDifference)
	if !sum.HullSizesMatch {
		fmt.Println("warning: hull sizes disagree")
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveSession(res)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	if err := loadRunConfig(cmd, "replay"); err != nil {
		return err
	}

	var res *wire.ComparisonResult
	if loadRun != "" {
		st := store.New(dataDir)
		saved, err := st.LoadSession(loadRun)
		if err != nil {
			return err
		}
		res = saved
	} else {
		provider := compute.SelectProvider(remote, seed)
		req := wire.CompareRequest{NumPoints: numPoints, BBoxSize: bboxSize}
		fresh, err := provider.Compare(context.Background(), req)
		if err != nil {
			return err
		}
		res = fresh
	}

	sess, err := session.Decode(*res)
	if err != nil {
		return err
	}

	if intervalMS <= 0 {
		intervalMS = config.DefaultIntervalMS
	}
	return tui.Run(sess, time.Duration(intervalMS)*time.Millisecond, autoPlay)
}

func runSweep(cmd *cobra.Command, args []string) error {
	if err := loadRunConfig(cmd, "sweep"); err != nil {
		return err
	}

	provider := compute.SelectProvider(remote, seed)
	req := wire.AnalysisRequest{StartSize: startSize, EndSize: endSize, StepSize: stepSize}

	fmt.Printf("sweeping n=%d..%d by %d (%s compute)...\n", startSize, endSize, stepSize, provider.Name())
	start := time.Now()
	res, err := provider.Analyze(context.Background(), req)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	series, err := analysis.NewSeries(res.InputSizes, res.JarvisTimes, res.GrahamTimes, res.JarvisHullSizes, res.GrahamHullSizes)
	if err != nil {
		return err
	}

	jarvisMS := make([]float64, series.Len())
	grahamMS := make([]float64, series.Len())
	for i, t := range series.JarvisTimes() {
		jarvisMS[i] = t * 1000
	}
	for i, t := range series.GrahamTimes() {
		grahamMS[i] = t * 1000
	}

	sizes := series.Sizes()
	caption := fmt.Sprintf("jarvis march runtime (ms), n=%d..%d", sizes[0], sizes[len(sizes)-1])
	fmt.Println(asciigraph.Plot(jarvisMS,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	))
	fmt.Println()

	caption = fmt.Sprintf("graham scan runtime (ms), n=%d..%d", sizes[0], sizes[len(sizes)-1])
	fmt.Println(asciigraph.Plot(grahamMS,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	))
	fmt.Println()

	wins := series.Wins()
	jarvisStats := series.JarvisStats()
	grahamStats := series.GrahamStats()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tMIN\tMEAN\tMAX\tWINS")
	fmt.Fprintf(w, "%s\t%.6fs\t%.6fs\t%.6fs\t%d\n",
		trace.Jarvis.DisplayName(), jarvisStats.Min, jarvisStats.Mean, jarvisStats.Max, wins.Jarvis)
	fmt.Fprintf(w, "%s\t%.6fs\t%.6fs\t%.6fs\t%d\n",
		trace.Graham.DisplayName(), grahamStats.Min, grahamStats.Mean, grahamStats.Max, wins.Graham)
	if err := w.Flush(); err != nil {
		return err
	}
	if wins.Ties > 0 {
		fmt.Printf("ties: %d\n", wins.Ties)
	}

	if size, ok := series.Crossover(); ok {
		fmt.Printf("\ncrossover: lead changes at n=%d\n", size)
	} else {
		fmt.Println("\ncrossover: none in the sampled range")
	}

	ca := res.ComplexityAnalysis
	fmt.Println("\ncomplexity:")
	fmt.Printf("  %s: %s (best %s, worst %s, space %s)\n", trace.Jarvis.DisplayName(),
		ca.JarvisMarch.Theoretical, ca.JarvisMarch.BestCase, ca.JarvisMarch.WorstCase, ca.JarvisMarch.SpaceComplexity)
	fmt.Printf("  %s: %s (best %s, worst %s, space %s)\n", trace.Graham.DisplayName(),
		ca.GrahamScan.Theoretical, ca.GrahamScan.BestCase, ca.GrahamScan.WorstCase, ca.GrahamScan.SpaceComplexity)
	fmt.Printf("  %s\n", ca.Recommendation)

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveSweep(res)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := server.LoadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = addr
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	srv := server.NewServer(cfg, compute.NewLocalProvider(cfg.Seed))

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.App.Listen(cfg.Addr)
	}()

	fmt.Printf("serving on %s\n", cfg.Addr)
	select {
	case <-signals:
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.App.ShutdownWithContext(shutdownCtx)
}

func runPoints(cmd *cobra.Command, args []string) error {
	provider := compute.SelectProvider(remote, seed)

	res, err := provider.GeneratePoints(context.Background(), numPoints, bboxSize)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tDETAILS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			runDetails(run),
		)
	}

	return w.Flush()
}

func runDetails(run store.RunMetadata) string {
	switch run.Kind {
	case store.KindCompare:
		return fmt.Sprintf("%.0f points, hull %.0f, ratio %.2fx",
			run.Metrics["points"], run.Metrics["hull_size"], run.Metrics["efficiency_ratio"])
	case store.KindSweep:
		return fmt.Sprintf("%.0f samples, n=%.0f..%.0f",
			run.Metrics["samples"], run.Metrics["min_size"], run.Metrics["max_size"])
	}
	return ""
}

// showPreset prints what a named preset resolves to, through the same
// request mapping the run commands use.
func showPreset(command, name string) error {
	cfg := config.GetPreset(command, name)
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets(command))
	}
	fmt.Printf("%s/%s:\n", command, name)
	if command == "sweep" {
		req := cfg.AnalysisRequest()
		req.Normalize()
		fmt.Printf("  sizes %d..%d step %d\n", req.StartSize, req.EndSize, req.StepSize)
		return nil
	}
	req := cfg.CompareRequest()
	req.Normalize()
	fmt.Printf("  %d points in a %dx%d box\n", req.NumPoints, req.BBoxSize, req.BBoxSize)
	if command == "replay" {
		fmt.Printf("  interval %v, autoplay %v\n", cfg.PlaybackInterval(), cfg.Playback.AutoPlay)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	switch meta.Kind {
	case store.KindCompare:
		res, err := st.LoadSession(runID)
		if err != nil {
			return err
		}
		switch format {
		case "json":
			return store.ExportSessionJSON(os.Stdout, res)
		case "svg":
			return exportSVG(res)
		case "csv":
			return fmt.Errorf("csv export is only available for sweep runs")
		}
	case store.KindSweep:
		res, err := st.LoadSweep(runID)
		if err != nil {
			return err
		}
		switch format {
		case "json":
			return store.ExportSweepJSON(os.Stdout, res)
		case "csv":
			return store.ExportSweepCSV(os.Stdout, res)
		case "svg":
			return fmt.Errorf("svg export is only available for compare runs")
		}
	default:
		return fmt.Errorf("unknown run kind: %s", meta.Kind)
	}

	return fmt.Errorf("unknown format: %s", format)
}

// exportSVG emits the run as a picture: the final hull as vector
// geometry, or with --step the chosen trace's replay frame at that step.
func exportSVG(res *wire.ComparisonResult) error {
	if stepNum < 0 {
		_, err := fmt.Println(export.HullSVG(res.Points, res.JarvisResult.Hull, 800, 600))
		return err
	}

	algo := trace.Algorithm(algoName)
	if algo != trace.Jarvis && algo != trace.Graham {
		return fmt.Errorf("unknown algorithm: %s (want jarvis or graham)", algoName)
	}

	sess, err := session.Decode(*res)
	if err != nil {
		return err
	}
	canvas := viz.FrameCanvas(sess.Project(algo, stepNum), 80, 24)
	_, err = fmt.Println(export.FrameSVG(canvas, 4))
	return err
}
