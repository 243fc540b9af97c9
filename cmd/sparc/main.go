package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/analysis"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/config"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/contour"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/export"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/mesh"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/potential"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/store"
	"github.com/UW-Physics-Undergrads-of-2024/sparc/internal/viz"
)

var (
	dataDir    string
	m1         float64
	m2         float64
	radius     float64
	extent     float64
	points     int
	levels     int
	workers    int
	preset     string
	configFile string
	svgOut     string
	pngOut     string
)

// main registers commands and flags; without a subcommand it opens
// the interactive explorer.
func main() {
	rootCmd := &cobra.Command{
		Use:   "sparc",
		Short: "effective potential fields of the restricted three-body problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, rc, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunLive(cfg, rc.Extent, rc.Levels)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sparc", "data directory")
	rootCmd.PersistentFlags().Float64Var(&m1, "m1", config.DefaultM1, "primary mass")
	rootCmd.PersistentFlags().Float64Var(&m2, "m2", config.DefaultM2, "secondary mass")
	rootCmd.PersistentFlags().Float64Var(&radius, "radius", config.DefaultRadius, "orbital radius")
	rootCmd.PersistentFlags().Float64Var(&extent, "extent", config.DefaultExtent, "half-width of the sampling window")
	rootCmd.PersistentFlags().IntVar(&points, "points", config.DefaultPoints, "grid samples per axis")
	rootCmd.PersistentFlags().IntVar(&levels, "levels", config.DefaultLevels, "contour levels")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "evaluation workers (0 = all cpus)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named mass configuration")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "compute and save a potential field",
		RunE:  runField,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	contourCmd := &cobra.Command{
		Use:   "contour [run_id]",
		Short: "render a saved field's contours in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive contour explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, rc, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunLive(cfg, rc.Extent, rc.Levels)
		},
	}

	lagrangeCmd := &cobra.Command{
		Use:   "lagrange",
		Short: "print the five Lagrange points",
		RunE:  printLagrange,
	}

	sectionCmd := &cobra.Command{
		Use:   "section",
		Short: "plot the potential profile along the x-axis",
		RunE:  plotSection,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a saved field as an SVG contour plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "field.svg", "output file")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "export a saved field as a PNG heatmap",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	exportPNGCmd.Flags().StringVar(&pngOut, "out", "field.png", "output file")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a saved field's samples to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a saved field to stdout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time field evaluation across grid sizes",
		RunE:  benchGrids,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named mass configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-14s m1=%g m2=%g radius=%g\n", name, p.M1, p.M2, p.OrbitalRadius)
			}
			return nil
		},
	}

	rootCmd.AddCommand(fieldCmd, listCmd, contourCmd, liveCmd, lagrangeCmd, sectionCmd,
		exportSVGCmd, exportPNGCmd, exportCSVCmd, exportJSONCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and flags into a validated
// mass configuration. Precedence: flags > config file > preset.
func resolveConfig(cmd *cobra.Command) (potential.Config, *config.Config, error) {
	rc := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return potential.Config{}, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*rc = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return potential.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
		}
		rc = loaded
	}

	if cmd.Flags().Changed("m1") {
		rc.M1 = m1
	}
	if cmd.Flags().Changed("m2") {
		rc.M2 = m2
	}
	if cmd.Flags().Changed("radius") {
		rc.OrbitalRadius = radius
	}
	if cmd.Flags().Changed("extent") {
		rc.Extent = extent
	}
	if cmd.Flags().Changed("points") {
		rc.Points = points
	}
	if cmd.Flags().Changed("levels") {
		rc.Levels = levels
	}
	if cmd.Flags().Changed("workers") {
		rc.Workers = workers
	}

	cfg := potential.Config{M1: rc.M1, M2: rc.M2, OrbitalRadius: rc.OrbitalRadius}
	if err := cfg.Validate(); err != nil {
		return potential.Config{}, nil, err
	}
	return cfg, rc, nil
}

func makeGrid(rc *config.Config) (*mesh.Matrix, *mesh.Matrix) {
	xs := mesh.Linspace(-rc.Extent, rc.Extent, rc.Points)
	ys := mesh.Linspace(-rc.Extent, rc.Extent, rc.Points)
	return mesh.Meshgrid(xs, ys)
}

func runField(cmd *cobra.Command, args []string) error {
	cfg, rc, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	xg, yg := makeGrid(rc)

	fmt.Printf("evaluating %dx%d field...\n", rc.Points, rc.Points)
	z, stats, err := potential.EvaluateWithStats(cfg, xg, yg, rc.Workers)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg, rc.Extent, xg, yg, z, stats)
	if err != nil {
		return err
	}

	min, max, _ := z.FiniteRange()
	fmt.Printf("completed in %v (%d workers)\n", stats.Elapsed, stats.Workers)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", stats.Points)
	fmt.Printf("Φ range: [%.4f, %.4f]\n\n", min, max)

	fmt.Println(viz.ShadeField(z, 64, 20))
	fmt.Println(viz.ShadeLegend(z))
	return nil
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
	fmt.Fprintln(w, "ID\tTIME\tM1\tM2\tRADIUS\tGRID\tELAPSED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%dx%d\t%.2fms\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.M1,
			run.M2,
			run.OrbitalRadius,
			run.Rows,
			run.Cols,
			run.ElapsedMS,
		)
	}
	return w.Flush()
}

func renderRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	xg, yg, z, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	cfg := potential.Config{M1: meta.M1, M2: meta.M2, OrbitalRadius: meta.OrbitalRadius}
	pts := analysis.LagrangePoints(cfg)

	lv := contour.Levels(z, levels)
	for _, p := range pts {
		lv = append(lv, p.Potential)
	}

	fmt.Printf("run: %s (m1=%g m2=%g radius=%g)\n\n", meta.ID, meta.M1, meta.M2, meta.OrbitalRadius)
	fmt.Println(viz.RenderContours(xg, yg, z, lv, cfg, pts, 72, 28, 0, 0, meta.Extent))
	return nil
}

func printLagrange(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINT\tX\tY\tΦ")
	for _, p := range analysis.LagrangePoints(cfg) {
		fmt.Fprintf(w, "%s\t%+.6f\t%+.6f\t%.6f\n", p.Name, p.X, p.Y, p.Potential)
	}
	return w.Flush()
}

func plotSection(cmd *cobra.Command, args []string) error {
	cfg, rc, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	xs := mesh.Linspace(-rc.Extent, rc.Extent, 160)
	phi := analysis.CrossSection(cfg, xs)

	// Clamp the singular spikes at the bodies so the plot keeps a
	// readable scale around the Lagrange humps.
	floor := math.Inf(1)
	for _, v := range phi {
		if !math.IsInf(v, 0) && v < floor {
			floor = v
		}
	}
	for i, v := range phi {
		if math.IsInf(v, -1) {
			phi[i] = floor
		}
	}

	graph := asciigraph.Plot(phi,
		asciigraph.Height(16),
		asciigraph.Width(100),
		asciigraph.Caption("Φ(x, 0) across the orbital axis"),
	)
	fmt.Println(graph)

	for _, p := range analysis.LagrangePoints(cfg)[:3] {
		fmt.Printf("  %s at x=%+.4f, Φ=%.4f\n", p.Name, p.X, p.Potential)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	xg, yg, z, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	cfg := potential.Config{M1: meta.M1, M2: meta.M2, OrbitalRadius: meta.OrbitalRadius}
	pts := analysis.LagrangePoints(cfg)

	lv := contour.Levels(z, levels)
	for _, p := range pts {
		lv = append(lv, p.Potential)
	}

	svg := export.ContourSVG(xg, yg, z, lv, cfg, pts, export.DefaultSVGOptions())
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d levels)\n", svgOut, len(lv))
	return nil
}

func exportPNG(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	_, _, z, err := st.LoadField(args[0])
	if err != nil {
		return err
	}
	if err := export.HeatmapPNG(z, pngOut); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d)\n", pngOut, z.Cols, z.Rows)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	xg, yg, z, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "phi"}); err != nil {
		return err
	}
	for i := range z.Data {
		row := []string{
			strconv.FormatFloat(xg.Data[i], 'g', -1, 64),
			strconv.FormatFloat(yg.Data[i], 'g', -1, 64),
			strconv.FormatFloat(z.Data[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, _, z, err := st.LoadField(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSON(os.Stdout, meta, z)
}

func benchGrids(cmd *cobra.Command, args []string) error {
	cfg, rc, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sizes := []int{64, 128, 256, 512, 1024}

	fmt.Printf("benchmarking field evaluation (m1=%g m2=%g radius=%g)\n\n", cfg.M1, cfg.M2, cfg.OrbitalRadius)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRID\tSAMPLES\tWORKERS\tTIME\tSAMPLES/SEC")

	for _, n := range sizes {
		xs := mesh.Linspace(-rc.Extent, rc.Extent, n)
		xg, yg := mesh.Meshgrid(xs, xs)

		start := time.Now()
		_, stats, err := potential.EvaluateWithStats(cfg, xg, yg, rc.Workers)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		rate := float64(stats.Points) / elapsed.Seconds()
		fmt.Fprintf(w, "%dx%d\t%d\t%d\t%v\t%.0f\n", n, n, stats.Points, stats.Workers, elapsed, rate)
	}
	return w.Flush()
}
