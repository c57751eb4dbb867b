// Package main provides the CLI entry point for the competency report tool.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/internal/config"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/internal/metrics"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/logger"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/chart"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/export"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/output"
	"github.com/spf13/cobra"
)

var (
	logLevel    string
	classFilter string

	viewMode  string
	student   string
	avgClass  string
	asJSON    bool
	pretty    bool
	chartsDir string

	outputPath  string
	scope       string
	format      string
	metricsFile string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kompetencia",
		Short: "Competency score charts from two-period Excel workbooks",
		Long: `kompetencia reads a workbook whose first two sheets hold per-student
competency scores of two measurement periods, and shows or exports bar and
radar charts of the percentages.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&classFilter, "class", "", "Restrict to one class (default: all classes)")

	viewCmd := &cobra.Command{
		Use:   "view [input.xlsx]",
		Short: "Show a student, class average or overall average view",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}
	viewCmd.Flags().StringVar(&viewMode, "mode", "student", "View: student, class, overall")
	viewCmd.Flags().StringVar(&student, "student", "", "Student of the student view (default: first)")
	viewCmd.Flags().StringVar(&avgClass, "avg-class", "", "Class of the class view when --class is not set (default: first)")
	viewCmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	viewCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	viewCmd.Flags().StringVar(&chartsDir, "charts-dir", "", "Directory to write the view's chart pages to")

	exportCmd := &cobra.Command{
		Use:   "export [input.xlsx]",
		Short: "Export a chart pair per student into a zip archive",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Archive path (default: scope archive name)")
	exportCmd.Flags().StringVar(&scope, "scope", "filtered", "Students to export: filtered, all")
	exportCmd.Flags().StringVar(&format, "format", "", "Report format: html, png (default from config)")
	exportCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")

	classesCmd := &cobra.Command{
		Use:   "classes [input.xlsx]",
		Short: "List periods, areas, classes and students",
		Args:  cobra.ExactArgs(1),
		RunE:  runClasses,
	}

	rootCmd.AddCommand(viewCmd, exportCmd, classesCmd)
	return rootCmd
}

// setup loads configuration, applies flag overrides and initializes logging.
func setup(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if format != "" {
		cfg.Format = format
	}
	if metricsFile != "" {
		cfg.MetricsFile = metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Init(); err != nil {
		return nil, err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func sessionOptions(cfg *config.Config, rec *metrics.Recorder) scorecard.Options {
	opts := scorecard.DefaultOptions()
	opts.Format = export.Format(cfg.Format)
	opts.TitlePrefix = cfg.TitlePrefix
	opts.Footer = cfg.FooterText
	opts.PNGWidth = cfg.PNGWidth
	opts.PNGHeight = cfg.PNGHeight
	opts.PNGScale = cfg.PNGScale
	opts.AssetsHost = cfg.AssetsHost
	opts.ChromePath = cfg.ChromePath
	opts.RenderTimeout = cfg.RenderTimeout
	opts.Logger = logger.Named("scorecard")
	if rec != nil {
		opts.Observer = rec
	}
	return opts
}

func openSession(ctx context.Context, cfg *config.Config, rec *metrics.Recorder, inputPath string) (*scorecard.Session, error) {
	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", inputPath)
	}

	s, err := scorecard.LoadFile(ctx, inputPath, sessionOptions(cfg, rec))
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	if err := s.SetClassFilter(classFilter); err != nil {
		return nil, err
	}
	return s, nil
}

func runView(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}

	mode, err := scorecard.ParseViewMode(viewMode)
	if err != nil {
		return err
	}

	s, err := openSession(ctx, cfg, nil, args[0])
	if err != nil {
		return err
	}

	v, err := s.View(scorecard.ViewRequest{Mode: mode, Student: student, Class: avgClass})
	if err != nil {
		return err
	}

	if chartsDir != "" {
		if err := writeCharts(s, v, chartsDir); err != nil {
			return fmt.Errorf("failed to write charts: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		data, err := output.ViewToJSON(v, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	return output.WriteView(out, v)
}

func writeCharts(s *scorecard.Session, v *scorecard.View, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, kind := range chart.Kinds {
		page, err := s.RenderView(v, kind)
		if err != nil {
			return err
		}
		filename := filepath.Join(dir, string(kind)+".html")
		if err := os.WriteFile(filename, page, 0644); err != nil {
			return err
		}
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}

	exportScope, err := scorecard.ParseScope(scope)
	if err != nil {
		return err
	}

	rec := metrics.New()
	defer func() {
		if cfg.MetricsFile == "" {
			return
		}
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Get().Warn(ctx, "metrics not written", logger.Error(err))
		}
	}()

	s, err := openSession(ctx, cfg, rec, args[0])
	if err != nil {
		return err
	}

	progress := cmd.ErrOrStderr()
	artifact, err := s.Export(ctx, exportScope, func(done, total int, p export.Pair) {
		fmt.Fprintf(progress, "Feldolgozás: %s - %s (%d/%d)\n", p.Class, p.Name, done, total)
	})
	if err != nil {
		return err
	}

	path := outputPath
	if path == "" {
		path = artifact.Name
	}
	if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ZIP elkészült: %s (%d tanuló, %.2f MB)\n",
		path, artifact.Pairs, float64(artifact.Size())/(1024*1024))
	return nil
}

func runClasses(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}

	s, err := openSession(ctx, cfg, nil, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Időszakok: %v\n", s.Periods())
	fmt.Fprintf(out, "Területek: %v\n", s.Areas())
	fmt.Fprintf(out, "Osztályok: %v\n", s.Classes())
	for _, name := range s.Students() {
		fmt.Fprintln(out, name)
	}
	return nil
}
