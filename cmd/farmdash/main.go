// Command farmdash is the terminal dashboard for the farm backend, plus a few
// batch commands that share its client.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"farmdash/config"
	"farmdash/entities"
	"farmdash/pkg/client"
	"farmdash/pkg/dashboard"
	"farmdash/pkg/logging"
	"farmdash/pkg/report"
	"farmdash/pkg/schema"
	"farmdash/pkg/tui"
)

var (
	cfg      config.AppConfig
	apiURL   string
	logLevel string
	logFile  string
	outPath  string
	inPath   string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "farmdash",
	Short: "Farm management dashboard",
	Long: `farmdash manages crops, activities and resources through the farm backend.

Run without arguments to open the interactive dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if apiURL != "" {
			cfg.APIURL = apiURL
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		file := cfg.LogFile
		if logFile != "" {
			file = logFile
		}
		// the dashboard owns the terminal, so it never logs to stderr
		if file == "" && isDashboard(cmd) {
			file = "farmdash.log"
		}
		var err error
		logger, err = logging.New(cfg.LogLevel, file)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDashboard,
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	RunE:  runDashboard,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write crops, activities, resources and the summary to an XLSX workbook",
	Long: `Fetches every collection and writes one sheet per collection plus a
Summary sheet with the dashboard cards.

Example:
  farmdash export --out farm.xlsx`,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Create crops from the Crops sheet of an XLSX workbook",
	Long: `Reads the Crops sheet (columns Name, Variety, Planting Date, Harvest Date
and optionally Status) and creates one crop per row. Every row is validated
before the first request is sent.`,
	RunE: runImport,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load every collection once and report the counts",
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "backend base URL (overrides API_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file (overrides LOG_FILE)")

	exportCmd.Flags().StringVarP(&outPath, "out", "o", "farmdash.xlsx", "output workbook")
	importCmd.Flags().StringVarP(&inPath, "in", "i", "", "input workbook")
	_ = importCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(dashboardCmd, exportCmd, importCmd, checkCmd)
}

// isDashboard reports whether cmd opens the TUI, which owns the terminal.
func isDashboard(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "dashboard"
}

func newClient() *client.Client {
	return client.New(cfg.APIURL, client.WithTimeout(cfg.HTTPTimeout), client.WithLogger(logger))
}

func newApp() *dashboard.App {
	return dashboard.NewApp(newClient(), dashboard.AppOptions{
		Location: cfg.Location(),
		Logger:   logger,
	})
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp()
	defer app.Close()
	logger.Info("dashboard starting", zap.String("api", cfg.APIURL))
	return tui.Run(ctx, app)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*cfg.HTTPTimeout)
	defer cancel()

	app := newApp()
	defer app.Close()
	if err := app.LoadAll(ctx); err != nil {
		return fmt.Errorf("load: %w", err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	data := report.Data{
		Crops:      app.Crops.Store.List(),
		Activities: app.Activities.Store.List(),
		Resources:  app.Resources.Store.List(),
		Summary:    app.Dashboard.Summary(),
	}
	if err := report.Write(f, data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("exported", zap.String("file", outPath), zap.Int("crops", len(data.Crops)))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d crops, %d activities, %d resources\n",
		outPath, len(data.Crops), len(data.Activities), len(data.Resources))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()
	n, err := importCrops(cmd.Context(), f, newClient(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	logger.Info("imported", zap.String("file", inPath), zap.Int("crops", n))
	return nil
}

// importCrops validates every row first so a bad sheet creates nothing.
func importCrops(ctx context.Context, r io.Reader, c *client.Client, out io.Writer) (int, error) {
	rows, err := report.ReadCrops(r)
	if err != nil {
		return 0, err
	}
	for i, in := range rows {
		if err := schema.Validate(in); err != nil {
			return 0, fmt.Errorf("crop %d (%s): %w", i+1, in.Name, err)
		}
	}
	crops := client.NewCollection[entities.Crop](c, "crops")
	for i, in := range rows {
		if err := crops.Create(ctx, in); err != nil {
			return i, fmt.Errorf("create %s: %w", in.Name, err)
		}
		fmt.Fprintf(out, "created %s (%s)\n", in.Name, in.Variety)
	}
	return len(rows), nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*cfg.HTTPTimeout)
	defer cancel()

	app := newApp()
	defer app.Close()
	start := time.Now()
	if err := app.LoadAll(ctx); err != nil {
		return fmt.Errorf("backend %s: %w", cfg.APIURL, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok %s in %s: %d crops, %d activities, %d resources\n",
		cfg.APIURL, time.Since(start).Round(time.Millisecond),
		app.Crops.Len(), app.Activities.Len(), app.Resources.Len())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
