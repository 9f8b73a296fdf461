package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"agrisense/config"
	"agrisense/entities"
	dashboardCtrlImp "agrisense/pkg/dashboard/controllerImp"
	"agrisense/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "agrisense",
	Short:         "Seasonal farming dashboard API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print one dashboard payload as JSON",
	Long: `Build the dashboard for a season (and optional coordinates) exactly as
GET /api/dashboard would, and print it to stdout.`,
	RunE: runDashboard,
}

var (
	flagSeason   string
	flagLat      string
	flagLon      string
	flagImperial bool
)

func init() {
	dashboardCmd.Flags().StringVar(&flagSeason, "season", "summer", "summer, monsoon or winter")
	dashboardCmd.Flags().StringVar(&flagLat, "lat", "", "latitude")
	dashboardCmd.Flags().StringVar(&flagLon, "lon", "", "longitude")
	dashboardCmd.Flags().BoolVar(&flagImperial, "imperial", false, "render °F and inches")
	rootCmd.AddCommand(serveCmd, dashboardCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig logs to stderr so the dashboard subcommand's stdout stays pure JSON.
func loadConfig(cmd *cobra.Command) (config.AppConfig, logger.Logger, error) {
	cfg, err := config.Load()
	log := logger.NewWithWriter(cfg.LogLevel, cfg.Env, cmd.ErrOrStderr())
	if err != nil {
		return cfg, log, err
	}
	log.Infof("[cfg] %s", cfg)
	return cfg, log, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.run(ctx)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	season, ok := entities.ParseSeason(flagSeason)
	if !ok {
		return fmt.Errorf("unknown season %q", flagSeason)
	}
	dash, err := newDashboard(cfg, log)
	if err != nil {
		return err
	}

	p := dash.Build(cmd.Context(), dashboardCtrlImp.ParseCoordinates(flagLat, flagLon), season)
	p.Imperial = flagImperial

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
