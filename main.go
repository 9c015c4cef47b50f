// Command projectile computes the flight of an idealized projectile and
// shows it as a line plot.
//
//	projectile --speed 20 --angle 45
//	projectile --gravity 1.62 --headless --output moon.png
package main

import (
	"fmt"
	"log/slog"
	"os"

	"projectile/app"
	"projectile/chart"
	"projectile/internal/buildinfo"
	"projectile/internal/config"
	"projectile/internal/logging"
	"projectile/viewer"

	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet("projectile", pflag.ExitOnError)
	configDir := fs.String("config", "", "directory holding "+config.FileName+".json")
	version := fs.Bool("version", false, "print version and exit")
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	if *version {
		fmt.Println(buildinfo.String())
		return
	}

	if err := config.Load(fs, *configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, closeLog, err := setupLogging(config.GetLogConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(logger); err != nil {
		logger.Error("run failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	launch := config.GetLaunch()
	chartCfg := config.GetChartConfig()
	out := config.GetOutputConfig()

	cfg := app.DefaultConfig()
	cfg.InitialSpeed = launch.InitialSpeed
	cfg.LaunchAngle = launch.LaunchAngle
	cfg.Physics = launch.Physics
	cfg.Chart = chart.DefaultOptions()
	cfg.Chart.Width = chartCfg.Width
	cfg.Chart.Height = chartCfg.Height
	cfg.Caption = chartCfg.Caption
	cfg.Title = "Projectile Motion (" + buildinfo.Short() + ")"

	display := viewer.Show
	if out.Headless {
		display = viewer.WritePNG(out.Path)
		logger.Info("headless mode", "output", out.Path)
	}

	return app.New(cfg, display, logger).Run()
}

func setupLogging(lc config.LogConfig) (*slog.Logger, func(), error) {
	if lc.File == "" {
		return logging.Setup(nil, lc.Level), func() {}, nil
	}
	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %q: %w", lc.File, err)
	}
	return logging.Setup(f, lc.Level), func() { _ = f.Close() }, nil
}
