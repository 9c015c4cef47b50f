// Package config resolves run settings from defaults, an optional JSON
// file, PROJECTILE_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"projectile/trajectory"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory (without
// the .json extension).
const FileName = "projectile"

// Launch holds the calculator inputs.
type Launch struct {
	InitialSpeed float64
	LaunchAngle  float64 // degrees
	Physics      trajectory.Config
}

// ChartConfig holds the renderer settings.
type ChartConfig struct {
	Width   int
	Height  int
	Caption bool
}

// OutputConfig selects between the window and a PNG file.
type OutputConfig struct {
	Headless bool
	Path     string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	File  string
}

// flag name -> viper key
var flagKeys = map[string]string{
	"speed":     "speed",
	"angle":     "angle",
	"gravity":   "gravity",
	"duration":  "duration",
	"step":      "step",
	"width":     "chart.width",
	"height":    "chart.height",
	"caption":   "chart.caption",
	"headless":  "headless",
	"output":    "output",
	"log-level": "logLevel",
	"log-file":  "logFile",
}

func setDefaults() {
	physics := trajectory.DefaultConfig()

	viper.SetDefault("speed", 20.0)
	viper.SetDefault("angle", 45.0)
	viper.SetDefault("gravity", physics.Gravity)
	viper.SetDefault("duration", physics.TotalDuration)
	viper.SetDefault("step", physics.TimeStep)

	viper.SetDefault("chart.width", 640)
	viper.SetDefault("chart.height", 480)
	viper.SetDefault("chart.caption", true)

	viper.SetDefault("headless", false)
	viper.SetDefault("output", "trajectory.png")

	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")
}

// RegisterLaunchFlags adds the calculator flags to fs.
func RegisterLaunchFlags(fs *pflag.FlagSet) {
	physics := trajectory.DefaultConfig()
	fs.Float64("speed", 20, "initial speed (m/s)")
	fs.Float64("angle", 45, "launch angle above horizontal (degrees)")
	fs.Float64("gravity", physics.Gravity, "gravitational acceleration (m/s^2)")
	fs.Float64("duration", physics.TotalDuration, "simulated time span, exclusive (s)")
	fs.Float64("step", physics.TimeStep, "time between samples (s)")
}

// RegisterLogFlags adds --log-level and --log-file to fs.
func RegisterLogFlags(fs *pflag.FlagSet) {
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-file", "", "also write logs to this file")
}

// RegisterFlags adds the calculator, logging, chart and output flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	RegisterLaunchFlags(fs)
	RegisterLogFlags(fs)
	fs.Int("width", 640, "chart width (px)")
	fs.Int("height", 480, "chart height (px)")
	fs.Bool("caption", true, "write launch parameters and results under the plot")
	fs.Bool("headless", false, "write the chart to --output instead of opening a window")
	fs.String("output", "trajectory.png", "PNG path used with --headless")
}

// Load registers defaults, binds the flags present in fs, reads
// configDir/projectile.json when it exists and enables PROJECTILE_* env
// overrides. fs and configDir may be empty.
func Load(fs *pflag.FlagSet, configDir string) error {
	setDefaults()

	viper.SetEnvPrefix("PROJECTILE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %q: %w", name, err)
			}
		}
	}

	if configDir == "" {
		return nil
	}
	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// GetLaunch returns the resolved calculator inputs.
func GetLaunch() Launch {
	return Launch{
		InitialSpeed: viper.GetFloat64("speed"),
		LaunchAngle:  viper.GetFloat64("angle"),
		Physics: trajectory.Config{
			Gravity:       viper.GetFloat64("gravity"),
			TotalDuration: viper.GetFloat64("duration"),
			TimeStep:      viper.GetFloat64("step"),
		},
	}
}

// GetChartConfig returns the resolved chart settings.
func GetChartConfig() ChartConfig {
	return ChartConfig{
		Width:   viper.GetInt("chart.width"),
		Height:  viper.GetInt("chart.height"),
		Caption: viper.GetBool("chart.caption"),
	}
}

// GetOutputConfig returns where the chart goes.
func GetOutputConfig() OutputConfig {
	return OutputConfig{
		Headless: viper.GetBool("headless"),
		Path:     viper.GetString("output"),
	}
}

// GetLogConfig returns the resolved logging settings.
func GetLogConfig() LogConfig {
	return LogConfig{
		Level: viper.GetString("logLevel"),
		File:  viper.GetString("logFile"),
	}
}
