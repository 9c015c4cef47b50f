// Package app runs the compute → render pipeline for a single launch.
package app

import (
	"fmt"
	"image"
	"log/slog"

	"projectile/chart"
	"projectile/internal/geo"
	"projectile/trajectory"
)

// Display shows a rendered chart. viewer.Show blocks on a window;
// viewer.WritePNG writes a file.
type Display func(img *image.RGBA, title string) error

// Config describes one invocation.
type Config struct {
	InitialSpeed float64
	LaunchAngle  float64 // degrees
	Physics      trajectory.Config

	Chart   chart.Options
	Caption bool
	Title   string // window title
}

// DefaultConfig is the reference launch: 20 m/s at 45 degrees with the
// default physics and chart.
func DefaultConfig() Config {
	return Config{
		InitialSpeed: 20,
		LaunchAngle:  45,
		Physics:      trajectory.DefaultConfig(),
		Chart:        chart.DefaultOptions(),
		Caption:      true,
		Title:        "Projectile Motion",
	}
}

type Pipeline struct {
	cfg     Config
	display Display
	log     *slog.Logger
}

// New returns a pipeline that hands its chart to display. A nil logger
// falls back to slog.Default.
func New(cfg Config, display Display, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, display: display, log: logger}
}

// Run computes the trajectory and renders it. Nothing is displayed when
// the computation fails.
func (p *Pipeline) Run() error {
	tr, err := p.Compute()
	if err != nil {
		return err
	}
	return p.Render(tr)
}

// Compute evaluates the configured launch.
func (p *Pipeline) Compute() (*trajectory.Trajectory, error) {
	p.log.Debug("computing trajectory",
		"speed", p.cfg.InitialSpeed,
		"angle", p.cfg.LaunchAngle,
		"gravity", p.cfg.Physics.Gravity,
		"duration", p.cfg.Physics.TotalDuration,
		"step", p.cfg.Physics.TimeStep,
	)

	tr, err := p.cfg.Physics.Compute(p.cfg.InitialSpeed, p.cfg.LaunchAngle)
	if err != nil {
		return nil, fmt.Errorf("compute trajectory: %w", err)
	}

	s := tr.Summary()
	p.log.Info("trajectory computed",
		"samples", s.Samples,
		"range", s.Range,
		"apex", s.Apex.Y,
		"flightTime", s.FlightTime,
	)
	return tr, nil
}

// Render draws tr as a line plot and passes it to the display.
func (p *Pipeline) Render(tr *trajectory.Trajectory) error {
	if p.display == nil {
		return fmt.Errorf("render: no display configured")
	}

	opts := p.cfg.Chart
	if p.cfg.Caption {
		opts.Caption = Caption(tr)
	}

	img, err := chart.Draw(tr, opts)
	if err != nil {
		return fmt.Errorf("draw chart: %w", err)
	}
	p.log.Debug("chart drawn", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	if err := p.display(img, p.cfg.Title); err != nil {
		return err
	}
	p.log.Info("chart displayed")
	return nil
}

// Caption summarizes the launch in two lines for the chart footer.
func Caption(tr *trajectory.Trajectory) []string {
	s := tr.Summary()
	c := tr.Config()

	results := fmt.Sprintf("range %.2f m   apex %.2f m at %.2f s   flight %.2f s",
		s.Range, s.Apex.Y, s.Apex.Time, s.FlightTime)
	if l, err := geo.PathLength(tr); err == nil {
		results += fmt.Sprintf("   path %.2f m", l)
	}

	return []string{
		fmt.Sprintf("v0 %g m/s   angle %g deg   g %g m/s2   dt %g s   %d samples",
			tr.InitialSpeed(), tr.LaunchAngle(), c.Gravity, c.TimeStep, s.Samples),
		results,
	}
}
