package trajectory

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when a launch parameter or physical
// constant cannot produce a finite, non-empty time span.
var ErrInvalidParameter = errors.New("invalid parameter")

const (
	DefaultGravity       = 9.8  // m/s², Earth standard
	DefaultTotalDuration = 10   // seconds
	DefaultTimeStep      = 0.01 // seconds

	// MaxSamples bounds ceil(TotalDuration/TimeStep).
	MaxSamples = 10_000_000
)

// Config holds the physical constants and sampling of a simulation.
// Units are whatever the caller uses for the launch speed; nothing is converted.
type Config struct {
	Gravity       float64 `json:"gravity"`
	TotalDuration float64 `json:"totalDuration"` // exclusive upper bound of the time span
	TimeStep      float64 `json:"timeStep"`
}

// DefaultConfig returns {Gravity: 9.8, TotalDuration: 10, TimeStep: 0.01}.
func DefaultConfig() Config {
	return Config{
		Gravity:       DefaultGravity,
		TotalDuration: DefaultTotalDuration,
		TimeStep:      DefaultTimeStep,
	}
}

// Option overrides one field of DefaultConfig.
type Option func(*Config)

// WithGravity sets the gravitational acceleration. Zero and negative values
// are accepted.
func WithGravity(g float64) Option {
	return func(c *Config) { c.Gravity = g }
}

// WithTotalDuration sets the exclusive end of the sampled time span.
func WithTotalDuration(d float64) Option {
	return func(c *Config) { c.TotalDuration = d }
}

// WithTimeStep sets the sampling interval.
func WithTimeStep(dt float64) Option {
	return func(c *Config) { c.TimeStep = dt }
}

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// Validate reports whether c describes a finite, non-empty time span.
func (c Config) Validate() error {
	if err := finite("gravity", c.Gravity); err != nil {
		return err
	}
	_, err := sampleCount(c.TotalDuration, c.TimeStep)
	return err
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameter, name, v)
	}
	return nil
}
