// Package trajectory evaluates the closed-form equations of motion of a
// projectile under constant gravity, without drag, over a fixed time grid.
//
// Positions are exact for every sample: there is no integration, so the
// step size only controls resolution, never accuracy.
package trajectory

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is one sample of a trajectory.
type Point struct {
	Time float64 `json:"t"`
	X    float64 `json:"x"` // horizontal position
	Y    float64 `json:"y"` // vertical position, negative below the launch point
}

// Trajectory is the sampled flight of one launch. It is never modified after
// Compute returns it; accessors hand out copies.
type Trajectory struct {
	speed float64
	angle float64 // degrees above horizontal
	cfg   Config

	t []float64
	x []float64
	y []float64
}

// Compute samples a launch using DefaultConfig adjusted by opts.
func Compute(initialSpeed, launchAngle float64, opts ...Option) (*Trajectory, error) {
	return NewConfig(opts...).Compute(initialSpeed, launchAngle)
}

// Compute samples the flight of a projectile launched at initialSpeed and
// launchAngle degrees above the horizontal. Any finite speed, angle and
// gravity is accepted; only the time span is constrained.
func (c Config) Compute(initialSpeed, launchAngle float64) (*Trajectory, error) {
	if err := finite("initial speed", initialSpeed); err != nil {
		return nil, err
	}
	if err := finite("launch angle", launchAngle); err != nil {
		return nil, err
	}
	if err := finite("gravity", c.Gravity); err != nil {
		return nil, err
	}
	ts, err := Span(c.TotalDuration, c.TimeStep)
	if err != nil {
		return nil, err
	}

	theta := mgl64.DegToRad(launchAngle)
	v0 := mgl64.Vec2{math.Cos(theta), math.Sin(theta)}.Mul(initialSpeed)
	halfG := 0.5 * c.Gravity

	xs := make([]float64, len(ts))
	ys := make([]float64, len(ts))
	for i, t := range ts {
		xs[i] = v0.X() * t
		ys[i] = v0.Y()*t - halfG*(t*t)
	}

	return &Trajectory{
		speed: initialSpeed,
		angle: launchAngle,
		cfg:   c,
		t:     ts,
		x:     xs,
		y:     ys,
	}, nil
}

// Len returns the number of samples.
func (tr *Trajectory) Len() int { return len(tr.t) }

// XY returns the horizontal and vertical position of sample i.
func (tr *Trajectory) XY(i int) (x, y float64) { return tr.x[i], tr.y[i] }

// At returns sample i.
func (tr *Trajectory) At(i int) Point {
	return Point{Time: tr.t[i], X: tr.x[i], Y: tr.y[i]}
}

func (tr *Trajectory) Times() []float64 { return clone(tr.t) }
func (tr *Trajectory) Xs() []float64    { return clone(tr.x) }
func (tr *Trajectory) Ys() []float64    { return clone(tr.y) }

// Points returns every sample in time order.
func (tr *Trajectory) Points() []Point {
	out := make([]Point, len(tr.t))
	for i := range out {
		out[i] = tr.At(i)
	}
	return out
}

// InitialSpeed returns the launch speed the trajectory was computed for.
func (tr *Trajectory) InitialSpeed() float64 { return tr.speed }

// LaunchAngle returns the launch angle in degrees.
func (tr *Trajectory) LaunchAngle() float64 { return tr.angle }

// Config returns the constants the trajectory was computed with.
func (tr *Trajectory) Config() Config { return tr.cfg }

func (tr *Trajectory) String() string {
	return fmt.Sprintf("trajectory(v0=%g angle=%g g=%g samples=%d)", tr.speed, tr.angle, tr.cfg.Gravity, len(tr.t))
}

func clone(s []float64) []float64 {
	return append([]float64(nil), s...)
}
