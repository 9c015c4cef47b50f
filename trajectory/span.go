package trajectory

import (
	"fmt"
	"math"
)

// Span returns the samples 0, step, 2*step, ... that are below stop:
// ceil(stop/step) values, each computed as k*step so no error accumulates.
// When stop/step rounds just above an integer the last sample can equal
// stop.
func Span(stop, step float64) ([]float64, error) {
	n, err := sampleCount(stop, step)
	if err != nil {
		return nil, err
	}
	ts := make([]float64, n)
	for k := 0; k < n; k++ {
		ts[k] = float64(k) * step
	}
	return ts, nil
}

func sampleCount(stop, step float64) (int, error) {
	if err := finite("total duration", stop); err != nil {
		return 0, err
	}
	if err := finite("time step", step); err != nil {
		return 0, err
	}
	if step <= 0 {
		return 0, fmt.Errorf("%w: time step must be positive, got %v", ErrInvalidParameter, step)
	}
	if stop <= 0 {
		return 0, fmt.Errorf("%w: total duration must be positive, got %v", ErrInvalidParameter, stop)
	}
	n := math.Ceil(stop / step)
	if n > MaxSamples {
		return 0, fmt.Errorf("%w: %v/%v yields %.0f samples, limit is %d", ErrInvalidParameter, stop, step, n, MaxSamples)
	}
	return int(n), nil
}
