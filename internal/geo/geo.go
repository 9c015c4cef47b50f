// Package geo exposes a sampled trajectory as a planar geometry.
package geo

import (
	"errors"
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"
)

// ErrTooFewPoints is returned when a path has fewer than two samples.
var ErrTooFewPoints = errors.New("path must have at least 2 points")

// Series is an ordered set of planar points. trajectory.Trajectory
// satisfies it.
type Series interface {
	Len() int
	XY(i int) (x, y float64)
}

// LineString builds an XY line string through every sample of s. A path
// whose samples all coincide is rejected by the geometry constructor.
func LineString(s Series) (geom.LineString, error) {
	n := s.Len()
	if n < 2 {
		return geom.LineString{}, fmt.Errorf("%w, got %d", ErrTooFewPoints, n)
	}

	flatCoords := make([]float64, 0, n*2)
	for i := 0; i < n; i++ {
		x, y := s.XY(i)
		flatCoords = append(flatCoords, x, y)
	}

	seq := geom.NewSequence(flatCoords, geom.DimXY)
	return geom.NewLineString(seq)
}

// PathLength returns the distance travelled along the sampled path.
func PathLength(s Series) (float64, error) {
	ls, err := LineString(s)
	if err != nil {
		return 0, err
	}
	return ls.Length(), nil
}

// WKT returns the path as a well-known-text LINESTRING.
func WKT(s Series) (string, error) {
	ls, err := LineString(s)
	if err != nil {
		return "", err
	}
	return ls.AsText(), nil
}
