package track

import (
	"errors"
	"fmt"
	"math"

	"trackedit/internal/geom"
)

var (
	ErrInvalidParams     = errors.New("invalid track parameters")
	ErrAttemptsExhausted = errors.New("no track fit inside the canvas")
)

// Params drives a single random-walk attempt.
type Params struct {
	Min              int     `toml:"min"`
	Max              int     `toml:"max"`
	MinSegmentLength float64 `toml:"min_segment_length"`
	MaxSegmentLength float64 `toml:"max_segment_length"`
	// Curviness is the inverse exponent applied to the turn magnitude;
	// smaller values give rarer but sharper turns.
	Curviness float64 `toml:"curviness"`
	// MaxAngle is the largest single turn, in degrees.
	MaxAngle float64 `toml:"max_angle"`
	// Origin seeds the walk.
	Origin geom.Point `toml:"-"`
}

// DefaultOrigin is the seed point of every generated track.
var DefaultOrigin = geom.Point{X: 300, Y: 200}

// DefaultParams are the parameters the editor generates with.
func DefaultParams() Params {
	return Params{
		Min:              100,
		Max:              200,
		MinSegmentLength: 3,
		MaxSegmentLength: 6,
		Curviness:        0.1,
		MaxAngle:         70,
		Origin:           DefaultOrigin,
	}
}

// Validate rejects parameter sets that would draw an empty walk or
// produce NaN coordinates.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"min_segment_length", p.MinSegmentLength},
		{"max_segment_length", p.MaxSegmentLength},
		{"curviness", p.Curviness},
		{"max_angle", p.MaxAngle},
		{"origin.x", p.Origin.X},
		{"origin.y", p.Origin.Y},
		{"origin.z", p.Origin.Z},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, f.name)
		}
	}
	switch {
	case p.Min < 1:
		return fmt.Errorf("%w: min must be at least 1, got %d", ErrInvalidParams, p.Min)
	case p.Min >= p.Max:
		return fmt.Errorf("%w: min (%d) must be less than max (%d)", ErrInvalidParams, p.Min, p.Max)
	case p.MinSegmentLength <= 0:
		return fmt.Errorf("%w: min_segment_length must be positive", ErrInvalidParams)
	case p.MinSegmentLength > p.MaxSegmentLength:
		return fmt.Errorf("%w: min_segment_length (%g) exceeds max_segment_length (%g)",
			ErrInvalidParams, p.MinSegmentLength, p.MaxSegmentLength)
	case p.Curviness <= 0:
		return fmt.Errorf("%w: curviness must be positive", ErrInvalidParams)
	case p.MaxAngle < 0:
		return fmt.Errorf("%w: max_angle must not be negative", ErrInvalidParams)
	}
	return nil
}

// maxAngleRad converts the configured degrees to radians.
func (p Params) maxAngleRad() float64 {
	return p.MaxAngle / 360 * 2 * math.Pi
}
