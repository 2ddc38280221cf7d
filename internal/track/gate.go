package track

import (
	"fmt"
	"math/rand/v2"

	"trackedit/internal/geom"
)

// DefaultMaxAttempts caps GenerateValidTrack. Default parameters are
// accepted within a few dozen attempts on a 600x400 canvas.
const DefaultMaxAttempts = 100000

type Bounds struct {
	Width  float64
	Height float64
}

// Result is an accepted track. Points is closed: its last element is a
// copy of the first.
type Result struct {
	Points   []geom.Point
	Track    Track
	Attempts int
}

// GenerateValid samples tracks until one lies entirely inside b.
// maxAttempts <= 0 retries without limit.
func GenerateValid(rng *rand.Rand, b Bounds, p Params, maxAttempts int) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	for attempt := 1; maxAttempts <= 0 || attempt <= maxAttempts; attempt++ {
		t, err := Generate(rng, p)
		if err != nil {
			return Result{}, err
		}
		if !t.Inside(b.Width, b.Height) {
			continue
		}
		closed := make([]geom.Point, 0, len(t.Data)+1)
		closed = append(closed, t.Data...)
		closed = append(closed, t.Data[0])
		return Result{Points: closed, Track: t, Attempts: attempt}, nil
	}
	return Result{}, fmt.Errorf("%w after %d attempts", ErrAttemptsExhausted, maxAttempts)
}

// GenerateValidTrack generates a closed loop inside a w x h canvas with
// the default parameters.
func GenerateValidTrack(rng *rand.Rand, w, h float64) ([]geom.Point, error) {
	res, err := GenerateValid(rng, Bounds{Width: w, Height: h}, DefaultParams(), DefaultMaxAttempts)
	if err != nil {
		return nil, err
	}
	return res.Points, nil
}
