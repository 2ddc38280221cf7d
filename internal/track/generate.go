package track

import (
	"math"
	"math/rand/v2"

	"trackedit/internal/geom"
)

// Track is one random-walk candidate. Data has exactly Points entries and
// is not closed; the extrema cover Data[1:] only, so the seed never
// contributes to them.
type Track struct {
	Points  int
	Data    []geom.Point
	MinX    float64
	MinY    float64
	MaxX    float64
	MaxY    float64
	MinSize float64
	MaxSize float64
}

// Generate runs one constrained random walk from p.Origin.
func Generate(rng *rand.Rand, p Params) (Track, error) {
	if err := p.Validate(); err != nil {
		return Track{}, err
	}
	t := walk(rng, p)
	taper(t.Data)
	t.bounds()
	return t, nil
}

// walk draws the vertex count and the untapered random walk. Each step
// consumes three draws: segment length, turn magnitude, turn sign.
func walk(rng *rand.Rand, p Params) Track {
	var t Track
	t.Points = int(math.Floor(rng.Float64()*float64(p.Max-p.Min))) + p.Min
	t.Data = make([]geom.Point, t.Points)
	t.Data[0] = p.Origin

	maxAngle := p.maxAngleRad()
	direction := 0.0
	for i := 1; i < t.Points; i++ {
		l := math.Floor(rng.Float64()*(p.MaxSegmentLength-p.MinSegmentLength)) + p.MinSegmentLength
		step := geom.Point{X: math.Sin(direction) * l, Y: math.Cos(direction) * l}
		t.Data[i] = t.Data[i-1].Add(step)

		turn := math.Pow(rng.Float64(), 1/p.Curviness)
		if rng.Float64() < 0.5 {
			turn = -turn
		}
		direction += turn * maxAngle
	}
	return t
}

// taper pulls the last quarter of the walk onto straight lines toward the
// seed, ramping the blend from 0 at q up to (c-1)/c at the tail.
func taper(data []geom.Point) {
	n := len(data)
	q := int(math.Floor(float64(n) * 0.75))
	c := n - q
	seed := data[0]
	for i := q; i < n; i++ {
		a := float64(i - q)
		data[i] = geom.Lerp(data[i], seed, a/float64(c))
	}
}

func (t *Track) bounds() {
	if len(t.Data) < 2 {
		return
	}
	first := t.Data[1]
	bb := geom.BBox{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
	for _, p := range t.Data[2:] {
		bb = bb.Extend(p)
	}
	t.MinX, t.MinY, t.MaxX, t.MaxY = bb.MinX, bb.MinY, bb.MaxX, bb.MaxY
	t.MinSize = math.Min(t.MinX, t.MinY)
	t.MaxSize = math.Max(t.MaxX, t.MaxY)
}

// Inside reports whether every vertex lies in [0,w]x[0,h].
func (t Track) Inside(w, h float64) bool {
	for _, p := range t.Data {
		if !geom.Contains(p, w, h) {
			return false
		}
	}
	return true
}
