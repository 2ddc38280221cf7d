package editor

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"trackedit/internal/geom"
	"trackedit/internal/render"
	"trackedit/internal/track"
)

// ErrOutOfCanvas reports loaded points that a click could not have placed.
var ErrOutOfCanvas = errors.New("point outside canvas")

// Editor ties the point store and display state to the generator and the
// save sink. It is driven from a single goroutine.
type Editor struct {
	Store Store
	State State

	bounds      track.Bounds
	params      track.Params
	maxAttempts int
	rng         *rand.Rand
	sink        Sink

	// LastGen is the most recent accepted generation, if any.
	LastGen *track.Result
}

type Options struct {
	Bounds      track.Bounds
	Params      track.Params
	MaxAttempts int
	Rand        *rand.Rand
	Sink        Sink
}

func New(opts Options) (*Editor, error) {
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}
	if opts.Bounds.Width <= 0 || opts.Bounds.Height <= 0 {
		return nil, fmt.Errorf("canvas must have a positive size, got %gx%g", opts.Bounds.Width, opts.Bounds.Height)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	sink := opts.Sink
	if sink == nil {
		sink = DirSink{Dir: "."}
	}
	return &Editor{
		State:       DefaultState(),
		bounds:      opts.Bounds,
		params:      opts.Params,
		maxAttempts: opts.MaxAttempts,
		rng:         rng,
		sink:        sink,
	}, nil
}

func (e *Editor) Bounds() track.Bounds { return e.bounds }

// Generate replaces the store with a freshly accepted track. On failure the
// store is left untouched.
func (e *Editor) Generate() (track.Result, error) {
	res, err := track.GenerateValid(e.rng, e.bounds, e.params, e.maxAttempts)
	if err != nil {
		return track.Result{}, err
	}
	e.Store.ReplaceAll(res.Points)
	e.LastGen = &res
	return res, nil
}

func (e *Editor) Clear() {
	e.Store.Clear()
	e.LastGen = nil
}

// Load replaces the store with externally supplied points. Every point
// must be finite and inside the canvas; otherwise the store is unchanged.
func (e *Editor) Load(pts []geom.Point) error {
	for i, p := range pts {
		if !finite(p) || !geom.Contains(p, e.bounds.Width, e.bounds.Height) {
			return fmt.Errorf("%w: row %d (%g, %g) not within %gx%g",
				ErrOutOfCanvas, i+1, p.X, p.Y, e.bounds.Width, e.bounds.Height)
		}
	}
	e.Store.ReplaceAll(pts)
	e.LastGen = nil
	return nil
}

func finite(p geom.Point) bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Click places a point at canvas coordinates (x, y). Clicks outside the
// canvas are ignored and report false.
func (e *Editor) Click(x, y float64) bool {
	if !geom.Contains(geom.Pt(x, y), e.bounds.Width, e.bounds.Height) {
		return false
	}
	e.Store.Append(geom.Pt(x, y))
	return true
}

// Export renders the closed view as CSV.
func (e *Editor) Export() []byte {
	return []byte(geom.MarshalCSV(e.Store.Points()))
}

// Save hands the CSV export to the sink and returns where it went.
func (e *Editor) Save() (string, error) {
	return e.sink.Save(ExportName, e.Export())
}

// SaveAs hands an arbitrary payload to the sink.
func (e *Editor) SaveAs(name string, payload []byte) (string, error) {
	return e.sink.Save(name, payload)
}

// RenderOptions maps the display flags onto render layers.
func (e *Editor) RenderOptions(style render.Style) render.Options {
	return render.Options{
		DrawBackground:    e.State.GrassBackground,
		DrawCenterLine:    e.State.ShowTrackLines,
		DrawControlPoints: e.State.ShowControlPoints,
		Style:             style,
	}
}

// Frame draws the current track onto s.
func (e *Editor) Frame(s render.Surface, style render.Style, bg *render.Background) {
	render.Draw(s, e.Store.Points(), e.RenderOptions(style), bg)
}

// PNG renders the current frame at scale pixels per canvas unit.
func (e *Editor) PNG(style render.Style, bg *render.Background, scale float64) ([]byte, error) {
	r := render.NewRaster(e.bounds.Width, e.bounds.Height, scale)
	e.Frame(r, style, bg)
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Do runs cmd and returns a short status line describing the outcome.
func (e *Editor) Do(cmd Command) (string, error) {
	switch cmd {
	case GenerateTrack:
		res, err := e.Generate()
		if err != nil {
			return "generate failed", err
		}
		return fmt.Sprintf("generated %d points in %d attempts", res.Track.Points, res.Attempts), nil
	case ClearPoints:
		e.Clear()
		return "cleared", nil
	case SavePoints:
		p, err := e.Save()
		if err != nil {
			return "save failed", err
		}
		return fmt.Sprintf("saved %d points to %s", e.Store.Len(), p), nil
	case ToggleGrass, ToggleTrackLines, ToggleControlPoints:
		e.State = Apply(e.State, cmd)
		return Label(e.State, cmd), nil
	}
	return "", fmt.Errorf("unknown command %v", cmd)
}
