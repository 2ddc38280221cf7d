package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"trackedit/internal/geom"
)

// Style holds the colours and sizes of each layer.
type Style struct {
	Background  color.Color
	Track       color.Color
	TrackWidth  float64
	CenterLine  color.Color
	LineWidth   float64
	LineDash    []float64
	ControlPt   color.Color
	PointWidth  float64
	PointHeight float64
}

func DefaultStyle() Style {
	return Style{
		Background:  MustHex("#27692c"),
		Track:       MustHex("#111111"),
		TrackWidth:  20,
		CenterLine:  MustHex("#bbbbbb"),
		LineWidth:   1,
		LineDash:    []float64{3, 6},
		ControlPt:   MustHex("#ff0000"),
		PointWidth:  4,
		PointHeight: 4,
	}
}

// Hex parses "#rgb" or "#rrggbb".
func Hex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func MustHex(s string) color.Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Options selects the optional layers of a frame.
type Options struct {
	DrawBackground    bool
	DrawCenterLine    bool
	DrawControlPoints bool
	Style             Style
}

// TrackPath builds the closed smoothed curve through pts: one quadratic
// segment per point, using the point as control and the midpoint to its
// successor as end. pts is treated as cyclic.
func TrackPath(pts []geom.Point) *Path {
	p := NewPath()
	n := len(pts)
	if n == 0 {
		return p
	}
	p.MoveTo(pts[0])
	for i := 0; i < n; i++ {
		p1 := pts[i%n]
		p2 := pts[(i+1)%n]
		p.QuadTo(p1, geom.Midpoint(p1, p2))
	}
	return p
}

// Draw renders one frame of the track onto s.
func Draw(s Surface, pts []geom.Point, opts Options, bg *Background) {
	st := opts.Style
	if opts.DrawBackground && bg.Ready() {
		tile(s, bg)
	} else {
		s.Fill(st.Background)
	}
	if len(pts) == 0 {
		return
	}

	path := TrackPath(pts)
	s.StrokePath(path, StrokeStyle{Color: st.Track, Width: st.TrackWidth})
	if opts.DrawCenterLine {
		s.StrokePath(path, StrokeStyle{Color: st.CenterLine, Width: st.LineWidth, Dash: st.LineDash})
	}
	if opts.DrawControlPoints {
		for _, p := range pts {
			s.FillRect(p.X, p.Y, st.PointWidth, st.PointHeight, st.ControlPt)
		}
	}
}

func tile(s Surface, bg *Background) {
	img := bg.Image()
	b := img.Bounds()
	w, h := s.Size()
	for x := 0.0; x < w; x += float64(b.Dx()) {
		for y := 0.0; y < h; y += float64(b.Dy()) {
			s.DrawImage(img, x, y)
		}
	}
}
