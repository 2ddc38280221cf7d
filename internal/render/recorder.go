package render

import (
	"image"
	"image/color"
)

type OpKind int

const (
	OpFill OpKind = iota
	OpImage
	OpRect
	OpStroke
)

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	Color color.Color
	X, Y  float64
	W, H  float64
	Image image.Image
	Path  *Path
	Style StrokeStyle
}

// Recorder is a Surface that keeps the calls it receives.
type Recorder struct {
	W, H float64
	Ops  []Op
}

func NewRecorder(w, h float64) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Fill(c color.Color) { r.Ops = append(r.Ops, Op{Kind: OpFill, Color: c}) }

func (r *Recorder) DrawImage(img image.Image, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, Image: img, X: x, Y: y})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokePath(p *Path, st StrokeStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Path: p, Style: st})
}

// Count returns the number of recorded ops of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Segments totals the drawing segments of every stroked path.
func (r *Recorder) Segments() int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == OpStroke {
			n += op.Path.Len()
		}
	}
	return n
}

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
