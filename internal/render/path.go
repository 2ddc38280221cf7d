package render

import (
	"math"

	"trackedit/internal/geom"
)

type Verb int

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
)

func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	}
	return "Unknown"
}

// Segment is one path command. Ctrl is only meaningful for QuadTo.
type Segment struct {
	Verb Verb
	Ctrl geom.Point
	To   geom.Point
}

// Path is a sequence of move, line and quadratic commands.
type Path struct {
	segs []Segment
}

func NewPath() *Path { return &Path{} }

func (p *Path) MoveTo(to geom.Point) *Path {
	p.segs = append(p.segs, Segment{Verb: VerbMoveTo, To: to})
	return p
}

func (p *Path) LineTo(to geom.Point) *Path {
	p.segs = append(p.segs, Segment{Verb: VerbLineTo, To: to})
	return p
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(ctrl, to geom.Point) *Path {
	p.segs = append(p.segs, Segment{Verb: VerbQuadTo, Ctrl: ctrl, To: to})
	return p
}

func (p *Path) Segments() []Segment { return p.segs }

// Len counts drawing segments, MoveTo excluded.
func (p *Path) Len() int {
	n := 0
	for _, s := range p.segs {
		if s.Verb != VerbMoveTo {
			n++
		}
	}
	return n
}

func (p *Path) Empty() bool { return p.Len() == 0 }

// maxSubdiv caps the pieces per curve so far-off points stay cheap.
const maxSubdiv = 4096

// Flatten approximates the path with polylines whose pieces are at most
// step long, one polyline per subpath. A curve is split into at most
// maxSubdiv pieces.
func (p *Path) Flatten(step float64) [][]geom.Point {
	if step <= 0 {
		step = 1
	}
	var out [][]geom.Point
	var cur []geom.Point
	for _, s := range p.segs {
		switch s.Verb {
		case VerbMoveTo:
			if len(cur) > 1 {
				out = append(out, cur)
			}
			cur = []geom.Point{s.To}
		case VerbLineTo:
			if len(cur) == 0 {
				cur = []geom.Point{s.To}
				continue
			}
			cur = append(cur, s.To)
		case VerbQuadTo:
			if len(cur) == 0 {
				// a curve with no current point starts at its control point
				cur = []geom.Point{s.Ctrl}
			}
			p0 := cur[len(cur)-1]
			n := 1
			if f := math.Ceil((p0.Dist(s.Ctrl) + s.Ctrl.Dist(s.To)) / step); f > maxSubdiv {
				n = maxSubdiv
			} else if f > 1 {
				n = int(f)
			}
			for i := 1; i <= n; i++ {
				cur = append(cur, quadAt(p0, s.Ctrl, s.To, float64(i)/float64(n)))
			}
		}
	}
	if len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

func quadAt(p0, c, p1 geom.Point, t float64) geom.Point {
	u := 1 - t
	return p0.Scale(u * u).Add(c.Scale(2 * u * t)).Add(p1.Scale(t * t))
}

// Dashes splits a polyline into the "on" runs of the dash pattern.
func Dashes(pl []geom.Point, dash []float64) [][]geom.Point {
	total := 0.0
	for _, d := range dash {
		total += d
	}
	if len(dash) == 0 || total <= 0 || len(pl) < 2 {
		return [][]geom.Point{pl}
	}
	var out [][]geom.Point
	idx, left := 0, dash[0]
	on := true
	run := []geom.Point{pl[0]}
	for i := 1; i < len(pl); i++ {
		a, b := pl[i-1], pl[i]
		segLen := a.Dist(b)
		pos := 0.0
		for segLen-pos > left {
			pos += left
			pt := geom.Lerp(a, b, pos/segLen)
			if on {
				run = append(run, pt)
				out = append(out, run)
				run = nil
			} else {
				run = []geom.Point{pt}
			}
			on = !on
			idx = (idx + 1) % len(dash)
			left = dash[idx]
		}
		left -= segLen - pos
		if on {
			run = append(run, b)
		}
	}
	if on && len(run) > 1 {
		out = append(out, run)
	}
	return out
}
