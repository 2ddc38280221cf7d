package geom

import "math"

// Point is a track vertex. Z is carried through every operation but the
// editor only ever places points on the z=0 plane.
type Point struct {
	X, Y, Z float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s, p.Z * s} }

// Lerp blends a toward b: t=0 yields a, t=1 yields b.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: b.X*t + a.X*(1-t),
		Y: b.Y*t + a.Y*(1-t),
		Z: b.Z*t + a.Z*(1-t),
	}
}

func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2, (a.Z + b.Z) / 2}
}

func (p Point) Equal(q Point) bool { return p == q }

// ApproxEqual compares component-wise within tol.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol && math.Abs(p.Z-q.Z) <= tol
}

// Dist is the planar distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}
