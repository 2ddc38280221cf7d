package geom

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows b to include p. The first point of a sequence should
// initialise the box with BoxOf instead.
func (b BBox) Extend(p Point) BBox {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

// BoxOf returns the bounding box of pts, or the zero box when pts is empty.
func BoxOf(pts []Point) BBox {
	if len(pts) == 0 {
		return BBox{}
	}
	bb := BBox{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		bb = bb.Extend(p)
	}
	return bb
}

// Contains reports whether p lies inside [0,w]x[0,h], edges included.
func Contains(p Point, w, h float64) bool {
	return p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h
}
