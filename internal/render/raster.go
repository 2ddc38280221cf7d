package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"trackedit/internal/geom"
)

// Raster is a Surface backed by an RGBA image, one pixel per canvas unit
// times Scale.
type Raster struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	scale float64
	w, h  float64
}

// NewRaster allocates a w x h canvas rendered at scale pixels per unit.
func NewRaster(w, h, scale float64) *Raster {
	if scale <= 0 {
		scale = 1
	}
	pw, ph := int(math.Ceil(w*scale)), int(math.Ceil(h*scale))
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, pw, ph)),
		ras:   vector.NewRasterizer(pw, ph),
		scale: scale,
		w:     w,
		h:     h,
	}
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() (float64, float64) { return r.w, r.h }

func (r *Raster) Fill(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) DrawImage(img image.Image, x, y float64) {
	sb := img.Bounds()
	at := image.Pt(int(math.Round(x*r.scale)), int(math.Round(y*r.scale)))
	if r.scale == 1 {
		draw.Draw(r.img, image.Rectangle{Min: at, Max: at.Add(sb.Size())}, img, sb.Min, draw.Over)
		return
	}
	dw := int(math.Round(float64(sb.Dx()) * r.scale))
	dh := int(math.Round(float64(sb.Dy()) * r.scale))
	draw.NearestNeighbor.Scale(r.img, image.Rect(at.X, at.Y, at.X+dw, at.Y+dh), img, sb, draw.Over, nil)
}

func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	rect := image.Rect(
		int(math.Round(x*r.scale)), int(math.Round(y*r.scale)),
		int(math.Round((x+w)*r.scale)), int(math.Round((y+h)*r.scale)),
	)
	draw.Draw(r.img, rect, image.NewUniform(c), image.Point{}, draw.Over)
}

// StrokePath strokes p with round joins. Every piece is emitted with the
// same winding so overlapping pieces union instead of cancelling.
func (r *Raster) StrokePath(p *Path, st StrokeStyle) {
	if p.Empty() || st.Width <= 0 {
		return
	}
	hw := st.Width * r.scale / 2
	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
	for _, pl := range p.Flatten(1 / r.scale) {
		for _, run := range Dashes(pl, st.Dash) {
			r.strokeRun(run, hw)
		}
	}
	r.ras.Draw(r.img, b, image.NewUniform(st.Color), image.Point{})
}

func (r *Raster) strokeRun(run []geom.Point, hw float64) {
	pts := make([]geom.Point, len(run))
	for i, q := range run {
		pts[i] = q.Scale(r.scale)
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := a.Dist(b)
		if d == 0 {
			continue
		}
		nx, ny := -(b.Y-a.Y)/d*hw, (b.X-a.X)/d*hw
		r.ras.MoveTo(float32(a.X+nx), float32(a.Y+ny))
		r.ras.LineTo(float32(b.X+nx), float32(b.Y+ny))
		r.ras.LineTo(float32(b.X-nx), float32(b.Y-ny))
		r.ras.LineTo(float32(a.X-nx), float32(a.Y-ny))
		r.ras.ClosePath()
	}
	for _, q := range pts {
		r.disc(q, hw)
	}
}

// disc adds a clockwise polygon approximating a circle, matching the
// winding of the segment quads above.
func (r *Raster) disc(c geom.Point, radius float64) {
	const n = 12
	r.ras.MoveTo(float32(c.X+radius), float32(c.Y))
	for i := 1; i < n; i++ {
		a := -2 * math.Pi * float64(i) / n
		r.ras.LineTo(float32(c.X+radius*math.Cos(a)), float32(c.Y+radius*math.Sin(a)))
	}
	r.ras.ClosePath()
}

func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}
