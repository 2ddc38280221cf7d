package render

import (
	"image"
	"image/color"
)

// StrokeStyle describes how a path is stroked. Dash alternates on/off
// lengths in canvas units; an empty Dash strokes solid.
type StrokeStyle struct {
	Color color.Color
	Width float64
	Dash  []float64
}

// Surface is a drawing target addressed in logical canvas units.
type Surface interface {
	Size() (w, h float64)
	Fill(c color.Color)
	DrawImage(img image.Image, x, y float64)
	FillRect(x, y, w, h float64, c color.Color)
	StrokePath(p *Path, st StrokeStyle)
}
