package tui

import (
	"math"
	"strings"

	"trackedit/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen geometry shared by View and mouse handling.
type layout struct {
	contentW int
	contentH int
	mapX     int
	mapY     int
	mapW     int
	mapH     int
}

func (m Model) layout() layout {
	contentH := m.height - headerHeight - footerHeight
	if contentH < 4 {
		contentH = 4
	}
	contentW := max(10, m.width)
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
	}
	mapW := contentW - sw - 1
	if mapW < 10 {
		mapW = 10
	}
	mapX := sw
	if m.showSidebar {
		mapX++
	}
	return layout{
		contentW: contentW,
		contentH: contentH,
		mapX:     mapX,
		mapY:     headerHeight,
		mapW:     max(8, mapW),
		mapH:     max(4, contentH),
	}
}

// screenToCanvas maps a terminal cell to canvas coordinates. ok is false
// when the cell is outside the map area; points past the canvas edge are
// left for the editor to reject.
func (m Model) screenToCanvas(x, y int) (cx, cy float64, ok bool) {
	l := m.layout()
	if x < l.mapX || x >= l.mapX+l.mapW || y < l.mapY || y >= l.mapY+l.mapH {
		return 0, 0, false
	}
	b := m.ed.Bounds()
	scale := fitScale(l.mapW, l.mapH, b.Width, b.Height)
	cx = (float64(x-l.mapX)*2 + 1) / scale
	cy = (float64(y-l.mapY)*4 + 2) / scale
	return cx, cy, true
}

// renderCanvas draws the current frame into w x h cells.
func (m Model) renderCanvas(w, h int) string {
	b := m.ed.Bounds()
	s := newBrailleSurface(w, h, b.Width, b.Height)
	m.ed.Frame(s, m.style, m.bg)

	if m.hovering {
		if p, ok := m.nearestPoint(geom.Pt(m.hoverX, m.hoverY), 8/s.scale); ok {
			s.highlight(p, '◯')
		}
	}
	return strings.Join(s.lines(), "\n")
}

// nearestPoint finds the control point closest to at, within radius.
func (m Model) nearestPoint(at geom.Point, radius float64) (geom.Point, bool) {
	best := math.Inf(1)
	var bp geom.Point
	for _, p := range m.ed.Store.Open() {
		if d := p.Dist(at); d < best {
			best, bp = d, p
		}
	}
	return bp, best <= radius
}
