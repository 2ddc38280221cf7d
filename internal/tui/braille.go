package tui

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"trackedit/internal/geom"
	"trackedit/internal/render"
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) bool {
	if mx < 0 || my < 0 {
		return false
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return false
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	return true
}

// lineMicro walks a Bresenham line on the microgrid, calling plot for
// every micro-pixel.
func lineMicro(x0, y0, x1, y1 int, plot func(mx, my int)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) glyph(cx, cy int) rune {
	mask := b.m[cy][cx]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

// brailleSurface draws the logical canvas onto terminal cells. Thin
// strokes and markers set braille dots in the cell foreground; strokes at
// least one cell wide paint cell backgrounds instead.
type brailleSurface struct {
	buf   *brailleBuf
	fg    [][]color.Color
	bg    [][]color.Color
	mark  map[[2]int]rune
	scale float64 // micro-pixels per canvas unit
	cw    float64
	ch    float64
}

// newBrailleSurface fits a cw x ch canvas into at most w x h cells,
// keeping its aspect ratio.
func newBrailleSurface(w, h int, cw, ch float64) *brailleSurface {
	scale := fitScale(w, h, cw, ch)
	cols := min(w, int(math.Ceil(cw*scale/2)))
	rows := min(h, int(math.Ceil(ch*scale/4)))
	s := &brailleSurface{
		buf:   newBrailleBuf(max(cols, 1), max(rows, 1)),
		mark:  map[[2]int]rune{},
		scale: scale,
		cw:    cw,
		ch:    ch,
	}
	s.fg = make([][]color.Color, s.buf.h)
	s.bg = make([][]color.Color, s.buf.h)
	for y := range s.fg {
		s.fg[y] = make([]color.Color, s.buf.w)
		s.bg[y] = make([]color.Color, s.buf.w)
	}
	return s
}

// fitScale is the micro-pixels per canvas unit that fit cw x ch into
// w x h cells.
func fitScale(w, h int, cw, ch float64) float64 {
	if cw <= 0 || ch <= 0 {
		return 1
	}
	return math.Max(math.Min(float64(w*2)/cw, float64(h*4)/ch), 1e-6)
}

func (s *brailleSurface) Size() (float64, float64) { return s.cw, s.ch }

func (s *brailleSurface) micro(p geom.Point) (int, int) {
	return int(math.Floor(p.X * s.scale)), int(math.Floor(p.Y * s.scale))
}

func (s *brailleSurface) Fill(c color.Color) {
	for y := 0; y < s.buf.h; y++ {
		for x := 0; x < s.buf.w; x++ {
			s.buf.m[y][x] = 0
			s.fg[y][x] = nil
			s.bg[y][x] = c
		}
	}
}

// DrawImage samples img at each covered cell centre.
func (s *brailleSurface) DrawImage(img image.Image, x, y float64) {
	b := img.Bounds()
	for cy := 0; cy < s.buf.h; cy++ {
		for cx := 0; cx < s.buf.w; cx++ {
			px := (float64(cx)*2 + 1) / s.scale
			py := (float64(cy)*4 + 2) / s.scale
			if px < x || py < y || px >= x+float64(b.Dx()) || py >= y+float64(b.Dy()) {
				continue
			}
			s.buf.m[cy][cx] = 0
			s.fg[cy][cx] = nil
			s.bg[cy][cx] = img.At(b.Min.X+int(px-x), b.Min.Y+int(py-y))
		}
	}
}

func (s *brailleSurface) FillRect(x, y, w, h float64, c color.Color) {
	x0, y0 := s.micro(geom.Pt(x, y))
	x1, y1 := s.micro(geom.Pt(x+w, y+h))
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	for my := y0; my < y1; my++ {
		for mx := x0; mx < x1; mx++ {
			s.dot(mx, my, c)
		}
	}
}

func (s *brailleSurface) dot(mx, my int, c color.Color) {
	if s.buf.setPixel(mx, my) {
		s.fg[my/4][mx/2] = c
	}
}

func (s *brailleSurface) paint(mx, my int, c color.Color) {
	if mx < 0 || my < 0 || mx/2 >= s.buf.w || my/4 >= s.buf.h {
		return
	}
	s.bg[my/4][mx/2] = c
}

func (s *brailleSurface) StrokePath(p *render.Path, st render.StrokeStyle) {
	if p.Empty() {
		return
	}
	r := st.Width * s.scale / 2
	plot := func(mx, my int) { s.dot(mx, my, st.Color) }
	if r >= 1 {
		ri := int(math.Round(r))
		plot = func(mx, my int) {
			for dy := -ri; dy <= ri; dy++ {
				for dx := -ri; dx <= ri; dx++ {
					if dx*dx+dy*dy <= ri*ri {
						s.paint(mx+dx, my+dy, st.Color)
					}
				}
			}
		}
	}
	for _, pl := range p.Flatten(1 / s.scale) {
		for _, run := range render.Dashes(pl, st.Dash) {
			for i := 1; i < len(run); i++ {
				x0, y0 := s.micro(run[i-1])
				x1, y1 := s.micro(run[i])
				lineMicro(x0, y0, x1, y1, plot)
			}
		}
	}
}

// cellToCanvas maps a cell to the canvas coordinates of its centre.
func (s *brailleSurface) cellToCanvas(cx, cy int) (float64, float64) {
	return (float64(cx)*2 + 1) / s.scale, (float64(cy)*4 + 2) / s.scale
}

// canvasToCell is the inverse of cellToCanvas.
func (s *brailleSurface) canvasToCell(p geom.Point) (int, int) {
	mx, my := s.micro(p)
	return mx / 2, my / 4
}

// highlight replaces the glyph of the cell holding p.
func (s *brailleSurface) highlight(p geom.Point, r rune) {
	cx, cy := s.canvasToCell(p)
	if cx < 0 || cy < 0 || cx >= s.buf.w || cy >= s.buf.h {
		return
	}
	s.mark[[2]int{cx, cy}] = r
}

func colorHex(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// lines renders the surface, styling runs of cells that share colours.
func (s *brailleSurface) lines() []string {
	styles := map[[2]string]lipgloss.Style{}
	styleFor := func(fg, bg string) lipgloss.Style {
		k := [2]string{fg, bg}
		st, ok := styles[k]
		if !ok {
			st = lipgloss.NewStyle()
			if fg != "" {
				st = st.Foreground(lipgloss.Color(fg))
			}
			if bg != "" {
				st = st.Background(lipgloss.Color(bg))
			}
			styles[k] = st
		}
		return st
	}
	out := make([]string, s.buf.h)
	for y := 0; y < s.buf.h; y++ {
		var sb strings.Builder
		var run []rune
		curFg, curBg := "", ""
		flush := func() {
			if len(run) > 0 {
				sb.WriteString(styleFor(curFg, curBg).Render(string(run)))
				run = run[:0]
			}
		}
		for x := 0; x < s.buf.w; x++ {
			fg, bg := colorHex(s.fg[y][x]), colorHex(s.bg[y][x])
			g := s.buf.glyph(x, y)
			if r, ok := s.mark[[2]int{x, y}]; ok {
				g, fg = r, hoverCol
			}
			if fg != curFg || bg != curBg {
				flush()
				curFg, curBg = fg, bg
			}
			run = append(run, g)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
