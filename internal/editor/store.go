package editor

import "trackedit/internal/geom"

// Store holds the current track as an open sequence. The closing
// duplicate is never stored; Points derives it on read.
type Store struct {
	open []geom.Point
}

func (s *Store) Clear() { s.open = nil }

// ReplaceAll installs a generated or loaded loop. A trailing copy of the
// first point is treated as the closing duplicate and dropped.
func (s *Store) ReplaceAll(pts []geom.Point) {
	n := len(pts)
	if n > 1 && pts[n-1] == pts[0] {
		n--
	}
	s.open = append([]geom.Point(nil), pts[:n]...)
}

// Append adds a hand-placed point just before the closing duplicate.
func (s *Store) Append(p geom.Point) {
	s.open = append(s.open, p)
}

// Points returns the closed view: the open points followed by a copy of
// the first. An empty store yields nil.
func (s *Store) Points() []geom.Point {
	if len(s.open) == 0 {
		return nil
	}
	out := make([]geom.Point, 0, len(s.open)+1)
	out = append(out, s.open...)
	return append(out, s.open[0])
}

// Open returns a copy of the stored points without the closing duplicate.
func (s *Store) Open() []geom.Point {
	return append([]geom.Point(nil), s.open...)
}

// Len counts the open points.
func (s *Store) Len() int { return len(s.open) }

func (s *Store) Empty() bool { return len(s.open) == 0 }

func (s *Store) Bounds() geom.BBox { return geom.BoxOf(s.open) }
