package geom

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// EncodeCSV writes one "x,y,z" line per point with two decimals and a
// trailing LF. No header is written, so an empty slice yields no output.
func EncodeCSV(w io.Writer, pts []Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%.2f,%.2f,%.2f\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// MarshalCSV is EncodeCSV into a string.
func MarshalCSV(pts []Point) string {
	var sb strings.Builder
	_ = EncodeCSV(&sb, pts)
	return sb.String()
}

// ParseCSV reads control points in the export format. A missing z column
// means z=0. Rows that fail to parse or hold NaN/Inf are skipped, like a
// header line.
func ParseCSV(r io.Reader) (points []Point, bbox BBox, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, BBox{}, err
	}
	if len(recs) == 0 {
		return nil, BBox{}, errors.New("empty csv")
	}
	for _, row := range recs {
		if len(row) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err1 != nil || err2 != nil || !finite(x) || !finite(y) {
			continue
		}
		pt := Point{X: x, Y: y}
		if len(row) > 2 {
			if z, err3 := strconv.ParseFloat(strings.TrimSpace(row[2]), 64); err3 == nil {
				if !finite(z) {
					continue
				}
				pt.Z = z
			}
		}
		points = append(points, pt)
		if len(points) == 1 {
			bbox = BBox{MinX: pt.X, MinY: pt.Y, MaxX: pt.X, MaxY: pt.Y}
		} else {
			bbox = bbox.Extend(pt)
		}
	}
	if len(points) == 0 {
		return nil, BBox{}, errors.New("csv: no valid points parsed")
	}
	return points, bbox, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// LoadCSV reads a control point file from disk.
func LoadCSV(path string) ([]Point, BBox, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, BBox{}, err
	}
	defer f.Close()
	return ParseCSV(f)
}
