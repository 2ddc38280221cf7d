package editor

import (
	"os"
	"path/filepath"
)

// ExportName is the file name control points are saved under.
const ExportName = "control_points.csv"

// Sink accepts an exported payload.
type Sink interface {
	Save(name string, payload []byte) (string, error)
}

// DirSink writes payloads into Dir, creating it when missing. It returns
// the path written.
type DirSink struct {
	Dir string
}

func (d DirSink) Save(name string, payload []byte) (string, error) {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, payload, 0o644); err != nil {
		return "", err
	}
	return p, nil
}
