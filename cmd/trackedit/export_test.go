package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackedit/internal/editor"
	"trackedit/internal/geom"
	"trackedit/internal/render"
	"trackedit/internal/track"
)

func testEditor(t *testing.T) *editor.Editor {
	t.Helper()
	ed, err := editor.New(editor.Options{
		Bounds:      track.Bounds{Width: 600, Height: 400},
		Params:      track.DefaultParams(),
		MaxAttempts: track.DefaultMaxAttempts,
		Rand:        newRand(5),
		Sink:        editor.DirSink{Dir: t.TempDir()},
	})
	require.NoError(t, err)
	return ed
}

func TestExportGenerated(t *testing.T) {
	dir := t.TempDir()
	job := exportJob{PNG: filepath.Join(dir, "t.png"), CSV: filepath.Join(dir, "t.csv"), Grass: true}
	require.NoError(t, job.run(testEditor(t), render.DefaultStyle()))

	pts, _, err := geom.LoadCSV(job.CSV)
	require.NoError(t, err)
	assert.Equal(t, pts[0], pts[len(pts)-1])

	f, err := os.Open(job.PNG)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
}

func TestExportLoadsInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, []byte("1,2,0\n3,4,0\n1,2,0\n"), 0o644))
	job := exportJob{In: in, CSV: filepath.Join(dir, "out.csv")}
	require.NoError(t, job.run(testEditor(t), render.DefaultStyle()))
	b, err := os.ReadFile(job.CSV)
	require.NoError(t, err)
	assert.Equal(t, "1.00,2.00,0.00\n3.00,4.00,0.00\n1.00,2.00,0.00\n", string(b))
}

func TestExportRejectsOffCanvasInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "far.csv")
	require.NoError(t, os.WriteFile(in, []byte("1e12,10,0\n100,100,0\n"), 0o644))
	job := exportJob{In: in, PNG: filepath.Join(dir, "out.png")}
	err := job.run(testEditor(t), render.DefaultStyle())
	assert.ErrorIs(t, err, editor.ErrOutOfCanvas)
	assert.NoFileExists(t, job.PNG)
}

func TestExportMissingInput(t *testing.T) {
	job := exportJob{In: filepath.Join(t.TempDir(), "missing.csv"), CSV: "unused.csv"}
	assert.Error(t, job.run(testEditor(t), render.DefaultStyle()))
}
