package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackedit/internal/geom"
	"trackedit/internal/track"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "trackedit.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, track.Bounds{Width: 600, Height: 400}, cfg.Bounds())
	assert.Equal(t, track.DefaultParams(), cfg.Params())
	assert.Equal(t, track.DefaultMaxAttempts, cfg.Generator.MaxAttempts)
	assert.Equal(t, "trackedit.log", cfg.Files.LogFile)

	st, err := cfg.RenderStyle()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x27, 0x69, 0x2c, 0xff}, st.Background)
	assert.Equal(t, 20.0, st.TrackWidth)
	assert.Equal(t, []float64{3, 6}, st.LineDash)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	p := writeConfig(t, `
[canvas]
width = 800.0
height = 600.0

[generator]
min = 20
max = 40
curviness = 0.5
origin_x = 400.0
origin_y = 300.0
max_attempts = 50
seed = 7

[style]
track = "#222"

[files]
output_dir = "exports"
log_file = "debug.log"
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.Canvas.Width)
	assert.Equal(t, 600.0, cfg.Canvas.Height)
	assert.Equal(t, 20, cfg.Generator.Min)
	assert.Equal(t, 40, cfg.Generator.Max)
	assert.Equal(t, 0.5, cfg.Generator.Curviness)
	assert.Equal(t, 3.0, cfg.Generator.MinSegmentLength, "unset keys keep defaults")
	assert.Equal(t, geom.Point{X: 400, Y: 300}, cfg.Params().Origin)
	assert.Equal(t, 50, cfg.Generator.MaxAttempts)
	assert.Equal(t, uint64(7), cfg.Generator.Seed)
	assert.Equal(t, "exports", cfg.Files.OutputDir)
	assert.Equal(t, "debug.log", cfg.Files.LogFile)

	st, err := cfg.RenderStyle()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x22, 0x22, 0x22, 0xff}, st.Track)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"syntax":     "[canvas\nwidth = 1",
		"canvas":     "[canvas]\nwidth = -1.0",
		"params":     "[generator]\nmin = 300\nmax = 200",
		"colour":     "[style]\nbackground = \"grass\"",
		"dash":       "[style]\nline_dash = [3.0, -1.0]",
		"zero curvy": "[generator]\ncurviness = 0.0",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestParamsErrorIsTyped(t *testing.T) {
	cfg := Default()
	cfg.Generator.Curviness = 0
	assert.ErrorIs(t, cfg.Validate(), track.ErrInvalidParams)
}
