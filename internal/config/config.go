package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"trackedit/internal/geom"
	"trackedit/internal/render"
	"trackedit/internal/track"
)

type Config struct {
	Canvas    Canvas    `toml:"canvas"`
	Generator Generator `toml:"generator"`
	Style     Style     `toml:"style"`
	Files     Files     `toml:"files"`
}

type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Generator struct {
	track.Params
	OriginX float64 `toml:"origin_x"`
	OriginY float64 `toml:"origin_y"`
	// MaxAttempts bounds rejection sampling; 0 retries forever.
	MaxAttempts int `toml:"max_attempts"`
	// Seed fixes the random source; 0 seeds from the runtime.
	Seed uint64 `toml:"seed"`
}

// Style colours are "#rgb" or "#rrggbb".
type Style struct {
	Background  string    `toml:"background"`
	Track       string    `toml:"track"`
	TrackWidth  float64   `toml:"track_width"`
	CenterLine  string    `toml:"center_line"`
	LineWidth   float64   `toml:"line_width"`
	LineDash    []float64 `toml:"line_dash"`
	ControlPt   string    `toml:"control_point"`
	PointWidth  float64   `toml:"point_width"`
	PointHeight float64   `toml:"point_height"`
}

type Files struct {
	// GrassImage is tiled as the background; empty uses the built-in texture.
	GrassImage string `toml:"grass_image"`
	OutputDir  string `toml:"output_dir"`
	LogFile    string `toml:"log_file"`
}

func Default() Config {
	p := track.DefaultParams()
	return Config{
		Canvas: Canvas{Width: 600, Height: 400},
		Generator: Generator{
			Params:      p,
			OriginX:     p.Origin.X,
			OriginY:     p.Origin.Y,
			MaxAttempts: track.DefaultMaxAttempts,
		},
		Style: Style{
			Background:  "#27692c",
			Track:       "#111111",
			TrackWidth:  20,
			CenterLine:  "#bbbbbb",
			LineWidth:   1,
			LineDash:    []float64{3, 6},
			ControlPt:   "#ff0000",
			PointWidth:  4,
			PointHeight: 4,
		},
		Files: Files{
			OutputDir: ".",
			LogFile:   "trackedit.log",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, cfg.Validate()
	}
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Params returns the generator parameters with the configured origin.
func (c Config) Params() track.Params {
	p := c.Generator.Params
	p.Origin = geom.Point{X: c.Generator.OriginX, Y: c.Generator.OriginY}
	return p
}

func (c Config) Bounds() track.Bounds {
	return track.Bounds{Width: c.Canvas.Width, Height: c.Canvas.Height}
}

func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas must have a positive size, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if err := c.Params().Validate(); err != nil {
		return err
	}
	for _, d := range c.Style.LineDash {
		if d < 0 {
			return fmt.Errorf("line_dash entries must not be negative")
		}
	}
	_, err := c.RenderStyle()
	return err
}

// RenderStyle resolves the colour strings.
func (c Config) RenderStyle() (render.Style, error) {
	s := c.Style
	var err error
	hex := func(name, v string) color.Color {
		if err != nil {
			return nil
		}
		col, e := render.Hex(v)
		if e != nil {
			err = fmt.Errorf("style.%s: %w", name, e)
		}
		return col
	}
	st := render.Style{
		Background:  hex("background", s.Background),
		Track:       hex("track", s.Track),
		TrackWidth:  s.TrackWidth,
		CenterLine:  hex("center_line", s.CenterLine),
		LineWidth:   s.LineWidth,
		LineDash:    append([]float64(nil), s.LineDash...),
		ControlPt:   hex("control_point", s.ControlPt),
		PointWidth:  s.PointWidth,
		PointHeight: s.PointHeight,
	}
	if err != nil {
		return render.Style{}, err
	}
	return st, nil
}
