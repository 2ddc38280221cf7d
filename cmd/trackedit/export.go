package main

import (
	"fmt"
	"log"
	"os"

	"trackedit/internal/editor"
	"trackedit/internal/geom"
	"trackedit/internal/render"
)

// exportJob is the headless mode: load or generate a track, then write
// the requested outputs.
type exportJob struct {
	In       string
	PNG      string
	CSV      string
	Grass    bool
	GrassImg string
}

func (j exportJob) run(ed *editor.Editor, style render.Style) error {
	if j.In != "" {
		pts, _, err := geom.LoadCSV(j.In)
		if err != nil {
			return err
		}
		if err := ed.Load(pts); err != nil {
			return fmt.Errorf("%s: %w", j.In, err)
		}
		log.Printf("loaded %d points from %s", ed.Store.Len(), j.In)
	} else {
		res, err := ed.Generate()
		if err != nil {
			return err
		}
		log.Printf("generated %d points in %d attempts", res.Track.Points, res.Attempts)
	}

	if j.CSV != "" {
		if err := os.WriteFile(j.CSV, ed.Export(), 0o644); err != nil {
			return err
		}
		log.Printf("wrote %s", j.CSV)
	}
	if j.PNG != "" {
		bg := render.NewBackground(j.GrassImg)
		if j.Grass {
			ed.State = editor.Apply(ed.State, editor.ToggleGrass)
			bg.Resolve(render.LoadImage(j.GrassImg))
			if err := bg.Err(); err != nil {
				return err
			}
		}
		b, err := ed.PNG(style, bg, 1)
		if err != nil {
			return err
		}
		if err := os.WriteFile(j.PNG, b, 0o644); err != nil {
			return err
		}
		log.Printf("wrote %s", j.PNG)
	}
	return nil
}
