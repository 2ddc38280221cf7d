package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"trackedit/internal/config"
	"trackedit/internal/editor"
	"trackedit/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "trackedit.toml", "configuration file")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one)")
	pngOut := flag.String("png", "", "write a PNG of the track and exit")
	csvOut := flag.String("csv", "", "write the control points CSV and exit")
	grass := flag.Bool("grass", false, "tile the grass image in PNG output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [points.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Generator.Seed = *seed
	}
	style, err := cfg.RenderStyle()
	if err != nil {
		log.Fatal(err)
	}
	ed, err := editor.New(editor.Options{
		Bounds:      cfg.Bounds(),
		Params:      cfg.Params(),
		MaxAttempts: cfg.Generator.MaxAttempts,
		Rand:        newRand(cfg.Generator.Seed),
		Sink:        editor.DirSink{Dir: cfg.Files.OutputDir},
	})
	if err != nil {
		log.Fatal(err)
	}

	if *pngOut != "" || *csvOut != "" {
		job := exportJob{
			In:       flag.Arg(0),
			PNG:      *pngOut,
			CSV:      *csvOut,
			Grass:    *grass,
			GrassImg: cfg.Files.GrassImage,
		}
		if err := job.run(ed, style); err != nil {
			log.Fatal(err)
		}
		return
	}

	if cfg.Files.LogFile != "" {
		f, err := tea.LogToFile(cfg.Files.LogFile, "trackedit")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(ed, style, cfg.Files.GrassImage, flag.Arg(0))
	} else {
		m = tui.New(ed, style, cfg.Files.GrassImage)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
