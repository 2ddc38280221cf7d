package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"trackedit/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(name)) == ".csv" {
			items = append(items, fileItem{title: name, desc: ".csv", path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no point files in current directory"
	}
}

// loadPath replaces the track with the control points in p.
func (m *Model) loadPath(p string) {
	m.selPath = p
	pts, _, err := geom.LoadCSV(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		log.Printf("load %s: %v", p, err)
		return
	}
	if err := m.ed.Load(pts); err != nil {
		m.status = "load error: " + err.Error()
		log.Printf("load %s: %v", p, err)
		return
	}
	m.status = "loaded: " + filepath.Base(p) + fmt.Sprintf("  points=%d", m.ed.Store.Len())
	log.Printf("loaded %d points from %s", m.ed.Store.Len(), p)
	if m.showTable {
		m.refreshTable()
	}
}
