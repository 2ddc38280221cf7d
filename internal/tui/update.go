package tui

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"trackedit/internal/editor"
	"trackedit/internal/geom"
)

var commandKeys = map[string]editor.Command{
	"g": editor.GenerateTrack,
	"c": editor.ClearPoints,
	"s": editor.SavePoints,
	"1": editor.ToggleGrass,
	"2": editor.ToggleTrackLines,
	"3": editor.ToggleControlPoints,
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case bgLoadedMsg:
		m.bg.Resolve(msg.img, msg.err)
		if msg.err != nil {
			m.status = "grass image error: " + msg.err.Error()
			log.Printf("background %q: %v", m.bg.Path, msg.err)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				pts, _, err := geom.ParseCSV(strings.NewReader(text))
				if err != nil {
					m.status = "csv error: " + err.Error()
					return m, nil
				}
				if err := m.ed.Load(pts); err != nil {
					m.status = "csv error: " + err.Error()
					log.Printf("paste: %v", err)
					return m, nil
				}
				m.selPath = ""
				m.status = fmt.Sprintf("pasted %d points", m.ed.Store.Len())
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showTable {
			switch msg.String() {
			case "a", "esc":
				m.showTable = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		if cmd, ok := commandKeys[msg.String()]; ok {
			m.run(cmd)
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "e":
			m.exportPNG()
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "edit mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showTable = true
			m.refreshTable()
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				break
			}
			m.inspectPopup = m.trackInfo()
			m.status = "info popup"
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		}
	case tea.MouseMsg:
		x, y, ok := m.screenToCanvas(msg.X, msg.Y)
		ok = ok && m.canvasVisible()
		m.hovering = ok
		if ok {
			m.hoverX, m.hoverY = x, y
		}
		if ok && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if m.ed.Click(x, y) {
				m.status = fmt.Sprintf("point %d at %.1f,%.1f", m.ed.Store.Len(), x, y)
				if m.showTable {
					m.refreshTable()
				}
			}
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// canvasVisible reports whether the map area currently shows the track.
func (m Model) canvasVisible() bool {
	return !m.showTable && !m.pasteMode && m.inspectPopup == ""
}

// run dispatches an editor command and reports the outcome in the status
// line.
func (m *Model) run(cmd editor.Command) {
	status, err := m.ed.Do(cmd)
	if err != nil {
		m.status = status + ": " + err.Error()
		log.Printf("%v: %v", cmd, err)
		return
	}
	m.status = status
	log.Printf("%v: %s", cmd, status)
	if cmd == editor.SavePoints {
		m.refreshDir()
	}
}

func (m *Model) exportPNG() {
	b, err := m.ed.PNG(m.style, m.bg, 1)
	if err == nil {
		var p string
		p, err = m.ed.SaveAs("track.png", b)
		if err == nil {
			m.status = "exported " + filepath.Base(p)
			log.Printf("exported %s", p)
			return
		}
	}
	m.status = "export error: " + err.Error()
	log.Printf("export: %v", err)
}

// trackInfo builds the info popup text.
func (m Model) trackInfo() string {
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<unsaved>"
	}
	bb := m.ed.Store.Bounds()
	b := m.ed.Bounds()
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("canvas: %gx%g", b.Width, b.Height),
		fmt.Sprintf("points: %d", m.ed.Store.Len()),
		fmt.Sprintf("bbox: [%.2f, %.2f, %.2f, %.2f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY),
		fmt.Sprintf("grass image: %v", m.bg.State()),
	}
	if g := m.ed.LastGen; g != nil {
		meta = append(meta,
			fmt.Sprintf("attempts: %d", g.Attempts),
			fmt.Sprintf("size: min=%.2f max=%.2f", g.Track.MinSize, g.Track.MaxSize),
		)
	}
	return strings.Join(meta, "\n")
}
