package tui

import (
	"image"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"trackedit/internal/editor"
	"trackedit/internal/render"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Track
	ed    *editor.Editor
	style render.Style
	bg    *render.Background

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// info popup
	inspectPopup string

	// hover state, in canvas units
	hovering bool
	hoverX   float64
	hoverY   float64

	// control points table
	showTable bool
	tbl       table.Model
}

// New builds the editor UI. bgPath is the grass image to tile; empty
// selects the built-in texture.
func New(ed *editor.Editor, style render.Style, bgPath string) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		status:      "trackedit ready",
		ed:          ed,
		style:       style,
		bg:          render.NewBackground(bgPath),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Point files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste control points as x,y[,z] lines. Press Enter to load; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a control point file at launch.
func NewWithPath(ed *editor.Editor, style render.Style, bgPath, path string) Model {
	m := New(ed, style, bgPath)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return loadBackground(m.bg.Path) }

// bgLoadedMsg carries the decoded background image.
type bgLoadedMsg struct {
	img image.Image
	err error
}

func loadBackground(path string) tea.Cmd {
	return func() tea.Msg {
		img, err := render.LoadImage(path)
		return bgLoadedMsg{img: img, err: err}
	}
}
