package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trackedit/internal/editor"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, l.contentH-2)
	}

	// Header
	header := titleStyle.Render(" trackedit ─ race track editor ")
	header = lipgloss.NewStyle().Width(l.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showTable:
		m.tbl.SetWidth(min(l.mapW, 44) - 4)
		m.tbl.SetHeight(min(l.mapH-2, 20))
		box := boxStyle.Render(m.tbl.View())
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.inspectPopup != "":
		// info popup takes the map area so the canvas geometry never shifts
		maxPopupW := min(48, l.mapW)
		if maxPopupW < 20 {
			maxPopupW = 20
		}
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Left, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(l.mapW)
		m.ta.SetHeight(min(l.mapH, 12))
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.renderCanvas(l.mapW, l.mapH))
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer: buttons, then status/help with canvas coords at the right
	buttons := m.renderButtons()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.1f y=%.1f  ", m.hoverX, m.hoverY))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	spacerW := max(0, l.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(l.contentW).Render(buttons),
		lipgloss.NewStyle().Width(l.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right)),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

// renderButtons shows the command surface with the current toggle labels.
func (m Model) renderButtons() string {
	st := m.ed.State
	btns := []string{
		"g generate track",
		"c clear points",
		"s save points",
		"1 " + editor.Label(st, editor.ToggleGrass),
		"2 " + editor.Label(st, editor.ToggleTrackLines),
		"3 " + editor.Label(st, editor.ToggleControlPoints),
	}
	out := make([]string, len(btns))
	for i, b := range btns {
		out[i] = buttonStyle.Render(b)
	}
	return strings.Join(out, " ")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"click add point",
		"e png",
		"Tab files",
		"Enter open",
		"p paste",
		"a table",
		"i info",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
