package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshTable rebuilds the control point table from the store's closed
// view.
func (m *Model) refreshTable() {
	pts := m.ed.Store.Points()
	if len(pts) == 0 {
		m.showTable = false
		m.status = "no control points"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 5},
		{Title: "x", Width: 10},
		{Title: "y", Width: 10},
		{Title: "z", Width: 8},
	}
	rows := make([]table.Row, 0, len(pts))
	for i, p := range pts {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", p.X),
			fmt.Sprintf("%.2f", p.Y),
			fmt.Sprintf("%.2f", p.Z),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
