// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package view

import (
	"fmt"

	"github.com/derailed/tcell/v2"

	"github.com/tgrid/tgrid/internal/model"
	"github.com/tgrid/tgrid/internal/ui"
)

// demoSheet seeds the editable matrix page.
var demoSheet = [][]string{
	{"widget", "12", "2.50", "stocked"},
	{"gadget", "7", "13.95", "stocked"},
	{"gizmo", "0", "8.00", "backorder"},
	{"doohickey", "104", "0.45", "stocked"},
	{"sprocket", "33", "5.10", "stocked"},
	{"thingamajig", "2", "120.00", "backorder"},
}

// AddDemo registers the editable matrix page. Its key handler mutates
// the model through the structural operations so every change variant
// can be watched live on the indicator line.
func (a *App) AddDemo() {
	m := model.NewMatrix(len(demoSheet), len(demoSheet[0]))
	for r, row := range demoSheet {
		for c, v := range row {
			m.SetCell(r, c, v)
		}
	}
	m.SetCorner("demo")
	t := a.AddGrid("matrix", m, nil)
	t.Title().SetCaption("a/d rows  A/D cols  J/K move  e edit  s sort")
	a.SetPageKeys("matrix", demoKeys(m, t))
}

// demoKeys mutates m at the table's selected row.
func demoKeys(m *model.MatrixModel, t *ui.GridTable) func(*tcell.EventKey) *tcell.EventKey {
	edits := 0
	return func(evt *tcell.EventKey) *tcell.EventKey {
		if evt.Key() != tcell.KeyRune {
			return evt
		}
		row, _ := t.GetSelection()
		r := row - 1
		if r < 0 {
			r = 0
		}
		if r > m.RowCount() {
			r = m.RowCount()
		}

		switch evt.Rune() {
		case 'a':
			m.InsertRows(r, 1)
		case 'd':
			if r < m.RowCount() {
				m.RemoveRows(r, 1)
			}
		case 'J':
			if r+1 < m.RowCount() {
				m.MoveRows(r, r+1, 1)
			}
		case 'K':
			if r > 0 && r < m.RowCount() {
				m.MoveRows(r, r-1, 1)
			}
		case 'A':
			m.InsertCols(m.ColCount(), 1)
		case 'D':
			if m.ColCount() > 0 {
				m.RemoveCols(m.ColCount()-1, 1)
			}
		case 'e':
			if r < m.RowCount() && m.ColCount() > 0 {
				edits++
				m.SetCell(r, 0, fmt.Sprintf("edit-%d", edits))
			}
		case 's':
			if m.ColCount() > 0 {
				m.SortRows(0)
			}
		default:
			return evt
		}
		return nil
	}
}
