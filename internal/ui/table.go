// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

// Package ui hosts the tview widgets that render grid models. Widgets
// only ever read from a model (counts and cell data); all mutation
// flows the other way, through the model's own operations.
package ui

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	gtcell "github.com/gdamore/tcell/v2"

	"github.com/tgrid/tgrid/internal/grid"
	"github.com/tgrid/tgrid/internal/render"
)

// GridTable renders a grid.DataModel into a tview table and keeps the
// two in sync by reacting to each change event with the smallest
// repaint the variant allows. Screen row and column 0 carry the header
// bands, fed by the model's negative indices; everything else shifts by
// one. A single cell buffer is reused across every paint.
type GridTable struct {
	*tview.Table

	model grid.DataModel
	title *grid.Title
	buf   grid.CellData
}

// NewGridTable creates a table attached to model and paints it fully
// once. Call Detach when the table goes away.
func NewGridTable(m grid.DataModel) *GridTable {
	g := &GridTable{Table: tview.NewTable(), model: m}
	g.title = grid.NewTitle(g)

	g.SetBorder(true)
	g.SetBorderAttributes(tcell.AttrBold)
	g.SetBorderPadding(0, 0, 1, 1)
	g.SetFixed(1, 1)
	g.SetSelectable(true, false)

	m.AddListener(g)
	g.title.AddListener(g)
	g.rebuild()
	return g
}

// Title returns the mutable record driving this table's chrome.
func (g *GridTable) Title() *grid.Title { return g.title }

// Model returns the attached data model.
func (g *GridTable) Model() grid.DataModel { return g.model }

// Detach unhooks the table from its model and title.
func (g *GridTable) Detach() {
	g.model.RemoveListener(g)
	g.title.RemoveListener(g)
}

// TitleChanged repaints only the border chrome.
func (g *GridTable) TitleChanged(t *grid.Title) {
	label := t.Label()
	switch {
	case label == "":
		g.SetTitle("")
	case t.Caption() != "":
		g.SetTitle(fmt.Sprintf(" %s <%s> ", label, t.Caption()))
	default:
		g.SetTitle(fmt.Sprintf(" %s ", label))
	}
}

// GridChanged implements grid.Listener. The model has already mutated
// when an event lands, so every branch below may immediately read
// counts and cells back from it.
func (g *GridTable) GridChanged(c grid.Change) {
	switch e := c.(type) {
	case grid.SectionsInserted:
		if e.Axis == grid.Rows {
			for i := 0; i < e.Span; i++ {
				g.InsertRow(e.Index + 1)
			}
			g.paintRows(e.Index, e.Index+e.Span)
			// Row labels at and below the insertion point shift.
			g.paintRowHeaders(e.Index+e.Span, g.model.RowCount())
		} else {
			for i := 0; i < e.Span; i++ {
				g.InsertColumn(e.Index + 1)
			}
			g.paintCols(e.Index, e.Index+e.Span)
			g.paintColHeaders(e.Index+e.Span, g.model.ColCount())
		}
	case grid.SectionsRemoved:
		if e.Axis == grid.Rows {
			for i := 0; i < e.Span; i++ {
				g.RemoveRow(e.Index + 1)
			}
			g.paintRowHeaders(e.Index, g.model.RowCount())
		} else {
			for i := 0; i < e.Span; i++ {
				g.RemoveColumn(e.Index + 1)
			}
			g.paintColHeaders(e.Index, g.model.ColCount())
		}
	case grid.SectionsMoved:
		// Content relocated within [lo, hi); headers there keep their
		// positional labels, so only the body needs re-fetching.
		lo := min(e.From, e.To)
		hi := max(e.From, e.To) + e.Span
		if e.Axis == grid.Rows {
			g.paintBodyRect(lo, 0, hi, g.model.ColCount())
		} else {
			g.paintBodyRect(0, lo, g.model.RowCount(), hi)
		}
	case grid.CellsChanged:
		for r := e.Row; r < e.Row+e.RowSpan; r++ {
			for col := e.Col; col < e.Col+e.ColSpan; col++ {
				g.paintCell(r, col)
			}
		}
	case grid.ModelReset:
		g.rebuild()
	}
}

// rebuild repaints everything: corner, both header bands, full body.
func (g *GridTable) rebuild() {
	g.Clear()
	g.paintCell(-1, -1)
	g.paintColHeaders(0, g.model.ColCount())
	g.paintRowHeaders(0, g.model.RowCount())
	g.paintBodyRect(0, 0, g.model.RowCount(), g.model.ColCount())
}

// paintRows paints body rows [from, to) including their row headers.
func (g *GridTable) paintRows(from, to int) {
	g.paintRowHeaders(from, to)
	g.paintBodyRect(from, 0, to, g.model.ColCount())
}

// paintCols paints body columns [from, to) including their headers.
func (g *GridTable) paintCols(from, to int) {
	g.paintColHeaders(from, to)
	g.paintBodyRect(0, from, g.model.RowCount(), to)
}

func (g *GridTable) paintRowHeaders(from, to int) {
	for r := from; r < to; r++ {
		g.paintCell(r, -1)
	}
}

func (g *GridTable) paintColHeaders(from, to int) {
	for c := from; c < to; c++ {
		g.paintCell(-1, c)
	}
}

func (g *GridTable) paintBodyRect(row, col, rowEnd, colEnd int) {
	for r := row; r < rowEnd; r++ {
		for c := col; c < colEnd; c++ {
			g.paintCell(r, c)
		}
	}
}

// paintCell fetches one cell into the shared buffer and writes the
// styled result at its screen position.
func (g *GridTable) paintCell(row, col int) {
	g.model.Data(row, col, &g.buf)
	p := render.For(g.buf.Type)

	cell := tview.NewTableCell(render.Text(g.buf.Value))
	cell.SetTextColor(screenColor(p.Color))
	cell.SetAlign(p.Align)
	if p.Bold {
		cell.SetAttributes(tcell.AttrBold)
	}
	if grid.Locate(row, col) != grid.BodyCell {
		cell.SetSelectable(false)
	}
	g.SetCell(screenIndex(row), screenIndex(col), cell)
}

// screenIndex maps a model index to its screen position: the header
// band sits at 0, body sections shift down/right by one.
func screenIndex(i int) int {
	if i < 0 {
		return 0
	}
	return i + 1
}

// screenColor bridges a painter color into the screen color space via
// its RGB value.
func screenColor(c gtcell.Color) tcell.Color {
	return tcell.NewHexColor(c.Hex())
}
