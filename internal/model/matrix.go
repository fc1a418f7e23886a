// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package model

import (
	"fmt"
	"slices"
	"sort"

	"github.com/fvbommel/sortorder"

	"github.com/tgrid/tgrid/internal/grid"
)

// MatrixModel is a dense, editable in-memory grid. Row headers are
// 1-based numbers, column headers spreadsheet letters, both cached so
// Data never allocates. Every mutating operation updates storage first
// and then publishes exactly one event describing the change.
//
// Structural operations panic on out-of-range indices or spans below 1;
// Data panics on indices outside [-1, RowCount) x [-1, ColCount) beyond
// the header convention. Both are caller errors, failed loudly.
type MatrixModel struct {
	grid.BaseModel

	cells     [][]string
	cols      int
	rowLabels []string
	colLabels []string
	corner    string
}

// NewMatrix creates a rows x cols matrix of blank cells.
func NewMatrix(rows, cols int) *MatrixModel {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("model: matrix with negative extent %dx%d", rows, cols))
	}
	m := &MatrixModel{cols: cols}
	m.cells = make([][]string, rows)
	for i := range m.cells {
		m.cells[i] = make([]string, cols)
	}
	m.relabel()
	return m
}

// RowCount returns the number of body rows.
func (m *MatrixModel) RowCount() int { return len(m.cells) }

// ColCount returns the number of body columns.
func (m *MatrixModel) ColCount() int { return m.cols }

// Data writes the cell at (row, col) into out.
func (m *MatrixModel) Data(row, col int, out *grid.CellData) {
	switch grid.Locate(row, col) {
	case grid.CornerCell:
		out.Value, out.Type = m.corner, grid.TypeCorner
	case grid.ColumnHeaderCell:
		out.Value, out.Type = m.colLabels[col], grid.TypeHeader
	case grid.RowHeaderCell:
		out.Value, out.Type = m.rowLabels[row], grid.TypeHeader
	default:
		v := m.cells[row][col]
		out.Value, out.Type = v, tagOf(v)
	}
}

// Cell returns the body cell value at (row, col).
func (m *MatrixModel) Cell(row, col int) string {
	return m.cells[row][col]
}

// SetCell sets one body cell. Writing the current value back emits
// nothing; otherwise one cells-changed event for that cell.
func (m *MatrixModel) SetCell(row, col int, value string) {
	m.checkCell(row, col)
	if m.cells[row][col] == value {
		return
	}
	m.cells[row][col] = value
	m.Publish(grid.CellsChanged{Row: row, Col: col, RowSpan: 1, ColSpan: 1})
}

// FillRect assigns value to every cell of the rectangle and emits one
// cells-changed event covering it, or nothing if no cell changed.
func (m *MatrixModel) FillRect(row, col, rowSpan, colSpan int, value string) {
	if rowSpan < 1 || colSpan < 1 {
		panic(fmt.Sprintf("model: fill with empty extent %dx%d", rowSpan, colSpan))
	}
	m.checkCell(row, col)
	m.checkCell(row+rowSpan-1, col+colSpan-1)

	changed := false
	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan; c++ {
			if m.cells[r][c] != value {
				m.cells[r][c] = value
				changed = true
			}
		}
	}
	if changed {
		m.Publish(grid.CellsChanged{Row: row, Col: col, RowSpan: rowSpan, ColSpan: colSpan})
	}
}

// SetCorner sets the corner cell label.
func (m *MatrixModel) SetCorner(label string) {
	if m.corner == label {
		return
	}
	m.corner = label
	m.Publish(grid.CellsChanged{Row: -1, Col: -1, RowSpan: 1, ColSpan: 1})
}

// InsertRows inserts span blank rows so the first occupies index.
func (m *MatrixModel) InsertRows(index, span int) {
	m.checkSpan(index, span, len(m.cells)+1)
	blank := make([][]string, span)
	for i := range blank {
		blank[i] = make([]string, m.cols)
	}
	m.cells = slices.Insert(m.cells, index, blank...)
	m.relabel()
	m.Publish(grid.SectionsInserted{Axis: grid.Rows, Index: index, Span: span})
}

// RemoveRows removes span rows starting at index.
func (m *MatrixModel) RemoveRows(index, span int) {
	m.checkSpan(index, span, len(m.cells)-span+1)
	m.cells = slices.Delete(m.cells, index, index+span)
	m.relabel()
	m.Publish(grid.SectionsRemoved{Axis: grid.Rows, Index: index, Span: span})
}

// MoveRows relocates a block of span rows from from so it ends up
// starting at to. Moving a block onto itself emits nothing.
func (m *MatrixModel) MoveRows(from, to, span int) {
	m.checkSpan(from, span, len(m.cells)-span+1)
	m.checkSpan(to, span, len(m.cells)-span+1)
	if from == to {
		return
	}
	block := slices.Clone(m.cells[from : from+span])
	m.cells = slices.Insert(slices.Delete(m.cells, from, from+span), to, block...)
	m.relabel()
	m.Publish(grid.SectionsMoved{Axis: grid.Rows, From: from, To: to, Span: span})
}

// InsertCols inserts span blank columns so the first occupies index.
func (m *MatrixModel) InsertCols(index, span int) {
	m.checkSpan(index, span, m.cols+1)
	for r := range m.cells {
		m.cells[r] = slices.Insert(m.cells[r], index, make([]string, span)...)
	}
	m.cols += span
	m.relabel()
	m.Publish(grid.SectionsInserted{Axis: grid.Cols, Index: index, Span: span})
}

// RemoveCols removes span columns starting at index.
func (m *MatrixModel) RemoveCols(index, span int) {
	m.checkSpan(index, span, m.cols-span+1)
	for r := range m.cells {
		m.cells[r] = slices.Delete(m.cells[r], index, index+span)
	}
	m.cols -= span
	m.relabel()
	m.Publish(grid.SectionsRemoved{Axis: grid.Cols, Index: index, Span: span})
}

// MoveCols relocates a block of span columns from from so it ends up
// starting at to. Moving a block onto itself emits nothing.
func (m *MatrixModel) MoveCols(from, to, span int) {
	m.checkSpan(from, span, m.cols-span+1)
	m.checkSpan(to, span, m.cols-span+1)
	if from == to {
		return
	}
	for r := range m.cells {
		block := slices.Clone(m.cells[r][from : from+span])
		m.cells[r] = slices.Insert(slices.Delete(m.cells[r], from, from+span), to, block...)
	}
	m.Publish(grid.SectionsMoved{Axis: grid.Cols, From: from, To: to, Span: span})
}

// SortRows reorders rows by natural order of the given column, stable.
// The resulting permutation is arbitrary, so the event is model-reset;
// an already sorted matrix emits nothing.
func (m *MatrixModel) SortRows(col int) {
	if col < 0 || col >= m.cols {
		panic(fmt.Sprintf("model: sort column %d out of range [0..%d)", col, m.cols))
	}
	perm := make([]int, len(m.cells))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return sortorder.NaturalLess(m.cells[perm[i]][col], m.cells[perm[j]][col])
	})

	identity := true
	for i, p := range perm {
		if i != p {
			identity = false
			break
		}
	}
	if identity {
		return
	}

	sorted := make([][]string, len(m.cells))
	for i, p := range perm {
		sorted[i] = m.cells[p]
	}
	m.cells = sorted
	m.Publish(grid.ModelReset{})
}

func (m *MatrixModel) relabel() {
	m.rowLabels = numberLabels(len(m.cells))
	m.colLabels = columnLabels(m.cols)
}

func (m *MatrixModel) checkCell(row, col int) {
	if row < 0 || row >= len(m.cells) || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("model: cell (%d,%d) out of range %dx%d", row, col, len(m.cells), m.cols))
	}
}

func (m *MatrixModel) checkSpan(index, span, limit int) {
	if span < 1 || index < 0 || index >= limit {
		panic(fmt.Sprintf("model: index %d span %d out of range [0..%d)", index, span, limit))
	}
}
