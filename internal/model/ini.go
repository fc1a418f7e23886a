// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package model

import (
	"fmt"
	"path/filepath"
	"slices"

	"gopkg.in/ini.v1"

	"github.com/tgrid/tgrid/internal/grid"
)

// INIModel exposes an INI file as a grid: one row per section, one
// column per key (union across sections, in order of first appearance).
// Cells hold the key's value in that section, blank where a section
// lacks the key. Row headers are section names, column headers key
// names, the corner the file's base name.
type INIModel struct {
	grid.BaseModel

	path     string
	name     string
	sections []string
	keys     []string
	values   [][]string
}

// NewINI loads the INI file at path.
func NewINI(path string) (*INIModel, error) {
	m := &INIModel{path: path, name: filepath.Base(path)}
	sections, keys, values, err := readINI(path)
	if err != nil {
		return nil, err
	}
	m.sections, m.keys, m.values = sections, keys, values
	return m, nil
}

// RowCount returns the number of sections.
func (m *INIModel) RowCount() int { return len(m.sections) }

// ColCount returns the number of distinct keys.
func (m *INIModel) ColCount() int { return len(m.keys) }

// Data writes the cell at (row, col) into out.
func (m *INIModel) Data(row, col int, out *grid.CellData) {
	switch grid.Locate(row, col) {
	case grid.CornerCell:
		out.Value, out.Type = m.name, grid.TypeCorner
	case grid.ColumnHeaderCell:
		out.Value, out.Type = m.keys[col], grid.TypeHeader
	case grid.RowHeaderCell:
		out.Value, out.Type = m.sections[row], grid.TypeHeader
	default:
		v := m.values[row][col]
		out.Value, out.Type = v, tagOf(v)
	}
}

// Reload re-reads the file. While the shape (section and key lists) is
// unchanged, edits collapse into one cells-changed event covering the
// bounding rectangle of every changed cell; an unchanged file emits
// nothing. A shape change publishes a single model-reset.
func (m *INIModel) Reload() error {
	sections, keys, values, err := readINI(m.path)
	if err != nil {
		return err
	}

	if !slices.Equal(sections, m.sections) || !slices.Equal(keys, m.keys) {
		m.sections, m.keys, m.values = sections, keys, values
		m.Publish(grid.ModelReset{})
		return nil
	}

	minRow, minCol := -1, -1
	maxRow, maxCol := -1, -1
	for r := range values {
		for c := range values[r] {
			if values[r][c] == m.values[r][c] {
				continue
			}
			if minRow == -1 || r < minRow {
				minRow = r
			}
			if minCol == -1 || c < minCol {
				minCol = c
			}
			if r > maxRow {
				maxRow = r
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}
	m.values = values
	if minRow == -1 {
		return nil
	}
	m.Publish(grid.CellsChanged{
		Row:     minRow,
		Col:     minCol,
		RowSpan: maxRow - minRow + 1,
		ColSpan: maxCol - minCol + 1,
	})
	return nil
}

func readINI(path string) (sections, keys []string, values [][]string, err error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load %s: %w", path, err)
	}

	var secs []*ini.Section
	for _, s := range file.Sections() {
		// The implicit default section only counts when populated.
		if s.Name() == ini.DefaultSection && len(s.Keys()) == 0 {
			continue
		}
		secs = append(secs, s)
		sections = append(sections, s.Name())
	}

	index := map[string]int{}
	for _, s := range secs {
		for _, k := range s.KeyStrings() {
			if _, ok := index[k]; !ok {
				index[k] = len(keys)
				keys = append(keys, k)
			}
		}
	}

	values = make([][]string, len(secs))
	for i, s := range secs {
		row := make([]string, len(keys))
		for _, k := range s.KeyStrings() {
			row[index[k]] = s.Key(k).String()
		}
		values[i] = row
	}
	return sections, keys, values, nil
}
