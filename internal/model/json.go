// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package model

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/wI2L/jsondiff"

	"github.com/tgrid/tgrid/internal/grid"
)

// JSONModel exposes a JSON array of flat objects as a grid: one row per
// element, one column per field (sorted union of keys, fixed at load).
// Refresh diffs the previous document against the new one and replays
// the patch as change events, so a renderer repaints only what the
// document edit actually touched. Patch shapes outside the algebra fall
// back to a single model-reset.
type JSONModel struct {
	grid.BaseModel

	raw    []byte
	fields []string
	rows   []map[string]any
	labels []string
}

// NewJSON parses doc, which must be a JSON array of objects.
func NewJSON(doc []byte) (*JSONModel, error) {
	rows, fields, err := decodeRows(doc)
	if err != nil {
		return nil, err
	}
	m := &JSONModel{raw: doc, fields: fields, rows: rows}
	m.labels = numberLabels(len(rows))
	return m, nil
}

// RowCount returns the number of array elements.
func (m *JSONModel) RowCount() int { return len(m.rows) }

// ColCount returns the number of fields.
func (m *JSONModel) ColCount() int { return len(m.fields) }

// Data writes the cell at (row, col) into out. Body values keep their
// JSON types (string, float64, bool, nil).
func (m *JSONModel) Data(row, col int, out *grid.CellData) {
	switch grid.Locate(row, col) {
	case grid.CornerCell:
		out.Value, out.Type = "", grid.TypeCorner
	case grid.ColumnHeaderCell:
		out.Value, out.Type = m.fields[col], grid.TypeHeader
	case grid.RowHeaderCell:
		out.Value, out.Type = m.labels[row], grid.TypeHeader
	default:
		v := m.rows[row][m.fields[col]]
		out.Value, out.Type = v, jsonTag(v)
	}
}

// Refresh replaces the document. The diff against the previous document
// is translated op by op: a field replace becomes cells-changed, an
// element add/remove becomes sections-inserted/removed, an element move
// becomes sections-moved. Each op is applied to storage before its
// event is published, so indices stay consistent throughout. If any op
// falls outside those shapes the whole document is swapped and a single
// model-reset published instead.
func (m *JSONModel) Refresh(doc []byte) error {
	patch, err := jsondiff.CompareJSON(m.raw, doc)
	if err != nil {
		return fmt.Errorf("diff documents: %w", err)
	}
	if len(patch) == 0 {
		m.raw = doc
		return nil
	}

	if !m.supported(patch) {
		rows, fields, err := decodeRows(doc)
		if err != nil {
			return err
		}
		m.raw, m.fields, m.rows = doc, fields, rows
		m.labels = numberLabels(len(rows))
		m.Publish(grid.ModelReset{})
		return nil
	}

	for _, op := range patch {
		m.apply(op)
	}
	m.raw = doc
	return nil
}

// supported reports whether every op of the patch maps onto the event
// algebra against the current field set.
func (m *JSONModel) supported(patch jsondiff.Patch) bool {
	rows := len(m.rows)
	for _, op := range patch {
		path := splitPointer(op.Path)
		switch op.Type {
		case jsondiff.OperationReplace:
			switch len(path) {
			case 1:
				if _, ok := m.rowValue(op.Value); !ok {
					return false
				}
			case 2:
				if _, ok := m.fieldIndex(path[1]); !ok {
					return false
				}
			default:
				return false
			}
		case jsondiff.OperationAdd:
			if len(path) != 1 {
				return false
			}
			if _, ok := m.rowValue(op.Value); !ok {
				return false
			}
			rows++
		case jsondiff.OperationRemove:
			if len(path) != 1 || path[0] == "-" {
				return false
			}
			rows--
		case jsondiff.OperationMove:
			if len(path) != 1 || len(splitPointer(op.From)) != 1 {
				return false
			}
		default:
			return false
		}
	}
	return rows >= 0
}

// apply executes one already vetted patch op and publishes its event.
func (m *JSONModel) apply(op jsondiff.Operation) {
	path := splitPointer(op.Path)
	switch op.Type {
	case jsondiff.OperationReplace:
		row := m.rowIndex(path[0], false)
		if len(path) == 1 {
			fresh, _ := m.rowValue(op.Value)
			m.rows[row] = fresh
			m.Publish(grid.CellsChanged{Row: row, Col: 0, RowSpan: 1, ColSpan: len(m.fields)})
			return
		}
		col, _ := m.fieldIndex(path[1])
		m.rows[row][path[1]] = op.Value
		m.Publish(grid.CellsChanged{Row: row, Col: col, RowSpan: 1, ColSpan: 1})
	case jsondiff.OperationAdd:
		row := m.rowIndex(path[0], true)
		fresh, _ := m.rowValue(op.Value)
		m.rows = slices.Insert(m.rows, row, fresh)
		m.labels = numberLabels(len(m.rows))
		m.Publish(grid.SectionsInserted{Axis: grid.Rows, Index: row, Span: 1})
	case jsondiff.OperationRemove:
		row := m.rowIndex(path[0], false)
		m.rows = slices.Delete(m.rows, row, row+1)
		m.labels = numberLabels(len(m.rows))
		m.Publish(grid.SectionsRemoved{Axis: grid.Rows, Index: row, Span: 1})
	case jsondiff.OperationMove:
		from := m.rowIndex(splitPointer(op.From)[0], false)
		to := m.rowIndex(path[0], false)
		if from == to {
			return
		}
		moved := m.rows[from]
		m.rows = slices.Insert(slices.Delete(m.rows, from, from+1), to, moved)
		m.Publish(grid.SectionsMoved{Axis: grid.Rows, From: from, To: to, Span: 1})
	}
}

// rowValue vets an op value as a row object over the known fields.
func (m *JSONModel) rowValue(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	for key := range obj {
		if _, ok := m.fieldIndex(key); !ok {
			return nil, false
		}
	}
	return obj, true
}

func (m *JSONModel) fieldIndex(name string) (int, bool) {
	for i, f := range m.fields {
		if f == name {
			return i, true
		}
	}
	return -1, false
}

// rowIndex resolves a pointer token to a row index; "-" means append
// when appending is allowed.
func (m *JSONModel) rowIndex(token string, appendOK bool) int {
	if token == "-" && appendOK {
		return len(m.rows)
	}
	i, err := strconv.Atoi(token)
	if err != nil {
		panic(fmt.Sprintf("model: bad array index %q in patch", token))
	}
	return i
}

func decodeRows(doc []byte) ([]map[string]any, []string, error) {
	var rows []map[string]any
	if err := json.Unmarshal(doc, &rows); err != nil {
		return nil, nil, fmt.Errorf("decode document: %w", err)
	}
	seen := map[string]bool{}
	var fields []string
	for _, row := range rows {
		for key := range row {
			if !seen[key] {
				seen[key] = true
				fields = append(fields, key)
			}
		}
	}
	sort.Strings(fields)
	return rows, fields, nil
}

// splitPointer splits a JSON pointer into unescaped tokens.
func splitPointer(p string) []string {
	if p == "" {
		return nil
	}
	tokens := strings.Split(strings.TrimPrefix(p, "/"), "/")
	for i, t := range tokens {
		t = strings.ReplaceAll(t, "~1", "/")
		tokens[i] = strings.ReplaceAll(t, "~0", "~")
	}
	return tokens
}

// jsonTag classifies a decoded JSON value for painter selection.
func jsonTag(v any) string {
	switch v.(type) {
	case nil:
		return grid.TypeBlank
	case float64, json.Number:
		return grid.TypeNumber
	default:
		return grid.TypeText
	}
}
