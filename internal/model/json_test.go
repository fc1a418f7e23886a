// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tgrid/tgrid/internal/grid"
)

func TestJSONModelLoad(t *testing.T) {
	m, err := NewJSON([]byte(`[
		{"name": "alpha", "qty": 1},
		{"name": "beta", "qty": 2}
	]`))
	require.NoError(t, err)
	require.Equal(t, 2, m.RowCount())
	require.Equal(t, 2, m.ColCount())

	var out grid.CellData
	m.Data(-1, 0, &out)
	require.Equal(t, "name", out.Value)
	m.Data(-1, 1, &out)
	require.Equal(t, "qty", out.Value)

	m.Data(0, 0, &out)
	require.Equal(t, "alpha", out.Value)
	require.Equal(t, grid.TypeText, out.Type)
	m.Data(1, 1, &out)
	require.Equal(t, float64(2), out.Value)
	require.Equal(t, grid.TypeNumber, out.Type)
}

func TestJSONModelLoadRejectsNonArray(t *testing.T) {
	_, err := NewJSON([]byte(`{"name": "alpha"}`))
	require.Error(t, err)
}

func TestJSONRefreshFieldChange(t *testing.T) {
	m, err := NewJSON([]byte(`[{"name":"alpha","qty":1},{"name":"beta","qty":2}]`))
	require.NoError(t, err)
	rec := attach(m)

	require.NoError(t, m.Refresh([]byte(`[{"name":"alpha","qty":1},{"name":"beta","qty":3}]`)))

	require.Equal(t, []grid.Change{grid.CellsChanged{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1}}, rec.events)
	var out grid.CellData
	m.Data(1, 1, &out)
	require.Equal(t, float64(3), out.Value)
}

func TestJSONRefreshAppend(t *testing.T) {
	m, err := NewJSON([]byte(`[{"name":"alpha"},{"name":"beta"}]`))
	require.NoError(t, err)
	rec := attach(m)

	require.NoError(t, m.Refresh([]byte(`[{"name":"alpha"},{"name":"beta"},{"name":"gamma"}]`)))

	require.Equal(t, []grid.Change{grid.SectionsInserted{Axis: grid.Rows, Index: 2, Span: 1}}, rec.events)
	require.Equal(t, []int{3}, rec.rows, "counts reflect the insert before the event lands")
}

func TestJSONRefreshRemoveLast(t *testing.T) {
	m, err := NewJSON([]byte(`[{"name":"alpha"},{"name":"beta"},{"name":"gamma"}]`))
	require.NoError(t, err)
	rec := attach(m)

	require.NoError(t, m.Refresh([]byte(`[{"name":"alpha"},{"name":"beta"}]`)))

	require.Equal(t, []grid.Change{grid.SectionsRemoved{Axis: grid.Rows, Index: 2, Span: 1}}, rec.events)
	require.Equal(t, 2, m.RowCount())
}

func TestJSONRefreshMiddleRemoval(t *testing.T) {
	m, err := NewJSON([]byte(`[{"id":1},{"id":2},{"id":3}]`))
	require.NoError(t, err)
	rec := attach(m)

	// A naive array diff expresses a middle removal as a replace
	// cascade plus a tail removal; replayed op by op the grid stays
	// consistent throughout.
	require.NoError(t, m.Refresh([]byte(`[{"id":1},{"id":3}]`)))

	require.Equal(t, 2, m.RowCount())
	var out grid.CellData
	m.Data(1, 0, &out)
	require.Equal(t, float64(3), out.Value)

	require.NotEmpty(t, rec.events)
	require.Contains(t, rec.events, grid.SectionsRemoved{Axis: grid.Rows, Index: 2, Span: 1})
	for _, c := range rec.events {
		switch c.(type) {
		case grid.CellsChanged, grid.SectionsRemoved:
		default:
			t.Fatalf("unexpected event %s", c)
		}
	}
}

func TestJSONRefreshNewFieldResets(t *testing.T) {
	m, err := NewJSON([]byte(`[{"name":"alpha"}]`))
	require.NoError(t, err)
	rec := attach(m)

	require.NoError(t, m.Refresh([]byte(`[{"name":"alpha","size":10}]`)))

	require.Equal(t, []grid.Change{grid.ModelReset{}}, rec.events,
		"a shape change is exactly one model-reset and nothing else")
	require.Equal(t, 2, m.ColCount())
}

func TestJSONRefreshNoChange(t *testing.T) {
	m, err := NewJSON([]byte(`[{"name":"alpha"}]`))
	require.NoError(t, err)
	rec := attach(m)

	require.NoError(t, m.Refresh([]byte(`[{"name": "alpha"}]`)))
	require.Empty(t, rec.events)
}
