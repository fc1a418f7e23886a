// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tgrid/tgrid/internal/grid"
)

func obj(key string, size int64) Object {
	return Object{Key: key, Size: size, Class: "STANDARD"}
}

func TestDiffObjects(t *testing.T) {
	tests := []struct {
		name  string
		old   []Object
		fresh []Object
		want  grid.Change
	}{
		{
			name: "no change",
			old:  []Object{obj("a", 1), obj("b", 2)},
			fresh: []Object{
				obj("a", 1), obj("b", 2),
			},
			want: nil,
		},
		{
			name:  "initial load",
			old:   nil,
			fresh: []Object{obj("a", 1), obj("b", 2)},
			want:  grid.SectionsInserted{Axis: grid.Rows, Index: 0, Span: 2},
		},
		{
			name:  "trailing additions",
			old:   []Object{obj("a", 1)},
			fresh: []Object{obj("a", 1), obj("b", 2), obj("c", 3)},
			want:  grid.SectionsInserted{Axis: grid.Rows, Index: 1, Span: 2},
		},
		{
			name:  "middle insertion",
			old:   []Object{obj("a", 1), obj("c", 3)},
			fresh: []Object{obj("a", 1), obj("b", 2), obj("c", 3)},
			want:  grid.SectionsInserted{Axis: grid.Rows, Index: 1, Span: 1},
		},
		{
			name:  "middle removal",
			old:   []Object{obj("a", 1), obj("b", 2), obj("c", 3)},
			fresh: []Object{obj("a", 1), obj("c", 3)},
			want:  grid.SectionsRemoved{Axis: grid.Rows, Index: 1, Span: 1},
		},
		{
			name:  "everything removed",
			old:   []Object{obj("a", 1), obj("b", 2)},
			fresh: nil,
			want:  grid.SectionsRemoved{Axis: grid.Rows, Index: 0, Span: 2},
		},
		{
			name:  "in-place field change",
			old:   []Object{obj("a", 1), obj("b", 2), obj("c", 3)},
			fresh: []Object{obj("a", 1), obj("b", 20), obj("c", 3)},
			want:  grid.CellsChanged{Row: 1, Col: 0, RowSpan: 1, ColSpan: 4},
		},
		{
			name:  "spread field changes bound into one rect",
			old:   []Object{obj("a", 1), obj("b", 2), obj("c", 3)},
			fresh: []Object{obj("a", 10), obj("b", 2), obj("c", 30)},
			want:  grid.CellsChanged{Row: 0, Col: 0, RowSpan: 3, ColSpan: 4},
		},
		{
			name:  "key renamed",
			old:   []Object{obj("a", 1), obj("b", 2)},
			fresh: []Object{obj("a", 1), obj("z", 2)},
			want:  grid.ModelReset{},
		},
		{
			name:  "reordered listing",
			old:   []Object{obj("a", 1), obj("b", 2), obj("c", 3)},
			fresh: []Object{obj("c", 3), obj("a", 1), obj("b", 2)},
			want:  grid.ModelReset{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, diffObjects(tt.old, tt.fresh))
		})
	}
}

func TestS3ModelData(t *testing.T) {
	modified := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := &S3Model{
		bucket: "reports",
		objects: []Object{
			{Key: "2026/q1.csv", Size: 2048, Class: "STANDARD", Modified: modified},
		},
		labels: numberLabels(1),
	}

	require.Equal(t, 1, m.RowCount())
	require.Equal(t, 4, m.ColCount())

	var out grid.CellData
	m.Data(-1, 0, &out)
	require.Equal(t, "KEY", out.Value)
	m.Data(-4, -2, &out)
	require.Equal(t, "reports", out.Value)
	require.Equal(t, grid.TypeCorner, out.Type)

	m.Data(0, 0, &out)
	require.Equal(t, "2026/q1.csv", out.Value)
	m.Data(0, 1, &out)
	require.Equal(t, int64(2048), out.Value)
	require.Equal(t, grid.TypeNumber, out.Type)
	m.Data(0, 3, &out)
	require.Equal(t, modified, out.Value)
	require.Equal(t, grid.TypeDate, out.Type)
}
