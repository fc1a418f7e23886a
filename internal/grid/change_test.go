// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishRejectsMalformedEvents(t *testing.T) {
	tests := []struct {
		name  string
		event Change
	}{
		{name: "insert zero span", event: SectionsInserted{Axis: Rows, Index: 0, Span: 0}},
		{name: "insert negative span", event: SectionsInserted{Axis: Cols, Index: 2, Span: -1}},
		{name: "insert negative index", event: SectionsInserted{Axis: Rows, Index: -1, Span: 1}},
		{name: "remove zero span", event: SectionsRemoved{Axis: Rows, Index: 0, Span: 0}},
		{name: "remove negative index", event: SectionsRemoved{Axis: Cols, Index: -3, Span: 2}},
		{name: "move zero span", event: SectionsMoved{Axis: Rows, From: 0, To: 3, Span: 0}},
		{name: "move negative endpoint", event: SectionsMoved{Axis: Rows, From: -1, To: 0, Span: 1}},
		{name: "cells zero row span", event: CellsChanged{Row: 0, Col: 0, RowSpan: 0, ColSpan: 1}},
		{name: "cells zero col span", event: CellsChanged{Row: 0, Col: 0, RowSpan: 1, ColSpan: 0}},
		{name: "nil event", event: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b BaseModel
			require.Panics(t, func() { b.Publish(tt.event) })
		})
	}
}

func TestPublishAcceptsWellFormedEvents(t *testing.T) {
	tests := []struct {
		name  string
		event Change
	}{
		{name: "insert", event: SectionsInserted{Axis: Rows, Index: 0, Span: 1}},
		{name: "remove", event: SectionsRemoved{Axis: Cols, Index: 4, Span: 2}},
		{name: "move", event: SectionsMoved{Axis: Rows, From: 0, To: 3, Span: 2}},
		{name: "cells", event: CellsChanged{Row: 1, Col: 2, RowSpan: 3, ColSpan: 4}},
		{name: "cells in header band", event: CellsChanged{Row: -1, Col: -1, RowSpan: 1, ColSpan: 1}},
		{name: "reset", event: ModelReset{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b BaseModel
			require.NotPanics(t, func() { b.Publish(tt.event) })
		})
	}
}

func TestChangeString(t *testing.T) {
	tests := []struct {
		event Change
		want  string
	}{
		{event: SectionsInserted{Axis: Rows, Index: 2, Span: 3}, want: "rows-inserted{index:2 span:3}"},
		{event: SectionsRemoved{Axis: Cols, Index: 0, Span: 2}, want: "cols-removed{index:0 span:2}"},
		{event: SectionsMoved{Axis: Rows, From: 0, To: 3, Span: 2}, want: "rows-moved{from:0 to:3 span:2}"},
		{event: CellsChanged{Row: 1, Col: 2, RowSpan: 3, ColSpan: 4}, want: "cells-changed{row:1 col:2 rows:3 cols:4}"},
		{event: ModelReset{}, want: "model-reset"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.event.String())
	}
}
