// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

// Package grid defines the data-model contract for a virtualized
// two-dimensional grid: cell addressing, the cell access buffer, the
// change-event algebra, and the listener channel a renderer attaches to.
// Concrete storage lives elsewhere; this package is the contract.
package grid

// CellKind classifies a grid coordinate.
type CellKind int

const (
	// BodyCell is a regular data cell.
	BodyCell CellKind = iota
	// ColumnHeaderCell labels a column.
	ColumnHeaderCell
	// RowHeaderCell labels a row.
	RowHeaderCell
	// CornerCell is the single cell where both header bands meet.
	CornerCell
)

// String returns a human readable kind name.
func (k CellKind) String() string {
	switch k {
	case BodyCell:
		return "body"
	case ColumnHeaderCell:
		return "column-header"
	case RowHeaderCell:
		return "row-header"
	case CornerCell:
		return "corner"
	default:
		return "unknown"
	}
}

// Locate maps a coordinate pair to its cell kind. A negative row selects
// the column-header band, a negative column the row-header band, and any
// pair of negatives addresses the single corner cell regardless of
// magnitude. The mapping is pure and total over all integer pairs.
func Locate(row, col int) CellKind {
	switch {
	case row >= 0 && col >= 0:
		return BodyCell
	case row < 0 && col >= 0:
		return ColumnHeaderCell
	case row >= 0:
		return RowHeaderCell
	default:
		return CornerCell
	}
}

// Conventional Type tags written by the bundled models. Painters key off
// these; concrete models are free to add their own.
const (
	TypeText   = "text"
	TypeNumber = "number"
	TypeDate   = "date"
	TypeBlank  = "blank"
	TypeHeader = "header"
	TypeCorner = "corner"
)

// CellData is the reusable buffer a model writes one cell into. The
// caller owns it for the duration of a Data call; models overwrite both
// fields and never retain a reference, so a renderer can recycle one
// instance across an entire paint pass.
type CellData struct {
	Value any
	Type  string
}

// Reset clears the buffer in place.
func (c *CellData) Reset() {
	c.Value, c.Type = nil, ""
}

// Listener receives change events from a model it is attached to.
type Listener interface {
	GridChanged(Change)
}

// DataModel is the capability a renderer consumes. Implementations own
// the section counts and cell storage and are the sole emitters of
// change events; renderers only ever read.
//
// Counts reported at any instant are consistent with the most recently
// emitted event: every index a delivered event references is valid
// against the counts as they stand after the mutation it describes.
type DataModel interface {
	// RowCount returns the current number of body rows.
	RowCount() int

	// ColCount returns the current number of body columns.
	ColCount() int

	// Data writes the cell at (row, col) into out. Header and corner
	// cells are addressed with negative indices per Locate. Data has no
	// side effects and must be cheap enough to call once per visible
	// cell per paint.
	Data(row, col int, out *CellData)

	// AddListener attaches a listener. Delivery order for a given
	// emission is attachment order.
	AddListener(Listener)

	// RemoveListener detaches a previously attached listener. Detaching
	// during a dispatch takes effect for later emissions only.
	RemoveListener(Listener)
}
