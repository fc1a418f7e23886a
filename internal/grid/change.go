// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package grid

import "fmt"

// Axis selects the section dimension a structural change applies to.
type Axis int

const (
	// Rows applies a change to row sections.
	Rows Axis = iota
	// Cols applies a change to column sections.
	Cols
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Cols {
		return "cols"
	}
	return "rows"
}

// Change describes exactly one discrete model mutation. The five
// variants below form a closed set; a renderer switches on the concrete
// type to compute the minimal repaint. Events are immutable values,
// fully self-describing, and never depend on a previous event.
type Change interface {
	isChange()
	fmt.Stringer
}

// SectionsInserted reports Span new contiguous sections starting at
// Index, expressed in post-mutation coordinates. Sections previously at
// or after Index shift by +Span.
type SectionsInserted struct {
	Axis  Axis
	Index int
	Span  int
}

// SectionsRemoved reports Span contiguous sections removed starting at
// Index, expressed in pre-mutation coordinates. Following sections shift
// by -Span.
type SectionsRemoved struct {
	Axis  Axis
	Index int
	Span  int
}

// SectionsMoved reports a block of Span contiguous sections relocated
// from From to To. To is the index the block occupies after the move.
// Cell content within the block is unchanged; only ordering shifts.
type SectionsMoved struct {
	Axis Axis
	From int
	To   int
	Span int
}

// CellsChanged reports in-place value changes within the rectangle
// [Row, Row+RowSpan) x [Col, Col+ColSpan). Section counts are
// unchanged. Header cells are addressed with negative Row/Col per
// Locate, so a corner relabel is CellsChanged{Row: -1, Col: -1, ...}.
type CellsChanged struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// ModelReset is the catch-all for mutations the other variants cannot
// express. Observers must do a full repaint. Models prefer the specific
// variants whenever the mutation fits one.
type ModelReset struct{}

func (SectionsInserted) isChange() {}
func (SectionsRemoved) isChange()  {}
func (SectionsMoved) isChange()    {}
func (CellsChanged) isChange()     {}
func (ModelReset) isChange()       {}

func (c SectionsInserted) String() string {
	return fmt.Sprintf("%s-inserted{index:%d span:%d}", c.Axis, c.Index, c.Span)
}

func (c SectionsRemoved) String() string {
	return fmt.Sprintf("%s-removed{index:%d span:%d}", c.Axis, c.Index, c.Span)
}

func (c SectionsMoved) String() string {
	return fmt.Sprintf("%s-moved{from:%d to:%d span:%d}", c.Axis, c.From, c.To, c.Span)
}

func (c CellsChanged) String() string {
	return fmt.Sprintf("cells-changed{row:%d col:%d rows:%d cols:%d}", c.Row, c.Col, c.RowSpan, c.ColSpan)
}

func (ModelReset) String() string {
	return "model-reset"
}

// validate rejects malformed events. A zero or negative span means
// nothing changed, and an event for nothing is a logic error in the
// emitting model.
func validate(c Change) error {
	switch e := c.(type) {
	case SectionsInserted:
		if e.Span < 1 {
			return fmt.Errorf("grid: %s with span %d", e, e.Span)
		}
		if e.Index < 0 {
			return fmt.Errorf("grid: %s with negative index", e)
		}
	case SectionsRemoved:
		if e.Span < 1 {
			return fmt.Errorf("grid: %s with span %d", e, e.Span)
		}
		if e.Index < 0 {
			return fmt.Errorf("grid: %s with negative index", e)
		}
	case SectionsMoved:
		if e.Span < 1 {
			return fmt.Errorf("grid: %s with span %d", e, e.Span)
		}
		if e.From < 0 || e.To < 0 {
			return fmt.Errorf("grid: %s with negative endpoint", e)
		}
	case CellsChanged:
		if e.RowSpan < 1 || e.ColSpan < 1 {
			return fmt.Errorf("grid: %s with empty extent", e)
		}
	case ModelReset:
	case nil:
		return fmt.Errorf("grid: nil change event")
	}
	return nil
}
