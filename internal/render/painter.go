// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

// Package render maps cell type tags to terminal styling. It knows
// nothing about any concrete model; the contract is the tag string a
// model writes into the cell buffer.
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tgrid/tgrid/internal/grid"
)

// Alignment values, matching tview's AlignLeft/Center/Right.
const (
	AlignLeft = iota
	AlignCenter
	AlignRight
)

const (
	// StdColor is the default cell color.
	StdColor tcell.Color = tcell.ColorWhite

	// NumberColor colors numeric cells.
	NumberColor tcell.Color = tcell.ColorAqua

	// DateColor colors date cells.
	DateColor tcell.Color = tcell.ColorDarkCyan

	// HeaderColor colors the header bands.
	HeaderColor tcell.Color = tcell.ColorYellow

	// BlankColor colors empty cells.
	BlankColor tcell.Color = tcell.ColorGray
)

// Painter selects styling for one cell type tag.
type Painter struct {
	Color tcell.Color
	Align int
	Bold  bool
}

var painters = map[string]Painter{
	grid.TypeText:   {Color: StdColor, Align: AlignLeft},
	grid.TypeNumber: {Color: NumberColor, Align: AlignRight},
	grid.TypeDate:   {Color: DateColor, Align: AlignRight},
	grid.TypeBlank:  {Color: BlankColor, Align: AlignLeft},
	grid.TypeHeader: {Color: HeaderColor, Align: AlignCenter, Bold: true},
	grid.TypeCorner: {Color: HeaderColor, Align: AlignCenter, Bold: true},
}

// For returns the painter for a tag, falling back to the standard one.
func For(tag string) Painter {
	if p, ok := painters[tag]; ok {
		return p
	}
	return Painter{Color: StdColor, Align: AlignLeft}
}

// Register installs or overrides the painter for a tag.
func Register(tag string, p Painter) {
	painters[tag] = p
}

// Configure recolors the header band painters from a tcell color name.
// An empty name keeps the built-in colors.
func Configure(header string) {
	if header == "" {
		return
	}
	c := tcell.GetColor(header)
	for _, tag := range []string{grid.TypeHeader, grid.TypeCorner} {
		p := painters[tag]
		p.Color = c
		painters[tag] = p
	}
}

// Text formats a cell value for terminal display.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	case float64:
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(t)
	}
}
