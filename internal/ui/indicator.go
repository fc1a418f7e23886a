// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package ui

import (
	"fmt"

	"github.com/derailed/tview"

	"github.com/tgrid/tgrid/internal/grid"
)

// Indicator is a one-line status view echoing the current model shape
// and the most recent change event, handy when eyeballing whether a
// mutation produced the event it should have.
type Indicator struct {
	*tview.TextView

	model grid.DataModel
}

// NewIndicator creates an indicator attached to model.
func NewIndicator(m grid.DataModel) *Indicator {
	i := &Indicator{TextView: tview.NewTextView()}
	i.SetDynamicColors(true)
	i.SetTextAlign(tview.AlignLeft)
	i.SetBorderPadding(0, 0, 1, 1)
	i.SetModel(m)
	return i
}

// SetModel re-targets the indicator at another model.
func (i *Indicator) SetModel(m grid.DataModel) {
	if i.model != nil {
		i.model.RemoveListener(i)
	}
	i.model = m
	m.AddListener(i)
	i.refresh("attached")
}

// Detach unhooks the indicator from its model.
func (i *Indicator) Detach() {
	if i.model != nil {
		i.model.RemoveListener(i)
		i.model = nil
	}
}

// GridChanged implements grid.Listener.
func (i *Indicator) GridChanged(c grid.Change) {
	i.refresh(c.String())
}

func (i *Indicator) refresh(event string) {
	i.SetText(fmt.Sprintf("[aqua]%dx%d[-] %s", i.model.RowCount(), i.model.ColCount(), event))
}
