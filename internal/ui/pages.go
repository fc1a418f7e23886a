// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package ui

import (
	"github.com/derailed/tview"
)

// Pages hosts named grid pages with a visit history, so going back
// walks through previously shown grids in reverse order.
type Pages struct {
	*tview.Pages

	tables  map[string]*GridTable
	names   []string
	history []string
}

// NewPages returns a new page manager.
func NewPages() *Pages {
	return &Pages{
		Pages:  tview.NewPages(),
		tables: make(map[string]*GridTable),
	}
}

// Add registers a page. The first page added becomes visible.
func (p *Pages) Add(name string, t *GridTable) {
	p.tables[name] = t
	p.names = append(p.names, name)
	p.AddPage(name, t, true, false)
	if len(p.history) == 0 {
		p.Visit(name)
	}
}

// Table returns the table behind a page name.
func (p *Pages) Table(name string) (*GridTable, bool) {
	t, ok := p.tables[name]
	return t, ok
}

// Names returns the page names in registration order.
func (p *Pages) Names() []string {
	return p.names
}

// CurrentName returns the visible page name.
func (p *Pages) CurrentName() string {
	if len(p.history) == 0 {
		return ""
	}
	return p.history[len(p.history)-1]
}

// Visit switches to a page and records the visit.
func (p *Pages) Visit(name string) bool {
	if _, ok := p.tables[name]; !ok || name == p.CurrentName() {
		return false
	}
	p.history = append(p.history, name)
	p.SwitchToPage(name)
	return true
}

// Back returns to the previously visited page.
func (p *Pages) Back() bool {
	if len(p.history) < 2 {
		return false
	}
	p.history = p.history[:len(p.history)-1]
	p.SwitchToPage(p.history[len(p.history)-1])
	return true
}

// Next cycles to the page registered after the current one.
func (p *Pages) Next() {
	current := p.CurrentName()
	for i, name := range p.names {
		if name == current {
			p.Visit(p.names[(i+1)%len(p.names)])
			return
		}
	}
}
