// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

// Package view wires grid models, tables, and chrome into the terminal
// application.
package view

import (
	"context"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/tgrid/tgrid/internal/config"
	"github.com/tgrid/tgrid/internal/grid"
	"github.com/tgrid/tgrid/internal/render"
	"github.com/tgrid/tgrid/internal/ui"
)

const refreshTimeout = 15 * time.Second

// App is the terminal application: a page per grid, an indicator line,
// and keyboard plumbing. Models are only ever mutated on the UI turn
// (key handlers and QueueUpdateDraw callbacks), which keeps the
// single-writer contract of the models intact.
type App struct {
	*tview.Application

	cfg        *config.Config
	pages      *ui.Pages
	indicator  *ui.Indicator
	refreshers map[string]func(context.Context) error
	handlers   map[string]func(*tcell.EventKey) *tcell.EventKey
	stopCh     chan struct{}
}

// NewApp creates the application shell.
func NewApp(cfg *config.Config) *App {
	return &App{
		Application: tview.NewApplication(),
		cfg:         cfg,
		pages:       ui.NewPages(),
		refreshers:  make(map[string]func(context.Context) error),
		handlers:    make(map[string]func(*tcell.EventKey) *tcell.EventKey),
	}
}

// AddGrid registers a named page rendering m. A non-nil refresh hook is
// invoked by the manual refresh key and the periodic refresh tick.
func (a *App) AddGrid(name string, m grid.DataModel, refresh func(context.Context) error) *ui.GridTable {
	t := ui.NewGridTable(m)
	t.Title().SetLabel(name)
	t.SetBorderColor(tcell.GetColor(a.cfg.Styles.Border))
	a.pages.Add(name, t)
	if refresh != nil {
		a.refreshers[name] = refresh
	}
	return t
}

// SetPageKeys installs a page-specific key handler, consulted after the
// application-level keys.
func (a *App) SetPageKeys(name string, h func(*tcell.EventKey) *tcell.EventKey) {
	a.handlers[name] = h
}

// Init builds the layout and binds keys. Call after every page is
// registered.
func (a *App) Init() {
	render.Configure(a.cfg.Styles.Header)

	if a.cfg.DefaultView != "" {
		a.pages.Visit(a.cfg.DefaultView)
	}
	current, _ := a.pages.Table(a.pages.CurrentName())
	if current != nil {
		a.indicator = ui.NewIndicator(current.Model())
	}

	main := tview.NewFlex().SetDirection(tview.FlexRow)
	main.AddItem(a.pages, 0, 1, true)
	if a.indicator != nil {
		main.AddItem(a.indicator, 1, 0, false)
	}
	a.SetRoot(main, true)
	a.SetInputCapture(a.keyboard)
}

// Run starts the periodic refresh loop and the UI event loop.
func (a *App) Run() error {
	a.stopCh = make(chan struct{})
	go a.refreshLoop()
	defer close(a.stopCh)
	return a.Application.Run()
}

// refreshLoop periodically refreshes the visible page. Refresh runs
// inside QueueUpdateDraw so model mutation stays on the UI turn.
func (a *App) refreshLoop() {
	rate := time.Duration(a.cfg.RefreshRate) * time.Second
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			a.QueueUpdateDraw(func() {
				a.refreshCurrent()
			})
		}
	}
}

func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	switch evt.Key() {
	case tcell.KeyTab:
		a.pages.Next()
		a.retarget()
		return nil
	case tcell.KeyEsc:
		if a.pages.Back() {
			a.retarget()
			return nil
		}
		return evt
	case tcell.KeyRune:
		switch evt.Rune() {
		case 'r':
			a.refreshCurrent()
			return nil
		case 'q':
			a.Stop()
			return nil
		}
	}
	if h, ok := a.handlers[a.pages.CurrentName()]; ok {
		return h(evt)
	}
	return evt
}

// refreshCurrent re-sources the visible page if it has a refresh hook.
func (a *App) refreshCurrent() {
	refresh, ok := a.refreshers[a.pages.CurrentName()]
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	if err := refresh(ctx); err != nil && a.indicator != nil {
		a.indicator.SetText("[red]" + err.Error())
	}
}

// retarget points the indicator at the newly visible page's model.
func (a *App) retarget() {
	if a.indicator == nil {
		return
	}
	if t, ok := a.pages.Table(a.pages.CurrentName()); ok {
		a.indicator.SetModel(t.Model())
	}
}
