// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package grid

// TitleListener observes Title mutations.
type TitleListener interface {
	TitleChanged(*Title)
}

// Title is a mutable record describing a grid surface: a page tab, a
// table border caption, and similar chrome. Every setter compares
// before assigning and notifies only on an actual change; writing the
// current value back is a silent no-op. The owner is fixed at
// construction and never re-parented.
type Title struct {
	owner     any
	label     string
	mnemonic  int
	icon      string
	caption   string
	className string
	closable  bool
	dataset   map[string]string
	listeners []TitleListener
}

// NewTitle creates a Title owned by owner. The mnemonic starts at -1
// (no shortcut).
func NewTitle(owner any) *Title {
	return &Title{
		owner:    owner,
		mnemonic: -1,
		dataset:  make(map[string]string),
	}
}

// Owner returns the object this title describes.
func (t *Title) Owner() any { return t.owner }

// Label returns the display label.
func (t *Title) Label() string { return t.label }

// SetLabel sets the display label.
func (t *Title) SetLabel(v string) {
	if t.label == v {
		return
	}
	t.label = v
	t.notify()
}

// Mnemonic returns the shortcut character index into the label, or -1.
func (t *Title) Mnemonic() int { return t.mnemonic }

// SetMnemonic sets the shortcut character index.
func (t *Title) SetMnemonic(v int) {
	if t.mnemonic == v {
		return
	}
	t.mnemonic = v
	t.notify()
}

// Icon returns the icon class.
func (t *Title) Icon() string { return t.icon }

// SetIcon sets the icon class.
func (t *Title) SetIcon(v string) {
	if t.icon == v {
		return
	}
	t.icon = v
	t.notify()
}

// Caption returns the long-form caption or tooltip text.
func (t *Title) Caption() string { return t.caption }

// SetCaption sets the caption.
func (t *Title) SetCaption(v string) {
	if t.caption == v {
		return
	}
	t.caption = v
	t.notify()
}

// ClassName returns the extra class name.
func (t *Title) ClassName() string { return t.className }

// SetClassName sets the extra class name.
func (t *Title) SetClassName(v string) {
	if t.className == v {
		return
	}
	t.className = v
	t.notify()
}

// Closable reports whether the owning surface may be closed.
func (t *Title) Closable() bool { return t.closable }

// SetClosable sets the closable flag.
func (t *Title) SetClosable(v bool) {
	if t.closable == v {
		return
	}
	t.closable = v
	t.notify()
}

// Data returns the auxiliary value for key. Absent keys read back as
// the empty string, never as an error.
func (t *Title) Data(key string) string {
	return t.dataset[key]
}

// SetData sets one auxiliary entry. The empty string deletes the key.
func (t *Title) SetData(key, value string) {
	if t.dataset[key] == value {
		return
	}
	if value == "" {
		delete(t.dataset, key)
	} else {
		t.dataset[key] = value
	}
	t.notify()
}

// UpdateData applies every entry of the batch and notifies at most
// once: exactly one notification if anything actually changed, none
// otherwise. The empty string deletes a key, as with SetData.
func (t *Title) UpdateData(entries map[string]string) {
	changed := false
	for key, value := range entries {
		if t.dataset[key] == value {
			continue
		}
		if value == "" {
			delete(t.dataset, key)
		} else {
			t.dataset[key] = value
		}
		changed = true
	}
	if changed {
		t.notify()
	}
}

// AddListener attaches l. Listeners are notified in attachment order.
func (t *Title) AddListener(l TitleListener) {
	t.listeners = append(t.listeners, l)
}

// RemoveListener detaches l.
func (t *Title) RemoveListener(l TitleListener) {
	for i, listener := range t.listeners {
		if listener == l {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

func (t *Title) notify() {
	dispatch(t.listeners, func(l TitleListener) {
		l.TitleChanged(t)
	})
}
