// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package grid

// BaseModel supplies the notification channel half of DataModel. A
// concrete model embeds it, keeps its own storage, and calls Publish
// once per discrete mutation, after its counts and cells already
// reflect the new state. The whole model is single-writer and
// synchronous; there is no locking because there is no concurrency.
type BaseModel struct {
	listeners []Listener
}

// AddListener attaches l. Listeners are notified in attachment order.
func (b *BaseModel) AddListener(l Listener) {
	b.listeners = append(b.listeners, l)
}

// RemoveListener detaches l. Unknown listeners are ignored.
func (b *BaseModel) RemoveListener(l Listener) {
	for i, listener := range b.listeners {
		if listener == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Publish delivers c synchronously to every listener attached at call
// time, in attachment order. The listener slice is snapshotted first,
// so attaching or detaching from inside a callback affects later
// emissions only and never skips or double-delivers within the current
// one. A nested mutation from a callback simply dispatches recursively
// with its own snapshot.
//
// Publish panics on a malformed event (zero or negative span): emitting
// one is an internal logic error in the model, not a runtime condition.
// A panicking listener does not stop delivery to the rest; the first
// recovered value is re-raised once the dispatch completes, so the
// failure still reaches the application's crash handling.
func (b *BaseModel) Publish(c Change) {
	if err := validate(c); err != nil {
		panic(err)
	}
	dispatch(b.listeners, func(l Listener) {
		l.GridChanged(c)
	})
}

// dispatch snapshots listeners, invokes call on each in order with
// per-listener panic isolation, then re-raises the first panic if any.
func dispatch[L any](listeners []L, call func(L)) {
	snapshot := make([]L, len(listeners))
	copy(snapshot, listeners)

	var failure any
	for _, l := range snapshot {
		func() {
			defer func() {
				if r := recover(); r != nil && failure == nil {
					failure = r
				}
			}()
			call(l)
		}()
	}
	if failure != nil {
		panic(failure)
	}
}
