package internal

import (
	"reflect"
	"slices"
)

// Cell is an untyped reactive value holder. The typed API lives in the
// root package.
type Cell struct {
	value any
	subs  []*Watcher
}

func (r *Runtime) NewCell(initial any) *Cell {
	return &Cell{value: initial}
}

// Read returns the current value, linking the cell to the running watcher
// when one is tracking.
func (c *Cell) Read() any {
	t := GetRuntime().tracker
	if t.ShouldTrack() {
		t.currentWatcher.link(c)
	}

	return c.value
}

// Write stores a new value and notifies subscribed watchers. Writes of an
// equal value are dropped.
func (c *Cell) Write(v any) {
	if isEqual(c.value, v) {
		return
	}

	c.value = v

	r := GetRuntime()
	// cloning to avoid mutation during iteration
	for _, w := range slices.Clone(c.subs) {
		r.batcher.Queue(w)
	}
}

func (c *Cell) track(w *Watcher) {
	if !slices.Contains(c.subs, w) {
		c.subs = append(c.subs, w)
	}
}

func (c *Cell) untrack(w *Watcher) {
	if i := slices.Index(c.subs, w); i >= 0 {
		c.subs = slices.Delete(c.subs, i, i+1)
	}
}

func isEqual(a, b any) (eq bool) {
	if a == nil || b == nil {
		return a == b
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	// interface-typed fields can still make == panic at runtime
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()

	return a == b
}
