package internal

import "slices"

// Watcher is a computation that re-runs whenever one of the cells it read
// during its previous run changes. Each run gets a fresh inner scope, so
// cleanups registered during a run fire before the next run and on
// disposal.
type Watcher struct {
	fn     func()
	deps   []*Cell
	scope  *Scope // inner scope of the current run
	parent *Scope

	disposed bool
}

// NewWatcher creates a watcher owned by the ambient scope and runs it once
// immediately.
func (r *Runtime) NewWatcher(fn func()) *Watcher {
	return r.NewWatcherIn(r.tracker.CurrentScope(), fn)
}

// NewWatcherIn is NewWatcher with an explicit owning scope.
func (r *Runtime) NewWatcherIn(scope *Scope, fn func()) *Watcher {
	w := &Watcher{fn: fn, parent: scope}
	if w.parent != nil {
		w.parent.addChild(w)
	}

	w.run()

	return w
}

func (w *Watcher) run() {
	if w.disposed {
		return
	}

	w.clean()
	w.scope = &Scope{parent: w.parent}

	defer func() {
		if rec := recover(); rec != nil {
			if !w.scope.Catch(rec) {
				panic(rec)
			}
		}
	}()

	GetRuntime().tracker.RunWithWatcher(w, w.fn)
}

func (w *Watcher) clean() {
	for _, dep := range w.deps {
		dep.untrack(w)
	}
	w.deps = nil

	if w.scope != nil {
		w.scope.Dispose()
		w.scope = nil
	}
}

func (w *Watcher) link(c *Cell) {
	if !slices.Contains(w.deps, c) {
		w.deps = append(w.deps, c)
		c.track(w)
	}
}

// Dispose stops the watcher for good: dependencies are unlinked and the
// current run's cleanups fire. Disposing twice is a no-op.
func (w *Watcher) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true

	w.clean()

	if w.parent != nil {
		w.parent.removeChild(w)
	}
}
