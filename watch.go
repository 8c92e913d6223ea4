package sigx

import "github.com/venlik/sigx/internal"

// Watch runs fn immediately and re-runs it whenever any cell read during
// the previous run changes. The watcher is owned by the ambient scope and
// stops when that scope is disposed.
func Watch(fn func()) {
	internal.GetRuntime().NewWatcher(fn)
}

// Untrack runs fn without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Tracker().RunUntracked(func() { result = fn() })
	return result
}

// Batch coalesces watcher re-runs caused by writes inside fn into a
// single flush when the outermost batch ends.
func Batch(fn func()) {
	internal.GetRuntime().Batcher().Batch(fn)
}

// OnCleanup registers fn on the ambient scope, to be called once when it
// is disposed. Without an ambient scope it does nothing.
func OnCleanup(fn func()) {
	if s := internal.GetRuntime().CurrentScope(); s != nil {
		s.OnCleanup(fn)
	}
}
