// Package sigx is a toolkit of reactive-state helpers for signal-based
// component UIs: rebindable cells that can be driven by streams or other
// cells at runtime, event signals with dynamic targets and activation
// gates, and bridges between reactive cells and push streams.
//
// The reactive primitives (cells, watchers, scopes) live here too, backed
// by a per-goroutine runtime in internal.
package sigx

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}
