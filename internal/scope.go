package internal

import "slices"

type disposable interface {
	Dispose()
}

// Scope is a bounded lifetime. Watchers and child scopes created while it
// is active belong to it, and its cleanup callbacks run exactly once when
// it is disposed.
type Scope struct {
	parent   *Scope
	children []disposable

	// cleanup callbacks, run on disposal unless cancelled first
	cleanups []*cleanup

	// panic/error handlers
	catchers []func(any)

	// the context values of this scope
	context map[any]any

	disposed bool
}

type cleanup struct {
	fn        func()
	cancelled bool
}

func (r *Runtime) NewScope() *Scope {
	s := &Scope{parent: r.tracker.CurrentScope()}
	if s.parent != nil {
		s.parent.addChild(s)
	}

	return s
}

// Run executes fn with this scope as the ambient scope. Panics raised
// inside are routed to the nearest error catcher, or re-raised.
func (s *Scope) Run(fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			if !s.Catch(rec) {
				panic(rec)
			}
		}
	}()

	GetRuntime().tracker.RunWithScope(s, fn)
}

// Catch delivers err to the catchers of the nearest scope that has any,
// walking up the tree. Reports whether a catcher was found.
func (s *Scope) Catch(err any) bool {
	for sc := s; sc != nil; sc = sc.parent {
		if len(sc.catchers) > 0 {
			for _, catcher := range sc.catchers {
				catcher(err)
			}
			return true
		}
	}

	return false
}

func (s *Scope) addChild(child disposable) {
	if !slices.Contains(s.children, child) {
		s.children = append(s.children, child)
	}
}

func (s *Scope) removeChild(child disposable) {
	if i := slices.Index(s.children, child); i >= 0 {
		s.children = slices.Delete(s.children, i, i+1)
	}
}

// Dispose tears the scope down: children first, then cleanups, both in
// reverse registration order. Disposing twice is a no-op.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	if s.parent != nil {
		s.parent.removeChild(s)
	}

	children := s.children
	s.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	cleanups := s.cleanups
	s.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		if !cleanups[i].cancelled {
			cleanups[i].fn()
		}
	}
}

// OnCleanup registers fn to run once at disposal and returns a func that
// cancels the registration. On an already disposed scope fn runs
// immediately.
func (s *Scope) OnCleanup(fn func()) (cancel func()) {
	if s.disposed {
		fn()
		return func() {}
	}

	c := &cleanup{fn: fn}
	s.cleanups = append(s.cleanups, c)

	return func() { c.cancelled = true }
}

// OnError registers a handler for panics and runtime errors raised within
// this scope or routed to it.
func (s *Scope) OnError(fn func(any)) {
	s.catchers = append(s.catchers, fn)
}

func (s *Scope) Disposed() bool {
	return s.disposed
}
