package sigx

import "github.com/venlik/sigx/internal"

type Scope struct {
	scope *internal.Scope
}

// NewScope creates a scope. A scope manages the lifetime of reactive
// nodes and bindings created within its context. If created while another
// scope is running, it becomes that scope's child.
func NewScope() *Scope {
	return &Scope{
		internal.GetRuntime().NewScope(),
	}
}

// Run a function within the context of this scope. Watchers, bindables
// and event signals created inside belong to this scope and are torn down
// when Dispose is called.
func (s *Scope) Run(fn func() error) error {
	var err error
	s.scope.Run(func() { err = fn() })
	return err
}

// Dispose this scope and all its children. Registered cleanups run
// exactly once; disposing again is a no-op.
func (s *Scope) Dispose() {
	s.scope.Dispose()
}

// OnCleanup registers fn to be called once when the scope is disposed.
// The returned func cancels the registration.
func (s *Scope) OnCleanup(fn func()) (cancel func()) {
	return s.scope.OnCleanup(fn)
}

// OnError registers a handler for panics and upstream errors raised
// within this scope. Without any handler they propagate to the parent
// scope, and finally as a panic.
func (s *Scope) OnError(fn func(any)) {
	s.scope.OnError(fn)
}
