package sigx

import "github.com/venlik/sigx/internal"

type Context[T any] struct {
	ctx *internal.Context
}

// NewContext creates a scope-carried value with an initial (fallback)
// value. Lookups walk up the scope tree, so values set on a scope are
// visible to its descendants.
func NewContext[T any](initial T) *Context[T] {
	return &Context[T]{
		internal.GetRuntime().NewContext(initial),
	}
}

// Value retrieves the context's value for the ambient scope.
func (c *Context[T]) Value() T {
	return as[T](c.ctx.Value())
}

// ValueIn retrieves the context's value as seen from s.
func (c *Context[T]) ValueIn(s *Scope) T {
	return as[T](c.ctx.ValueIn(s.scope))
}

// Set the context's value for the ambient scope. Without one it does
// nothing.
func (c *Context[T]) Set(v T) {
	c.ctx.Set(v)
}

// SetIn sets the context's value for s and its descendants.
func (c *Context[T]) SetIn(s *Scope, v T) {
	c.ctx.SetIn(s.scope, v)
}

func (c *Context[T]) valueIn(s *internal.Scope) T {
	return as[T](c.ctx.ValueIn(s))
}
