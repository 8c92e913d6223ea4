package internal

// Context is an identity-keyed value carried by scopes and inherited from
// parent scopes.
type Context struct {
	initial any
}

func (r *Runtime) NewContext(initial any) *Context {
	return &Context{initial: initial}
}

// ValueIn looks the context up starting at scope, walking up the tree, and
// falls back to the initial value.
func (c *Context) ValueIn(scope *Scope) any {
	for s := scope; s != nil; s = s.parent {
		if v, ok := s.context[c]; ok {
			return v
		}
	}

	return c.initial
}

// Value is ValueIn on the ambient scope.
func (c *Context) Value() any {
	return c.ValueIn(GetRuntime().CurrentScope())
}

// SetIn sets the context's value for scope and its descendants.
func (c *Context) SetIn(scope *Scope, v any) {
	if scope.context == nil {
		scope.context = make(map[any]any)
	}
	scope.context[c] = v
}

// Set is SetIn on the ambient scope. Without one it is a no-op.
func (c *Context) Set(v any) {
	if s := GetRuntime().CurrentScope(); s != nil {
		c.SetIn(s, v)
	}
}
