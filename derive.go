package sigx

import "github.com/venlik/sigx/internal"

type Derived[T any] struct {
	cell    *internal.Cell
	watcher *internal.Watcher
}

// Derive creates a read-only cell whose value is recomputed whenever any
// cell read by compute changes. It is owned by the ambient scope, if one
// is active.
func Derive[T any](compute func() T) *Derived[T] {
	r := internal.GetRuntime()

	d := &Derived[T]{cell: r.NewCell(nil)}
	d.watcher = r.NewWatcher(func() {
		d.cell.Write(compute())
	})

	return d
}

// Read the current value, tracking the dependency if within a reactive
// context.
func (d *Derived[T]) Read() T {
	return as[T](d.cell.Read())
}
