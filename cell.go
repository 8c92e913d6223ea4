package sigx

import "github.com/venlik/sigx/internal"

// Readable is any reactive cell that can be read synchronously. Reads
// inside a watcher or derived computation track the dependency.
type Readable[T any] interface {
	Read() T
}

type Cell[T any] struct {
	cell *internal.Cell
}

// NewCell creates your typical read/write reactive cell.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		internal.GetRuntime().NewCell(initial),
	}
}

// Read the current value, tracking the dependency if within a reactive
// context.
func (c *Cell[T]) Read() T {
	return as[T](c.cell.Read())
}

// Write a new value, triggering updates to any dependents.
func (c *Cell[T]) Write(v T) {
	c.cell.Write(v)
}
