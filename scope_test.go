package sigx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	t.Run("runs function and disposes", func(t *testing.T) {
		log := []string{}

		s := NewScope()

		s.Run(func() error {
			Watch(func() {
				log = append(log, "watch")

				OnCleanup(func() { log = append(log, "cleanup") })
			})

			return nil
		})

		log = append(log, "ran")
		s.Dispose()
		log = append(log, "disposed")

		assert.Equal(t, []string{
			"watch",
			"ran",
			"cleanup",
			"disposed",
		}, log)
	})

	t.Run("nested scopes dispose children first", func(t *testing.T) {
		log := []string{}

		s := NewScope()
		s.OnCleanup(func() { log = append(log, "parent cleanup") })

		s.Run(func() error {
			NewScope().OnCleanup(func() { log = append(log, "child cleanup") })
			return nil
		})

		s.Dispose()

		assert.Equal(t, []string{
			"child cleanup",
			"parent cleanup",
		}, log)
	})

	t.Run("cleanups run in reverse registration order", func(t *testing.T) {
		log := []string{}

		s := NewScope()
		s.OnCleanup(func() { log = append(log, "first") })
		s.OnCleanup(func() { log = append(log, "second") })

		s.Dispose()

		assert.Equal(t, []string{"second", "first"}, log)
	})

	t.Run("double dispose is a no-op", func(t *testing.T) {
		calls := 0

		s := NewScope()
		s.OnCleanup(func() { calls++ })

		s.Dispose()
		assert.NotPanics(t, s.Dispose)

		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled cleanup never runs", func(t *testing.T) {
		calls := 0

		s := NewScope()
		cancel := s.OnCleanup(func() { calls++ })
		cancel()

		s.Dispose()
		assert.Equal(t, 0, calls)
	})

	t.Run("cleanup on a disposed scope runs immediately", func(t *testing.T) {
		calls := 0

		s := NewScope()
		s.Dispose()

		s.OnCleanup(func() { calls++ })
		assert.Equal(t, 1, calls)
	})

	t.Run("catches panics with OnError", func(t *testing.T) {
		log := []string{}

		s := NewScope()
		s.OnError(func(err any) {
			log = append(log, fmt.Sprintf("caught %v", err))
		})

		var errCell *Cell[error]

		s.Run(func() error {
			errCell = NewCell[error](nil)

			Watch(func() {
				if err := errCell.Read(); err != nil {
					panic(err)
				}
			})

			return nil
		})

		// panics in watcher re-runs are routed to the scope
		errCell.Write(errors.New("oops"))

		assert.Equal(t, []string{
			"caught oops",
		}, log)
	})

	t.Run("disposal prevents watcher re-runs", func(t *testing.T) {
		log := []int{}

		s := NewScope()
		count := NewCell(0)

		s.Run(func() error {
			Watch(func() {
				log = append(log, count.Read())
			})

			return nil
		})

		count.Write(1)
		s.Dispose()

		// this should not trigger the watcher
		count.Write(2)

		assert.Equal(t, []int{0, 1}, log)
	})

	t.Run("run returns the function's error", func(t *testing.T) {
		s := NewScope()

		err := s.Run(func() error {
			return errors.New("nope")
		})

		assert.EqualError(t, err, "nope")
	})
}

func TestContext(t *testing.T) {
	t.Run("falls back to the initial value", func(t *testing.T) {
		ctx := NewContext("default")
		assert.Equal(t, "default", ctx.Value())
	})

	t.Run("inherited by child scopes", func(t *testing.T) {
		ctx := NewContext("default")

		parent := NewScope()
		ctx.SetIn(parent, "from parent")

		var got string
		parent.Run(func() error {
			child := NewScope()
			got = ctx.ValueIn(child)
			return nil
		})

		assert.Equal(t, "from parent", got)
	})

	t.Run("set shadows the parent value", func(t *testing.T) {
		ctx := NewContext(0)

		parent := NewScope()
		ctx.SetIn(parent, 1)

		var inner, outer int
		parent.Run(func() error {
			child := NewScope()
			child.Run(func() error {
				ctx.Set(2)
				inner = ctx.Value()
				return nil
			})

			outer = ctx.Value()
			return nil
		})

		assert.Equal(t, 2, inner)
		assert.Equal(t, 1, outer)
	})
}
