package sigx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream(t *testing.T) {
	t.Run("emits to subscribers in order", func(t *testing.T) {
		log := []string{}

		s := NewStream[string]()
		s.Subscribe(Observer[string]{Next: func(v string) { log = append(log, "a:"+v) }})
		s.Subscribe(Observer[string]{Next: func(v string) { log = append(log, "b:"+v) }})

		s.Emit("x")

		assert.Equal(t, []string{"a:x", "b:x"}, log)
	})

	t.Run("unsubscribe stops delivery synchronously", func(t *testing.T) {
		got := []int{}

		s := NewStream[int]()
		sub := s.Subscribe(Observer[int]{Next: func(v int) { got = append(got, v) }})

		s.Emit(1)
		sub.Unsubscribe()
		s.Emit(2)

		// safe to call again
		sub.Unsubscribe()

		assert.Equal(t, []int{1}, got)
	})

	t.Run("replay delivers the latest value to late subscribers", func(t *testing.T) {
		s := NewReplayStream[int]()
		s.Emit(1)
		s.Emit(2)

		got := []int{}
		s.Subscribe(Observer[int]{Next: func(v int) { got = append(got, v) }})

		s.Emit(3)

		assert.Equal(t, []int{2, 3}, got)
	})

	t.Run("fail is terminal", func(t *testing.T) {
		var failed error
		got := []int{}

		s := NewStream[int]()
		s.Subscribe(Observer[int]{
			Next: func(v int) { got = append(got, v) },
			Err:  func(err error) { failed = err },
		})

		s.Emit(1)
		s.Fail(errors.New("boom"))
		s.Emit(2)

		assert.Equal(t, []int{1}, got)
		assert.EqualError(t, failed, "boom")

		// late subscribers get the failure immediately
		var late error
		s.Subscribe(Observer[int]{Err: func(err error) { late = err }})
		assert.EqualError(t, late, "boom")
	})

	t.Run("close is terminal", func(t *testing.T) {
		done := 0

		s := NewStream[int]()
		s.Subscribe(Observer[int]{Done: func() { done++ }})

		s.Close()
		s.Close()
		assert.Equal(t, 1, done)

		// late subscribers complete immediately
		s.Subscribe(Observer[int]{Done: func() { done++ }})
		assert.Equal(t, 2, done)
	})
}

func TestStreamOps(t *testing.T) {
	t.Run("take completes after n values", func(t *testing.T) {
		got := []int{}
		done := false

		src := NewStream[int]()
		out := Take(src, 2)
		out.Subscribe(Observer[int]{
			Next: func(v int) { got = append(got, v) },
			Done: func() { done = true },
		})

		src.Emit(1)
		src.Emit(2)
		src.Emit(3)

		assert.Equal(t, []int{1, 2}, got)
		assert.True(t, done)
	})

	t.Run("take until the notifier fires", func(t *testing.T) {
		got := []int{}
		done := false

		src := NewStream[int]()
		stop := NewStream[struct{}]()

		out := TakeUntil(src, stop)
		out.Subscribe(Observer[int]{
			Next: func(v int) { got = append(got, v) },
			Done: func() { done = true },
		})

		src.Emit(1)
		stop.Emit(struct{}{})
		src.Emit(2)

		assert.Equal(t, []int{1}, got)
		assert.True(t, done)
	})
}
