package sigx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellStream(t *testing.T) {
	t.Run("requires a scope", func(t *testing.T) {
		_, err := CellStream(NewCell(0))
		assert.ErrorIs(t, err, ErrNoScope)
	})

	t.Run("carries the current value and changes", func(t *testing.T) {
		s := NewScope()
		count := NewCell(1)

		st, err := CellStream(count, BridgeScope(s))
		require.NoError(t, err)

		got := []int{}
		st.Subscribe(Observer[int]{Next: func(v int) { got = append(got, v) }})

		count.Write(2)

		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("replays the latest value to late subscribers", func(t *testing.T) {
		s := NewScope()
		count := NewCell(1)

		st, err := CellStream(count, BridgeScope(s))
		require.NoError(t, err)

		count.Write(2)

		late := []int{}
		st.Subscribe(Observer[int]{Next: func(v int) { late = append(late, v) }})

		assert.Equal(t, []int{2}, late)
	})

	t.Run("closes when the scope ends", func(t *testing.T) {
		s := NewScope()
		count := NewCell(1)

		st, err := CellStream(count, BridgeScope(s))
		require.NoError(t, err)

		got := []int{}
		done := false
		st.Subscribe(Observer[int]{
			Next: func(v int) { got = append(got, v) },
			Done: func() { done = true },
		})

		s.Dispose()
		count.Write(2)

		assert.Equal(t, []int{1}, got)
		assert.True(t, done)
	})

	t.Run("captures the ambient scope", func(t *testing.T) {
		s := NewScope()
		count := NewCell("a")

		var st *Stream[string]
		err := s.Run(func() error {
			var err error
			st, err = CellStream(count)
			return err
		})
		require.NoError(t, err)

		got := []string{}
		st.Subscribe(Observer[string]{Next: func(v string) { got = append(got, v) }})

		count.Write("b")
		s.Dispose()
		count.Write("c")

		assert.Equal(t, []string{"a", "b"}, got)
	})
}
