package sigx

// Take re-emits the first n values of src, then completes.
func Take[T any](src *Stream[T], n int) *Stream[T] {
	out := NewStream[T]()
	if n <= 0 {
		out.Close()
		return out
	}

	count := 0
	stopped := false

	var sub *Subscription
	sub = src.Subscribe(Observer[T]{
		Next: func(v T) {
			if stopped {
				return
			}

			count++
			out.Emit(v)

			if count >= n {
				stopped = true
				out.Close()
				if sub != nil {
					sub.Unsubscribe()
				}
			}
		},
		Err:  out.Fail,
		Done: out.Close,
	})

	// replay streams may satisfy n during Subscribe, before sub exists
	if stopped {
		sub.Unsubscribe()
	}

	return out
}

// TakeUntil re-emits src until notifier delivers a value, then completes.
// A notifier failure fails the result.
func TakeUntil[T, U any](src *Stream[T], notifier *Stream[U]) *Stream[T] {
	out := NewStream[T]()

	srcSub := src.Subscribe(Observer[T]{
		Next: out.Emit,
		Err:  out.Fail,
		Done: out.Close,
	})

	stopped := false

	var noteSub *Subscription
	noteSub = notifier.Subscribe(Observer[U]{
		Next: func(U) {
			if stopped {
				return
			}
			stopped = true

			out.Close()
			srcSub.Unsubscribe()
			if noteSub != nil {
				noteSub.Unsubscribe()
			}
		},
		Err: func(err error) {
			out.Fail(err)
			srcSub.Unsubscribe()
		},
	})

	if stopped {
		noteSub.Unsubscribe()
	}

	return out
}
