package sigx

import "slices"

// Observer receives stream notifications. Nil callbacks are skipped.
type Observer[T any] struct {
	Next func(T)
	Err  func(error)
	Done func()
}

// Stream is a hot push stream with synchronous delivery, matching the
// cooperative single-goroutine model of the rest of the package. Once
// failed or closed it is terminal: no further values are delivered and
// late subscribers are notified immediately.
type Stream[T any] struct {
	subs   []*streamSub[T]
	closed bool
	failed error

	// replay-1 support
	replay bool
	latest T
	has    bool
}

type streamSub[T any] struct {
	obs    Observer[T]
	active bool
}

func NewStream[T any]() *Stream[T] {
	return &Stream[T]{}
}

// NewReplayStream creates a stream that additionally replays its latest
// value to every new subscriber.
func NewReplayStream[T any]() *Stream[T] {
	return &Stream[T]{replay: true}
}

// Emit delivers v to all active subscribers, in subscription order.
// Emitting on a terminal stream does nothing.
func (s *Stream[T]) Emit(v T) {
	if s.terminal() {
		return
	}

	if s.replay {
		s.latest, s.has = v, true
	}

	// cloning to avoid mutation during iteration
	for _, sub := range slices.Clone(s.subs) {
		if sub.active && sub.obs.Next != nil {
			sub.obs.Next(v)
		}
	}
}

// Fail terminates the stream with err, notifying all subscribers.
func (s *Stream[T]) Fail(err error) {
	if s.terminal() || err == nil {
		return
	}

	s.failed = err
	subs := s.subs
	s.subs = nil

	for _, sub := range subs {
		if sub.active {
			sub.active = false
			if sub.obs.Err != nil {
				sub.obs.Err(err)
			}
		}
	}
}

// Close terminates the stream normally, notifying all subscribers.
func (s *Stream[T]) Close() {
	if s.terminal() {
		return
	}

	s.closed = true
	subs := s.subs
	s.subs = nil

	for _, sub := range subs {
		if sub.active {
			sub.active = false
			if sub.obs.Done != nil {
				sub.obs.Done()
			}
		}
	}
}

func (s *Stream[T]) terminal() bool {
	return s.closed || s.failed != nil
}

// Subscribe registers obs and returns its subscription. On a replay
// stream the latest value is delivered during the call; on a terminal
// stream the terminal notification follows immediately and the returned
// subscription is inert.
func (s *Stream[T]) Subscribe(obs Observer[T]) *Subscription {
	if s.replay && s.has && obs.Next != nil {
		obs.Next(s.latest)
	}

	if s.failed != nil {
		if obs.Err != nil {
			obs.Err(s.failed)
		}
		return &Subscription{}
	}
	if s.closed {
		if obs.Done != nil {
			obs.Done()
		}
		return &Subscription{}
	}

	sub := &streamSub[T]{obs: obs, active: true}
	s.subs = append(s.subs, sub)

	return &Subscription{cancel: func() {
		sub.active = false
		if i := slices.Index(s.subs, sub); i >= 0 {
			s.subs = slices.Delete(s.subs, i, i+1)
		}
	}}
}

// Subscription cancels exactly one stream registration.
type Subscription struct {
	cancel func()
	done   bool
}

// Unsubscribe cancels the registration synchronously: after it returns no
// further notifications reach the observer. Calling it again is a no-op.
func (u *Subscription) Unsubscribe() {
	if u.done {
		return
	}
	u.done = true

	if u.cancel != nil {
		u.cancel()
	}
}
