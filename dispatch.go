package sigx

import (
	"slices"

	"github.com/rs/zerolog"
)

// Event is what listeners receive when a target dispatches. Detail
// carries the event payload, if any.
type Event struct {
	Type   string
	Target EventTarget
	Detail any
}

// Listener wraps a handler so registrations have a comparable identity
// and can be removed again.
type Listener struct {
	Handle func(Event)
}

// ListenerOptions mirror the usual DOM listener flags.
type ListenerOptions struct {
	Capture bool
	Passive bool
}

// EventTarget is anything listeners can be attached to and removed from.
// Host frameworks adapt their element handles to this; Dispatcher is an
// in-memory implementation.
type EventTarget interface {
	AddEventListener(eventType string, l *Listener, opts ListenerOptions)
	RemoveEventListener(eventType string, l *Listener)
}

// Dispatcher is an in-memory EventTarget, useful as a host-side event bus
// and in tests.
type Dispatcher struct {
	listeners map[string][]*Listener
	logger    *zerolog.Logger
}

type DispatcherOption func(*Dispatcher)

// DispatcherLogger attaches a logger; dispatches are logged at debug
// level. The default logger is a nop.
func DispatcherLogger(l *zerolog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = l }
}

func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	nop := zerolog.Nop()
	d := &Dispatcher{
		listeners: make(map[string][]*Listener),
		logger:    &nop,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Dispatcher) AddEventListener(eventType string, l *Listener, _ ListenerOptions) {
	if !slices.Contains(d.listeners[eventType], l) {
		d.listeners[eventType] = append(d.listeners[eventType], l)
	}
}

func (d *Dispatcher) RemoveEventListener(eventType string, l *Listener) {
	ls := d.listeners[eventType]
	if i := slices.Index(ls, l); i >= 0 {
		d.listeners[eventType] = slices.Delete(ls, i, i+1)
	}
}

// Dispatch delivers e to every listener registered for e.Type, in
// registration order. An empty Target is filled in with d.
func (d *Dispatcher) Dispatch(e Event) {
	if e.Target == nil {
		e.Target = d
	}

	// cloning to avoid mutation during iteration
	ls := slices.Clone(d.listeners[e.Type])

	d.logger.Debug().Str("event", e.Type).Int("listeners", len(ls)).Msg("dispatch")

	for _, l := range ls {
		l.Handle(e)
	}
}
