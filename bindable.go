package sigx

import "github.com/venlik/sigx/internal"

type sourceKind int

const (
	sourceCell sourceKind = iota
	sourceStream
)

// Source is the closed set of things a Bindable can bind to: a reactive
// cell or a push stream. The kind is inspected once, in BindTo.
type Source[T any] struct {
	kind   sourceKind
	cell   Readable[T]
	stream *Stream[T]
}

// FromCell makes a Source from any readable reactive cell.
func FromCell[T any](c Readable[T]) Source[T] {
	return Source[T]{kind: sourceCell, cell: c}
}

// FromStream makes a Source from a push stream.
func FromStream[T any](s *Stream[T]) Source[T] {
	return Source[T]{kind: sourceStream, stream: s}
}

type bindableConfig struct {
	scope  *Scope
	manual bool
}

type BindableOption func(*bindableConfig)

// BindScope ties the bindable's subscriptions to an explicit scope
// instead of the ambient one.
func BindScope(s *Scope) BindableOption {
	return func(cfg *bindableConfig) { cfg.scope = s }
}

// ManualCleanup disables lifetime wiring for stream bindings: the caller
// terminates the stream itself, e.g. with Take or TakeUntil. Mutually
// exclusive with BindScope.
func ManualCleanup() BindableOption {
	return func(cfg *bindableConfig) { cfg.manual = true }
}

// Bindable is a mutable reactive cell that can additionally be driven by
// at most one bound source at a time.
type Bindable[T any] struct {
	held  *Cell[T]
	scope *internal.Scope // nil under manual cleanup

	bound  bool
	unbind func()
}

// NewBindable creates a bindable cell. Unless ManualCleanup is given, a
// scope is required, explicit via BindScope or captured from the ambient
// scope.
func NewBindable[T any](initial T, opts ...BindableOption) (*Bindable[T], error) {
	cfg := bindableConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.manual && cfg.scope != nil {
		return nil, ErrBindableConfig
	}

	b := &Bindable[T]{held: NewCell(initial)}

	switch {
	case cfg.manual:
	case cfg.scope != nil:
		b.scope = cfg.scope.scope
	default:
		b.scope = internal.GetRuntime().CurrentScope()
		if b.scope == nil {
			return nil, ErrNoScope
		}
	}

	return b, nil
}

// Read the current value, tracking the dependency if within a reactive
// context.
func (b *Bindable[T]) Read() T {
	return b.held.Read()
}

// Write a new value directly, triggering updates to any dependents.
func (b *Bindable[T]) Write(v T) {
	b.held.Write(v)
}

// BindTo connects the bindable to src, projecting its values into the
// held cell. Only one source may be bound at a time: rebinding requires
// Unbind first. Binding from inside a reactive computation is rejected.
func (b *Bindable[T]) BindTo(src Source[T]) error {
	if internal.GetRuntime().CurrentWatcher() != nil {
		return ErrInWatcher
	}
	if b.bound {
		return ErrBound
	}
	if b.scope != nil && b.scope.Disposed() {
		// the lifetime already ended, nothing could ever cancel this binding
		return ErrNoScope
	}

	switch src.kind {
	case sourceCell:
		return b.bindCell(src.cell)
	default:
		return b.bindStream(src.stream)
	}
}

func (b *Bindable[T]) bindCell(src Readable[T]) error {
	if b.scope == nil {
		return ErrManualCell
	}

	w := internal.GetRuntime().NewWatcherIn(b.scope, func() {
		b.held.Write(src.Read())
	})

	// the watcher dies with the scope; the cleanup resets the binding
	// state so the cell can be rebound afterwards
	cancelReg := b.scope.OnCleanup(b.drop)

	b.bound = true
	b.unbind = func() {
		w.Dispose()
		cancelReg()
	}

	return nil
}

func (b *Bindable[T]) bindStream(src *Stream[T]) error {
	// mark bound before subscribing: an already-failed stream notifies
	// synchronously, which must tear this binding down again
	b.bound = true
	b.unbind = func() {}

	sub := src.Subscribe(Observer[T]{
		Next: b.held.Write,
		Err: func(err error) {
			// terminal for this binding
			b.drop()
			b.raise(err)
		},
	})

	if !b.bound {
		return nil
	}

	if b.scope != nil {
		// scope teardown severs the binding exactly once and leaves the
		// cell rebindable
		cancelReg := b.scope.OnCleanup(b.drop)
		b.unbind = func() {
			sub.Unsubscribe()
			cancelReg()
		}
	} else {
		b.unbind = sub.Unsubscribe
	}

	return nil
}

// Unbind severs the active binding synchronously: after it returns,
// further emissions from the old source no longer reach the held cell.
func (b *Bindable[T]) Unbind() error {
	if !b.bound {
		return ErrNotBound
	}

	b.drop()
	return nil
}

func (b *Bindable[T]) drop() {
	if !b.bound {
		return
	}
	b.bound = false

	if b.unbind != nil {
		b.unbind()
		b.unbind = nil
	}
}

// raise routes an upstream failure to the nearest error boundary.
func (b *Bindable[T]) raise(err error) {
	if b.scope != nil && b.scope.Catch(err) {
		return
	}
	panic(err)
}
