package sigx

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/venlik/sigx/internal"
)

// HostTarget carries the host component's element through the scope tree.
// Host frameworks set it on a component's scope; event signals without an
// explicit target resolve against it.
var HostTarget = NewContext[EventTarget](nil)

type namesKind int

const (
	namesLiteral namesKind = iota
	namesCell
)

// EventNames selects which event types an EventSignal listens for, either
// as a fixed set or as a reactive cell for dynamic retargeting.
type EventNames struct {
	kind    namesKind
	literal []string
	cell    Readable[[]string]
}

// Names lists event types literally.
func Names(names ...string) EventNames {
	return EventNames{kind: namesLiteral, literal: names}
}

// NamesFrom reads the event types from a reactive cell; name changes
// re-attach the listener.
func NamesFrom(c Readable[[]string]) EventNames {
	return EventNames{kind: namesCell, cell: c}
}

type activatorKind int

const (
	activatorNone activatorKind = iota
	activatorAlways
	activatorCell
	activatorStream
)

// Activator is the closed set of activation gates: always on, a reactive
// boolean, or a boolean stream.
type Activator struct {
	kind   activatorKind
	cell   Readable[bool]
	stream *Stream[bool]
}

// Active gates the listener permanently on, until Deactivate.
func Active() Activator {
	return Activator{kind: activatorAlways}
}

// WhenCell gates the listener on a reactive boolean.
func WhenCell(c Readable[bool]) Activator {
	return Activator{kind: activatorCell, cell: c}
}

// WhenStream gates the listener on a boolean stream.
func WhenStream(s *Stream[bool]) Activator {
	return Activator{kind: activatorStream, stream: s}
}

type targetKind int

const (
	targetHost targetKind = iota
	targetLiteral
	targetCell
)

type eventSignalConfig struct {
	targetKind   targetKind
	target       EventTarget
	targetCell   Readable[EventTarget]
	listenerOpts ListenerOptions
	tap          func(Event)
	selector     func(Event) any
	initial      any
	hasInitial   bool
	scope        *Scope
	activator    *Activator
	logger       *zerolog.Logger
}

type EventSignalOption func(*eventSignalConfig)

// OnTarget listens on a fixed target instead of the scope's HostTarget.
func OnTarget(t EventTarget) EventSignalOption {
	return func(cfg *eventSignalConfig) {
		cfg.targetKind = targetLiteral
		cfg.target = t
	}
}

// OnTargetCell listens on a dynamic target; target changes move the
// listener. A nil target suspends listening without error.
func OnTargetCell(c Readable[EventTarget]) EventSignalOption {
	return func(cfg *eventSignalConfig) {
		cfg.targetKind = targetCell
		cfg.targetCell = c
	}
}

// WithListenerOptions forwards listener flags to the target.
func WithListenerOptions(o ListenerOptions) EventSignalOption {
	return func(cfg *eventSignalConfig) { cfg.listenerOpts = o }
}

// Tap runs fn on every matching event before the selector, for side
// channels.
func Tap(fn func(Event)) EventSignalOption {
	return func(cfg *eventSignalConfig) { cfg.tap = fn }
}

// Select maps each event to the value stored in the signal. Without it
// the event itself is stored.
func Select[R any](fn func(Event) R) EventSignalOption {
	return func(cfg *eventSignalConfig) {
		cfg.selector = func(e Event) any { return fn(e) }
	}
}

// InitialValue seeds the signal before the first event. Only meaningful
// together with Select; a raw event has no sound initial value.
func InitialValue[R any](v R) EventSignalOption {
	return func(cfg *eventSignalConfig) {
		cfg.initial = v
		cfg.hasInitial = true
	}
}

// EventScope ties the signal to an explicit scope instead of the ambient
// one.
func EventScope(s *Scope) EventSignalOption {
	return func(cfg *eventSignalConfig) { cfg.scope = s }
}

// Activate attaches an activator as part of construction.
func Activate(a Activator) EventSignalOption {
	return func(cfg *eventSignalConfig) { cfg.activator = &a }
}

// EventLogger attaches a logger; listener attach/detach cycles are logged
// at debug level. The default logger is a nop.
func EventLogger(l *zerolog.Logger) EventSignalOption {
	return func(cfg *eventSignalConfig) { cfg.logger = l }
}

// EventSignal projects events from a target into a reactive cell, guarded
// by an activation gate. The listener is attached iff the gate is on and
// the resolved target is defined; target, event-name and gate changes all
// re-settle it as a single remove-then-attach step.
type EventSignal[R any] struct {
	held  *Cell[R]
	scope *internal.Scope

	names        EventNames
	targetKind   targetKind
	target       EventTarget
	targetCell   Readable[EventTarget]
	listenerOpts ListenerOptions
	tap          func(Event)
	selector     func(Event) R
	logger       *zerolog.Logger

	listener       *Listener
	attachedTarget EventTarget
	attachedNames  []string

	activator activatorKind
	gateOn    bool
	actCancel func()
}

// NewEventSignal creates an event signal for the given event names. A
// scope is required, explicit via EventScope or ambient; its teardown
// deactivates the signal.
func NewEventSignal[R any](names EventNames, opts ...EventSignalOption) (*EventSignal[R], error) {
	cfg := eventSignalConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.hasInitial && cfg.selector == nil {
		return nil, ErrInitialValue
	}

	var selector func(Event) R
	if cfg.selector != nil {
		sel := cfg.selector
		selector = func(e Event) R { return as[R](sel(e)) }
	} else {
		if _, ok := any(Event{}).(R); !ok {
			return nil, ErrSelector
		}
		selector = func(e Event) R { return any(e).(R) }
	}

	r := internal.GetRuntime()

	scope := r.CurrentScope()
	if cfg.scope != nil {
		scope = cfg.scope.scope
	}
	if scope == nil || scope.Disposed() {
		return nil, ErrNoScope
	}

	var initial R
	if cfg.hasInitial {
		initial = as[R](cfg.initial)
	}

	logger := cfg.logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	es := &EventSignal[R]{
		held:         NewCell(initial),
		scope:        scope,
		names:        names,
		targetKind:   cfg.targetKind,
		target:       cfg.target,
		targetCell:   cfg.targetCell,
		listenerOpts: cfg.listenerOpts,
		tap:          cfg.tap,
		selector:     selector,
		logger:       logger,
	}
	es.listener = &Listener{Handle: es.deliver}

	// keeps the listener settled against dynamic targets and event names
	r.NewWatcherIn(scope, es.sync)

	scope.OnCleanup(es.Deactivate)

	if cfg.activator != nil {
		if err := es.AttachActivator(*cfg.activator); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Read the latest delivered value, tracking the dependency if within a
// reactive context.
func (es *EventSignal[R]) Read() R {
	return es.held.Read()
}

// AttachActivator wires an activation gate to the signal. Only one
// activator may be attached at a time: Deactivate first to replace it.
// Once the signal's scope has ended nothing could ever cancel the gate,
// so activating it again fails with ErrNoScope.
func (es *EventSignal[R]) AttachActivator(a Activator) error {
	if es.scope.Disposed() {
		return ErrNoScope
	}
	if es.activator != activatorNone {
		return ErrActivatorAttached
	}
	es.activator = a.kind

	switch a.kind {
	case activatorAlways:
		es.gateOn = true
		es.refresh()
	case activatorCell:
		w := internal.GetRuntime().NewWatcherIn(es.scope, func() {
			es.gateOn = a.cell.Read()
			es.refresh()
		})
		es.actCancel = w.Dispose
	case activatorStream:
		sub := a.stream.Subscribe(Observer[bool]{Next: func(on bool) {
			es.gateOn = on
			es.refresh()
		}})
		es.actCancel = sub.Unsubscribe
	}

	return nil
}

// Deactivate cancels the current activator, detaches the listener if
// attached and resets to not attached. Safe to call when never activated
// or already deactivated.
func (es *EventSignal[R]) Deactivate() {
	if es.actCancel != nil {
		es.actCancel()
		es.actCancel = nil
	}

	es.activator = activatorNone
	es.gateOn = false
	es.refresh()
}

func (es *EventSignal[R]) deliver(e Event) {
	if es.tap != nil {
		es.tap(e)
	}

	es.held.Write(es.selector(e))
}

func (es *EventSignal[R]) resolveTarget() EventTarget {
	switch es.targetKind {
	case targetLiteral:
		return es.target
	case targetCell:
		return es.targetCell.Read()
	default:
		return HostTarget.valueIn(es.scope)
	}
}

func (es *EventSignal[R]) resolveNames() []string {
	if es.names.kind == namesCell {
		return es.names.cell.Read()
	}

	return es.names.literal
}

// sync runs inside the signal's watcher, so reading a dynamic target or
// name cell re-triggers it on change. Changes made inside a batch
// coalesce into a single settle cycle.
func (es *EventSignal[R]) sync() {
	es.settle(es.resolveTarget(), es.resolveNames())
}

// refresh is sync for gate flips, outside any tracking context.
func (es *EventSignal[R]) refresh() {
	internal.GetRuntime().Tracker().RunUntracked(func() {
		es.settle(es.resolveTarget(), es.resolveNames())
	})
}

// settle moves the listener to the wanted target and names as a single
// remove-then-attach step, so it is never registered twice.
func (es *EventSignal[R]) settle(target EventTarget, names []string) {
	on := es.gateOn && target != nil

	if es.attachedTarget != nil {
		if on && es.attachedTarget == target && slices.Equal(es.attachedNames, names) {
			return
		}

		for _, n := range es.attachedNames {
			es.attachedTarget.RemoveEventListener(n, es.listener)
		}
		es.logger.Debug().Strs("events", es.attachedNames).Msg("listener detached")

		es.attachedTarget = nil
		es.attachedNames = nil
	}

	if !on {
		return
	}

	for _, n := range names {
		target.AddEventListener(n, es.listener, es.listenerOpts)
	}

	es.attachedTarget = target
	es.attachedNames = slices.Clone(names)
	es.logger.Debug().Strs("events", names).Msg("listener attached")
}
