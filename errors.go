package sigx

import "errors"

var (
	// ErrBound is returned by BindTo when the bindable already has an
	// active binding. Unbind first.
	ErrBound = errors.New("sigx: already bound, unbind first")

	// ErrNotBound is returned by Unbind when there is nothing to unbind.
	ErrNotBound = errors.New("sigx: not bound")

	// ErrInWatcher is returned by BindTo when called during a watcher or
	// derived-computation run, which would create a new subscription on
	// every re-evaluation.
	ErrInWatcher = errors.New("sigx: cannot bind from inside a reactive computation")

	// ErrNoScope is returned when no scope was supplied and no ambient
	// scope is active.
	ErrNoScope = errors.New("sigx: no scope supplied and no ambient scope active")

	// ErrBindableConfig is returned when manual cleanup is combined with
	// an explicit scope.
	ErrBindableConfig = errors.New("sigx: manual cleanup and an explicit scope are mutually exclusive")

	// ErrManualCell is returned when binding a cell source under manual
	// cleanup; the projecting computation needs a scope to auto-cancel.
	ErrManualCell = errors.New("sigx: cell sources require a scope, not manual cleanup")

	// ErrActivatorAttached is returned by AttachActivator when an
	// activator is already attached. Deactivate first.
	ErrActivatorAttached = errors.New("sigx: activator already attached, deactivate first")

	// ErrInitialValue is returned when an initial value is supplied
	// without a selector; there is no sound initial value for a raw
	// event.
	ErrInitialValue = errors.New("sigx: initial value requires a selector")

	// ErrSelector is returned when no selector is supplied and the result
	// type is not Event itself.
	ErrSelector = errors.New("sigx: selector required when the result type is not Event")
)
