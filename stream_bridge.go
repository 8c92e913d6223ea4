package sigx

import "github.com/venlik/sigx/internal"

type bridgeConfig struct {
	scope *Scope
}

type BridgeOption func(*bridgeConfig)

// BridgeScope ties the bridge to an explicit scope instead of the ambient
// one.
func BridgeScope(s *Scope) BridgeOption {
	return func(cfg *bridgeConfig) { cfg.scope = s }
}

// CellStream converts a reactive cell into a replay-friendly push stream:
// the stream carries the cell's current value, emits again on every
// change, and replays the latest value to late subscribers. The watching
// computation needs a lifetime, so a scope is required (explicit or
// ambient); when it ends the stream closes.
func CellStream[T any](src Readable[T], opts ...BridgeOption) (*Stream[T], error) {
	cfg := bridgeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := internal.GetRuntime()

	scope := r.CurrentScope()
	if cfg.scope != nil {
		scope = cfg.scope.scope
	}
	if scope == nil || scope.Disposed() {
		return nil, ErrNoScope
	}

	out := NewReplayStream[T]()

	w := r.NewWatcherIn(scope, func() {
		out.Emit(src.Read())
	})

	scope.OnCleanup(func() {
		w.Dispose()
		out.Close()
	})

	return out, nil
}
