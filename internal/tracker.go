package internal

type Tracker struct {
	tracking bool

	currentScope   *Scope   // for lifecycle/cleanup tracking
	currentWatcher *Watcher // for reactive dependency tracking
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

func (t *Tracker) RunWithScope(scope *Scope, fn func()) {
	prev := t.currentScope
	t.currentScope = scope
	defer func() { t.currentScope = prev }()

	fn()
}

func (t *Tracker) RunWithWatcher(w *Watcher, fn func()) {
	prevScope := t.currentScope
	prevWatcher := t.currentWatcher

	t.currentScope = w.scope
	t.currentWatcher = w

	defer func() {
		t.currentScope = prevScope
		t.currentWatcher = prevWatcher
	}()

	fn()
}

func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

func (t *Tracker) ShouldTrack() bool {
	return t.currentWatcher != nil && t.tracking
}

func (t *Tracker) CurrentScope() *Scope {
	return t.currentScope
}

func (t *Tracker) CurrentWatcher() *Watcher {
	return t.currentWatcher
}
