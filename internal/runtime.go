package internal

// Runtime holds the reactive machinery shared by everything created on the
// same goroutine: the tracker (who is currently running) and the batcher
// (what is waiting to re-run).
type Runtime struct {
	tracker *Tracker
	batcher *Batcher
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
		batcher: NewBatcher(),
	}
}

func (r *Runtime) Tracker() *Tracker { return r.tracker }

func (r *Runtime) Batcher() *Batcher { return r.batcher }

// CurrentScope returns the scope whose Run is currently executing, or nil.
func (r *Runtime) CurrentScope() *Scope {
	return r.tracker.CurrentScope()
}

// CurrentWatcher returns the watcher currently re-evaluating, or nil.
func (r *Runtime) CurrentWatcher() *Watcher {
	return r.tracker.CurrentWatcher()
}
