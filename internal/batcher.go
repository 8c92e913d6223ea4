package internal

import "slices"

// Batcher defers watcher re-runs while a batch is open. Nested batches
// flush once, when the outermost one ends.
type Batcher struct {
	depth   int
	pending []*Watcher
}

func NewBatcher() *Batcher {
	return &Batcher{}
}

func (b *Batcher) IsBatching() bool {
	return b.depth > 0
}

func (b *Batcher) Batch(fn func()) {
	b.depth++
	defer func() {
		b.depth--
		if b.depth == 0 {
			b.flush()
		}
	}()

	fn()
}

// Queue runs the watcher now, or defers it (deduplicated) until the
// outermost batch ends.
func (b *Batcher) Queue(w *Watcher) {
	if b.depth == 0 {
		w.run()
		return
	}

	if !slices.Contains(b.pending, w) {
		b.pending = append(b.pending, w)
	}
}

func (b *Batcher) flush() {
	pending := b.pending
	b.pending = nil

	for _, w := range pending {
		w.run()
	}
}
