//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// one runtime per goroutine; reactive graphs never cross goroutines
var runtimes sync.Map

// GetRuntime returns the calling goroutine's runtime, creating it on
// first use.
func GetRuntime() *Runtime {
	r, ok := runtimes.Load(goid.Get())
	if !ok {
		r, _ = runtimes.LoadOrStore(goid.Get(), NewRuntime())
	}

	return r.(*Runtime)
}
