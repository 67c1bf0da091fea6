//go:build church_debug

package term

import (
	"fmt"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// ownerGoid is the goroutine id that first called AssertSingleThreaded, or
// 0 before that happens.
var ownerGoid int64

// AssertSingleThreaded panics if it is ever called from more than one
// goroutine over the life of the process. The core is single-threaded and
// synchronous by design: the fresh-id counter and in-flight term
// construction are not built to tolerate concurrent callers. Built only
// with -tags church_debug, so it costs nothing in a normal build.
func AssertSingleThreaded() {
	id := goid.Get()
	if swapped := atomic.CompareAndSwapInt64(&ownerGoid, 0, id); swapped {
		return
	}
	if owner := atomic.LoadInt64(&ownerGoid); owner != id {
		panic(fmt.Sprintf("term: accessed from goroutine %d, previously from %d", id, owner))
	}
}
