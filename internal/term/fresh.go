package term

import (
	"sync/atomic"

	"github.com/funvibe/church/internal/config"
)

// idCounter is the process-wide, lock-free fresh-variable-id source shared
// by the compiler (allocating a bound id for each surface Abs it
// translates) and the term engine (renaming a binder to avoid capture
// during substitution). A single shared counter means no two fresh
// allocations — whichever of the two callers made them — can ever collide
// with each other; starting it at config.FreshIDBase keeps it out of reach
// of the much smaller ids ParseIndex produces for ordinary free variables.
var idCounter int64 = config.FreshIDBase

// NextFreshID atomically allocates and returns the next fresh variable id.
func NextFreshID() int {
	return int(atomic.AddInt64(&idCounter, 1))
}
