//go:build !church_debug

package term

// AssertSingleThreaded is a no-op outside of -tags church_debug builds; see
// guard_debug.go.
func AssertSingleThreaded() {}
