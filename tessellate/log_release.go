//go:build !debug

package tessellate

// logDebugf is a no-op outside debug builds, so call sites never need a build-tag guard of
// their own.
func logDebugf(format string, v ...interface{}) {}
