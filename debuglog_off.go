//go:build !debug

package debuglog

import "io"

// Active indicates whether tracing is compiled in
const Active = false

// Logf is a no-op in release builds
func Logf(format string, args ...any) {}

// Dump is a no-op in release builds
func Dump(name string, value any) {}

// Group returns a no-op closer in release builds
func Group(format string, args ...any) func() {
	return nop
}

// LogfAt is a no-op in release builds
func LogfAt(location, format string, args ...any) {}

// DumpAt is a no-op in release builds
func DumpAt(location, name string, value any) {}

// GroupAt returns a no-op closer in release builds
func GroupAt(location, format string, args ...any) func() {
	return nop
}

// SetFilter is a no-op in release builds
func SetFilter(value string) {}

// Filter returns the empty string in release builds
func Filter() string { return "" }

// Enabled is always false in release builds
func Enabled(location string) bool { return false }

// Depth is always zero in release builds
func Depth() int { return 0 }

// SetOutput is a no-op in release builds
func SetOutput(w io.Writer) {}

func nop() {}
