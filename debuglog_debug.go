//go:build debug

package debuglog

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/zaolin/debuglog/internal/engine"
	"github.com/zaolin/debuglog/internal/sink"
)

// Active indicates whether tracing is compiled in
const Active = true

var std = engine.FromEnv()

// Logf emits a formatted message tagged with the caller's file:line
func Logf(format string, args ...any) {
	std.Logf(caller(1), format, args...)
}

// Dump emits a value as "<name> = <value>" tagged with the caller's
// file:line. The name is the source text of the dumped expression,
// supplied by the caller.
func Dump(name string, value any) {
	std.Dump(caller(1), name, value)
}

// Group opens a nested trace group and returns its closer:
//
//	defer debuglog.Group("handle %s", req.ID)()
//
// The closer runs exactly once regardless of how the scope exits.
// When the filter denies the caller's location the group is inert.
func Group(format string, args ...any) func() {
	return std.Group(caller(1), format, args...)
}

// LogfAt is Logf with a caller-supplied location tag, for hosts that
// generate call sites themselves
func LogfAt(location, format string, args ...any) {
	std.Logf(location, format, args...)
}

// DumpAt is Dump with a caller-supplied location tag
func DumpAt(location, name string, value any) {
	std.Dump(location, name, value)
}

// GroupAt is Group with a caller-supplied location tag
func GroupAt(location, format string, args ...any) func() {
	return std.Group(location, format, args...)
}

// SetFilter replaces the location filter at runtime. Used by embedding
// hosts that cannot set the DEBUG environment variable.
func SetFilter(value string) {
	std.SetFilter(value)
}

// Filter returns the current filter value
func Filter() string {
	return std.Filter()
}

// Enabled reports whether output is enabled for a location tag
func Enabled(location string) bool {
	return std.Enabled(location)
}

// Depth returns the current group nesting depth
func Depth() int {
	return std.Depth()
}

// SetOutput redirects trace output to w
func SetOutput(w io.Writer) {
	std.SetSink(sink.NewStream(w))
}

// caller returns the call site as "dir/file.go:line". The path is
// trimmed to its last two segments so filters stay stable across
// checkouts.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", shortPath(file), line)
}

func shortPath(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) <= 2 {
		return path
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
