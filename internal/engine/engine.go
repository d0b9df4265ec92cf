// Package engine implements the trace engine: it gates every call site
// through the location filter, renders messages and value dumps at the
// current nesting depth, and emits them through an output sink.
package engine

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/zaolin/debuglog/internal/filter"
	"github.com/zaolin/debuglog/internal/nesting"
	"github.com/zaolin/debuglog/internal/render"
	"github.com/zaolin/debuglog/internal/sink"
)

// EnvVar seeds the filter at startup. Absent or empty means disabled.
const EnvVar = "DEBUG"

// spewConfig produces the stable multi-line value representation used
// for dumps. Pointer addresses and capacities vary per run and are
// disabled; map keys are sorted for deterministic output.
var spewConfig = spew.ConfigState{
	Indent:                  render.Unit,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Engine ties a filter, a nesting stack and a sink together. All state
// is process-wide when the engine is shared: concurrent call sites
// interleave their output and depth changes.
type Engine struct {
	filter *filter.Filter
	levels *nesting.Stack

	mu  sync.Mutex
	out sink.Sink
}

// New creates an engine with the given filter value and sink
func New(filterValue string, out sink.Sink) *Engine {
	return &Engine{
		filter: filter.New(filterValue),
		levels: &nesting.Stack{},
		out:    out,
	}
}

// FromEnv creates an engine seeded from the DEBUG environment variable,
// writing to the build target's default backend
func FromEnv() *Engine {
	return New(os.Getenv(EnvVar), sink.Default())
}

// SetFilter replaces the filter value at runtime
func (e *Engine) SetFilter(value string) {
	e.filter.Set(value)
}

// Filter returns the current filter value
func (e *Engine) Filter() string {
	return e.filter.Current()
}

// Enabled reports whether output is enabled for a location tag
func (e *Engine) Enabled(location string) bool {
	return e.filter.Match(location)
}

// Depth returns the current nesting depth
func (e *Engine) Depth() int {
	return e.levels.Depth()
}

// SetSink replaces the output backend
func (e *Engine) SetSink(out sink.Sink) {
	e.mu.Lock()
	e.out = out
	e.mu.Unlock()
}

func (e *Engine) output() sink.Sink {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.out
}

// renderDepth is the depth used for indentation. Sinks with native
// grouping indent on their own, so rendering happens at depth zero.
func renderDepth(out sink.Sink, depth int) int {
	if out.Grouped() {
		return 0
	}
	return depth
}

// Logf emits a formatted message for the given call site
func (e *Engine) Logf(location, format string, args ...any) {
	if !e.filter.Match(location) {
		return
	}
	out := e.output()
	depth := renderDepth(out, e.levels.Depth())
	out.WriteLine(render.Line(depth, location, fmt.Sprintf(format, args...)))
}

// Dump emits a value's multi-line representation as
// [<location>] <name> = <value>, with continuation lines re-indented to
// the current depth
func (e *Engine) Dump(location, name string, value any) {
	if !e.filter.Match(location) {
		return
	}
	out := e.output()
	depth := renderDepth(out, e.levels.Depth())
	repr := strings.TrimSuffix(spewConfig.Sdump(value), "\n")
	out.WriteLine(render.DumpLine(depth, location, name, repr))
}

// Group opens a nested trace group and returns its closer, intended for
// immediate deferral:
//
//	defer e.Group(loc, "parse %s", path)()
//
// When the filter denies the call site the returned closer is inert and
// no shared state is touched. Otherwise the opening line is written at
// the pre-push depth and the closer, exactly once no matter how often it
// is invoked or how the scope exits, pops the stack and writes the
// closing line at the post-pop depth so the brackets align one level
// shallower than the content they enclose.
func (e *Engine) Group(location, format string, args ...any) func() {
	if !e.filter.Match(location) {
		return func() {}
	}
	label := fmt.Sprintf(format, args...)
	out := e.output()
	out.OpenBlock(render.OpenLine(renderDepth(out, e.levels.Depth()), label), label)
	e.levels.Push(label)

	var once sync.Once
	return func() {
		once.Do(func() {
			e.levels.Pop()
			out.CloseBlock(render.CloseLine(renderDepth(out, e.levels.Depth())))
		})
	}
}
