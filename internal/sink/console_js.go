//go:build js && wasm

package sink

import "syscall/js"

// Console routes output to the host's console API. When the host
// provides native grouping (console.group/groupEnd) those are used and
// the engine skips its own indentation; otherwise every line is printed
// through console.log unchanged.
type Console struct {
	console js.Value
	native  bool
}

// NewConsole binds to the global console object
func NewConsole() *Console {
	c := js.Global().Get("console")
	native := c.Truthy() &&
		c.Get("group").Type() == js.TypeFunction &&
		c.Get("groupEnd").Type() == js.TypeFunction
	return &Console{console: c, native: native}
}

// Default returns the backend for the current build target
func Default() Sink {
	return NewConsole()
}

// WriteLine emits one rendered line via console.log
func (c *Console) WriteLine(line string) {
	c.call("log", line)
}

// OpenBlock opens a native console group, or prints the rendered line
// when the host has no grouping API
func (c *Console) OpenBlock(line, label string) {
	if c.native {
		c.call("group", label)
		return
	}
	c.WriteLine(line)
}

// CloseBlock closes a native console group, or prints the rendered line
func (c *Console) CloseBlock(line string) {
	if c.native {
		c.call("groupEnd")
		return
	}
	c.WriteLine(line)
}

// Grouped reports whether the host console nests output itself
func (c *Console) Grouped() bool {
	return c.native
}

// call invokes a console method, swallowing any host-side failure
func (c *Console) call(method string, args ...any) {
	if !c.console.Truthy() {
		return
	}
	defer func() { _ = recover() }()
	c.console.Call(method, args...)
}
