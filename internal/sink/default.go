//go:build !js

package sink

// Default returns the backend for the current build target: the process
// error stream everywhere except js/wasm, where the host console is used.
func Default() Sink {
	return NewStderr()
}
