// Package sink provides the output backends for rendered trace lines.
// All writes are fire-and-forget: a diagnostic side channel must never
// surface errors into the host program.
package sink

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Sink is an output backend. Lines arrive fully rendered (indentation
// included); OpenBlock and CloseBlock additionally carry the raw label
// so backends with native grouping can use it instead of the line.
type Sink interface {
	// WriteLine emits one rendered line
	WriteLine(line string)
	// OpenBlock emits a group opening line
	OpenBlock(line, label string)
	// CloseBlock emits a group closing line
	CloseBlock(line string)
	// Grouped reports whether the backend nests output itself, in which
	// case the engine renders at depth zero to avoid double indentation
	Grouped() bool
}

// Styles for group brackets when color output is enabled
var (
	braceStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))
)

// Stream writes lines to an io.Writer, one per call, immediately.
// Write errors are swallowed.
type Stream struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewStream creates a sink writing to w
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// NewStderr creates a sink writing to the process error stream
func NewStderr() *Stream {
	return NewStream(os.Stderr)
}

// SetColor toggles lipgloss styling of group bracket lines
func (s *Stream) SetColor(enabled bool) {
	s.mu.Lock()
	s.color = enabled
	s.mu.Unlock()
}

// WriteLine emits one rendered line
func (s *Stream) WriteLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.w.Write([]byte(line + "\n"))
}

// OpenBlock emits a group opening line
func (s *Stream) OpenBlock(line, label string) {
	s.WriteLine(s.style(line))
}

// CloseBlock emits a group closing line
func (s *Stream) CloseBlock(line string) {
	s.WriteLine(s.style(line))
}

// Grouped is false: the stream relies on the engine's indentation
func (s *Stream) Grouped() bool {
	return false
}

func (s *Stream) style(line string) string {
	s.mu.Lock()
	color := s.color
	s.mu.Unlock()
	if !color {
		return line
	}
	return braceStyle.Render(line)
}

// Buffer collects lines in memory. Used by tests and by embedding hosts
// that want to capture trace output instead of printing it.
type Buffer struct {
	mu    sync.Mutex
	lines []string
}

// WriteLine appends one line to the buffer
func (b *Buffer) WriteLine(line string) {
	b.mu.Lock()
	b.lines = append(b.lines, line)
	b.mu.Unlock()
}

// OpenBlock appends a group opening line
func (b *Buffer) OpenBlock(line, label string) {
	b.WriteLine(line)
}

// CloseBlock appends a group closing line
func (b *Buffer) CloseBlock(line string) {
	b.WriteLine(line)
}

// Grouped is false: the buffer stores the engine's rendered lines
func (b *Buffer) Grouped() bool {
	return false
}

// Lines returns a copy of all collected lines
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Reset discards all collected lines
func (b *Buffer) Reset() {
	b.mu.Lock()
	b.lines = nil
	b.mu.Unlock()
}
