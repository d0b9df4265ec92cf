package nesting

import "sync"

// Stack tracks the labels of currently open trace groups. The stack is
// shared process-wide: concurrent groups from different goroutines
// interleave their depth changes, there is no per-goroutine isolation.
type Stack struct {
	mu     sync.Mutex
	labels []string
}

// Depth returns the number of currently open groups
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.labels)
}

// Push records an opened group
func (s *Stack) Push(label string) {
	s.mu.Lock()
	s.labels = append(s.labels, label)
	s.mu.Unlock()
}

// Pop removes the most recently opened group.
// Popping an empty stack is a no-op: a diagnostic facility must never
// panic the host program over unbalanced close calls.
func (s *Stack) Pop() {
	s.mu.Lock()
	if n := len(s.labels); n > 0 {
		s.labels = s.labels[:n-1]
	}
	s.mu.Unlock()
}
