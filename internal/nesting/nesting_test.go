package nesting

import (
	"sync"
	"testing"
)

func TestPushPop(t *testing.T) {
	var s Stack

	if got := s.Depth(); got != 0 {
		t.Fatalf("initial Depth() = %d, want 0", got)
	}

	s.Push("A")
	s.Push("B")
	if got := s.Depth(); got != 2 {
		t.Fatalf("Depth() after two pushes = %d, want 2", got)
	}

	s.Pop()
	if got := s.Depth(); got != 1 {
		t.Fatalf("Depth() after pop = %d, want 1", got)
	}

	s.Pop()
	if got := s.Depth(); got != 0 {
		t.Fatalf("Depth() after second pop = %d, want 0", got)
	}
}

func TestPopEmptyIsNoop(t *testing.T) {
	var s Stack

	s.Pop()
	s.Pop()
	if got := s.Depth(); got != 0 {
		t.Fatalf("Depth() after popping empty stack = %d, want 0", got)
	}

	// State stays usable afterwards
	s.Push("A")
	if got := s.Depth(); got != 1 {
		t.Fatalf("Depth() after push = %d, want 1", got)
	}
}

func TestConcurrentPushPop(t *testing.T) {
	var s Stack
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Push("g")
				s.Depth()
				s.Pop()
			}
		}()
	}
	wg.Wait()

	if got := s.Depth(); got != 0 {
		t.Fatalf("Depth() after balanced concurrent use = %d, want 0", got)
	}
}
