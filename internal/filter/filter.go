package filter

import (
	"strings"
	"sync"
)

// Wildcard matches every location when set as the filter value.
const Wildcard = "*"

// Filter holds the process-wide enablement value and decides per call
// site whether trace output should occur. An empty value means disabled;
// the wildcard matches everything; any other value is matched as a plain
// substring against the call-site location tag.
type Filter struct {
	mu    sync.RWMutex
	value string
}

// New creates a filter with the given initial value
func New(value string) *Filter {
	return &Filter{value: value}
}

// Set replaces the enablement value at runtime.
// Safe to call concurrently with Match.
func (f *Filter) Set(value string) {
	f.mu.Lock()
	f.value = value
	f.mu.Unlock()
}

// Current returns the enablement value
func (f *Filter) Current() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Match reports whether output is enabled for the given location tag
func (f *Filter) Match(location string) bool {
	f.mu.RLock()
	value := f.value
	f.mu.RUnlock()

	switch value {
	case "":
		return false
	case Wildcard:
		return true
	default:
		return strings.Contains(location, value)
	}
}
