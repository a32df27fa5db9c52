package status

import (
	"sort"
	"sync"
)

// Family is a named set of metrics of one kind
// Get takes the lock once per name; systems keep the returned pointer and update it lock-free
type Family[T any] struct {
	mu     sync.RWMutex
	byName map[string]*T
	names  []string // Sorted, for stable snapshots and display
}

// NewFamily creates an empty family
func NewFamily[T any]() *Family[T] {
	return &Family[T]{byName: make(map[string]*T)}
}

// Get returns the metric for name, registering it on first use
func (f *Family[T]) Get(name string) *T {
	if m, ok := f.Lookup(name); ok {
		return m
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.byName[name]; ok {
		return m
	}

	m := new(T)
	f.byName[name] = m
	at := sort.SearchStrings(f.names, name)
	f.names = append(f.names, "")
	copy(f.names[at+1:], f.names[at:])
	f.names[at] = name
	return m
}

// Lookup returns the metric for name without registering it
func (f *Family[T]) Lookup(name string) (*T, bool) {
	f.mu.RLock()
	m, ok := f.byName[name]
	f.mu.RUnlock()
	return m, ok
}

// Each visits every metric in name order
func (f *Family[T]) Each(fn func(name string, m *T)) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, name := range f.names {
		fn(name, f.byName[name])
	}
}

func (f *Family[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.names)
}
