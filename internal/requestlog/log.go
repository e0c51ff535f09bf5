// Package requestlog keeps the most recent successful recommendation results in memory.
package requestlog

import "sync"

// DefaultCapacity is the number of records kept when no capacity is configured.
const DefaultCapacity = 100

// Log is a fixed-capacity ring of records, read back newest first.
// Once full, each Add overwrites the oldest record.
type Log[T any] struct {
	mu    sync.RWMutex
	items []T
	head  int // index of the next write
	size  int
}

func New[T any](capacity int) *Log[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log[T]{items: make([]T, capacity)}
}

// Add prepends rec.
func (l *Log[T]) Add(rec T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items[l.head] = rec
	l.head = (l.head + 1) % len(l.items)
	if l.size < len(l.items) {
		l.size++
	}
}

// Items returns a copy of the records, newest first.
func (l *Log[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]T, l.size)
	for i := 0; i < l.size; i++ {
		idx := (l.head - 1 - i + len(l.items)) % len(l.items)
		out[i] = l.items[idx]
	}
	return out
}

func (l *Log[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.size
}

func (l *Log[T]) Cap() int {
	return len(l.items)
}
