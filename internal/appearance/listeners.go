package appearance

import (
	"slices"
	"sync"
)

// listeners is an ordered set of callbacks. Callbacks run outside the lock.
type listeners[T any] struct {
	mu   sync.Mutex
	next int
	fns  []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

func (l *listeners[T]) add(fn func(T)) (cancel func()) {
	l.mu.Lock()
	id := l.next
	l.next++
	l.fns = append(l.fns, listener[T]{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			l.fns = slices.DeleteFunc(l.fns, func(x listener[T]) bool { return x.id == id })
		})
	}
}

func (l *listeners[T]) emit(v T) {
	l.mu.Lock()
	fns := slices.Clone(l.fns)
	l.mu.Unlock()
	for _, x := range fns {
		x.fn(v)
	}
}

func (l *listeners[T]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}
