package audio

import "sync"

// GestureBus is an in-process GestureSource. The input layer calls Fire on
// every pointer or touch press.
type GestureBus struct {
	mu        sync.Mutex
	next      int
	listeners map[int]func()
}

// NewGestureBus creates an empty bus.
func NewGestureBus() *GestureBus {
	return &GestureBus{listeners: make(map[int]func())}
}

// Subscribe implements GestureSource.
func (b *GestureBus) Subscribe(fn func()) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// Fire notifies every current listener. Listeners may unsubscribe while
// being notified.
func (b *GestureBus) Fire() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Listeners returns the number of subscribed listeners.
func (b *GestureBus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
