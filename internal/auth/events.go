package auth

import (
	"sync"
	"time"
)

type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
	EventExpired   EventType = "expired"
)

type SessionEvent struct {
	Type   EventType
	UserID string
	At     time.Time
}

// Notifier delivers session changes to subscribers, synchronously and in
// subscription order.
type Notifier struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[int]func(SessionEvent)
	order     []int
}

func NewNotifier() *Notifier {
	return &Notifier{
		listeners: make(map[int]func(SessionEvent)),
	}
}

// Subscribe registers fn and returns a func that removes it again.
func (n *Notifier) Subscribe(fn func(SessionEvent)) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	n.order = append(n.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.listeners, id)
			for i, oid := range n.order {
				if oid == id {
					n.order = append(n.order[:i], n.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (n *Notifier) Publish(ev SessionEvent) {
	n.mu.RLock()
	listeners := make([]func(SessionEvent), 0, len(n.order))
	for _, id := range n.order {
		listeners = append(listeners, n.listeners[id])
	}
	n.mu.RUnlock()

	for _, fn := range listeners {
		fn(ev)
	}
}
