package broadcast

import (
	"sync"
	"time"
)

// Message is one club-scoped realtime payload.
type Message struct {
	Type      string      `json:"type"`
	ClubID    string      `json:"clubId"`
	Event     string      `json:"event"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

const subscriberBuffer = 16

// Registry tracks live subscriber connections by user id: register on
// connect, deregister on disconnect. A second registration for the same
// user replaces the first.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]chan Message
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]chan Message),
	}
}

// Register adds a connection for userID and returns its message channel
// together with the deregister func. The channel is closed on
// deregistration or replacement.
func (r *Registry) Register(userID string) (<-chan Message, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.conns[userID]; ok {
		close(old)
	}

	ch := make(chan Message, subscriberBuffer)
	r.conns[userID] = ch

	return ch, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if current, ok := r.conns[userID]; ok && current == ch {
			delete(r.conns, userID)
			close(ch)
		}
	}
}

// Count reports the number of live connections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// broadcast delivers msg to every connection, at most once each. A full
// subscriber buffer drops the message rather than blocking the sender.
func (r *Registry) broadcast(msg Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ch := range r.conns {
		select {
		case ch <- msg:
		default:
		}
	}
}
