package broadcast

import (
	"time"

	"go.uber.org/zap"
)

// Hub implements the Broadcaster consumed by the domain services.
// Delivery is at-most-once, best-effort, with no acknowledgment or
// backlog for disconnected subscribers.
type Hub struct {
	registry *Registry
	logger   *zap.SugaredLogger
}

func NewHub(registry *Registry, logger *zap.SugaredLogger) *Hub {
	return &Hub{
		registry: registry,
		logger:   logger,
	}
}

// NotifyClub fans a club-scoped event out to every connected subscriber.
func (h *Hub) NotifyClub(clubID, event string, payload interface{}) {
	h.registry.broadcast(Message{
		Type:      event,
		ClubID:    clubID,
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now(),
	})
	h.logger.Debugf("broadcast %s for club %s to %d connections", event, clubID, h.registry.Count())
}
