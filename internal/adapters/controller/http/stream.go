package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/clubhub-dev/clubhub/internal/adapters/broadcast"
	"github.com/clubhub-dev/clubhub/internal/adapters/logger"
)

type streamHandler struct {
	registry *broadcast.Registry
}

func newStreamHandler(registry *broadcast.Registry) *streamHandler {
	return &streamHandler{registry: registry}
}

// stream serves club events over SSE. The connection is registered for
// the authenticated user and deregistered when the client goes away.
func (h *streamHandler) stream(w http.ResponseWriter, r *http.Request) {
	userID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	messages, deregister := h.registry.Register(userID)
	defer deregister()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, open := <-messages:
			if !open {
				return
			}
			payload, err := json.Marshal(msg)
			if err != nil {
				logger.Log.Errorf("failed to marshal stream message: %v", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, payload)
			flusher.Flush()
		}
	}
}
