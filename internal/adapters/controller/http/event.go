package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubhub-dev/clubhub/internal/domain/dto"
	"github.com/clubhub-dev/clubhub/internal/domain/service"
	"github.com/clubhub-dev/clubhub/pkg/qrcode"
)

type eventHandler struct {
	events  *service.EventService
	baseURL string
}

func newEventHandler(events *service.EventService, baseURL string) *eventHandler {
	return &eventHandler{events: events, baseURL: baseURL}
}

func (h *eventHandler) create(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var body dto.CreateEvent
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	event, err := h.events.Create(r.Context(), chi.URLParam(r, "clubID"), body, requesterID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, event)
}

func (h *eventHandler) list(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.GetAll(r.Context(), chi.URLParam(r, "clubID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, events)
}

func (h *eventHandler) get(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Get(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *eventHandler) update(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var body dto.UpdateEvent
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	event, err := h.events.Update(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "eventID"), body, requesterID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

func (h *eventHandler) delete(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := h.events.Delete(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "eventID"), requesterID); err != nil {
		respondError(w, err)
		return
	}
	respondNoContent(w)
}

func (h *eventHandler) remind(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := h.events.SendReminder(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "eventID"), requesterID); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]string{"status": "dispatched"})
}

// qr serves a QR code PNG pointing at the event detail page.
func (h *eventHandler) qr(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Get(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, err)
		return
	}

	png, err := qrcode.Generate(event.Link(h.baseURL), 512)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", fmt.Sprint(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
