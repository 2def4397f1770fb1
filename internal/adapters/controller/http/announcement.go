package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubhub-dev/clubhub/internal/domain/dto"
	"github.com/clubhub-dev/clubhub/internal/domain/service"
)

type announcementHandler struct {
	announcements *service.AnnouncementService
}

func newAnnouncementHandler(announcements *service.AnnouncementService) *announcementHandler {
	return &announcementHandler{announcements: announcements}
}

func (h *announcementHandler) create(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var body dto.CreateAnnouncement
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	announcement, err := h.announcements.Create(r.Context(), chi.URLParam(r, "clubID"), body, requesterID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, announcement)
}

func (h *announcementHandler) list(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcements.GetAll(r.Context(), chi.URLParam(r, "clubID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, announcements)
}

func (h *announcementHandler) get(w http.ResponseWriter, r *http.Request) {
	announcement, err := h.announcements.Get(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "announcementID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, announcement)
}

func (h *announcementHandler) update(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var body dto.UpdateAnnouncement
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	announcement, err := h.announcements.Update(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "announcementID"), body, requesterID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, announcement)
}

func (h *announcementHandler) delete(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := h.announcements.Delete(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "announcementID"), requesterID); err != nil {
		respondError(w, err)
		return
	}
	respondNoContent(w)
}
