package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/dto"
	"github.com/clubhub-dev/clubhub/internal/domain/service"
)

type searchHandler struct {
	search *service.SearchService
}

func newSearchHandler(search *service.SearchService) *searchHandler {
	return &searchHandler{search: search}
}

func (h *searchHandler) clubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.search.SearchClubs(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, clubs)
}

func (h *searchHandler) members(w http.ResponseWriter, r *http.Request) {
	members, err := h.search.SearchMembers(r.Context(), chi.URLParam(r, "clubID"), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, members)
}

func (h *searchHandler) events(w http.ResponseWriter, r *http.Request) {
	filter := dto.FilterEvents{
		ClubID: r.URL.Query().Get("clubId"),
	}

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(w, errorz.Validation("from must be an RFC 3339 timestamp"))
			return
		}
		filter.From = &from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(w, errorz.Validation("to must be an RFC 3339 timestamp"))
			return
		}
		filter.To = &to
	}

	events, err := h.search.FilterEvents(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, events)
}
