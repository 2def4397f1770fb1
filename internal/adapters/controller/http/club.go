package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/dto"
	"github.com/clubhub-dev/clubhub/internal/domain/service"
)

type clubHandler struct {
	clubs *service.ClubService
}

func newClubHandler(clubs *service.ClubService) *clubHandler {
	return &clubHandler{clubs: clubs}
}

func requirePrincipal(w http.ResponseWriter, r *http.Request) (string, bool) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, errorz.Unauthenticated("missing credentials"))
		return "", false
	}
	return principal.SubjectID, true
}

func (h *clubHandler) create(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var body dto.CreateClub
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	club, err := h.clubs.Create(r.Context(), body, requesterID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, club)
}

func (h *clubHandler) list(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubs.GetAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, clubs)
}

func (h *clubHandler) get(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubs.Get(r.Context(), chi.URLParam(r, "clubID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, club)
}

func (h *clubHandler) update(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var body dto.UpdateClub
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	club, err := h.clubs.Update(r.Context(), chi.URLParam(r, "clubID"), body, requesterID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, club)
}

func (h *clubHandler) delete(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := h.clubs.Delete(r.Context(), chi.URLParam(r, "clubID"), requesterID); err != nil {
		respondError(w, err)
		return
	}
	respondNoContent(w)
}
