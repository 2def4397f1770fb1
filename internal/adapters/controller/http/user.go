package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubhub-dev/clubhub/internal/domain/dto"
	"github.com/clubhub-dev/clubhub/internal/domain/service"
)

type userHandler struct {
	users *service.UserService
}

func newUserHandler(users *service.UserService) *userHandler {
	return &userHandler{users: users}
}

// makeAdmin promotes a user; the service rejects non-admin requesters.
func (h *userHandler) makeAdmin(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	requester, err := h.users.Get(r.Context(), requesterID)
	if err != nil {
		respondError(w, err)
		return
	}

	user, err := h.users.MakeAdmin(r.Context(), chi.URLParam(r, "userID"), requester)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, dto.NewPublicUserFromEntity(*user))
}
