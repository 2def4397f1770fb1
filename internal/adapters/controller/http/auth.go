package http

import (
	"net/http"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/dto"
	"github.com/clubhub-dev/clubhub/internal/domain/service"
)

type authHandler struct {
	auth *service.AuthService
}

func newAuthHandler(auth *service.AuthService) *authHandler {
	return &authHandler{auth: auth}
}

func (h *authHandler) register(w http.ResponseWriter, r *http.Request) {
	var body dto.Register
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), body)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, user)
}

func (h *authHandler) login(w http.ResponseWriter, r *http.Request) {
	var body dto.Login
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	user, tokens, err := h.auth.Login(r.Context(), body)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]interface{}{
		"user":   user,
		"tokens": tokens,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *authHandler) refresh(w http.ResponseWriter, r *http.Request) {
	var body refreshRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	tokens, err := h.auth.Refresh(r.Context(), body.RefreshToken)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, tokens)
}

func (h *authHandler) logout(w http.ResponseWriter, r *http.Request) {
	var body refreshRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	if err := h.auth.Logout(r.Context(), body.RefreshToken); err != nil {
		respondError(w, err)
		return
	}
	respondNoContent(w)
}

func (h *authHandler) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, errorz.Unauthenticated("missing credentials"))
		return
	}

	user, err := h.auth.Me(r.Context(), principal.SubjectID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, user)
}
