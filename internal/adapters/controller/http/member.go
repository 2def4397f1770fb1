package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubhub-dev/clubhub/internal/domain/dto"
	"github.com/clubhub-dev/clubhub/internal/domain/service"
)

type memberHandler struct {
	members *service.MemberService
}

func newMemberHandler(members *service.MemberService) *memberHandler {
	return &memberHandler{members: members}
}

func (h *memberHandler) join(w http.ResponseWriter, r *http.Request) {
	userID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	member, err := h.members.JoinClub(r.Context(), chi.URLParam(r, "clubID"), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, member)
}

func (h *memberHandler) list(w http.ResponseWriter, r *http.Request) {
	members, err := h.members.GetClubMembers(r.Context(), chi.URLParam(r, "clubID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, members)
}

func (h *memberHandler) pending(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	members, err := h.members.GetPendingRequests(r.Context(), chi.URLParam(r, "clubID"), requesterID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, members)
}

func (h *memberHandler) approve(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	member, err := h.members.Approve(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "memberID"), requesterID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, member)
}

func (h *memberHandler) reject(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	member, err := h.members.Reject(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "memberID"), requesterID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, member)
}

func (h *memberHandler) changeRole(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var body dto.ChangeMemberRole
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	member, err := h.members.ChangeRole(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "memberID"), body.Role, requesterID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, member)
}

func (h *memberHandler) leave(w http.ResponseWriter, r *http.Request) {
	userID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := h.members.Leave(r.Context(), chi.URLParam(r, "clubID"), userID); err != nil {
		respondError(w, err)
		return
	}
	respondNoContent(w)
}

func (h *memberHandler) remove(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	if err := h.members.Remove(r.Context(), chi.URLParam(r, "clubID"), chi.URLParam(r, "memberID"), requesterID); err != nil {
		respondError(w, err)
		return
	}
	respondNoContent(w)
}
