package service

import (
	"context"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/entity"
)

// Capability is what a principal may do with a club-scoped resource.
type Capability int

const (
	CapabilityStranger Capability = iota
	CapabilityMember
	CapabilityOwner
)

func (c Capability) String() string {
	switch c {
	case CapabilityOwner:
		return "owner"
	case CapabilityMember:
		return "member"
	default:
		return "stranger"
	}
}

type authzMemberStorage interface {
	GetByUserAndClub(ctx context.Context, userID, clubID string) (*entity.Member, error)
}

// AuthzService is the single authorization predicate for club-scoped
// mutations. Every service that mutates a club-scoped resource goes
// through RequireOwner instead of comparing owner ids inline.
type AuthzService struct {
	memberStorage authzMemberStorage
}

func NewAuthzService(memberStorage authzMemberStorage) *AuthzService {
	return &AuthzService{
		memberStorage: memberStorage,
	}
}

// Authorize resolves the capability of principalID on club. Approved
// membership grants CapabilityMember; anything less is a stranger.
func (s *AuthzService) Authorize(ctx context.Context, principalID string, club *entity.Club) (Capability, error) {
	if club.IsOwner(principalID) {
		return CapabilityOwner, nil
	}

	member, err := s.memberStorage.GetByUserAndClub(ctx, principalID, club.ID)
	if err != nil {
		return CapabilityStranger, err
	}
	if member != nil && member.Status == entity.MemberStatusApproved {
		return CapabilityMember, nil
	}
	return CapabilityStranger, nil
}

// RequireOwner fails with a Forbidden error unless principalID owns club.
func (s *AuthzService) RequireOwner(ctx context.Context, principalID string, club *entity.Club) error {
	capability, err := s.Authorize(ctx, principalID, club)
	if err != nil {
		return err
	}
	if capability != CapabilityOwner {
		return errorz.Forbidden("only the club owner may perform this action")
	}
	return nil
}
