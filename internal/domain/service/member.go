package service

import (
	"context"
	"time"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/entity"
	"github.com/clubhub-dev/clubhub/internal/domain/utils/validator"
)

type MemberStorage interface {
	Create(ctx context.Context, member *entity.Member) (*entity.Member, error)
	Get(ctx context.Context, id string) (*entity.Member, error)
	GetByUserAndClub(ctx context.Context, userID, clubID string) (*entity.Member, error)
	GetByClubID(ctx context.Context, clubID string) ([]entity.Member, error)
	Update(ctx context.Context, member *entity.Member) (*entity.Member, error)
	Delete(ctx context.Context, id string) error
}

type memberClubStorage interface {
	Get(ctx context.Context, id string) (*entity.Club, error)
}

// MemberService owns the membership lifecycle: join request, approval or
// rejection by the club owner, role changes and removal. No other
// component writes Member.Status.
type MemberService struct {
	storage     MemberStorage
	clubStorage memberClubStorage
	authz       *AuthzService

	clock func() time.Time
}

func NewMemberService(storage MemberStorage, clubStorage memberClubStorage, authz *AuthzService) *MemberService {
	return &MemberService{
		storage:     storage,
		clubStorage: clubStorage,
		authz:       authz,
		clock:       time.Now,
	}
}

func (s *MemberService) getClub(ctx context.Context, clubID string) (*entity.Club, error) {
	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, errorz.NotFound("club not found")
	}
	return club, nil
}

// getClubMember resolves a member id within a club. A member that exists
// under a different club is reported exactly like a missing one.
func (s *MemberService) getClubMember(ctx context.Context, clubID, memberID string) (*entity.Member, error) {
	member, err := s.storage.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil || member.ClubID != clubID {
		return nil, errorz.NotFound("member not found")
	}
	return member, nil
}

// JoinClub files a pending join request. Any existing record for the
// (user, club) pair blocks a new request regardless of its status, so a
// rejected user cannot re-apply.
func (s *MemberService) JoinClub(ctx context.Context, clubID, userID string) (*entity.Member, error) {
	if _, err := s.getClub(ctx, clubID); err != nil {
		return nil, err
	}

	existing, err := s.storage.GetByUserAndClub(ctx, userID, clubID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errorz.Conflict("a join request for this club already exists")
	}

	return s.storage.Create(ctx, &entity.Member{
		ClubID:      clubID,
		UserID:      userID,
		Role:        entity.MemberRoleMember,
		Status:      entity.MemberStatusPending,
		RequestedAt: s.clock(),
	})
}

func (s *MemberService) GetClubMembers(ctx context.Context, clubID string) ([]entity.Member, error) {
	if _, err := s.getClub(ctx, clubID); err != nil {
		return nil, err
	}
	return s.storage.GetByClubID(ctx, clubID)
}

// GetPendingRequests lists open join requests; owner only.
func (s *MemberService) GetPendingRequests(ctx context.Context, clubID, requesterID string) ([]entity.Member, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if err = s.authz.RequireOwner(ctx, requesterID, club); err != nil {
		return nil, err
	}

	members, err := s.storage.GetByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	pending := make([]entity.Member, 0, len(members))
	for _, member := range members {
		if member.Status == entity.MemberStatusPending {
			pending = append(pending, member)
		}
	}
	return pending, nil
}

// Approve transitions a pending request to approved; owner only.
func (s *MemberService) Approve(ctx context.Context, clubID, memberID, requesterID string) (*entity.Member, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	member, err := s.getClubMember(ctx, clubID, memberID)
	if err != nil {
		return nil, err
	}
	if err = s.authz.RequireOwner(ctx, requesterID, club); err != nil {
		return nil, err
	}
	if member.Status != entity.MemberStatusPending {
		return nil, errorz.Validation("only pending members can be approved")
	}

	now := s.clock()
	member.Status = entity.MemberStatusApproved
	member.ApprovedAt = &now
	return s.storage.Update(ctx, member)
}

// Reject transitions a pending request to rejected; owner only.
func (s *MemberService) Reject(ctx context.Context, clubID, memberID, requesterID string) (*entity.Member, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	member, err := s.getClubMember(ctx, clubID, memberID)
	if err != nil {
		return nil, err
	}
	if err = s.authz.RequireOwner(ctx, requesterID, club); err != nil {
		return nil, err
	}
	if member.Status != entity.MemberStatusPending {
		return nil, errorz.Validation("only pending members can be rejected")
	}

	now := s.clock()
	member.Status = entity.MemberStatusRejected
	member.RejectedAt = &now
	return s.storage.Update(ctx, member)
}

// Leave deletes the caller's own membership. The owner can never leave
// their own club.
func (s *MemberService) Leave(ctx context.Context, clubID, userID string) error {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return err
	}
	if club.IsOwner(userID) {
		return errorz.Forbidden("the club owner cannot leave the club")
	}

	member, err := s.storage.GetByUserAndClub(ctx, userID, clubID)
	if err != nil {
		return err
	}
	if member == nil {
		return errorz.NotFound("member not found")
	}

	return s.storage.Delete(ctx, member.ID)
}

// Remove deletes any member of the club regardless of status; owner only.
func (s *MemberService) Remove(ctx context.Context, clubID, memberID, requesterID string) error {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return err
	}
	member, err := s.getClubMember(ctx, clubID, memberID)
	if err != nil {
		return err
	}
	if err = s.authz.RequireOwner(ctx, requesterID, club); err != nil {
		return err
	}

	return s.storage.Delete(ctx, member.ID)
}

// ChangeRole assigns a member role; owner only. Role assignment is
// orthogonal to status and is not gated on approval.
func (s *MemberService) ChangeRole(ctx context.Context, clubID, memberID string, role entity.MemberRole, requesterID string) (*entity.Member, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	member, err := s.getClubMember(ctx, clubID, memberID)
	if err != nil {
		return nil, err
	}
	if err = s.authz.RequireOwner(ctx, requesterID, club); err != nil {
		return nil, err
	}
	if !validator.MemberRole(string(role)) {
		return nil, errorz.Validation("unknown member role")
	}

	member.Role = role
	return s.storage.Update(ctx, member)
}
