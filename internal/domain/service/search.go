package service

import (
	"context"
	"sort"
	"strings"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/dto"
	"github.com/clubhub-dev/clubhub/internal/domain/entity"
)

type searchClubStorage interface {
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetAll(ctx context.Context) ([]entity.Club, error)
}

type searchMemberStorage interface {
	GetByClubID(ctx context.Context, clubID string) ([]entity.Member, error)
}

type searchUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type searchEventStorage interface {
	GetAll(ctx context.Context) ([]entity.Event, error)
}

type SearchService struct {
	clubStorage   searchClubStorage
	memberStorage searchMemberStorage
	userStorage   searchUserStorage
	eventStorage  searchEventStorage
}

func NewSearchService(
	clubStorage searchClubStorage,
	memberStorage searchMemberStorage,
	userStorage searchUserStorage,
	eventStorage searchEventStorage,
) *SearchService {
	return &SearchService{
		clubStorage:   clubStorage,
		memberStorage: memberStorage,
		userStorage:   userStorage,
		eventStorage:  eventStorage,
	}
}

// SearchClubs filters clubs by a case-insensitive keyword over name and
// description. An empty query returns every club.
func (s *SearchService) SearchClubs(ctx context.Context, query string) ([]entity.Club, error) {
	clubs, err := s.clubStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return clubs, nil
	}

	keyword := strings.ToLower(query)
	matched := make([]entity.Club, 0, len(clubs))
	for _, club := range clubs {
		if strings.Contains(strings.ToLower(club.Name), keyword) ||
			strings.Contains(strings.ToLower(club.Description), keyword) {
			matched = append(matched, club)
		}
	}
	return matched, nil
}

// SearchMembers joins a club's members with their user records and
// filters by name or email. Members whose user record is missing are
// skipped.
func (s *SearchService) SearchMembers(ctx context.Context, clubID, query string) ([]dto.MemberWithUser, error) {
	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, errorz.NotFound("club not found")
	}

	members, err := s.memberStorage.GetByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	keyword := strings.ToLower(query)
	combined := make([]dto.MemberWithUser, 0, len(members))
	for _, member := range members {
		user, err := s.userStorage.Get(ctx, member.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(user.Name), keyword) &&
			!strings.Contains(strings.ToLower(user.Email), keyword) {
			continue
		}
		combined = append(combined, dto.MemberWithUser{
			Member: member,
			User:   dto.NewPublicUserFromEntity(*user),
		})
	}
	return combined, nil
}

// FilterEvents returns events overlapping the [From, To] range,
// optionally restricted to one club, sorted by ascending start.
func (s *SearchService) FilterEvents(ctx context.Context, filter dto.FilterEvents) ([]entity.Event, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, errorz.Validation("start of the range must not be after its end")
	}

	events, err := s.eventStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]entity.Event, 0, len(events))
	for _, event := range events {
		if filter.ClubID != "" && event.ClubID != filter.ClubID {
			continue
		}
		if filter.From != nil && event.EndDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && event.StartDate.After(*filter.To) {
			continue
		}
		matched = append(matched, event)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].StartDate.Before(matched[j].StartDate)
	})
	return matched, nil
}
