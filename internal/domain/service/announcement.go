package service

import (
	"context"
	"sort"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/dto"
	"github.com/clubhub-dev/clubhub/internal/domain/entity"
	"github.com/clubhub-dev/clubhub/internal/domain/utils/validator"
)

type AnnouncementStorage interface {
	Create(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error)
	Get(ctx context.Context, id string) (*entity.Announcement, error)
	GetByClubID(ctx context.Context, clubID string) ([]entity.Announcement, error)
	Update(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type announcementClubStorage interface {
	Get(ctx context.Context, id string) (*entity.Club, error)
}

// Broadcaster fans club-scoped payloads out to connected subscribers.
// Delivery is best-effort and at-most-once.
type Broadcaster interface {
	NotifyClub(clubID, event string, payload interface{})
}

type AnnouncementService struct {
	storage     AnnouncementStorage
	clubStorage announcementClubStorage
	authz       *AuthzService
	broadcaster Broadcaster
}

func NewAnnouncementService(
	storage AnnouncementStorage,
	clubStorage announcementClubStorage,
	authz *AuthzService,
	broadcaster Broadcaster,
) *AnnouncementService {
	return &AnnouncementService{
		storage:     storage,
		clubStorage: clubStorage,
		authz:       authz,
		broadcaster: broadcaster,
	}
}

func (s *AnnouncementService) getClub(ctx context.Context, clubID string) (*entity.Club, error) {
	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, errorz.NotFound("club not found")
	}
	return club, nil
}

// Create publishes an announcement and broadcasts it to the club; owner only.
func (s *AnnouncementService) Create(ctx context.Context, clubID string, create dto.CreateAnnouncement, createdBy string) (*entity.Announcement, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if err = s.authz.RequireOwner(ctx, createdBy, club); err != nil {
		return nil, err
	}
	if !validator.AnnouncementTitle(create.Title) {
		return nil, errorz.Validation("announcement title is required")
	}
	if !validator.AnnouncementType(string(create.Type)) {
		return nil, errorz.Validation("unknown announcement type")
	}

	announcement, err := s.storage.Create(ctx, &entity.Announcement{
		ClubID:    clubID,
		Title:     create.Title,
		Content:   create.Content,
		Type:      create.Type,
		IsPinned:  create.IsPinned,
		CreatedBy: createdBy,
	})
	if err != nil {
		return nil, err
	}

	s.broadcaster.NotifyClub(clubID, "new-announcement", announcement)
	return announcement, nil
}

// GetAll lists announcements with pinned ones first; within each group
// the newest-created sort first.
func (s *AnnouncementService) GetAll(ctx context.Context, clubID string) ([]entity.Announcement, error) {
	if _, err := s.getClub(ctx, clubID); err != nil {
		return nil, err
	}

	announcements, err := s.storage.GetByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(announcements, func(i, j int) bool {
		if announcements[i].IsPinned != announcements[j].IsPinned {
			return announcements[i].IsPinned
		}
		return announcements[i].CreatedAt.After(announcements[j].CreatedAt)
	})
	return announcements, nil
}

func (s *AnnouncementService) Get(ctx context.Context, clubID, announcementID string) (*entity.Announcement, error) {
	announcement, err := s.storage.Get(ctx, announcementID)
	if err != nil {
		return nil, err
	}
	if announcement == nil || announcement.ClubID != clubID {
		return nil, errorz.NotFound("announcement not found")
	}
	return announcement, nil
}

func (s *AnnouncementService) Update(ctx context.Context, clubID, announcementID string, update dto.UpdateAnnouncement, requesterID string) (*entity.Announcement, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	announcement, err := s.Get(ctx, clubID, announcementID)
	if err != nil {
		return nil, err
	}
	if err = s.authz.RequireOwner(ctx, requesterID, club); err != nil {
		return nil, err
	}

	if update.Title != nil {
		if !validator.AnnouncementTitle(*update.Title) {
			return nil, errorz.Validation("announcement title is required")
		}
		announcement.Title = *update.Title
	}
	if update.Content != nil {
		announcement.Content = *update.Content
	}
	if update.Type != nil {
		if !validator.AnnouncementType(string(*update.Type)) {
			return nil, errorz.Validation("unknown announcement type")
		}
		announcement.Type = *update.Type
	}
	if update.IsPinned != nil {
		announcement.IsPinned = *update.IsPinned
	}

	return s.storage.Update(ctx, announcement)
}

func (s *AnnouncementService) Delete(ctx context.Context, clubID, announcementID, requesterID string) error {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return err
	}
	announcement, err := s.Get(ctx, clubID, announcementID)
	if err != nil {
		return err
	}
	if err = s.authz.RequireOwner(ctx, requesterID, club); err != nil {
		return err
	}
	return s.storage.Delete(ctx, announcement.ID)
}
