package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/clubhub-dev/clubhub/internal/domain/entity"
)

type AnnouncementStorage struct {
	db *gorm.DB
}

func NewAnnouncementStorage(db *gorm.DB) *AnnouncementStorage {
	return &AnnouncementStorage{
		db: db,
	}
}

func (s *AnnouncementStorage) Create(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error) {
	err := s.db.WithContext(ctx).Create(&announcement).Error
	return announcement, err
}

func (s *AnnouncementStorage) Get(ctx context.Context, id string) (*entity.Announcement, error) {
	var announcement entity.Announcement
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&announcement).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (s *AnnouncementStorage) GetByClubID(ctx context.Context, clubID string) ([]entity.Announcement, error) {
	var announcements []entity.Announcement
	err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Find(&announcements).Error
	return announcements, err
}

func (s *AnnouncementStorage) Update(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error) {
	err := s.db.WithContext(ctx).Save(&announcement).Error
	return announcement, err
}

func (s *AnnouncementStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Announcement{}).Error
}
