package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/clubhub-dev/clubhub/internal/domain/entity"
)

type MemberStorage struct {
	db *gorm.DB
}

func NewMemberStorage(db *gorm.DB) *MemberStorage {
	return &MemberStorage{
		db: db,
	}
}

func (s *MemberStorage) Create(ctx context.Context, member *entity.Member) (*entity.Member, error) {
	err := s.db.WithContext(ctx).Create(&member).Error
	return member, err
}

func (s *MemberStorage) Get(ctx context.Context, id string) (*entity.Member, error) {
	var member entity.Member
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *MemberStorage) GetByUserAndClub(ctx context.Context, userID, clubID string) (*entity.Member, error) {
	var member entity.Member
	err := s.db.WithContext(ctx).Where("user_id = ? AND club_id = ?", userID, clubID).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *MemberStorage) GetByClubID(ctx context.Context, clubID string) ([]entity.Member, error) {
	var members []entity.Member
	err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Find(&members).Error
	return members, err
}

func (s *MemberStorage) Update(ctx context.Context, member *entity.Member) (*entity.Member, error) {
	err := s.db.WithContext(ctx).Save(&member).Error
	return member, err
}

func (s *MemberStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Member{}).Error
}
