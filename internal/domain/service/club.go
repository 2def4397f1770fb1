package service

import (
	"context"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/dto"
	"github.com/clubhub-dev/clubhub/internal/domain/entity"
	"github.com/clubhub-dev/clubhub/internal/domain/utils/validator"
)

type ClubStorage interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetAll(ctx context.Context) ([]entity.Club, error)
	GetWithPagination(ctx context.Context, offset, limit int, order string) ([]entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type ClubService struct {
	storage ClubStorage
	authz   *AuthzService
}

func NewClubService(storage ClubStorage, authz *AuthzService) *ClubService {
	return &ClubService{
		storage: storage,
		authz:   authz,
	}
}

// Create registers a new club owned by ownerID.
func (s *ClubService) Create(ctx context.Context, create dto.CreateClub, ownerID string) (*entity.Club, error) {
	if !validator.ClubName(create.Name) {
		return nil, errorz.Validation("club name is required")
	}

	return s.storage.Create(ctx, &entity.Club{
		Name:        create.Name,
		Description: create.Description,
		OwnerID:     ownerID,
	})
}

func (s *ClubService) GetAll(ctx context.Context) ([]entity.Club, error) {
	return s.storage.GetAll(ctx)
}

func (s *ClubService) GetWithPagination(ctx context.Context, offset, limit int, order string) ([]entity.Club, error) {
	return s.storage.GetWithPagination(ctx, offset, limit, order)
}

func (s *ClubService) Get(ctx context.Context, id string) (*entity.Club, error) {
	club, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, errorz.NotFound("club not found")
	}
	return club, nil
}

func (s *ClubService) Update(ctx context.Context, id string, update dto.UpdateClub, requesterID string) (*entity.Club, error) {
	club, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.authz.RequireOwner(ctx, requesterID, club); err != nil {
		return nil, err
	}

	if update.Name != nil {
		if !validator.ClubName(*update.Name) {
			return nil, errorz.Validation("club name is required")
		}
		club.Name = *update.Name
	}
	if update.Description != nil {
		club.Description = *update.Description
	}

	return s.storage.Update(ctx, club)
}

// Delete removes the club and everything scoped to it.
func (s *ClubService) Delete(ctx context.Context, id string, requesterID string) error {
	club, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = s.authz.RequireOwner(ctx, requesterID, club); err != nil {
		return err
	}
	return s.storage.Delete(ctx, id)
}

func (s *ClubService) Count(ctx context.Context) (int64, error) {
	return s.storage.Count(ctx)
}
