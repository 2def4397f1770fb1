package service

import (
	"context"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/entity"
	"github.com/clubhub-dev/clubhub/internal/domain/utils"
	"github.com/clubhub-dev/clubhub/internal/domain/utils/validator"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}

type UserService struct {
	storage UserStorage
}

func NewUserService(storage UserStorage) *UserService {
	return &UserService{
		storage: storage,
	}
}

// Create registers a user with a hashed password. Email addresses are
// unique; a duplicate fails with Conflict.
func (s *UserService) Create(ctx context.Context, email, password, name string) (*entity.User, error) {
	if !validator.Email(email) {
		return nil, errorz.Validation("a valid email address is required")
	}
	if !validator.Password(password) {
		return nil, errorz.Validation("password must be at least 6 characters")
	}
	if !validator.UserName(name) {
		return nil, errorz.Validation("name is required")
	}

	existing, err := s.storage.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errorz.Conflict("email is already registered")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.storage.Create(ctx, &entity.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         entity.UserRoleUser,
	})
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errorz.NotFound("user not found")
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.storage.GetByEmail(ctx, email)
}

func (s *UserService) GetAll(ctx context.Context) ([]entity.User, error) {
	return s.storage.GetAll(ctx)
}

// MakeAdmin grants the admin role; callable by admins only.
func (s *UserService) MakeAdmin(ctx context.Context, id string, requester *entity.User) (*entity.User, error) {
	if !requester.IsAdmin() {
		return nil, errorz.Forbidden("only admins may promote users")
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Role = entity.UserRoleAdmin
	return s.storage.Update(ctx, user)
}
