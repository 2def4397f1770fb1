package dto

import "github.com/clubhub-dev/clubhub/internal/domain/entity"

type Register struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Principal is the verified identity of the caller, as established by the
// auth layer. The core trusts it without re-verification.
type Principal struct {
	SubjectID string
	Email     string
	Role      entity.UserRole
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// PublicUser is the user representation safe to return to clients.
type PublicUser struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  entity.UserRole `json:"role"`
}

func NewPublicUserFromEntity(user entity.User) PublicUser {
	return PublicUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}
