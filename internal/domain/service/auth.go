package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-dev/clubhub/internal/domain/dto"
	"github.com/clubhub-dev/clubhub/internal/domain/entity"
	"github.com/clubhub-dev/clubhub/internal/domain/utils"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// SessionStorage holds issued refresh tokens with a TTL; backed by redis.
type SessionStorage interface {
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type authUserService interface {
	Create(ctx context.Context, email, password, name string) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService is the Authenticator: it issues and verifies credentials
// and yields the verified principal the core trusts as requester id.
type AuthService struct {
	users    authUserService
	sessions SessionStorage

	jwtSecret []byte
	clock     func() time.Time
}

func NewAuthService(users authUserService, sessions SessionStorage, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
		clock:     time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, register dto.Register) (*dto.PublicUser, error) {
	user, err := s.users.Create(ctx, register.Email, register.Password, register.Name)
	if err != nil {
		return nil, err
	}
	public := dto.NewPublicUserFromEntity(*user)
	return &public, nil
}

func (s *AuthService) Login(ctx context.Context, login dto.Login) (*dto.PublicUser, *dto.TokenPair, error) {
	if login.Email == "" || login.Password == "" {
		return nil, nil, errorz.Validation("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, login.Email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, errorz.Unauthenticated("unknown email address")
	}
	if !utils.CheckPasswordHash(login.Password, user.PasswordHash) {
		return nil, nil, errorz.Unauthenticated("wrong password")
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	public := dto.NewPublicUserFromEntity(*user)
	return &public, pair, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a
// fresh pair is issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	userID, err := s.sessions.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, errorz.Unauthenticated("invalid or expired refresh token")
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err = s.sessions.Delete(ctx, refreshToken); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.sessions.Delete(ctx, refreshToken)
}

func (s *AuthService) Me(ctx context.Context, subjectID string) (*dto.PublicUser, error) {
	user, err := s.users.Get(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	public := dto.NewPublicUserFromEntity(*user)
	return &public, nil
}

// VerifyAccessToken parses the bearer credential and yields the
// principal embedded in it.
func (s *AuthService) VerifyAccessToken(tokenString string) (*dto.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.clock() }))
	if err != nil || !token.Valid {
		return nil, errorz.Unauthenticated("invalid token")
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok {
		return nil, errorz.Unauthenticated("invalid token claims")
	}

	return &dto.Principal{
		SubjectID: claims.Subject,
		Email:     claims.Email,
		Role:      entity.UserRole(claims.Role),
	}, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenPair, error) {
	now := s.clock()
	claims := accessClaims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.New().String()
	if err = s.sessions.Set(ctx, refreshToken, user.ID, refreshTokenTTL); err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
