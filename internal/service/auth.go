package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bookapi/internal/auth"
	"bookapi/internal/model"
	"bookapi/internal/repository"
	"bookapi/internal/validation"
)

// RegisterInput is the self-registration payload.
type RegisterInput struct {
	Username string  `json:"username" validate:"required,max=50"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	Password string  `json:"password" validate:"required,max=256"`
	IsAdmin  bool    `json:"is_admin"`
}

// LoginInput accepts both form and JSON encodings.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Token is an issued bearer token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthService defines registration, login and token verification.
type AuthService interface {
	// Register creates an active user. is_admin is honoured only when admin signup is allowed.
	Register(ctx context.Context, in RegisterInput) (*model.User, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, in LoginInput) (*Token, error)

	// Authenticate resolves a bearer token to the stored user.
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	users            repository.UserRepository
	tokens           *auth.TokenManager
	validate         *validation.Validator
	allowAdminSignup bool
	logger           *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, v *validation.Validator, allowAdminSignup bool, logger *slog.Logger) AuthService {
	return &authService{
		users:            users,
		tokens:           tokens,
		validate:         v,
		allowAdminSignup: allowAdminSignup,
		logger:           logger,
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:       in.Username,
		Email:          in.Email,
		FullName:       in.FullName,
		HashedPassword: hash,
		IsActive:       true,
		IsAdmin:        in.IsAdmin && s.allowAdminSignup,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost a race with a concurrent registration
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.logger.Info("user registered", "user_id", u.ID, "username", u.Username, "is_admin", u.IsAdmin)
	return u, nil
}

func (s *authService) Login(ctx context.Context, in LoginInput) (*Token, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	u, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.CheckPassword(u.HashedPassword, in.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("check password: %w", err)
	}

	signed, err := s.tokens.Issue(u.ID, u.Username, u.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &Token{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	u, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if claims.UserID != 0 && claims.UserID != u.ID {
		return nil, ErrInvalidToken
	}
	return u, nil
}
