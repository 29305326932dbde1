package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/internlink/internal/auth"
	"github.com/spec-kit/internlink/internal/config"
	"github.com/spec-kit/internlink/internal/domain"
	"github.com/spec-kit/internlink/internal/events"
	"github.com/spec-kit/internlink/internal/repository"
	apperrors "github.com/spec-kit/internlink/pkg/util/errorutil"
)

// SignupInput carries the fields of a signup request.
type SignupInput struct {
	FullName     string
	Email        string
	Password     string
	Organization string
	Phone        string
	UserType     string
}

// AuthService coordinates signup and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Signup registers a new account. The email check runs before the phone
// check; duplicates fail fast without touching the store. Racing inserts are
// caught by the store's unique constraints and surfaced the same way.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	role, ok := domain.ParseRole(in.UserType)
	if !ok {
		return nil, apperrors.NewValidationError("userType must be candidate or recruiter", nil)
	}

	exists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewDuplicateEmail()
	}

	if in.Phone != "" {
		if _, err := s.users.GetByPhone(ctx, in.Phone); err == nil {
			return nil, apperrors.NewDuplicatePhone()
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		Organization: in.Organization,
		Phone:        in.Phone,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err, "users_email_key") {
			return nil, apperrors.NewDuplicateEmail()
		}
		if repository.IsUniqueViolation(err, "users_phone_key") {
			return nil, apperrors.NewDuplicatePhone()
		}
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, user.Email, events.UserRegisteredPayload{
		UserID:   user.ID,
		FullName: user.FullName,
		Role:     user.Role,
	})
	return user, nil
}

// Login authenticates credentials against the expected role and issues a
// token. Checks run in a fixed order: existence, password, role. Absent users
// and wrong passwords report the same uniform failure.
func (s *AuthService) Login(ctx context.Context, email, password, expectedRole string) (*domain.Token, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewInvalidCredentials()
	}

	if !user.Role.Matches(expectedRole) {
		return nil, apperrors.NewRoleMismatch(string(user.Role))
	}

	value, expiresAt, err := s.tokenMgr.GenerateToken(user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventUserLoggedIn, user.Email, events.UserLoggedInPayload{
		UserID: user.ID,
		Role:   user.Role,
	})

	return &domain.Token{
		Value:     value,
		Subject:   user.Email,
		Role:      user.Role,
		IssuedAt:  time.Now(),
		ExpiresAt: expiresAt,
	}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, email string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Email:     email,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
