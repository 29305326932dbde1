package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/internlink/internal/domain"
	"github.com/spec-kit/internlink/internal/events"
	"github.com/spec-kit/internlink/internal/repository"
	apperrors "github.com/spec-kit/internlink/pkg/util/errorutil"
)

// ProfileCache abstracts the read cache for candidate profiles. A nil cache
// is a permanent miss.
type ProfileCache interface {
	Get(ctx context.Context, email string) (*domain.CandidateProfile, bool)
	Set(ctx context.Context, email string, profile *domain.CandidateProfile)
	Invalidate(ctx context.Context, email string)
}

// ProfileService serves token-authenticated reads and writes of candidate
// profiles, always scoped by the identity recovered from the token.
type ProfileService struct {
	users      repository.UserRepository
	profiles   repository.ProfileRepository
	cache      ProfileCache
	dispatcher events.Dispatcher
}

// NewProfileService builds the service.
func NewProfileService(users repository.UserRepository, profiles repository.ProfileRepository, cache ProfileCache, dispatcher events.Dispatcher) *ProfileService {
	return &ProfileService{users: users, profiles: profiles, cache: cache, dispatcher: dispatcher}
}

// GetProfile resolves the email to a user and returns their profile. When no
// profile row exists yet an empty one is created and persisted, so a known
// user never sees not-found.
func (s *ProfileService) GetProfile(ctx context.Context, email string) (*domain.CandidateProfile, error) {
	if s.cache != nil {
		if profile, ok := s.cache.Get(ctx, email); ok {
			return profile, nil
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"email": email})
		}
		return nil, err
	}

	profile, err := s.profiles.GetByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		profile = &domain.CandidateProfile{UserID: user.ID}
		if err := s.profiles.Save(ctx, profile); err != nil {
			return nil, err
		}
	}

	if s.cache != nil {
		s.cache.Set(ctx, email, profile)
	}
	return profile, nil
}

// SaveOrUpdate persists the incoming profile for the resolved user. The
// upsert is keyed by user, not by any client-supplied profile id, so a caller
// cannot overwrite another user's profile by forging an id.
func (s *ProfileService) SaveOrUpdate(ctx context.Context, email string, incoming *domain.CandidateProfile) (*domain.CandidateProfile, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"email": email})
		}
		return nil, err
	}

	incoming.ID = 0
	incoming.UserID = user.ID
	if existing, err := s.profiles.GetByUserID(ctx, user.ID); err == nil {
		incoming.ID = existing.ID
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err := s.profiles.Save(ctx, incoming); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, email)
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventProfileUpdated,
			Email:     email,
			Timestamp: time.Now(),
			Payload: events.ProfileUpdatedPayload{
				ProfileID:  incoming.ID,
				UserID:     user.ID,
				SkillCount: len(incoming.Skills),
			},
		})
	}
	return incoming, nil
}
