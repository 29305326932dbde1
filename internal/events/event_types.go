package events

import (
	"time"

	"github.com/spec-kit/internlink/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
	EventProfileUpdated EventType = "profile_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Email     string      `json:"email"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID   int64       `json:"user_id"`
	FullName string      `json:"full_name"`
	Role     domain.Role `json:"role"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// ProfileUpdatedPayload payload.
type ProfileUpdatedPayload struct {
	ProfileID  int64 `json:"profile_id"`
	UserID     int64 `json:"user_id"`
	SkillCount int   `json:"skill_count"`
}
