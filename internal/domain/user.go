package domain

import (
	"strings"
	"time"
)

// Role is the account category fixed at signup. It gates which profile
// surface a user may access and never changes afterwards.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
)

// ParseRole normalizes a requested role to its canonical lower-case form.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleCandidate:
		return RoleCandidate, true
	case RoleRecruiter:
		return RoleRecruiter, true
	default:
		return "", false
	}
}

// Matches compares roles case-insensitively.
func (r Role) Matches(other string) bool {
	return strings.EqualFold(string(r), other)
}

// User is the identity root entity. PasswordHash holds the bcrypt digest;
// the raw secret is never stored or logged.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	Organization string
	Phone        string
	Role         Role
	CreatedAt    time.Time
}
