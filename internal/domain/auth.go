package domain

import "time"

// Token describes an issued authentication token. Tokens are stateless:
// the struct carries metadata for responses, not a server-side session.
type Token struct {
	Value     string
	Subject   string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
