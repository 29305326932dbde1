package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/internlink/internal/domain"
)

func TestGenerateAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	token, expiresAt, err := tm.GenerateToken("alice@x.com", domain.RoleCandidate)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty string")
	}

	until := time.Until(expiresAt)
	if until < 23*time.Hour || until > 25*time.Hour {
		t.Errorf("default expiry = %v from now, want ~24h", until)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() unexpected error: %v", err)
	}
	if claims.Subject != "alice@x.com" {
		t.Errorf("subject = %q, want %q", claims.Subject, "alice@x.com")
	}
	if claims.Role != domain.RoleCandidate {
		t.Errorf("role = %q, want %q", claims.Role, domain.RoleCandidate)
	}
}

func TestExtractSubject(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, _, err := tm.GenerateToken("bob@x.com", domain.RoleRecruiter)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	subject, err := tm.ExtractSubject(token)
	if err != nil {
		t.Fatalf("ExtractSubject() unexpected error: %v", err)
	}
	if subject != "bob@x.com" {
		t.Errorf("ExtractSubject() = %q, want %q", subject, "bob@x.com")
	}
}

func TestExtractSubjectWrongSecret(t *testing.T) {
	tm := NewTokenManager("correct-secret", 60)
	token, _, err := tm.GenerateToken("alice@x.com", domain.RoleCandidate)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	other := NewTokenManager("wrong-secret", 60)
	if _, err := other.ExtractSubject(token); err != ErrInvalidToken {
		t.Errorf("ExtractSubject() error = %v, want ErrInvalidToken", err)
	}
}

func TestExtractSubjectTampered(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	token, _, err := tm.GenerateToken("alice@x.com", domain.RoleCandidate)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	// flip the last signature byte
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := tm.ExtractSubject(string(tampered)); err != ErrInvalidToken {
		t.Errorf("ExtractSubject() error = %v, want ErrInvalidToken", err)
	}
}

func TestExtractSubjectMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	if _, err := tm.ExtractSubject("not.a.jwt"); err != ErrInvalidToken {
		t.Errorf("ExtractSubject() error = %v, want ErrInvalidToken", err)
	}
}

func TestExtractSubjectExpired(t *testing.T) {
	secret := "test-secret"
	claims := &Claims{
		Role: domain.RoleCandidate,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@x.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-24*time.Hour - time.Second)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	tm := NewTokenManager(secret, 60)
	if _, err := tm.ExtractSubject(signed); err != ErrInvalidToken {
		t.Errorf("ExtractSubject() error = %v, want ErrInvalidToken for expired token", err)
	}
}

func TestExtractSubjectWrongSigningMethod(t *testing.T) {
	// unsigned token must be rejected even with the "none" marker
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@x.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	tm := NewTokenManager("test-secret", 60)
	if _, err := tm.ExtractSubject(unsigned); err != ErrInvalidToken {
		t.Errorf("ExtractSubject() error = %v, want ErrInvalidToken", err)
	}
}

func TestIsValid(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	token, _, err := tm.GenerateToken("alice@x.com", domain.RoleCandidate)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	if !tm.IsValid(token, "alice@x.com") {
		t.Error("IsValid() = false for matching subject")
	}
	if tm.IsValid(token, "bob@x.com") {
		t.Error("IsValid() = true for mismatched subject")
	}
	if tm.IsValid("garbage", "alice@x.com") {
		t.Error("IsValid() = true for garbage token")
	}
}
