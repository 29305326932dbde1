package util

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewDuplicateEmail()
	mapped := ToDomainError(original)
	if mapped.Code != CodeDuplicateEmail || mapped.HTTPStatus != http.StatusConflict {
		t.Errorf("mapped = (%s, %d), want (%s, %d)", mapped.Code, mapped.HTTPStatus, CodeDuplicateEmail, http.StatusConflict)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != CodeNotFound {
		t.Errorf("code = %s, want %s", mapped.Code, CodeNotFound)
	}
}

func TestToDomainErrorGenericIsInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("sql broke"))
	if mapped.Code != CodeInternalError {
		t.Errorf("code = %s, want %s", mapped.Code, CodeInternalError)
	}
	if mapped.Message != "internal server error" {
		t.Errorf("message %q leaks internal detail", mapped.Message)
	}
}

func TestRoleMismatchNamesRole(t *testing.T) {
	mapped := ToDomainError(NewRoleMismatch("candidate"))
	if mapped.Code != CodeRoleMismatch {
		t.Fatalf("code = %s, want %s", mapped.Code, CodeRoleMismatch)
	}
	if !strings.Contains(mapped.Message, "candidate") {
		t.Errorf("message %q does not name the registered role", mapped.Message)
	}
	if mapped.Details["registered_role"] != "candidate" {
		t.Errorf("details = %v, want registered_role=candidate", mapped.Details)
	}
}

func TestInvalidCredentialsIsUniform(t *testing.T) {
	mapped := ToDomainError(NewInvalidCredentials())
	if strings.Contains(mapped.Message, "user") || strings.Contains(mapped.Message, "found") {
		t.Errorf("message %q hints at which credential failed", mapped.Message)
	}
	if mapped.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", mapped.HTTPStatus, http.StatusUnauthorized)
	}
}
