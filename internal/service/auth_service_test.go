package service

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/internlink/internal/config"
	"github.com/spec-kit/internlink/internal/domain"
	apperrors "github.com/spec-kit/internlink/pkg/util/errorutil"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64

	// raceOnCreate makes the existence checks lie so Create hits the
	// unique constraint, mimicking two signups racing on the same email.
	raceOnCreate bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.byEmail[user.Email] = &copied
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	if f.raceOnCreate {
		return nil, pgx.ErrNoRows
	}
	for _, user := range f.byEmail {
		if user.Phone == phone {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if f.raceOnCreate {
		return false, nil
	}
	_, ok := f.byEmail[email]
	return ok, nil
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 24 * 60,
			BcryptCost:            4,
		},
	}
}

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	return NewAuthService(testConfig(), repo, nil)
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	de := apperrors.ToDomainError(err)
	require.NotNil(t, de)
	return de.Code
}

func TestSignup(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Signup(context.Background(), SignupInput{
		FullName:     "Alice",
		Email:        "alice@x.com",
		Password:     "pw123",
		Organization: "Acme",
		Phone:        "5551234",
		UserType:     "Candidate",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleCandidate, user.Role, "requested role must be stored lower-cased")
	require.NotEqual(t, "pw123", user.PasswordHash, "raw password must never be stored")
	require.NotZero(t, user.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	input := SignupInput{FullName: "Alice", Email: "alice@x.com", Password: "pw123", UserType: "candidate"}
	_, err := svc.Signup(context.Background(), input)
	require.NoError(t, err)

	input.Phone = "5559999"
	_, err = svc.Signup(context.Background(), input)
	require.Error(t, err)
	require.Equal(t, apperrors.CodeDuplicateEmail, domainCode(t, err))
	require.Len(t, repo.byEmail, 1, "failed signup must not mutate the store")
}

func TestSignupDuplicatePhone(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{
		FullName: "Alice", Email: "alice@x.com", Password: "pw123", Phone: "5551234", UserType: "candidate",
	})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), SignupInput{
		FullName: "Bob", Email: "bob@x.com", Password: "pw456", Phone: "5551234", UserType: "recruiter",
	})
	require.Error(t, err)
	require.Equal(t, apperrors.CodeDuplicatePhone, domainCode(t, err))
}

func TestSignupRacingDuplicateSurfacesAsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	input := SignupInput{FullName: "Alice", Email: "alice@x.com", Password: "pw123", UserType: "candidate"}
	_, err := svc.Signup(context.Background(), input)
	require.NoError(t, err)

	repo.raceOnCreate = true
	_, err = svc.Signup(context.Background(), input)
	require.Error(t, err)
	require.Equal(t, apperrors.CodeDuplicateEmail, domainCode(t, err),
		"a unique-constraint rejection must surface as the duplicate taxonomy, not a raw store error")
}

func TestSignupUnknownRole(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Signup(context.Background(), SignupInput{
		FullName: "Alice", Email: "alice@x.com", Password: "pw123", UserType: "admin",
	})
	require.Error(t, err)
	require.Equal(t, apperrors.CodeValidationFailed, domainCode(t, err))
}

func TestLoginUnknownEmailIsUniform(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "ghost@x.com", "pw123", "candidate")
	require.Error(t, err)
	require.Equal(t, apperrors.CodeInvalidCredentials, domainCode(t, err))
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{
		FullName: "Alice", Email: "alice@x.com", Password: "pw123", UserType: "candidate",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@x.com", "wrong", "candidate")
	require.Error(t, err)
	require.Equal(t, apperrors.CodeInvalidCredentials, domainCode(t, err))
}

func TestLoginRoleMismatchNamesStoredRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{
		FullName: "Alice", Email: "alice@x.com", Password: "pw123", Phone: "5551234",
		Organization: "Acme", UserType: "candidate",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@x.com", "pw123", "recruiter")
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	require.Equal(t, apperrors.CodeRoleMismatch, de.Code)
	require.True(t, strings.Contains(de.Message, "candidate"), "mismatch message must name the stored role, got %q", de.Message)
}

func TestLoginRoleComparisonIsCaseInsensitive(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{
		FullName: "Alice", Email: "alice@x.com", Password: "pw123", UserType: "candidate",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "alice@x.com", "pw123", "CANDIDATE")
	require.NoError(t, err)
	require.NotEmpty(t, token.Value)
}

func TestLoginIssuedTokenDecodesToSubjectAndRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{
		FullName: "Alice", Email: "alice@x.com", Password: "pw123", UserType: "candidate",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "alice@x.com", "pw123", "candidate")
	require.NoError(t, err)

	claims, err := svc.TokenManager().ParseToken(token.Value)
	require.NoError(t, err)
	require.Equal(t, "alice@x.com", claims.Subject)
	require.Equal(t, domain.RoleCandidate, claims.Role)
	require.Equal(t, domain.RoleCandidate, token.Role)
}
