package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protheo/internal/core/apperror"
	"protheo/internal/core/id"
)

type fakeUserRepo struct {
	users map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID id.ID) (*User, error) {
	for _, u := range r.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", userID.String())
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", email)
}

func (r *fakeUserRepo) Exists(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*User, error) {
	out := make([]*User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func newTestService(repo UserRepository) *Service {
	jwtService := NewJWTService(DefaultJWTConfig("test-secret"))
	return NewService(repo, jwtService, DefaultServiceConfig())
}

func TestRegister_DefaultsToEmployee(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "tech@lab.local",
		Password: "secret-password",
		Name:     "Técnico",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleEmployee, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret-password", user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@lab.local", Password: "secret-password"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "a@lab.local", Password: "other-password"})
	assert.True(t, apperror.IsConflict(err))
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{Email: "a@lab.local", Password: "short"})
	assert.True(t, apperror.IsValidation(err))
}

func TestLogin_IssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{
		Email:    "admin@lab.local",
		Password: "secret-password",
		Role:     RoleAdmin,
	})
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, Credentials{Email: "admin@lab.local", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)
	assert.NotNil(t, user.LastLoginAt)

	// The issued token round-trips through the validator.
	jwtService := NewJWTService(DefaultJWTConfig("test-secret"))
	claims, err := jwtService.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, string(RoleAdmin), claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@lab.local", Password: "secret-password"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, Credentials{Email: "a@lab.local", Password: "wrong"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
	assert.Equal(t, 1, repo.users["a@lab.local"].FailedLoginAttempts)
}

func TestLogin_UnknownEmailIsIndistinguishable(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, _, err := svc.Login(context.Background(), Credentials{Email: "ghost@lab.local", Password: "whatever"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestLogin_LocksAfterRepeatedFailures(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@lab.local", Password: "secret-password"})
	require.NoError(t, err)

	for i := 0; i < DefaultServiceConfig().MaxLoginAttempts; i++ {
		_, _, _ = svc.Login(ctx, Credentials{Email: "a@lab.local", Password: "wrong"})
	}

	user := repo.users["a@lab.local"]
	assert.True(t, user.IsLocked())

	// Even the right password is rejected while locked.
	_, _, err = svc.Login(ctx, Credentials{Email: "a@lab.local", Password: "secret-password"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}

func TestUser_LockExpires(t *testing.T) {
	u := NewUser("a@lab.local", "hash", RoleEmployee)
	past := time.Now().Add(-time.Minute)
	u.LockedUntil = &past

	assert.False(t, u.IsLocked())
	assert.NoError(t, u.CanLogin())
}
