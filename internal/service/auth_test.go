package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/repository"
)

// memStore is an in-memory UserStore for exercising the auth lifecycle.
type memStore struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemStore() *memStore {
	return &memStore{users: map[string]*model.User{}}
}

func (s *memStore) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	u.ID = bson.NewObjectID()
	cp := *u
	s.users[u.ID.Hex()] = &cp
	return nil
}

func (s *memStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return *u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *memStore) GetByID(_ context.Context, id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return *u, nil
	}
	return model.User{}, repository.ErrNotFound
}

func (s *memStore) GetByRefreshToken(_ context.Context, token string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.RefreshToken != "" && u.RefreshToken == token {
			return *u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *memStore) SetRefreshToken(_ context.Context, id bson.ObjectID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id.Hex()]
	if !ok {
		return repository.ErrNotFound
	}
	u.RefreshToken = token
	return nil
}

func (s *memStore) ClearRefreshToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.RefreshToken == token {
			u.RefreshToken = ""
		}
	}
	return nil
}

func newTestAuth() (*AuthService, *memStore) {
	store := newMemStore()
	return NewAuthService(store, "test-secret", time.Minute, time.Hour, 4), store
}

func register(t *testing.T, auth *AuthService, email string) AuthResult {
	t.Helper()
	res, err := auth.Register(context.Background(), RegisterInput{
		Email:    email,
		Name:     "Tester",
		Password: "hunter22",
	})
	require.NoError(t, err)
	return res
}

func TestRegister(t *testing.T) {
	auth, _ := newTestAuth()

	res := register(t, auth, "  Dev@Example.COM ")
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, "dev@example.com", res.User.Email)
	assert.Equal(t, model.AccountFree, res.User.TypeAccount)

	claims, err := auth.VerifyAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID.Hex(), claims.UserID)
	assert.Equal(t, "dev@example.com", claims.Email)
	assert.Equal(t, string(model.AccountFree), claims.TypeAccount)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newTestAuth()
	register(t, auth, "dev@example.com")

	_, err := auth.Register(context.Background(), RegisterInput{
		Email:    "DEV@example.com",
		Password: "other-pass",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	auth, _ := newTestAuth()
	register(t, auth, "dev@example.com")

	res, err := auth.Login(context.Background(), "dev@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
}

func TestLoginBadCredentials(t *testing.T) {
	auth, _ := newTestAuth()
	register(t, auth, "dev@example.com")

	_, err := auth.Login(context.Background(), "dev@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotation(t *testing.T) {
	auth, _ := newTestAuth()
	first := register(t, auth, "dev@example.com")

	second, err := auth.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The rotated-out token must stop working.
	_, err = auth.Refresh(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)

	_, err = auth.Refresh(context.Background(), second.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshEmptyToken(t *testing.T) {
	auth, _ := newTestAuth()

	_, err := auth.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestLoginInvalidatesPreviousRefreshToken(t *testing.T) {
	auth, _ := newTestAuth()
	first := register(t, auth, "dev@example.com")

	_, err := auth.Login(context.Background(), "dev@example.com", "hunter22")
	require.NoError(t, err)

	_, err = auth.Refresh(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestLogout(t *testing.T) {
	auth, _ := newTestAuth()
	res := register(t, auth, "dev@example.com")

	require.NoError(t, auth.Logout(context.Background(), res.RefreshToken))
	_, err := auth.Refresh(context.Background(), res.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)

	// Logging out again, or with no token at all, still succeeds.
	assert.NoError(t, auth.Logout(context.Background(), res.RefreshToken))
	assert.NoError(t, auth.Logout(context.Background(), ""))
}

func TestGetUser(t *testing.T) {
	auth, _ := newTestAuth()
	res := register(t, auth, "dev@example.com")

	u, err := auth.GetUser(context.Background(), res.User.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", u.Email)

	_, err = auth.GetUser(context.Background(), bson.NewObjectID().Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
