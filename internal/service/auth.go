// Package service holds the authentication lifecycle: registration,
// login, refresh-token rotation, logout, and access-token verification.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/repository"
	"github.com/ashrovy/records-api/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email has already been registered")
	ErrInvalidRefresh     = errors.New("refresh token is invalid")
)

// UserStore is the persistence surface the auth service needs. It is
// satisfied by *repository.UserRepo.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByRefreshToken(ctx context.Context, token string) (model.User, error)
	SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error
	ClearRefreshToken(ctx context.Context, token string) error
}

// AuthResult is returned by every token-issuing operation.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         model.User
}

// RegisterInput carries the validated registration payload.
type RegisterInput struct {
	Email       string
	Name        string
	Password    string
	TypeAccount model.AccountType
}

// AuthService drives the per-user refresh-token slot. Each user has at
// most one live refresh token; issuance overwrites the slot, so any
// previously issued token stops working.
type AuthService struct {
	store      UserStore
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	bcryptCost int
}

func NewAuthService(store UserStore, secret string, accessTTL, refreshTTL time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		store:      store,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		bcryptCost: bcryptCost,
	}
}

// RefreshTTL is the lifetime handed to the refresh cookie.
func (s *AuthService) RefreshTTL() time.Duration { return s.refreshTTL }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// issueTokens rotates the user's refresh token and signs a new access
// token. The rotation is a plain read-then-write: two concurrent calls
// for the same user can both succeed, with the later write winning.
func (s *AuthService) issueTokens(ctx context.Context, u model.User) (AuthResult, error) {
	refresh := utils.NewRefreshToken()
	if err := s.store.SetRefreshToken(ctx, u.ID, refresh); err != nil {
		return AuthResult{}, err
	}
	u.RefreshToken = refresh

	access, err := utils.NewAccessToken(s.secret, utils.AccessClaims{
		UserID:      u.ID.Hex(),
		Email:       u.Email,
		TypeAccount: string(u.TypeAccount),
	}, s.accessTTL)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{AccessToken: access, RefreshToken: refresh, User: u}, nil
}

// Register creates a user with the default freeUser account type (unless
// one was given) and immediately issues tokens, like a first login.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	email := normalizeEmail(in.Email)
	if _, err := s.store.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return AuthResult{}, err
	}

	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return AuthResult{}, err
	}

	typeAccount := in.TypeAccount
	if typeAccount == "" {
		typeAccount = model.AccountFree
	}
	u := model.User{
		Email:        email,
		Name:         in.Name,
		PasswordHash: hash,
		TypeAccount:  typeAccount,
	}
	if err := s.store.Create(ctx, &u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return AuthResult{}, ErrEmailTaken
		}
		return AuthResult{}, err
	}
	return s.issueTokens(ctx, u)
}

// Login verifies credentials and issues a fresh token pair. Unknown email
// and bad password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	u, err := s.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return AuthResult{}, ErrInvalidCredentials
	}
	return s.issueTokens(ctx, u)
}

// Refresh exchanges a live refresh token for a new pair, rotating the
// slot so the presented token stops working.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	if refreshToken == "" {
		return AuthResult{}, ErrInvalidRefresh
	}
	u, err := s.store.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return AuthResult{}, ErrInvalidRefresh
		}
		return AuthResult{}, err
	}
	return s.issueTokens(ctx, u)
}

// Logout clears the presented refresh token from whichever user holds
// it. Idempotent: an empty or unknown token is a no-op.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.store.ClearRefreshToken(ctx, refreshToken)
}

// VerifyAccessToken checks signature, expiry, and claim shape. No store
// lookup is involved.
func (s *AuthService) VerifyAccessToken(token string) (utils.AccessClaims, error) {
	return utils.ParseAccessToken(s.secret, token)
}

// GetUser loads a user by id for the /auth/me endpoint.
func (s *AuthService) GetUser(ctx context.Context, id string) (model.User, error) {
	return s.store.GetByID(ctx, id)
}
