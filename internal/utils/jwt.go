// Package utils provides token and password helpers shared by the auth
// service and middleware.
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when an access token fails signature,
// expiry, or claim-shape checks. Callers surface it as a 401.
var ErrInvalidToken = errors.New("invalid or expired access token")

// AccessClaims is the payload carried by a signed access token. Tokens
// are stateless: verification never touches the database.
type AccessClaims struct {
	UserID      string
	Email       string
	TypeAccount string
}

// NewAccessToken signs an HS256 JWT for a user with claims
// {sub, email, typeAccount, exp, iat}.
func NewAccessToken(secret string, claims AccessClaims, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":         claims.UserID,
		"email":       claims.Email,
		"typeAccount": claims.TypeAccount,
		"exp":         now.Add(ttl).Unix(),
		"iat":         now.Unix(),
	})
	return t.SignedString([]byte(secret))
}

// ParseAccessToken verifies signature and expiry and extracts the claim
// set. Missing or mistyped claims invalidate the token.
func ParseAccessToken(secret, raw string) (AccessClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return AccessClaims{}, ErrInvalidToken
	}
	mapClaims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return AccessClaims{}, ErrInvalidToken
	}
	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return AccessClaims{}, ErrInvalidToken
	}
	email, ok := mapClaims["email"].(string)
	if !ok {
		return AccessClaims{}, ErrInvalidToken
	}
	typeAccount, ok := mapClaims["typeAccount"].(string)
	if !ok {
		return AccessClaims{}, ErrInvalidToken
	}
	return AccessClaims{UserID: sub, Email: email, TypeAccount: typeAccount}, nil
}

// NewRefreshToken returns an opaque random refresh token. Only the copy
// persisted on the user record is considered live.
func NewRefreshToken() string {
	return uuid.NewString()
}
