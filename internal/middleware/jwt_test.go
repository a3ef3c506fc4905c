package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashrovy/records-api/internal/service"
	"github.com/ashrovy/records-api/internal/utils"
)

// Token verification is stateless, so the auth service needs no store here.
func testAuth() *service.AuthService {
	return service.NewAuthService(nil, "test-secret", time.Minute, time.Hour, 4)
}

func doRequest(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuth(testAuth())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _ := doRequest(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "access token is missing")
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	rec, _ := doRequest(t, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec, _ := doRequest(t, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired access token")
}

func TestJWTAuthValidToken(t *testing.T) {
	token, err := utils.NewAccessToken("test-secret", utils.AccessClaims{
		UserID:      "665f1c9aa3b2c4d5e6f70812",
		Email:       "dev@example.com",
		TypeAccount: "paidUser",
	}, time.Minute)
	require.NoError(t, err)

	rec, c := doRequest(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "665f1c9aa3b2c4d5e6f70812", c.Get(CtxUserID))
	assert.Equal(t, "dev@example.com", c.Get(CtxEmail))
	assert.Equal(t, "paidUser", c.Get(CtxTypeAccount))
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token, err := utils.NewAccessToken("other-secret", utils.AccessClaims{
		UserID: "u1", Email: "a@b.c", TypeAccount: "freeUser",
	}, time.Minute)
	require.NoError(t, err)

	rec, _ := doRequest(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
