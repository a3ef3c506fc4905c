package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ashrovy/records-api/internal/config"
	"github.com/ashrovy/records-api/internal/middleware"
	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
	"github.com/ashrovy/records-api/internal/repository"
	"github.com/ashrovy/records-api/internal/service"
)

// refreshCookieName is where the rotating refresh token lives. The token
// never appears in a response body.
const refreshCookieName = "refreshToken"

var accountTypes = []string{
	string(model.AccountFree),
	string(model.AccountPaid),
	string(model.AccountAgency),
}

// AuthHandler serves registration, login, token refresh, logout, and the
// current-user endpoint.
type AuthHandler struct {
	auth *service.AuthService
	cfg  config.Config
}

func NewAuthHandler(auth *service.AuthService, cfg config.Config) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg}
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.auth.RefreshTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Env == "prod",
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Env == "prod",
		SameSite: http.SameSiteStrictMode,
	})
}

func refreshTokenFrom(c echo.Context) string {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Register creates an account and signs the user in immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	body, err := bindBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	email, err := query.RequireString(body["email"], "email")
	if err != nil {
		return fail(c, err, "")
	}
	name, err := query.RequireString(body["name"], "name")
	if err != nil {
		return fail(c, err, "")
	}
	password, err := query.RequireString(body["password"], "password")
	if err != nil {
		return fail(c, err, "")
	}
	typeAccount, err := query.OptionalEnum(body["typeAccount"], "typeAccount", accountTypes)
	if err != nil {
		return fail(c, err, "")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.auth.Register(ctx, service.RegisterInput{
		Email:       email,
		Name:        name,
		Password:    password,
		TypeAccount: model.AccountType(typeAccount),
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email has already been registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to register user"})
	}

	h.setRefreshCookie(c, res.RefreshToken)
	return c.JSON(http.StatusCreated, echo.Map{
		"accessToken": res.AccessToken,
		"user":        res.User.Public(),
	})
}

// Login verifies credentials and rotates the refresh token.
func (h *AuthHandler) Login(c echo.Context) error {
	body, err := bindBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	email, err := query.RequireString(body["email"], "email")
	if err != nil {
		return fail(c, err, "")
	}
	password, err := query.RequireString(body["password"], "password")
	if err != nil {
		return fail(c, err, "")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid email or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to log in"})
	}

	h.setRefreshCookie(c, res.RefreshToken)
	return c.JSON(http.StatusOK, echo.Map{
		"accessToken": res.AccessToken,
		"user":        res.User.Public(),
	})
}

// Refresh exchanges the cookie's refresh token for a fresh pair. The
// presented token stops working whether or not the exchange succeeds
// downstream, so clients must store the new cookie.
func (h *AuthHandler) Refresh(c echo.Context) error {
	token := refreshTokenFrom(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "refresh token is missing"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	res, err := h.auth.Refresh(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "refresh token is invalid"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to refresh session"})
	}

	h.setRefreshCookie(c, res.RefreshToken)
	return c.JSON(http.StatusOK, echo.Map{
		"accessToken": res.AccessToken,
		"user":        res.User.Public(),
	})
}

// Logout clears the refresh slot and the cookie. Always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.auth.Logout(ctx, refreshTokenFrom(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to log out"})
	}
	h.clearRefreshCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user's public profile.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserID).(string)

	ctx, cancel := reqCtx(c)
	defer cancel()
	u, err := h.auth.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": u.Public()})
}
