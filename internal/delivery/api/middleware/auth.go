package middleware

import (
	"strings"

	"brewlog/internal/delivery/api/response"
	"brewlog/internal/domain/entity"
	"brewlog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		if !m.identify(c) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

// Identify attaches the user when a token is present and lets anonymous requests through.
// A token that is present but invalid is still rejected.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}

		if !m.identify(c) {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		return next(c)
	}
}

// identify validates the bearer token and stores the user on the context.
func (m *AuthMiddleware) identify(c echo.Context) bool {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || tokenString == "" {
		return false
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil || claims.Type != service.TokenTypeAccess || claims.UserID == uuid.Nil {
		return false
	}

	c.Set(contextKeyUserID, claims.UserID)
	c.Set(contextKeyRoles, claims.Roles)

	return true
}

// GetUserID returns the authenticated user ID, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the roles of the authenticated user.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(contextKeyRoles).([]string)

	return roles, ok
}

// Caller builds the analysis caller for the request.
func Caller(c echo.Context) entity.Caller {
	if userID, ok := GetUserID(c); ok {
		return entity.AuthenticatedCaller(userID, c.RealIP())
	}

	return entity.AnonymousCaller(c.RealIP())
}
