package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/snehashetty510/adcraft-api/internal/model"
	"github.com/snehashetty510/adcraft-api/pkg/database"
	"github.com/snehashetty510/adcraft-api/pkg/jwtutil"
	"github.com/snehashetty510/adcraft-api/pkg/logger"
	"github.com/snehashetty510/adcraft-api/prometheus"
)

const currentUserKey = "currentUser"

// RequireAuth validates the bearer token, resolves the user record it
// names, and attaches the user (with company context) to the request.
// Everything downstream reads the request-scoped value; nothing is held
// in shared state. Handlers that need a company context check the
// resolved CompanyID themselves.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Not authorized, no token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_auth_format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Not authorized, invalid token format"})
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Warn("Invalid JWT token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Not authorized, token failed"})
		}

		// The token only names the user; the record is loaded fresh so
		// role changes and deletions take effect without reissuing tokens.
		var user model.User
		if err := database.GetDB().First(&user, claims.UserID).Error; err != nil {
			log.Warn("Token user no longer exists", zap.Uint("user_id", claims.UserID))
			prometheus.RecordAuthError("user_not_found")
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Not authorized, user not found"})
		}

		c.Set(currentUserKey, &user)

		return next(c)
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth.
func CurrentUser(c echo.Context) *model.User {
	user, ok := c.Get(currentUserKey).(*model.User)
	if !ok {
		return nil
	}
	return user
}

// CompanyID returns the authenticated user's company id, or nil when the
// user has no company or the request is unauthenticated.
func CompanyID(c echo.Context) *uint {
	user := CurrentUser(c)
	if user == nil {
		return nil
	}
	return user.CompanyID
}
