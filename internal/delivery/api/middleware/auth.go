package middleware

import (
	"log/slog"
	"strings"

	"printshop/internal/delivery/api/response"
	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	"printshop/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware turns bearer tokens into the entity.Actor handlers pass to the core.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate validates the access token and stores the caller on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.verifier.VerifyAccessToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		actor := claims.Actor()
		if actor.IsZero() {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token does not identify a customer or employee")
		}

		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// RequireStaff only lets employees holding a back-office role through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := deliverycontext.GetActor(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}
		if actor.Kind != entity.ActorEmployee || !actor.Roles.HasStaff() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: staff role required")
		}

		return next(c)
	}
}
