package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/escrow/internal/pkg/constants"
	jwtpkg "github.com/piresc/escrow/internal/pkg/jwt"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/piresc/escrow/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			actor, err := jwtpkg.ActorFromClaims(claims)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: "+err.Error())
			}

			c.Set(constants.ContextKeyActor, actor)
			c.Set(constants.ContextKeyUserID, actor.ID.String())
			c.Set(constants.ContextKeyUserRole, string(actor.Role))
			bindUserID(c, actor.ID.String())

			return next(c)
		}
	}
}

// RequireRole rejects callers whose role is not listed
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			for _, role := range roles {
				if actor.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "insufficient role")
		}
	}
}

// GetActor returns the identity stored by JWTAuthMiddleware
func GetActor(c echo.Context) (models.Actor, bool) {
	actor, ok := c.Get(constants.ContextKeyActor).(models.Actor)
	return actor, ok
}
