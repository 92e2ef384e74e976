package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/loadboard/internal/pkg/jwt"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/pkg/requestcontext"
	"github.com/piresc/loadboard/internal/utils"
)

const actorKey = "actor"

// JWTAuthMiddleware validates the bearer token and stores the caller as the request actor
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
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
				return utils.UnauthorizedResponse(c, "Invalid token claims")
			}

			SetActor(c, actor)

			ctx := requestcontext.WithUserID(c.Request().Context(), actor.ID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// ActorFromContext returns the actor set by JWTAuthMiddleware
func ActorFromContext(c echo.Context) (models.Actor, bool) {
	actor, ok := c.Get(actorKey).(models.Actor)
	return actor, ok
}

// SetActor stores actor on the echo context
func SetActor(c echo.Context, actor models.Actor) {
	c.Set(actorKey, actor)
	c.Set("user_id", actor.ID)
	c.Set("user_role", actor.Role)
}

// RequireRoles rejects callers whose role is not listed
func RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFromContext(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			for _, role := range roles {
				if actor.Role == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Role not allowed")
		}
	}
}
