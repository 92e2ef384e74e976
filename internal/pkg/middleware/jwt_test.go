package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/loadboard/internal/pkg/jwt"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTConfig = models.JWTConfig{Secret: "middleware-test-secret", Expiration: 10, Issuer: "test"}

func newProtectedEcho(captured *models.Actor, ctxUserID *string) *echo.Echo {
	e := echo.New()
	g := e.Group("", JWTAuthMiddleware(testJWTConfig))
	g.GET("/me", func(c echo.Context) error {
		actor, _ := ActorFromContext(c)
		*captured = actor
		*ctxUserID = requestcontext.GetUserID(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	g.DELETE("/admin", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, RequireRoles(models.RoleAdmin))
	return e
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	var actor models.Actor
	var ctxUserID string
	e := newProtectedEcho(&actor, &ctxUserID)

	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, models.RoleDriver, testJWTConfig)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, actor.ID)
	assert.Equal(t, models.RoleDriver, actor.Role)
	assert.Equal(t, userID.String(), ctxUserID)
}

func TestSetActor(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	actor := models.Actor{ID: uuid.New(), Role: models.RoleShipper}

	SetActor(c, actor)

	got, ok := ActorFromContext(c)
	require.True(t, ok)
	assert.Equal(t, actor, got)
	assert.Equal(t, actor.ID, c.Get("user_id"))
	assert.Equal(t, models.RoleShipper, c.Get("user_role"))
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var actor models.Actor
			var ctxUserID string
			e := newProtectedEcho(&actor, &ctxUserID)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name   string
		role   models.Role
		status int
	}{
		{name: "admin allowed", role: models.RoleAdmin, status: http.StatusNoContent},
		{name: "shipper forbidden", role: models.RoleShipper, status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var actor models.Actor
			var ctxUserID string
			e := newProtectedEcho(&actor, &ctxUserID)

			token, _, err := jwtpkg.GenerateToken(uuid.New(), tt.role, testJWTConfig)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodDelete, "/admin", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
