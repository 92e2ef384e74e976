package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/loadboard/internal/pkg/logger"
	"github.com/piresc/loadboard/internal/pkg/middleware"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/utils"
	"github.com/piresc/loadboard/services/users"
)

// UserHandler handles HTTP requests for profiles and admin stats
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user HTTP handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// RegisterRoutes registers the user routes on an authenticated group
func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpsertProfile)
	g.GET("/admin/users", h.ListUsers, middleware.RequireRoles(models.RoleAdmin))
	g.GET("/admin/stats", h.AdminStats, middleware.RequireRoles(models.RoleAdmin))
}

// GetProfile returns the caller's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), actor.ID)
	if err != nil {
		return h.fail(c, "get profile", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpsertProfile edits the caller's profile
func (h *UserHandler) UpsertProfile(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	profile, err := h.userUC.UpsertProfile(c.Request().Context(), actor, &req)
	if err != nil {
		return h.fail(c, "update profile", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", profile)
}

// ListUsers returns every profile for the admin user pages
func (h *UserHandler) ListUsers(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profiles, err := h.userUC.ListUsers(c.Request().Context(), actor)
	if err != nil {
		return h.fail(c, "list users", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", profiles)
}

// AdminStats returns marketplace totals
func (h *UserHandler) AdminStats(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.userUC.AdminStats(c.Request().Context(), actor)
	if err != nil {
		return h.fail(c, "get admin stats", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stats retrieved successfully", stats)
}

func (h *UserHandler) fail(c echo.Context, op string, err error) error {
	if utils.StatusForError(err) == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Failed to "+op, logger.Err(err))
	}
	return utils.DomainErrorResponse(c, err)
}
