package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/loadboard/internal/pkg/logger"
	"github.com/piresc/loadboard/internal/pkg/middleware"
	"github.com/piresc/loadboard/internal/utils"
	"github.com/piresc/loadboard/services/notifications"
)

// NotificationHandler handles HTTP requests for the notification inbox
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
}

// NewNotificationHandler creates a new notification HTTP handler
func NewNotificationHandler(notificationUC notifications.NotificationUC) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
	}
}

// RegisterRoutes registers the notification routes on an authenticated group
func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications", h.ListNotifications)
	g.POST("/notifications/read", h.MarkAllRead)
}

// ListNotifications returns the caller's notifications
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.notificationUC.ListNotifications(c.Request().Context(), actor)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to list notifications", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", list)
}

// MarkAllRead marks every unread notification of the caller as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.notificationUC.MarkAllRead(c.Request().Context(), actor)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to mark notifications read", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notifications marked as read", result)
}
