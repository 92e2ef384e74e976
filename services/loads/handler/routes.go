package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/loadboard/internal/pkg/middleware"
	"github.com/piresc/loadboard/internal/pkg/models"
	httpHandler "github.com/piresc/loadboard/services/loads/handler/http"
)

// Handler combines the HTTP handlers of the load service
type Handler struct {
	loadHTTP *httpHandler.LoadHandler
}

// NewHandler creates a new combined handler
func NewHandler(loadHTTP *httpHandler.LoadHandler) *Handler {
	return &Handler{
		loadHTTP: loadHTTP,
	}
}

// RegisterRoutes registers the load routes on an authenticated group.
// limiter guards the contended write routes.
func (h *Handler) RegisterRoutes(api *echo.Group, limiter echo.MiddlewareFunc) {
	shipperOnly := middleware.RequireRoles(models.RoleShipper, models.RoleAdmin)
	driverOnly := middleware.RequireRoles(models.RoleDriver)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	api.GET("/admin/loads", h.loadHTTP.ListAllLoads, adminOnly)

	loadGroup := api.Group("/loads")
	loadGroup.POST("", h.loadHTTP.PostLoad, shipperOnly)
	loadGroup.GET("", h.loadHTTP.ListAvailableLoads)
	loadGroup.GET("/nearby", h.loadHTTP.ListNearbyLoads)
	loadGroup.GET("/mine", h.loadHTTP.ListMyLoads)
	loadGroup.GET("/:loadID", h.loadHTTP.GetLoad)
	loadGroup.DELETE("/:loadID", h.loadHTTP.DeleteLoad)

	loadGroup.POST("/:loadID/accept", h.loadHTTP.AcceptLoad, driverOnly, limiter)
	loadGroup.POST("/:loadID/complete", h.loadHTTP.CompleteLoad)
	loadGroup.POST("/:loadID/release", h.loadHTTP.ReleaseLoad)
	loadGroup.POST("/:loadID/cancel", h.loadHTTP.CancelLoad)

	loadGroup.POST("/:loadID/bids", h.loadHTTP.SubmitBid, driverOnly, limiter)
	loadGroup.GET("/:loadID/bids", h.loadHTTP.ListBids)
}
