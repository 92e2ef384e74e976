package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/loadboard/internal/pkg/logger"
	"github.com/piresc/loadboard/internal/pkg/middleware"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/utils"
	"github.com/piresc/loadboard/services/fleet"
)

// FleetHandler handles HTTP requests for a driver's trucks and sub-drivers
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet HTTP handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
	}
}

// RegisterRoutes registers the fleet routes on an authenticated group
func (h *FleetHandler) RegisterRoutes(g *echo.Group) {
	driverOnly := middleware.RequireRoles(models.RoleDriver)

	trucks := g.Group("/trucks", driverOnly)
	trucks.POST("", h.CreateTruck)
	trucks.GET("", h.ListTrucks)
	trucks.DELETE("/:truckID", h.DeleteTruck)

	subDrivers := g.Group("/sub-drivers", driverOnly)
	subDrivers.POST("", h.CreateSubDriver)
	subDrivers.GET("", h.ListSubDrivers)
	subDrivers.DELETE("/:subDriverID", h.DeleteSubDriver)
}

// CreateTruck registers a truck for the caller
func (h *FleetHandler) CreateTruck(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateTruckRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	truck, err := h.fleetUC.CreateTruck(c.Request().Context(), actor, &req)
	if err != nil {
		return fail(c, "create truck", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Truck created successfully", truck)
}

// ListTrucks returns the caller's trucks
func (h *FleetHandler) ListTrucks(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	trucks, err := h.fleetUC.ListTrucks(c.Request().Context(), actor)
	if err != nil {
		return fail(c, "list trucks", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trucks retrieved successfully", trucks)
}

// DeleteTruck removes one of the caller's trucks
func (h *FleetHandler) DeleteTruck(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	truckID, err := uuid.Parse(c.Param("truckID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid truck ID")
	}

	if err := h.fleetUC.DeleteTruck(c.Request().Context(), actor, truckID); err != nil {
		return fail(c, "delete truck", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Truck deleted successfully", nil)
}

// CreateSubDriver adds a sub-driver under the caller
func (h *FleetHandler) CreateSubDriver(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateSubDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	subDriver, err := h.fleetUC.CreateSubDriver(c.Request().Context(), actor, &req)
	if err != nil {
		return fail(c, "create sub-driver", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Sub-driver created successfully", subDriver)
}

// ListSubDrivers returns the caller's sub-drivers
func (h *FleetHandler) ListSubDrivers(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	subDrivers, err := h.fleetUC.ListSubDrivers(c.Request().Context(), actor)
	if err != nil {
		return fail(c, "list sub-drivers", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sub-drivers retrieved successfully", subDrivers)
}

// DeleteSubDriver removes one of the caller's sub-drivers
func (h *FleetHandler) DeleteSubDriver(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	subDriverID, err := uuid.Parse(c.Param("subDriverID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid sub-driver ID")
	}

	if err := h.fleetUC.DeleteSubDriver(c.Request().Context(), actor, subDriverID); err != nil {
		return fail(c, "delete sub-driver", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sub-driver deleted successfully", nil)
}

func fail(c echo.Context, op string, err error) error {
	if utils.StatusForError(err) == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Failed to "+op, logger.Err(err))
	}
	return utils.DomainErrorResponse(c, err)
}
