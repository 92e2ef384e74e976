package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/loadboard/internal/pkg/logger"
	"github.com/piresc/loadboard/internal/pkg/middleware"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/utils"
	"github.com/piresc/loadboard/services/loads"
)

// LoadHandler handles HTTP requests for load operations
type LoadHandler struct {
	loadUC loads.LoadUC
}

// NewLoadHandler creates a new load HTTP handler
func NewLoadHandler(loadUC loads.LoadUC) *LoadHandler {
	return &LoadHandler{
		loadUC: loadUC,
	}
}

// PostLoad creates a new load for the calling shipper
func (h *LoadHandler) PostLoad(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PostLoadRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	load, err := h.loadUC.PostLoad(c.Request().Context(), actor, &req)
	if err != nil {
		return h.fail(c, "post load", uuid.Nil, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Load posted successfully", load)
}

// GetLoad returns a single load
func (h *LoadHandler) GetLoad(c echo.Context) error {
	loadID, err := parseLoadID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid load ID")
	}

	load, err := h.loadUC.GetLoad(c.Request().Context(), loadID)
	if err != nil {
		return h.fail(c, "get load", loadID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Load retrieved successfully", load)
}

// ListAvailableLoads returns the load board
func (h *LoadHandler) ListAvailableLoads(c echo.Context) error {
	var filter models.LoadFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	list, err := h.loadUC.ListAvailableLoads(c.Request().Context(), filter)
	if err != nil {
		return h.fail(c, "list available loads", uuid.Nil, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Loads retrieved successfully", list)
}

// ListNearbyLoads returns available loads around a point
func (h *LoadHandler) ListNearbyLoads(c echo.Context) error {
	var query models.NearbyQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return utils.BadRequestResponse(c, "lat, lng and radius_km must be numbers")
	}
	if c.QueryParam("lat") == "" || c.QueryParam("lng") == "" {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}

	list, err := h.loadUC.ListNearbyLoads(c.Request().Context(), query)
	if err != nil {
		return h.fail(c, "list nearby loads", uuid.Nil, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Loads retrieved successfully", list)
}

// ListMyLoads returns the loads the caller owns or drives
func (h *LoadHandler) ListMyLoads(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.loadUC.ListUserLoads(c.Request().Context(), actor)
	if err != nil {
		return h.fail(c, "list user loads", uuid.Nil, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Loads retrieved successfully", list)
}

// ListAllLoads returns every load to an admin
func (h *LoadHandler) ListAllLoads(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.loadUC.ListAllLoads(c.Request().Context(), actor)
	if err != nil {
		return h.fail(c, "list all loads", uuid.Nil, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Loads retrieved successfully", list)
}

// AcceptLoad assigns the calling driver to the load
func (h *LoadHandler) AcceptLoad(c echo.Context) error {
	actor, loadID, err := actorAndLoad(c)
	if err != nil {
		return requestError(c, err)
	}

	var req models.AcceptLoadRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	load, err := h.loadUC.AcceptLoad(c.Request().Context(), actor, loadID, &req)
	if err != nil {
		return h.fail(c, "accept load", loadID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Load accepted successfully", load)
}

// CompleteLoad marks the load delivered
func (h *LoadHandler) CompleteLoad(c echo.Context) error {
	actor, loadID, err := actorAndLoad(c)
	if err != nil {
		return requestError(c, err)
	}

	var req models.CompleteLoadRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	load, err := h.loadUC.CompleteLoad(c.Request().Context(), actor, loadID, &req)
	if err != nil {
		return h.fail(c, "complete load", loadID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Load completed successfully", load)
}

// ReleaseLoad cancels the current driver assignment
func (h *LoadHandler) ReleaseLoad(c echo.Context) error {
	actor, loadID, err := actorAndLoad(c)
	if err != nil {
		return requestError(c, err)
	}

	load, err := h.loadUC.CancelLoadAssignment(c.Request().Context(), actor, loadID)
	if err != nil {
		return h.fail(c, "release load", loadID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Load assignment released", load)
}

// CancelLoad withdraws an available load
func (h *LoadHandler) CancelLoad(c echo.Context) error {
	actor, loadID, err := actorAndLoad(c)
	if err != nil {
		return requestError(c, err)
	}

	load, err := h.loadUC.CancelLoad(c.Request().Context(), actor, loadID)
	if err != nil {
		return h.fail(c, "cancel load", loadID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Load cancelled successfully", load)
}

// DeleteLoad removes an available load
func (h *LoadHandler) DeleteLoad(c echo.Context) error {
	actor, loadID, err := actorAndLoad(c)
	if err != nil {
		return requestError(c, err)
	}

	if err := h.loadUC.DeleteLoad(c.Request().Context(), actor, loadID); err != nil {
		return h.fail(c, "delete load", loadID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Load deleted successfully", nil)
}

var (
	errNoActor   = errors.New("missing actor")
	errBadLoadID = errors.New("invalid load ID")
)

func actorAndLoad(c echo.Context) (models.Actor, uuid.UUID, error) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return models.Actor{}, uuid.Nil, errNoActor
	}
	loadID, err := parseLoadID(c)
	if err != nil {
		return models.Actor{}, uuid.Nil, errBadLoadID
	}
	return actor, loadID, nil
}

func requestError(c echo.Context, err error) error {
	if errors.Is(err, errNoActor) {
		return utils.UnauthorizedResponse(c, "")
	}
	return utils.BadRequestResponse(c, "Invalid load ID")
}

func (h *LoadHandler) fail(c echo.Context, op string, loadID uuid.UUID, err error) error {
	ctx := c.Request().Context()
	status := utils.StatusForError(err)
	if status == http.StatusInternalServerError {
		logger.ErrorCtx(ctx, "Failed to "+op, logger.UUID("load_id", loadID), logger.Err(err))
	} else {
		logger.DebugCtx(ctx, "Rejected "+op, logger.UUID("load_id", loadID), logger.Int("status", status), logger.Err(err))
	}
	return utils.DomainErrorResponse(c, err)
}

func parseLoadID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("loadID"))
}
