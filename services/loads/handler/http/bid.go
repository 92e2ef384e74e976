package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/utils"
)

// SubmitBid records the calling driver's offer on a load
func (h *LoadHandler) SubmitBid(c echo.Context) error {
	actor, loadID, err := actorAndLoad(c)
	if err != nil {
		return requestError(c, err)
	}

	var req models.SubmitBidRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	bid, err := h.loadUC.SubmitBid(c.Request().Context(), actor, loadID, &req)
	if err != nil {
		return h.fail(c, "submit bid", loadID, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Bid submitted successfully", bid)
}

// ListBids returns the bids on a load to its owner
func (h *LoadHandler) ListBids(c echo.Context) error {
	actor, loadID, err := actorAndLoad(c)
	if err != nil {
		return requestError(c, err)
	}

	bids, err := h.loadUC.ListBids(c.Request().Context(), actor, loadID)
	if err != nil {
		return h.fail(c, "list bids", loadID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bids retrieved successfully", bids)
}
