package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/logger"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/utils"
)

const maxBidMessageLength = 500

// SubmitBid records a driver's offer on an available load
func (uc *LoadUC) SubmitBid(ctx context.Context, actor models.Actor, loadID uuid.UUID, req *models.SubmitBidRequest) (*models.Bid, error) {
	if actor.Role != models.RoleDriver {
		return nil, forbidden("only drivers can bid")
	}
	if req == nil {
		return nil, models.NewValidationError("price", "is required")
	}
	price, err := parsePositiveDecimal("price", req.Price)
	if err != nil {
		return nil, err
	}

	load, err := uc.loadRepo.GetLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}

	bid := &models.Bid{
		LoadID:   loadID,
		DriverID: actor.ID,
		Price:    price,
		Message:  utils.Truncate(strings.TrimSpace(req.Message), maxBidMessageLength),
	}
	if err := uc.loadRepo.CreateBid(ctx, bid); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Bid submitted",
		logger.UUID("load_id", loadID),
		logger.UUID("bid_id", bid.ID),
		logger.Float64("price", price))

	uc.publish(ctx, models.LoadEventBidSubmitted, load)

	return bid, nil
}

// ListBids returns the bids on a load to its owner
func (uc *LoadUC) ListBids(ctx context.Context, actor models.Actor, loadID uuid.UUID) ([]*models.Bid, error) {
	load, err := uc.loadRepo.GetLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, load) {
		return nil, forbidden("only the owner can see bids")
	}
	return uc.loadRepo.ListBids(ctx, loadID)
}
