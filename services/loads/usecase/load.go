package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/logger"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/utils"
)

// PostLoad validates and stores a new available load
func (uc *LoadUC) PostLoad(ctx context.Context, actor models.Actor, req *models.PostLoadRequest) (*models.Load, error) {
	if actor.Role != models.RoleShipper && !actor.IsAdmin() {
		return nil, forbidden("only shippers can post loads")
	}

	load, err := buildLoad(actor.ID, req, uc.now(), uc.cfg.Loads.GeohashPrecision)
	if err != nil {
		return nil, err
	}

	created, err := uc.loadRepo.CreateLoad(ctx, load)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Load posted",
		logger.UUID("load_id", created.ID),
		logger.UUID("owner_id", created.OwnerID),
		logger.String("route", route(created)))

	uc.index(ctx, created)
	uc.publish(ctx, models.LoadEventPosted, created)

	return created, nil
}

// AcceptLoad assigns the calling driver to an available load. Of several
// concurrent callers exactly one wins; the others get ErrLoadAlreadyTaken.
func (uc *LoadUC) AcceptLoad(ctx context.Context, actor models.Actor, loadID uuid.UUID, req *models.AcceptLoadRequest) (*models.Load, error) {
	if actor.Role != models.RoleDriver {
		return nil, forbidden("only drivers can accept loads")
	}
	if req == nil {
		req = &models.AcceptLoadRequest{}
	}
	if err := requireContact(req.DriverName, req.DriverPhone); err != nil {
		return nil, err
	}

	load, err := uc.loadRepo.AcceptLoad(ctx, loadID, actor.ID)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Load accepted",
		logger.UUID("load_id", load.ID),
		logger.UUID("driver_id", actor.ID),
		logger.String("driver_phone", utils.MaskPhoneNumber(req.DriverPhone)))

	uc.notify(ctx, load, load.OwnerID, "Load accepted",
		fmt.Sprintf("%s (%s) accepted your load %s",
			strings.TrimSpace(req.DriverName), strings.TrimSpace(req.DriverPhone), route(load)))
	uc.unindex(ctx, load)
	uc.publish(ctx, models.LoadEventAccepted, load)

	return load, nil
}

// CompleteLoad marks an in-progress load delivered. Only the assigned driver or an admin may do so.
func (uc *LoadUC) CompleteLoad(ctx context.Context, actor models.Actor, loadID uuid.UUID, req *models.CompleteLoadRequest) (*models.Load, error) {
	var driverFilter *uuid.UUID
	switch {
	case actor.IsAdmin():
	case actor.Role == models.RoleDriver:
		driverFilter = &actor.ID
	default:
		return nil, forbidden("only the assigned driver can complete a load")
	}

	load, err := uc.loadRepo.CompleteLoad(ctx, loadID, driverFilter)
	if err != nil {
		return nil, err
	}

	driverName := "Your driver"
	if req != nil && strings.TrimSpace(req.DriverName) != "" {
		driverName = strings.TrimSpace(req.DriverName)
	}

	logger.InfoCtx(ctx, "Load completed", logger.UUID("load_id", load.ID))

	uc.notify(ctx, load, load.OwnerID, "Load completed",
		fmt.Sprintf("%s delivered your load %s at %s", driverName, route(load), models.FormatTime(uc.now().UTC())))
	uc.publish(ctx, models.LoadEventCompleted, load)

	return load, nil
}

// CancelLoadAssignment releases the driver of an in-progress load and makes it available again
func (uc *LoadUC) CancelLoadAssignment(ctx context.Context, actor models.Actor, loadID uuid.UUID) (*models.Load, error) {
	before, err := uc.loadRepo.GetLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}

	var driverFilter *uuid.UUID
	switch {
	case canManage(actor, before):
	case actor.Role == models.RoleDriver:
		driverFilter = &actor.ID
	default:
		return nil, forbidden("only the owner or the assigned driver can release a load")
	}

	load, err := uc.loadRepo.ReleaseLoad(ctx, loadID, driverFilter)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Load assignment released",
		logger.UUID("load_id", load.ID),
		logger.UUID("actor_id", actor.ID))

	uc.notify(ctx, load, load.OwnerID, "Assignment released",
		fmt.Sprintf("The driver assignment for your load %s was released. The load is available again.", route(load)))
	if before.DriverID != nil && *before.DriverID != actor.ID {
		uc.notify(ctx, load, *before.DriverID, "Assignment released",
			fmt.Sprintf("You are no longer assigned to load %s.", route(load)))
	}
	uc.index(ctx, load)
	uc.publish(ctx, models.LoadEventReleased, load)

	return load, nil
}

// CancelLoad withdraws an available load for good
func (uc *LoadUC) CancelLoad(ctx context.Context, actor models.Actor, loadID uuid.UUID) (*models.Load, error) {
	before, err := uc.loadRepo.GetLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, before) {
		return nil, forbidden("only the owner can cancel a load")
	}

	load, err := uc.loadRepo.CancelLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Load cancelled", logger.UUID("load_id", load.ID))

	uc.unindex(ctx, load)
	uc.publish(ctx, models.LoadEventCancelled, load)

	return load, nil
}

// DeleteLoad removes a load that nobody has accepted
func (uc *LoadUC) DeleteLoad(ctx context.Context, actor models.Actor, loadID uuid.UUID) error {
	before, err := uc.loadRepo.GetLoad(ctx, loadID)
	if err != nil {
		return err
	}
	if !canManage(actor, before) {
		return forbidden("only the owner can delete a load")
	}

	load, err := uc.loadRepo.DeleteLoad(ctx, loadID)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Load deleted", logger.UUID("load_id", load.ID))

	uc.unindex(ctx, load)
	uc.publish(ctx, models.LoadEventDeleted, load)

	return nil
}

func canManage(actor models.Actor, load *models.Load) bool {
	return actor.IsAdmin() || load.OwnerID == actor.ID
}

func forbidden(reason string) error {
	return fmt.Errorf("%w: %s", models.ErrForbidden, reason)
}

func route(load *models.Load) string {
	return load.Origin + " → " + load.Destination
}
