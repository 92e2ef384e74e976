package usecase

import (
	"fmt"
	"time"

	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/services/fleet"
)

// FleetUC implements the fleet use case interface
type FleetUC struct {
	cfg       *models.Config
	fleetRepo fleet.FleetRepo
	now       func() time.Time
}

// NewFleetUC creates a new fleet use case
func NewFleetUC(cfg *models.Config, fleetRepo fleet.FleetRepo) *FleetUC {
	return &FleetUC{
		cfg:       cfg,
		fleetRepo: fleetRepo,
		now:       time.Now,
	}
}

func requireDriver(actor models.Actor) error {
	if actor.Role != models.RoleDriver {
		return fmt.Errorf("%w: only drivers manage a fleet", models.ErrForbidden)
	}
	return nil
}
