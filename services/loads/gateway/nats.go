package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/loadboard/internal/pkg/constants"
	"github.com/piresc/loadboard/internal/pkg/models"
	natspkg "github.com/piresc/loadboard/internal/pkg/nats"
)

// NATSGateway publishes load events to NATS
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishLoadEvent publishes event on loads.<type>
func (g *NATSGateway) PublishLoadEvent(ctx context.Context, event *models.LoadEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal load event: %w", err)
	}
	return g.client.Publish(fmt.Sprintf(constants.SubjectLoadEvent, event.Type), data)
}
