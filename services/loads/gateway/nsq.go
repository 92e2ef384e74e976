package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/loadboard/internal/pkg/constants"
	"github.com/piresc/loadboard/internal/pkg/models"
)

// Publisher is the part of the NSQ producer the gateway needs
type Publisher interface {
	Publish(topic string, body []byte) error
}

// NSQGateway publishes load events to a single NSQ topic
type NSQGateway struct {
	producer Publisher
}

// NewNSQGateway creates a new NSQ gateway
func NewNSQGateway(producer Publisher) *NSQGateway {
	return &NSQGateway{
		producer: producer,
	}
}

// PublishLoadEvent publishes event on the load events topic
func (g *NSQGateway) PublishLoadEvent(ctx context.Context, event *models.LoadEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal load event: %w", err)
	}
	return g.producer.Publish(constants.TopicLoadEvents, data)
}
