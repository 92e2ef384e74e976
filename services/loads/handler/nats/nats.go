package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/loadboard/internal/pkg/constants"
	"github.com/piresc/loadboard/internal/pkg/logger"
	"github.com/piresc/loadboard/internal/pkg/models"
	natspkg "github.com/piresc/loadboard/internal/pkg/nats"
	"github.com/piresc/loadboard/services/loads"
)

// LoadHandler consumes load events from NATS and keeps the geo index in sync
type LoadHandler struct {
	loadUC     loads.LoadUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewLoadHandler creates a new NATS load event handler
func NewLoadHandler(loadUC loads.LoadUC, natsClient *natspkg.Client) *LoadHandler {
	return &LoadHandler{
		loadUC:     loadUC,
		natsClient: natsClient,
	}
}

// InitNATSConsumers subscribes to every load event in the geo index queue group
func (h *LoadHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectLoadEvents, constants.QueueGeoIndex, func(msg *nats.Msg) {
		if err := h.HandleLoadEvent(msg.Data); err != nil {
			logger.Error("Error handling load event",
				logger.String("subject", msg.Subject),
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to load events: %w", err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("NATS consumers initialized", logger.String("subject", constants.SubjectLoadEvents))
	return nil
}

// HandleLoadEvent re-reads the load named by the event and reconciles the index
func (h *LoadHandler) HandleLoadEvent(data []byte) error {
	var event models.LoadEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal load event: %w", err)
	}
	return h.loadUC.SyncAvailability(context.Background(), event.LoadID)
}

// Close unsubscribes all consumers
func (h *LoadHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.String("subject", sub.Subject), logger.Err(err))
		}
	}
	h.subs = nil
}
