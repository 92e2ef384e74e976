package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/loadboard/internal/pkg/constants"
	"github.com/piresc/loadboard/internal/pkg/logger"
	"github.com/piresc/loadboard/internal/pkg/models"
	nsqpkg "github.com/piresc/loadboard/internal/pkg/nsq"
	"github.com/piresc/loadboard/services/loads"
)

// LoadHandler consumes load events from NSQ and keeps the geo index in sync
type LoadHandler struct {
	loadUC   loads.LoadUC
	address  string
	consumer *nsqpkg.Consumer
}

// NewLoadHandler creates a new NSQ load event handler
func NewLoadHandler(loadUC loads.LoadUC, address string) *LoadHandler {
	return &LoadHandler{
		loadUC:  loadUC,
		address: address,
	}
}

// InitNSQConsumer starts consuming the load events topic on the geo index channel
func (h *LoadHandler) InitNSQConsumer() error {
	consumer, err := nsqpkg.NewConsumer(constants.TopicLoadEvents, constants.ChannelGeoIndex, h.address, h.HandleLoadEvent)
	if err != nil {
		return fmt.Errorf("failed to start load events consumer: %w", err)
	}
	h.consumer = consumer

	logger.Info("NSQ consumer initialized",
		logger.String("topic", constants.TopicLoadEvents),
		logger.String("channel", constants.ChannelGeoIndex))
	return nil
}

// HandleLoadEvent re-reads the load named by the event and reconciles the index.
// A returned error makes NSQ requeue the message.
func (h *LoadHandler) HandleLoadEvent(body []byte) error {
	var event models.LoadEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Error("Dropping malformed load event", logger.Err(err))
		return nil
	}
	return h.loadUC.SyncAvailability(context.Background(), event.LoadID)
}

// Stop stops the consumer
func (h *LoadHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
