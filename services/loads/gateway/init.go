package gateway

import (
	"fmt"

	"github.com/piresc/loadboard/internal/pkg/constants"
	"github.com/piresc/loadboard/internal/pkg/models"
	natspkg "github.com/piresc/loadboard/internal/pkg/nats"
	nsqpkg "github.com/piresc/loadboard/internal/pkg/nsq"
	"github.com/piresc/loadboard/services/loads"
)

// NewLoadGW returns the publisher for the configured event broker.
// Failed publishes are retried cfg.Events.PublishRetries times.
func NewLoadGW(cfg *models.Config, natsClient *natspkg.Client, nsqProducer *nsqpkg.Producer) (loads.LoadGW, error) {
	gw, err := newBrokerGW(cfg.Events.Broker, natsClient, nsqProducer)
	if err != nil {
		return nil, err
	}
	return withRetry(gw, cfg.Events.PublishRetries), nil
}

func newBrokerGW(broker string, natsClient *natspkg.Client, nsqProducer *nsqpkg.Producer) (loads.LoadGW, error) {
	switch broker {
	case constants.BrokerNATS, "":
		if natsClient == nil {
			return nil, fmt.Errorf("nats client is required for broker %q", constants.BrokerNATS)
		}
		return NewNATSGateway(natsClient), nil
	case constants.BrokerNSQ:
		if nsqProducer == nil {
			return nil, fmt.Errorf("nsq producer is required for broker %q", constants.BrokerNSQ)
		}
		return NewNSQGateway(nsqProducer), nil
	default:
		return nil, fmt.Errorf("unknown events broker %q", broker)
	}
}
