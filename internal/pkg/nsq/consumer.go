package nsq

import (
	"fmt"

	"github.com/nsqio/go-nsq"
)

// MessageHandler processes one message body; a returned error requeues it
type MessageHandler func(body []byte) error

// Consumer handles consuming messages from an NSQ topic/channel
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer subscribes handler to topic/channel on the nsqd at address
func NewConsumer(topic, channel, address string, handler MessageHandler) (*Consumer, error) {
	consumer, err := nsq.NewConsumer(topic, channel, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)

	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		return handler(message.Body)
	}))

	if err := consumer.ConnectToNSQD(address); err != nil {
		consumer.Stop()
		return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}

	return &Consumer{consumer: consumer}, nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
