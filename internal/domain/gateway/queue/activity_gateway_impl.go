package queue

import (
	"context"
	"time"

	"todo-tracker/internal/domain/model"
)

const publishTimeout = 5 * time.Second

type SQSActivityGateway struct {
	sender    Sender
	queueName string
}

var _ ActivityGateway = (*SQSActivityGateway)(nil)

func NewSQSActivityGateway(sender Sender, queueName string) *SQSActivityGateway {
	return &SQSActivityGateway{sender: sender, queueName: queueName}
}

func (gateway *SQSActivityGateway) Publish(event model.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	return gateway.sender.SendMessage(ctx, gateway.queueName, event, map[string]string{
		"type": string(event.Type),
	})
}

// NoopActivityGateway drops every event. Used when activity publishing is disabled.
type NoopActivityGateway struct{}

var _ ActivityGateway = NoopActivityGateway{}

func (NoopActivityGateway) Publish(model.ActivityEvent) error {
	return nil
}
