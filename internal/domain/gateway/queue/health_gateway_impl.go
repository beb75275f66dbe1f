package queue

import (
	"context"
	"time"

	"todo-tracker/internal/domain/model"
)

// QueueHealthGateway reports whether the activity queue can be resolved.
// A nil sender means publishing is disabled.
type QueueHealthGateway struct {
	sender    Sender
	queueName string
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway(sender Sender, queueName string) *QueueHealthGateway {
	return &QueueHealthGateway{sender: sender, queueName: queueName}
}

func (gateway *QueueHealthGateway) Health() model.ComponentHealthStatus {
	if gateway.sender == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "Activity publishing disabled"},
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	url, err := gateway.sender.QueueURL(ctx, gateway.queueName)
	if err != nil {
		return model.DownStatus(err)
	}
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"queue": gateway.queueName,
			"url":   url,
		},
	}
}
