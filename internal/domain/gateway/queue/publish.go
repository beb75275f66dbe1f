package queue

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"todo-tracker/internal/domain/model"
	"todo-tracker/pkg/log"
	"todo-tracker/pkg/msg"
)

// PublishQuietly stamps the event with an id and time, then publishes it.
// Failures are logged and never reach the caller: the write that produced the event already happened.
func PublishQuietly(gateway ActivityGateway, event model.ActivityEvent) {
	if gateway == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := gateway.Publish(event); err != nil {
		log.Error(msg.GetMessage("activity.error.publish", event.ID, err.Error()),
			zap.String("event_type", string(event.Type)),
			zap.Uint("todo_id", event.TodoID),
			zap.Error(err))
	}
}
