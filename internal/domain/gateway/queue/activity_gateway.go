package queue

import "todo-tracker/internal/domain/model"

type ActivityGateway interface {
	Publish(event model.ActivityEvent) error
}
