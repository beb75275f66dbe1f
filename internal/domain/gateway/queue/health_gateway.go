package queue

import "todo-tracker/internal/domain/model"

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
