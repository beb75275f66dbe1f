package db

import "todo-tracker/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
