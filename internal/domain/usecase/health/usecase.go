package health

import "todo-tracker/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
