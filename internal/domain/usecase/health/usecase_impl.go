package health

import (
	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/gateway/lock"
	"todo-tracker/internal/domain/gateway/queue"
	"todo-tracker/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	redisGateway lock.HealthGateway
	queueGateway queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, redisGateway lock.HealthGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		redisGateway: redisGateway,
		queueGateway: queueGateway,
	}
}

// CheckHealth is DOWN when any component is DOWN; an UNKNOWN component (disabled feature) does not count.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	redisHealth := useCase.redisGateway.Health()
	queueHealth := useCase.queueGateway.Health()

	overallStatus := model.StatusUp
	for _, component := range []model.ComponentHealthStatus{dbHealth, redisHealth, queueHealth} {
		if component.Status == model.StatusDown {
			overallStatus = model.StatusDown
		}
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Redis:    redisHealth,
		Queue:    queueHealth,
	}
}
