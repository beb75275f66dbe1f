package health

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"todo-tracker/internal/domain/model"
)

type staticGateway model.ComponentHealthStatus

func (g staticGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus(g)
}

var (
	up       = staticGateway(model.UpStatus())
	down     = staticGateway(model.DownStatus(errors.New("connection refused")))
	disabled = staticGateway(model.ComponentHealthStatus{Status: model.StatusUnknown})
)

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name     string
		database staticGateway
		redis    staticGateway
		queue    staticGateway
		expected model.HealthStatus
	}{
		{name: "all up", database: up, redis: up, queue: up, expected: model.StatusUp},
		{name: "queue disabled", database: up, redis: up, queue: disabled, expected: model.StatusUp},
		{name: "database down", database: down, redis: up, queue: up, expected: model.StatusDown},
		{name: "redis down", database: up, redis: down, queue: disabled, expected: model.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := NewHealthUseCase(tt.database, tt.redis, tt.queue).CheckHealth()

			assert.Equal(t, tt.expected, response.Status)
			assert.Equal(t, model.ComponentHealthStatus(tt.database), response.Database)
			assert.Equal(t, model.ComponentHealthStatus(tt.redis), response.Redis)
		})
	}
}
