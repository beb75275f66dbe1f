package lock

import (
	"context"

	"todo-tracker/internal/domain/model"
)

// Checker is satisfied by the redis health checker backing the scheduler locks.
type Checker interface {
	Check(ctx context.Context) (map[string]string, error)
}

type RedisHealthGateway struct {
	checker Checker
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(checker Checker) *RedisHealthGateway {
	return &RedisHealthGateway{checker: checker}
}

func (gateway *RedisHealthGateway) Health() model.ComponentHealthStatus {
	details, err := gateway.checker.Check(context.Background())
	if err != nil {
		return model.DownStatus(err)
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
