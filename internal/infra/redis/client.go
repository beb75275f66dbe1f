package redis

import (
	"todo-tracker/pkg/redis"
	"todo-tracker/pkg/resource"
)

// NewClient connects to the Redis instance configured under app.redis.
func NewClient() (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	return redis.NewClient(config)
}
