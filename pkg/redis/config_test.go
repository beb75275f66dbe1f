package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewRedisConfig().Validate())
	assert.Error(t, NewRedisConfig().WithHost("").Validate())
	assert.Error(t, NewRedisConfig().WithPort(70000).Validate())
	assert.Error(t, NewRedisConfig().WithDatabase(16).Validate())
}

func TestConfigAddr(t *testing.T) {
	assert.Equal(t, "cache:6380", NewRedisConfig().WithHost("cache").WithPort(6380).Addr())
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithPort(0))
	assert.ErrorContains(t, err, "invalid Redis configuration")
}

func TestScheduledTaskLockKey(t *testing.T) {
	client, err := NewClient(nil)
	require.NoError(t, err)
	defer client.Close()

	namespaced := NewScheduledTaskLock(client, "orphan_cleanup", time.Minute, time.Second, "schedules")
	bare := NewScheduledTaskLock(client, "orphan_cleanup", time.Minute, time.Second, "")

	assert.Equal(t, "schedules::orphan_cleanup", namespaced.Key())
	assert.Equal(t, "orphan_cleanup", bare.Key())
	assert.NotEqual(t, namespaced.value, bare.value)
}
