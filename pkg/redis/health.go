package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// HealthChecker pings Redis and reports connection pool details
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client, timeout: 2 * time.Second}
}

// Check returns the pool details, or an error when Redis cannot be reached.
func (h *HealthChecker) Check(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping failed: %w", err)
	}

	stats := h.client.GetClient().PoolStats()
	config := h.client.GetConfig()
	return map[string]string{
		"address":     config.Addr(),
		"database":    strconv.Itoa(config.Database),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
	}, nil
}
