package storage

import (
	"fmt"

	"github.com/daygrid/scheduler/pkg/config"

	"github.com/go-redis/redis"
)

// NewRedis connects the session store client and verifies the connection
// before anything depends on it.
func NewRedis(c config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Password: c.Password,
	})

	if _, err := client.Ping().Result(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %v", err)
	}

	return client, nil
}
