package cache

import (
	"context"
	"fmt"
	"time"

	"nutrition-booking/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func NewRedisClient(cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Successfully connected to Redis")

	return client, nil
}

// RequiresRedis reports whether any configured driver needs a Redis connection
func RequiresRedis(cfg *config.Config) bool {
	return cfg.Booking.LockDriver == config.LockDriverRedis ||
		cfg.Notify.Driver == config.NotifyDriverRedis
}
