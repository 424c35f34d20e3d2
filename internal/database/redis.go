package database

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/Fosberg-codex/AI-Models-Base/config"
)

// RedisClient backs the read-side model cache. It stays nil when caching is
// disabled or the connection fails; the service layer treats nil as cache-off.
var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis(cfg *config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		return err
	}

	RedisClient = client
	return nil
}
