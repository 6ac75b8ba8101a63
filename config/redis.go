package config

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a global Redis client instance
var RedisClient *redis.Client

//Accessed as config.RedisClient in other files

// InitRedis connects to REDIS_ADDR (or REDIS_URL). With neither set the client
// stays nil and metadata is cached in memory only.
func InitRedis() {
	if url := os.Getenv("REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url)
		if err == nil {
			RedisClient = redis.NewClient(opt)
			return
		}
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       GetEnvInt("REDIS_DB", 0),
	})
}

// PingRedis drops the client when the server does not answer.
func PingRedis() bool {
	if RedisClient == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(RedisCtx(), 2*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		RedisClient = nil
		return false
	}
	return true
}

func RedisCtx() context.Context {
	return context.Background()
}
