package database

import (
	"context"
	"famhealth-service/internal/app/config"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisConnectTimeout = 10 * time.Second

func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}

	log.Println("Successfully connected to redis")
	return rdb
}
