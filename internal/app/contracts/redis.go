package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)
	Delete(ctx context.Context, key string) error
}
