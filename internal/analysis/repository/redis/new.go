package redis

import (
	"time"

	"trustrate-srv/internal/analysis/repository"
	"trustrate-srv/pkg/log"
	pkgRedis "trustrate-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory function. TTL <= 0 falls back to 30 minutes.
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
