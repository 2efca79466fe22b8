package config

import (
	"time"

	"github.com/redis/go-redis/v9"
)

type Redis struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	DedupTTL time.Duration `env:"REDIS_WEBHOOK_DEDUP_TTL" envDefault:"24h"`
}

// Client returns nil when no address is configured; webhook de-duplication is
// then skipped and the store's compare-and-set alone keeps pushes idempotent.
func (r Redis) Client() *redis.Client {
	if r.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     r.Addr,
		Password: r.Password,
		DB:       r.DB,
	})
}
