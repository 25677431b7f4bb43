package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/centurialsign/sgpg-api/internal/domain/stats"
)

const statsKey = "sgpg:dashboard:stats"

// StatsCache guarda o modelo de leitura do dashboard no Redis.
// A invalidação é sempre por atacado, após qualquer mutação de OS;
// sem Redis configurado o cache vira no-op e tudo é recomputado.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatsCache(addr, password string) *StatsCache {
	if addr == "" {
		return nil
	}

	return &StatsCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: 5 * time.Minute,
	}
}

func (c *StatsCache) Get(ctx context.Context) (*stats.Summary, bool) {
	if c == nil {
		return nil, false
	}

	b, err := c.rdb.Get(ctx, statsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var s stats.Summary
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, false
	}

	return &s, true
}

func (c *StatsCache) Set(ctx context.Context, s stats.Summary) {
	if c == nil {
		return
	}

	b, err := json.Marshal(s)
	if err != nil {
		return
	}

	// falha de cache nunca derruba a requisição
	_ = c.rdb.Set(ctx, statsKey, b, c.ttl).Err()
}

func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	_ = c.rdb.Del(ctx, statsKey).Err()
}
