package repo

import (
	"context"
	"strconv"
	"time"

	perr "dreammap/internal/platform/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces the per-identity sorted sets
const KeyPrefix = "dreammap:ratelimit:"

// Redis keeps history in one sorted set per identity, scored by unix ms
type Redis struct {
	rds    *redis.Client
	window time.Duration
}

// NewRedis builds a redis history; entries expire after window
func NewRedis(rds *redis.Client, window time.Duration) *Redis {
	if rds == nil {
		panic("ratelimit.NewRedis requires a non nil client")
	}
	return &Redis{rds: rds, window: window}
}

func key(identity string) string { return KeyPrefix + identity }

// Timestamps reads entries scored strictly after since
func (r *Redis) Timestamps(ctx context.Context, identity string, since time.Time) ([]time.Time, error) {
	zs, err := r.rds.ZRangeByScoreWithScores(ctx, key(identity), &redis.ZRangeBy{
		Min: "(" + strconv.FormatInt(since.UnixMilli(), 10),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, perr.FromRedis(err, "ratelimit history")
	}
	out := make([]time.Time, 0, len(zs))
	for _, z := range zs {
		out = append(out, time.UnixMilli(int64(z.Score)))
	}
	return out, nil
}

// Record adds at and prunes anything older than the window
func (r *Redis) Record(ctx context.Context, identity string, at time.Time) error {
	k := key(identity)
	ms := at.UnixMilli()
	cutoff := at.Add(-r.window).UnixMilli()
	_, err := r.rds.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZAdd(ctx, k, redis.Z{Score: float64(ms), Member: strconv.FormatInt(ms, 10) + ":" + uuid.NewString()})
		p.ZRemRangeByScore(ctx, k, "-inf", strconv.FormatInt(cutoff, 10))
		p.PExpire(ctx, k, r.window)
		return nil
	})
	return perr.FromRedis(err, "ratelimit record")
}
