package errors

// Redis error classification

import (
	"context"
	stderrs "errors"
	"net"

	"github.com/redis/go-redis/v9"
)

// IsRedisNil reports a missing key (redis.Nil)
func IsRedisNil(err error) bool { return stderrs.Is(err, redis.Nil) }

// FromRedis wraps a go-redis error; redis.Nil maps to NotFound, network
// failures to Unavailable
func FromRedis(err error, msg string) error {
	if err == nil {
		return nil
	}
	if IsRedisNil(err) {
		return Wrap(err, ErrorCodeNotFound, msg)
	}
	if IsRedisRetryable(err) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// IsRedisRetryable reports network level failures talking to redis
func IsRedisRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if stderrs.Is(err, redis.ErrClosed) {
		return false
	}
	var ne net.Error
	return stderrs.As(err, &ne)
}
