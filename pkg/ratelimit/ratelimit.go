// Package ratelimit implements sliding-window rate limiting on Redis sorted
// sets. Each identifier+policy pair owns one sorted set whose members are the
// request timestamps still inside the window.
package ratelimit

import (
	"context"
	"fmt"
	"studiohub/pkg/serrors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Policy names a limit of Limit requests per Window.
type Policy struct {
	Name   string
	Limit  int
	Window time.Duration
}

// Decision is the outcome of one Check.
type Decision struct {
	Allowed bool
	// RetryAfter is how long the caller should wait. Zero when Allowed.
	RetryAfter time.Duration
}

//go:generate mockgen -package mockratelimit -source=ratelimit.go -destination=mock/mockratelimit.go Limiter
type Limiter interface {
	// Check counts one request for identifier against policy and reports
	// whether it fits into the window. Rejected requests are not counted.
	Check(ctx context.Context, identifier string, policy Policy) (Decision, error)
}

// Error is returned by Enforce when a policy is exceeded.
type Error struct {
	Policy     string
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	return fmt.Sprintf("rate limit %s exceeded, retry in %s", e.Policy, e.RetryAfter.Round(time.Second))
}

func (e *Error) Is(target error) bool { return target == serrors.ErrRateLimited }

func (e *Error) As(target any) bool {
	k, ok := target.(*serrors.Kind)
	if !ok {
		return false
	}
	*k = serrors.ErrRateLimited

	return true
}

// Enforce runs Check and turns a rejection into an *Error of kind
// serrors.ErrRateLimited. A nil limiter allows everything.
func Enforce(ctx context.Context, l Limiter, identifier string, policy Policy) error {
	if l == nil {
		return nil
	}

	d, err := l.Check(ctx, identifier, policy)
	if err != nil {
		return fmt.Errorf("could not check rate limit %s: %w", policy.Name, err)
	}
	if !d.Allowed {
		return &Error{Policy: policy.Name, RetryAfter: d.RetryAfter}
	}

	return nil
}

// slidingWindow trims expired entries, then admits the request only if the
// window still has room. It returns {allowed, retryAfterMillis}.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
if redis.call('ZCARD', key) < limit then
  redis.call('ZADD', key, now, ARGV[4])
  redis.call('PEXPIRE', key, window)
  return {1, 0}
end

local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
local retry = window
if oldest[2] then
  retry = tonumber(oldest[2]) + window - now
end
return {0, retry}
`) //nolint: gochecknoglobals

// RedisLimiter is a Limiter backed by a Redis client.
type RedisLimiter struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// Options configure a RedisLimiter.
type Options struct {
	// KeyPrefix namespaces the sorted sets, e.g. "studiohub:rl".
	KeyPrefix string
}

// NewRedisLimiter returns a limiter storing its windows through client.
func NewRedisLimiter(client redis.UniversalClient, opts Options) *RedisLimiter {
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = "ratelimit"
	}

	return &RedisLimiter{client: client, prefix: prefix, now: time.Now}
}

func (r *RedisLimiter) Check(ctx context.Context, identifier string, policy Policy) (Decision, error) {
	if policy.Limit <= 0 || policy.Window <= 0 {
		return Decision{Allowed: true}, nil
	}

	key := fmt.Sprintf("%s:%s:%s", r.prefix, policy.Name, identifier)
	now := r.now().UnixMilli()
	member := fmt.Sprintf("%d-%s", now, uuid.NewString())

	res, err := slidingWindow.Run(ctx, r.client, []string{key},
		now, policy.Window.Milliseconds(), policy.Limit, member).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("could not run sliding window script: %w", err)
	}
	if len(res) != 2 {
		return Decision{}, fmt.Errorf("unexpected sliding window reply %v", res)
	}

	if res[0] == 1 {
		return Decision{Allowed: true}, nil
	}

	retry := time.Duration(res[1]) * time.Millisecond
	if retry <= 0 {
		retry = time.Millisecond
	}

	return Decision{Allowed: false, RetryAfter: retry}, nil
}

// NewClient connects to Redis and pings it.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}

	return client, nil
}
