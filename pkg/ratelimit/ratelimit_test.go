package ratelimit_test

import (
	"context"
	"errors"
	"fmt"
	"studiohub/pkg/ratelimit"
	mockratelimit "studiohub/pkg/ratelimit/mock"
	"studiohub/pkg/serrors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/mock/gomock"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := ratelimit.NewClient(ctx, fmt.Sprintf("%s:%d", host, port.Int()), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestRedisLimiter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	client := setupRedis(t)
	limiter := ratelimit.NewRedisLimiter(client, ratelimit.Options{KeyPrefix: "test"})
	ctx := context.Background()
	policy := ratelimit.Policy{Name: "signup", Limit: 3, Window: 2 * time.Second}

	t.Run("admits up to the limit", func(t *testing.T) {
		for i := 0; i < policy.Limit; i++ {
			d, err := limiter.Check(ctx, "10.0.0.1", policy)
			require.NoError(t, err)
			require.True(t, d.Allowed, "request %d", i)
		}

		d, err := limiter.Check(ctx, "10.0.0.1", policy)
		require.NoError(t, err)
		require.False(t, d.Allowed)
		require.Greater(t, d.RetryAfter, time.Duration(0))
		require.LessOrEqual(t, d.RetryAfter, policy.Window)
	})

	t.Run("identifiers and policies are independent", func(t *testing.T) {
		d, err := limiter.Check(ctx, "10.0.0.2", policy)
		require.NoError(t, err)
		require.True(t, d.Allowed)

		other := ratelimit.Policy{Name: "order", Limit: 1, Window: time.Minute}
		d, err = limiter.Check(ctx, "10.0.0.1", other)
		require.NoError(t, err)
		require.True(t, d.Allowed)
	})

	t.Run("window slides", func(t *testing.T) {
		require.Eventually(t, func() bool {
			d, err := limiter.Check(ctx, "10.0.0.1", policy)

			return err == nil && d.Allowed
		}, 5*time.Second, 200*time.Millisecond)
	})

	t.Run("rejected requests are not counted", func(t *testing.T) {
		tight := ratelimit.Policy{Name: "reset", Limit: 1, Window: time.Minute}
		d, err := limiter.Check(ctx, "user@example.com", tight)
		require.NoError(t, err)
		require.True(t, d.Allowed)
		for i := 0; i < 5; i++ {
			d, err = limiter.Check(ctx, "user@example.com", tight)
			require.NoError(t, err)
			require.False(t, d.Allowed)
		}

		card, err := client.ZCard(ctx, "test:reset:user@example.com").Result()
		require.NoError(t, err)
		require.EqualValues(t, 1, card)
	})

	t.Run("disabled policy always allows", func(t *testing.T) {
		d, err := limiter.Check(ctx, "x", ratelimit.Policy{Name: "off"})
		require.NoError(t, err)
		require.True(t, d.Allowed)
	})
}

func TestEnforce(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mockratelimit.NewMockLimiter(ctrl)
	ctx := context.Background()
	policy := ratelimit.Policy{Name: "order", Limit: 10, Window: time.Minute}

	limiter.EXPECT().Check(ctx, "1.2.3.4", policy).Return(ratelimit.Decision{Allowed: true}, nil)
	require.NoError(t, ratelimit.Enforce(ctx, limiter, "1.2.3.4", policy))

	limiter.EXPECT().Check(ctx, "1.2.3.4", policy).
		Return(ratelimit.Decision{Allowed: false, RetryAfter: 30 * time.Second}, nil)
	err := ratelimit.Enforce(ctx, limiter, "1.2.3.4", policy)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, serrors.ErrRateLimited, serrors.KindOf(err))
	var rlErr *ratelimit.Error
	require.ErrorAs(t, err, &rlErr)
	require.Equal(t, 30*time.Second, rlErr.RetryAfter)

	wrapped := fmt.Errorf("could not place order: %w", err)
	require.Equal(t, 429, serrors.HTTPStatus(wrapped))

	limiter.EXPECT().Check(ctx, "1.2.3.4", policy).Return(ratelimit.Decision{}, errors.New("redis down"))
	err = ratelimit.Enforce(ctx, limiter, "1.2.3.4", policy)
	require.Error(t, err)
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))

	require.NoError(t, ratelimit.Enforce(ctx, nil, "1.2.3.4", policy))
}
