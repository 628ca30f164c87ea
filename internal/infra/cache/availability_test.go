package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*AvailabilityCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(client, 30*time.Second), srv
}

func TestAvailabilityCache_MissThenHit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "2025-11-03")
	assert.ErrorIs(t, err, ErrMiss)

	payload := []byte(`{"date":"2025-11-03","slots":[]}`)
	require.NoError(t, c.Set(ctx, "2025-11-03", payload))

	got, err := c.Get(ctx, "2025-11-03")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestAvailabilityCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "2025-11-03", []byte("{}")))
	require.NoError(t, c.Invalidate(ctx, "2025-11-03"))

	_, err := c.Get(ctx, "2025-11-03")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestAvailabilityCache_TTLExpiry(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "2025-11-03", []byte("{}")))

	srv.FastForward(31 * time.Second)

	_, err := c.Get(ctx, "2025-11-03")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	n := Noop{}

	_, err := n.Get(ctx, "2025-11-03")
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, n.Set(ctx, "2025-11-03", []byte("{}")))
	assert.NoError(t, n.Invalidate(ctx, "2025-11-03"))
}
