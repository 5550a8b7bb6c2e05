package catalogcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(100)
	defer s.Close()

	_, found, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	value := []byte(`{"total":3}`)
	require.NoError(t, s.Set(ctx, "k", value, time.Minute))
	value[0] = 'X'

	got, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `{"total":3}`, string(got))
}

func TestMemoryStoreExpires(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 20*time.Millisecond))
	time.Sleep(60 * time.Millisecond)

	_, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStore(client, "catalog:")

	_, found, err := s.Get(ctx, "attributes:abc")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "attributes:abc", []byte(`{"data":[]}`), 30*time.Second))
	assert.True(t, mr.Exists("catalog:attributes:abc"))
	assert.Equal(t, 30*time.Second, mr.TTL("catalog:attributes:abc"))

	got, found, err := s.Get(ctx, "attributes:abc")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `{"data":[]}`, string(got))

	mr.FastForward(31 * time.Second)
	_, found, err = s.Get(ctx, "attributes:abc")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStoreSurfacesConnectionErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	_, _, err := NewRedisStore(client, "").Get(context.Background(), "k")
	assert.Error(t, err)
}
