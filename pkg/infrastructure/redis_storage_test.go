package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedisStorage(client, "sess:")
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStorageRoundTrip(t *testing.T) {
	s, mr := newTestStorage(t)

	require.NoError(t, s.Set("abc", []byte("state"), time.Minute))
	assert.True(t, mr.Exists("sess:abc"))

	got, err := s.Get("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("state"), got)

	require.NoError(t, s.Delete("abc"))
	got, err = s.Get("abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStorageMissingKey(t *testing.T) {
	s, _ := newTestStorage(t)

	got, err := s.Get("nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStorageExpiry(t *testing.T) {
	s, mr := newTestStorage(t)

	require.NoError(t, s.Set("abc", []byte("state"), time.Second))
	mr.FastForward(2 * time.Second)

	got, err := s.Get("abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStorageResetKeepsOtherKeys(t *testing.T) {
	s, mr := newTestStorage(t)

	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Set("b", []byte("2"), 0))
	require.NoError(t, mr.Set("other", "x"))

	require.NoError(t, s.Reset())
	assert.False(t, mr.Exists("sess:a"))
	assert.False(t, mr.Exists("sess:b"))
	assert.True(t, mr.Exists("other"))
}

func TestNewRedisStorageFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := NewRedisStorageFromURL(context.Background(), "redis://"+mr.Addr(), "p:")
	require.NoError(t, err)
	defer s.Close()

	_, err = NewRedisStorageFromURL(context.Background(), "::bad", "p:")
	assert.Error(t, err)
}
