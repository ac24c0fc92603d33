package customdict

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachable(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNewDefaultKey(t *testing.T) {
	assert.Equal(t, DefaultKey, New(unreachable(t), "").key)
	assert.Equal(t, "words:custom", New(unreachable(t), "words:custom").key)
}

func TestErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	cd := New(unreachable(t), "")

	err := cd.Add(ctx, "gopher")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `customdict: add "gopher"`)

	err = cd.Remove(ctx, "gopher")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `customdict: remove "gopher"`)

	_, err = cd.All(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customdict: list")

	assert.Error(t, cd.Ping(ctx))
}

func newMemoryDict(t *testing.T, key string) (*CustomDict, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, key), mr
}

func TestAddAllRemoveRoundTrip(t *testing.T) {
	ctx := context.Background()
	cd, mr := newMemoryDict(t, "")

	require.NoError(t, cd.Ping(ctx))
	require.NoError(t, cd.Add(ctx, "gopher"))
	require.NoError(t, cd.Add(ctx, "kubernetes"))
	require.NoError(t, cd.Add(ctx, "gopher"))

	words, err := cd.All(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"gopher", "kubernetes"}, words)

	members, err := mr.Members(DefaultKey)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"gopher", "kubernetes"}, members)

	require.NoError(t, cd.Remove(ctx, "gopher"))
	require.NoError(t, cd.Remove(ctx, "never-added"))

	words, err = cd.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"kubernetes"}, words)
}

func TestAllOnEmptyKey(t *testing.T) {
	cd, mr := newMemoryDict(t, "words:custom")

	words, err := cd.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, words)
	assert.False(t, mr.Exists("words:custom"))
}
