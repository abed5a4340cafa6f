package customdict

import (
	"context"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDict(t *testing.T) (*CustomDict, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, ""), mr
}

func TestCustomDict(t *testing.T) {
	ctx := context.Background()
	cd, mr := newTestDict(t)

	require.NoError(t, cd.Ping(ctx))
	require.NoError(t, cd.Add(ctx, "Openform"))
	require.NoError(t, cd.Add(ctx, " likert "))
	require.NoError(t, cd.Add(ctx, "likert"))

	words, err := cd.All(ctx)
	require.NoError(t, err)
	sort.Strings(words)
	assert.Equal(t, []string{"likert", "openform"}, words)

	ok, err := mr.SIsMember(DefaultKey, "openform")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, cd.Remove(ctx, "OPENFORM"))
	words, err = cd.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"likert"}, words)
}

func TestCustomDict_Unreachable(t *testing.T) {
	ctx := context.Background()
	cd, mr := newTestDict(t)
	mr.Close()

	_, err := cd.All(ctx)
	assert.Error(t, err)
	assert.Error(t, cd.Add(ctx, "word"))
}
