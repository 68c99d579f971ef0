package refreshtokens

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAddContainsRemove(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "ada@example.com", "tok-1", time.Hour))

	ok, err := repo.Contains(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Contains(ctx, "tok-2")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Remove(ctx, "tok-1"))

	ok, err = repo.Contains(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, ok, "removed token never re-enters the set")
}

func TestMemoryRemove_Idempotent(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Remove(ctx, "absent"), "removing an absent token is a no-op")

	require.NoError(t, repo.Add(ctx, "ada@example.com", "tok", time.Hour))
	require.NoError(t, repo.Remove(ctx, "tok"))
	assert.NoError(t, repo.Remove(ctx, "tok"), "double revoke is a no-op")
}
