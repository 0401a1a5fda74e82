package adapter

import (
	"context"
	"testing"

	"exambook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageAdapter(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorageAdapter()

	_, err := store.Get(ctx, "exams")
	assert.ErrorIs(t, err, domain.ErrNoValue)

	require.NoError(t, store.Set(ctx, "exams", `[]`))
	val, err := store.Get(ctx, "exams")
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Set(ctx, "exams", `[{}]`))
	val, err = store.Get(ctx, "exams")
	require.NoError(t, err)
	assert.Equal(t, `[{}]`, val)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "exams"))
	_, err = store.Get(ctx, "exams")
	assert.ErrorIs(t, err, domain.ErrNoValue)
	assert.NoError(t, store.Delete(ctx, "exams"))

	assert.NoError(t, store.Ping(ctx))
}
