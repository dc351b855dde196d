package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/stuath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_SetGetOverwrite(t *testing.T) {
	db := testutil.NewTestDB(t)
	kv := NewSQLiteKVStore(db)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "a", "1"))
	require.NoError(t, kv.Set(ctx, "a", "2"))

	got, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestKVStore_GetMissing(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))

	_, err := kv.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKVStore_DeleteAndKeys(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyLanguage, "fr"))
	require.NoError(t, kv.Set(ctx, KeyDarkMode, "true"))

	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyDarkMode, KeyLanguage}, keys)

	require.NoError(t, kv.Delete(ctx, KeyLanguage))
	require.NoError(t, kv.Delete(ctx, KeyLanguage), "deleting twice is fine")

	keys, err = kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyDarkMode}, keys)
}

func TestKVStore_StampsUpdatedAt(t *testing.T) {
	db := testutil.NewTestDB(t)
	kv := NewSQLiteKVStore(db)
	require.NoError(t, kv.Set(context.Background(), "k", "v"))

	var updatedAt string
	require.NoError(t, db.QueryRow(`SELECT updated_at FROM kv_store WHERE key = 'k'`).Scan(&updatedAt))
	assert.NotEmpty(t, updatedAt)
}
