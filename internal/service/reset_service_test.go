package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/stuath/internal/app"
	"github.com/alexanderramin/stuath/internal/repository"
	"github.com/alexanderramin/stuath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	_, err := f.derivation(DerivationOptions{}).Submit(ctx, app.NewSubmitRequest(athleteForm()))
	require.NoError(t, err)
	require.NoError(t, f.kv.Set(ctx, repository.KeyDarkMode, "false"))
	require.NoError(t, f.kv.Set(ctx, repository.KeyLanguage, "fr"))
}

func TestReset_ClearsStoreAndSession(t *testing.T) {
	f := newFixture(t)
	seedStore(t, f)
	ctx := context.Background()

	n, err := NewResetService(testutil.NewTestUoW(f.db), f.session, f.observer).Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	keys, err := f.kv.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, _, ok := f.session.Current()
	assert.False(t, ok)
	assert.Equal(t, 3, f.observer.last().Fields["removed_keys"])
}

func TestReset_RollbackOnDeleteFailure(t *testing.T) {
	f := newFixture(t)
	seedStore(t, f)
	ctx := context.Background()

	// ExecContext #1..#3 are the per-key deletes; fail the second.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     f.db,
		FailOn: 2,
		Err:    fmt.Errorf("injected delete failure"),
	}

	n, err := NewResetService(failUoW, f.session).Reset(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected delete failure")
	assert.Zero(t, n)

	keys, err := f.kv.Keys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 3, "all keys survive a failed reset")

	_, _, ok := f.session.Current()
	assert.True(t, ok, "session is left alone when the store was not cleared")
}
