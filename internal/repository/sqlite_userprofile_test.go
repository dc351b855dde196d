package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/alexanderramin/stuath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_LoadMissing(t *testing.T) {
	repo := NewKVProfileRepo(NewSQLiteKVStore(testutil.NewTestDB(t)))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_SaveLoadRoundTrip(t *testing.T) {
	repo := NewKVProfileRepo(NewSQLiteKVStore(testutil.NewTestDB(t)))
	ctx := context.Background()

	p := testutil.NewTestProfile("Jordan",
		testutil.WithFocus(domain.FocusSocial, domain.FocusAcademic),
		testutil.WithLevels(domain.LevelUndergraduate, domain.TrainingCompetitive),
	)
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestProfileRepo_NonNumericStudyHoursStoredAsNull(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewKVProfileRepo(NewSQLiteKVStore(db))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestProfile("Sam", testutil.WithoutStudyHours())))

	var raw string
	require.NoError(t, db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, KeyUserData).Scan(&raw))
	assert.Contains(t, raw, `"studyHours":null`)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got.StudyHours)
}

func TestProfileRepo_CorruptDocument(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, KeyUserData, "{not json"))

	_, err := NewKVProfileRepo(kv).Load(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_Delete(t *testing.T) {
	repo := NewKVProfileRepo(NewSQLiteKVStore(testutil.NewTestDB(t)))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestProfile("Ana")))
	require.NoError(t, repo.Delete(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
