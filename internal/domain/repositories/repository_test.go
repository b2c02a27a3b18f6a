package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tvules/cat-charity-fund/internal/domain/managers"
	"github.com/tvules/cat-charity-fund/internal/infrastructure/database"
)

func testSessions(t *testing.T) *database.Sessions {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return database.NewSessions(db)
}

func testProjectRepo(t *testing.T) CharityProjectRepository {
	t.Helper()
	repo, err := NewCharityProjectRepository()
	require.NoError(t, err)
	return repo
}

func TestCreateReturnsFieldsAndIdentity(t *testing.T) {
	sessions := testSessions(t)
	repo := testProjectRepo(t)
	ctx := context.Background()

	project, err := repo.Create(ctx, sessions.NewSession(), map[string]any{
		"name":        "shelter",
		"description": "winter shelter",
		"full_amount": int64(500),
	})
	require.NoError(t, err)
	assert.NotZero(t, project.ID)
	assert.Equal(t, "shelter", project.Name)
	assert.Equal(t, "winter shelter", project.Description)
	assert.EqualValues(t, 500, project.FullAmount)
	assert.EqualValues(t, 0, project.InvestedAmount, "store default is visible after refresh")
	assert.False(t, project.FullyInvested)
	assert.False(t, project.CreateDate.IsZero(), "store-assigned timestamp is populated")
}

func TestCreateRejectsUndeclaredField(t *testing.T) {
	sessions := testSessions(t)
	repo := testProjectRepo(t)

	_, err := repo.Create(context.Background(), sessions.NewSession(), map[string]any{
		"name":    "x",
		"sponsor": "acme",
	})
	var unknown *managers.UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "sponsor", unknown.Field)
}

func TestGetIsFirstOfFilterOrAbsent(t *testing.T) {
	sessions := testSessions(t)
	repo := testProjectRepo(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b"} {
		_, err := repo.Create(ctx, sessions.NewSession(), map[string]any{
			"name": name, "description": "d", "full_amount": int64(10),
		})
		require.NoError(t, err)
	}

	got, err := repo.GetByName(ctx, sessions.NewSession(), "b")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.Name)

	absent, err := repo.GetByName(ctx, sessions.NewSession(), "missing")
	require.NoError(t, err)
	assert.Nil(t, absent, "no match is absence, not an error")
}

func TestEmptyCriteriaFilterMatchesGetAll(t *testing.T) {
	sessions := testSessions(t)
	repo := testProjectRepo(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, sessions.NewSession(), map[string]any{
			"name": name, "description": "d", "full_amount": int64(10),
		})
		require.NoError(t, err)
	}

	all, err := repo.GetAll(ctx, sessions.NewSession())
	require.NoError(t, err)
	require.Len(t, all, 3)

	open, err := repo.GetOpen(ctx, sessions.NewSession())
	require.NoError(t, err)
	assert.Len(t, open, 3, "nothing is invested yet, so open equals all")
}

func TestUpdateAppliesDeclaredAndIgnoresUnknown(t *testing.T) {
	sessions := testSessions(t)
	repo := testProjectRepo(t)
	ctx := context.Background()

	project, err := repo.Create(ctx, sessions.NewSession(), map[string]any{
		"name": "old", "description": "keep me", "full_amount": int64(10),
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, sessions.NewSession(), project, map[string]any{
		"name":    "new",
		"sponsor": "acme", // undeclared, silently skipped
	})
	require.NoError(t, err)
	assert.Same(t, project, updated)
	assert.Equal(t, "new", updated.Name)
	assert.Equal(t, "keep me", updated.Description, "untouched fields keep their values")

	stored, err := repo.GetByName(ctx, sessions.NewSession(), "new")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, project.ID, stored.ID)
}

func TestDeleteRemovesFromStore(t *testing.T) {
	sessions := testSessions(t)
	repo := testProjectRepo(t)
	ctx := context.Background()

	project, err := repo.Create(ctx, sessions.NewSession(), map[string]any{
		"name": "gone", "description": "d", "full_amount": int64(10),
	})
	require.NoError(t, err)

	detached, err := repo.Delete(ctx, sessions.NewSession(), project)
	require.NoError(t, err)
	assert.Equal(t, "gone", detached.Name, "detached instance stays readable")

	all, err := repo.GetAll(ctx, sessions.NewSession())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEndToEndLifecycle(t *testing.T) {
	sessions := testSessions(t)
	repo := testProjectRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sessions.NewSession(), map[string]any{
		"name": "a", "description": "d", "full_amount": int64(10),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.GetByName(ctx, sessions.NewSession(), "a")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.Update(ctx, sessions.NewSession(), found, map[string]any{"name": "b"})
	require.NoError(t, err)

	renamed, err := repo.GetByName(ctx, sessions.NewSession(), "b")
	require.NoError(t, err)
	require.NotNil(t, renamed)
	assert.Equal(t, created.ID, renamed.ID)

	old, err := repo.GetByName(ctx, sessions.NewSession(), "a")
	require.NoError(t, err)
	assert.Nil(t, old)

	_, err = repo.Delete(ctx, sessions.NewSession(), renamed)
	require.NoError(t, err)

	gone, err := repo.GetByName(ctx, sessions.NewSession(), "b")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDonationsByUser(t *testing.T) {
	sessions := testSessions(t)
	repo, err := NewDonationRepository()
	require.NoError(t, err)
	ctx := context.Background()

	alice := uuid.NewString()
	bob := uuid.NewString()
	for _, fields := range []map[string]any{
		{"user_id": alice, "full_amount": int64(10)},
		{"user_id": alice, "full_amount": int64(20), "comment": "for the cats"},
		{"user_id": bob, "full_amount": int64(30)},
	} {
		_, err := repo.Create(ctx, sessions.NewSession(), fields)
		require.NoError(t, err)
	}

	mine, err := repo.GetByUser(ctx, sessions.NewSession(), alice)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := repo.GetAll(ctx, sessions.NewSession())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUserLookupByEmail(t *testing.T) {
	sessions := testSessions(t)
	repo, err := NewUserRepository()
	require.NoError(t, err)
	ctx := context.Background()

	created, err := repo.Create(ctx, sessions.NewSession(), map[string]any{
		"id":              uuid.NewString(),
		"email":           "cat@example.org",
		"hashed_password": "hash",
		"is_active":       true,
		"is_superuser":    false,
	})
	require.NoError(t, err)

	found, err := repo.GetByEmail(ctx, sessions.NewSession(), "cat@example.org")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}
