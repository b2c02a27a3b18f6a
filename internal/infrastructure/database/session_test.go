package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tvules/cat-charity-fund/internal/domain/entities"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestCommitInsertsStagedObjects(t *testing.T) {
	db := testDB(t)
	sess := NewSession(db)
	ctx := context.Background()

	project := &entities.CharityProject{Name: "well", Description: "dig a well", FullAmount: 100}
	sess.Add(project)
	require.NoError(t, sess.Commit(ctx))

	assert.NotZero(t, project.ID, "insert assigns identity")

	var count int64
	require.NoError(t, db.Model(&entities.CharityProject{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCommitIsOneTransaction(t *testing.T) {
	db := testDB(t)
	sess := NewSession(db)
	ctx := context.Background()

	sess.Add(&entities.CharityProject{Name: "one", Description: "d", FullAmount: 10})
	// Duplicate name violates the unique index and must roll back the
	// first insert with it.
	sess.Add(&entities.CharityProject{Name: "one", Description: "d", FullAmount: 20})
	require.Error(t, sess.Commit(ctx))

	var count int64
	require.NoError(t, db.Model(&entities.CharityProject{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCommitClearsPending(t *testing.T) {
	db := testDB(t)
	sess := NewSession(db)
	ctx := context.Background()

	sess.Add(&entities.CharityProject{Name: "once", Description: "d", FullAmount: 10})
	require.NoError(t, sess.Commit(ctx))
	// A second commit has nothing staged and must not re-apply anything.
	require.NoError(t, sess.Commit(ctx))

	var count int64
	require.NoError(t, db.Model(&entities.CharityProject{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCommitUpdatesExistingRow(t *testing.T) {
	db := testDB(t)
	sess := NewSession(db)
	ctx := context.Background()

	project := &entities.CharityProject{Name: "old", Description: "d", FullAmount: 10}
	sess.Add(project)
	require.NoError(t, sess.Commit(ctx))

	project.Name = "new"
	sess.Add(project)
	require.NoError(t, sess.Commit(ctx))

	var stored entities.CharityProject
	require.NoError(t, db.First(&stored, project.ID).Error)
	assert.Equal(t, "new", stored.Name)
}

func TestCommitDeletesStagedObjects(t *testing.T) {
	db := testDB(t)
	sess := NewSession(db)
	ctx := context.Background()

	project := &entities.CharityProject{Name: "gone", Description: "d", FullAmount: 10}
	sess.Add(project)
	require.NoError(t, sess.Commit(ctx))

	sess.Delete(project)
	require.NoError(t, sess.Commit(ctx))

	var count int64
	require.NoError(t, db.Model(&entities.CharityProject{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSelectFiltersWithEqualityAnd(t *testing.T) {
	db := testDB(t)
	sess := NewSession(db)
	ctx := context.Background()

	sess.Add(&entities.CharityProject{Name: "a", Description: "d", FullAmount: 10})
	sess.Add(&entities.CharityProject{Name: "b", Description: "d", FullAmount: 10, InvestedAmount: 10, FullyInvested: true})
	require.NoError(t, sess.Commit(ctx))

	var open []*entities.CharityProject
	require.NoError(t, sess.Select(ctx, &open, map[string]any{"fully_invested": false}))
	require.Len(t, open, 1)
	assert.Equal(t, "a", open[0].Name)

	var all []*entities.CharityProject
	require.NoError(t, sess.Select(ctx, &all, nil))
	assert.Len(t, all, 2)
}

func TestRefreshReloadsByPrimaryKey(t *testing.T) {
	db := testDB(t)
	sess := NewSession(db)
	ctx := context.Background()

	project := &entities.CharityProject{Name: "w", Description: "d", FullAmount: 10}
	sess.Add(project)
	require.NoError(t, sess.Commit(ctx))

	// Change the row behind the session's back, then refresh.
	require.NoError(t, db.Model(&entities.CharityProject{}).
		Where("id = ?", project.ID).
		Update("invested_amount", 5).Error)

	require.NoError(t, sess.Refresh(ctx, project))
	assert.EqualValues(t, 5, project.InvestedAmount)
}

func TestSessionsFactoryIssuesFreshSessions(t *testing.T) {
	db := testDB(t)
	factory := NewSessions(db)

	first := factory.NewSession()
	second := factory.NewSession()
	assert.NotSame(t, first, second)
}
