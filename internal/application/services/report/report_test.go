package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvules/cat-charity-fund/internal/domain/entities"
)

func closedProject(name string, collected time.Duration) *entities.CharityProject {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	closed := created.Add(collected)
	return &entities.CharityProject{
		Name:          name,
		Description:   "d",
		FullyInvested: true,
		CreateDate:    created,
		CloseDate:     &closed,
	}
}

func TestBuildRowsSortsByCollectionTime(t *testing.T) {
	projects := []*entities.CharityProject{
		closedProject("slow", 72*time.Hour),
		closedProject("fast", time.Hour),
		closedProject("medium", 24*time.Hour),
	}

	rows := buildRows(projects, time.Now())

	// Three header rows, then projects fastest first.
	require.Len(t, rows, 6)
	assert.Equal(t, "fast", rows[3][0])
	assert.Equal(t, "medium", rows[4][0])
	assert.Equal(t, "slow", rows[5][0])
	assert.Equal(t, time.Hour.String(), rows[3][1])
}

func TestBuildRowsKeepsInputUntouched(t *testing.T) {
	first := closedProject("first", 2*time.Hour)
	second := closedProject("second", time.Hour)
	projects := []*entities.CharityProject{first, second}

	buildRows(projects, time.Now())

	assert.Same(t, first, projects[0], "sorting works on a copy")
}
