package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
)

func TestSortScoresNewestFirst(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2025, 8, 18+offset, 0, 0, 0, 0, time.UTC)
	}
	records := []db.DailyScore{
		{ID: 1, Date: day(0)},
		{ID: 3, Date: day(2)},
		{ID: 2, Date: day(1)},
	}

	sortScoresNewestFirst(records)

	assert.Equal(t, uint(3), records[0].ID)
	assert.Equal(t, uint(2), records[1].ID)
	assert.Equal(t, uint(1), records[2].ID)
}
