package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDayCount_ThirtyDays(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	n, err := ComputeDayCount(start, start.AddDate(0, 0, 29))
	require.NoError(t, err)
	assert.Equal(t, 30, n)
}

func TestComputeDayCount_OneDayApart(t *testing.T) {
	start := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	n, err := ComputeDayCount(start, start.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, n, "both endpoints count")
}

func TestComputeDayCount_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 3, 1, 22, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC)
	n, err := ComputeDayCount(start, end)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestComputeDayCount_AcrossLeapDay(t *testing.T) {
	start := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	n, err := ComputeDayCount(start, end)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestComputeDayCount_RejectsEmptyAndReversedRanges(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := ComputeDayCount(start, start)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = ComputeDayCount(start, start.AddDate(0, 0, -3))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestDayAt(t *testing.T) {
	start := time.Date(2025, 1, 30, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC), DayAt(start, 3))
}
