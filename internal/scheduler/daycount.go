package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// ComputeDayCount returns the number of calendar days from start to end,
// counting both endpoints. Time of day is ignored. It fails with
// domain.ErrInvalidRange unless end falls on a later day than start.
func ComputeDayCount(start, end time.Time) (int, error) {
	r := domain.NewDateRange(start, end)
	if err := r.Validate(); err != nil {
		return 0, err
	}
	diff := math.Abs(r.End.Sub(r.Start).Hours())
	return int(math.Ceil(diff/24)) + 1, nil
}

// DayAt returns the civil date of the given day offset from start.
func DayAt(start time.Time, dayIndex int) time.Time {
	return domain.CivilDate(start).AddDate(0, 0, dayIndex)
}
