package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// BuildProgress produces the day-by-day checklist. A subject appears on every
// day it has an active interval. On the last day a subject without one gets
// a review entry instead, so each subject is mentioned at the end of the plan.
// Interior inactive days are left as they are.
func BuildProgress(start time.Time, totalDays int, subjects []domain.Subject) ([]domain.ProgressDay, error) {
	if totalDays < 1 {
		return nil, fmt.Errorf("progress of %d days: %w", totalDays, domain.ErrInvalidRange)
	}
	alloc, err := allocateAll(subjects, totalDays)
	if err != nil {
		return nil, err
	}

	days := make([]domain.ProgressDay, 0, totalDays)
	last := totalDays - 1
	for i := 0; i < totalDays; i++ {
		date := DayAt(start, i)
		day := domain.ProgressDay{
			Index:   i,
			Date:    date,
			Weekday: date.Weekday().String()[:3],
			Entries: []domain.ProgressEntry{},
		}
		for s, sub := range subjects {
			iv := alloc[s][i]
			switch {
			case iv.Active():
				day.Entries = append(day.Entries, domain.ProgressEntry{Subject: sub.Name, Interval: iv})
			case i == last && sub.TotalUnits > 0:
				day.Entries = append(day.Entries, domain.ProgressEntry{Subject: sub.Name, Review: true})
			}
		}
		days = append(days, day)
	}
	return days, nil
}
