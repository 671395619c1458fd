package scheduler

import (
	"fmt"
	"math"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// AllocateChapters returns the chapters of a subject with totalUnits chapters
// to study on dayIndex of a totalDays plan.
//
// Each day covers the real-valued share totalUnits/totalDays; the interval
// runs from floor(i*share)+1 to floor((i+1)*share). When the share is below
// one chapter per day some days come back inactive (End < Start). Nothing is
// carried over or redistributed between days.
func AllocateChapters(totalUnits, totalDays, dayIndex int) (domain.ChapterInterval, error) {
	if totalUnits < 1 {
		return domain.ChapterInterval{}, fmt.Errorf("allocating %d units: %w", totalUnits, domain.ErrInvalidSubject)
	}
	if totalDays < 1 {
		return domain.ChapterInterval{}, fmt.Errorf("allocating over %d days: %w", totalDays, domain.ErrInvalidRange)
	}
	if dayIndex < 0 || dayIndex >= totalDays {
		return domain.ChapterInterval{}, fmt.Errorf("day %d of %d: %w", dayIndex, totalDays, domain.ErrDayIndexOutOfRange)
	}

	perDay := float64(totalUnits) / float64(totalDays)
	return domain.ChapterInterval{
		Start: int(math.Floor(float64(dayIndex)*perDay)) + 1,
		End:   int(math.Floor(float64(dayIndex+1) * perDay)),
	}, nil
}

// allocateAll computes every day's interval for each subject, indexed
// [subject][day].
func allocateAll(subjects []domain.Subject, totalDays int) ([][]domain.ChapterInterval, error) {
	out := make([][]domain.ChapterInterval, len(subjects))
	for s, sub := range subjects {
		if err := sub.Validate(); err != nil {
			return nil, err
		}
		days := make([]domain.ChapterInterval, totalDays)
		for i := range days {
			iv, err := AllocateChapters(sub.TotalUnits, totalDays, i)
			if err != nil {
				return nil, fmt.Errorf("subject %q: %w", sub.Name, err)
			}
			days[i] = iv
		}
		out[s] = days
	}
	return out, nil
}
