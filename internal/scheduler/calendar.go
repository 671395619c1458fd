package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// BuildCalendar lays out totalDays days starting at start on a Sunday-first
// month grid. Each cell lists the subjects with an active chapter interval
// that day; inactive days are omitted silently, including the final day,
// which the progress list handles differently.
func BuildCalendar(start time.Time, totalDays int, subjects []domain.Subject, today time.Time) (domain.Calendar, error) {
	if totalDays < 1 {
		return domain.Calendar{}, fmt.Errorf("calendar of %d days: %w", totalDays, domain.ErrInvalidRange)
	}
	alloc, err := allocateAll(subjects, totalDays)
	if err != nil {
		return domain.Calendar{}, err
	}

	start = domain.CivilDate(start)
	cal := domain.Calendar{
		LeadingBlanks: int(start.Weekday()),
		Cells:         make([]domain.CalendarCell, 0, totalDays),
	}
	for i := 0; i < totalDays; i++ {
		date := DayAt(start, i)
		cell := domain.CalendarCell{
			Index:   i,
			Date:    date,
			IsToday: !today.IsZero() && domain.SameDay(date, today),
			Tags:    []domain.CalendarTag{},
		}
		for s, sub := range subjects {
			if iv := alloc[s][i]; iv.Active() {
				cell.Tags = append(cell.Tags, domain.CalendarTag{Subject: sub.Name, Interval: iv})
			}
		}
		cal.Cells = append(cal.Cells, cell)
	}
	return cal, nil
}
