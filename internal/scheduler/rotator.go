package scheduler

import "github.com/alexanderramin/studyplan/internal/domain"

// Weekly grid bounds. Hours are on the 24h clock.
const (
	FirstHour   = 9
	LastHour    = 16
	LunchHour   = 12
	DaysPerWeek = 7
	weekdays    = 5
)

// TimetableDays are the column headers of the timetable, Monday first.
var TimetableDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// RotateSlot labels one timetable cell. Morning hours rotate through the
// subjects, shifting one position per weekday and per hour. Noon is lunch and
// 14:00 on weekdays is reading/play time. Everything else stays empty.
func RotateSlot(subjects []domain.Subject, day, hour int) domain.Slot {
	slot := domain.Slot{Day: day, Hour: hour, Kind: domain.SlotEmpty}
	if day < 0 || day >= DaysPerWeek || hour < FirstHour || hour > LastHour {
		return slot
	}

	switch {
	case hour < LunchHour && len(subjects) > 0:
		idx := (day + (hour - FirstHour)) % len(subjects)
		slot.Kind = domain.SlotStudy
		slot.Subject = subjects[idx].Name
	case hour == LunchHour:
		slot.Kind = domain.SlotLunch
	case hour > 13 && hour < 15 && day < weekdays:
		slot.Kind = domain.SlotReadingPlay
	}
	return slot
}

// BuildTimetable evaluates every (hour, day) cell of the week. The result
// does not depend on the date range.
func BuildTimetable(subjects []domain.Subject) domain.Timetable {
	tt := domain.Timetable{
		Days: append([]string(nil), TimetableDays...),
	}
	for hour := FirstHour; hour <= LastHour; hour++ {
		tt.Hours = append(tt.Hours, hour)
		row := make([]domain.Slot, DaysPerWeek)
		for day := range row {
			row[day] = RotateSlot(subjects, day, hour)
		}
		tt.Rows = append(tt.Rows, row)
	}
	return tt
}
