package scheduler

import (
	"testing"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subjectsNamed(names ...string) []domain.Subject {
	out := make([]domain.Subject, len(names))
	for i, n := range names {
		out[i] = domain.Subject{Name: n, TotalUnits: 8}
	}
	return out
}

func TestRotateSlot_MorningRotation(t *testing.T) {
	subjects := subjectsNamed("Math", "English", "Science")

	for hour := FirstHour; hour < LunchHour; hour++ {
		for day := 0; day < DaysPerWeek; day++ {
			slot := RotateSlot(subjects, day, hour)
			want := subjects[(day+hour-FirstHour)%len(subjects)].Name
			assert.Equal(t, domain.SlotStudy, slot.Kind, "day %d hour %d", day, hour)
			assert.Equal(t, want, slot.Label(), "day %d hour %d", day, hour)
		}
	}
}

func TestRotateSlot_FullCycleWhenFewSubjects(t *testing.T) {
	subjects := subjectsNamed("A", "B", "C", "D", "E")

	seen := make(map[string]bool)
	for day := 0; day < DaysPerWeek; day++ {
		seen[RotateSlot(subjects, day, 10).Subject] = true
	}
	assert.Len(t, seen, len(subjects), "a week of one morning hour cycles through every subject")
}

func TestRotateSlot_FixedSlots(t *testing.T) {
	subjects := subjectsNamed("Math")

	for day := 0; day < DaysPerWeek; day++ {
		assert.Equal(t, domain.LunchLabel, RotateSlot(subjects, day, 12).Label(), "day %d", day)
	}
	for day := 0; day < 5; day++ {
		assert.Equal(t, domain.ReadingPlayLabel, RotateSlot(subjects, day, 14).Label(), "weekday %d", day)
	}
	assert.Equal(t, domain.SlotEmpty, RotateSlot(subjects, 5, 14).Kind, "Saturday afternoon is free")
	assert.Equal(t, domain.SlotEmpty, RotateSlot(subjects, 6, 14).Kind, "Sunday afternoon is free")
}

func TestRotateSlot_EmptyHours(t *testing.T) {
	subjects := subjectsNamed("Math", "English")
	for _, hour := range []int{13, 15, 16} {
		for day := 0; day < DaysPerWeek; day++ {
			slot := RotateSlot(subjects, day, hour)
			assert.Equal(t, domain.SlotEmpty, slot.Kind, "day %d hour %d", day, hour)
			assert.Equal(t, "", slot.Label())
		}
	}
}

func TestRotateSlot_NoSubjectsLeavesMorningEmpty(t *testing.T) {
	assert.Equal(t, domain.SlotEmpty, RotateSlot(nil, 0, 9).Kind)
	assert.Equal(t, domain.SlotLunch, RotateSlot(nil, 0, 12).Kind)
}

func TestRotateSlot_OutOfGrid(t *testing.T) {
	subjects := subjectsNamed("Math")
	assert.Equal(t, domain.SlotEmpty, RotateSlot(subjects, -1, 9).Kind)
	assert.Equal(t, domain.SlotEmpty, RotateSlot(subjects, 7, 9).Kind)
	assert.Equal(t, domain.SlotEmpty, RotateSlot(subjects, 0, 8).Kind)
	assert.Equal(t, domain.SlotEmpty, RotateSlot(subjects, 0, 17).Kind)
}

func TestBuildTimetable_Shape(t *testing.T) {
	tt := BuildTimetable(subjectsNamed("Math", "English"))

	require.Len(t, tt.Rows, LastHour-FirstHour+1)
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16}, tt.Hours)
	assert.Equal(t, "Mon", tt.Days[0])
	assert.Equal(t, "Sun", tt.Days[6])
	for r, row := range tt.Rows {
		require.Len(t, row, DaysPerWeek)
		for d, slot := range row {
			assert.Equal(t, tt.Hours[r], slot.Hour)
			assert.Equal(t, d, slot.Day)
		}
	}
	assert.Equal(t, "English", tt.Rows[0][1].Subject)
	assert.Equal(t, "Math", tt.Rows[1][1].Subject)
}
