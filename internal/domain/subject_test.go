package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectNormalize_Defaults(t *testing.T) {
	s := Subject{Name: "   ", TotalUnits: 8}.Normalize()
	assert.Equal(t, DefaultSubject, s.Name)
	assert.Equal(t, DefaultGrade, s.Grade)
}

func TestSubjectNormalize_KeepsValues(t *testing.T) {
	s := Subject{Name: " Math ", Grade: Grade5Sem2, TotalUnits: 3}.Normalize()
	assert.Equal(t, "Math", s.Name)
	assert.Equal(t, Grade5Sem2, s.Grade)
}

func TestSubjectValidate(t *testing.T) {
	tests := []struct {
		name    string
		subject Subject
		wantErr bool
	}{
		{"one chapter", Subject{Name: "Math", TotalUnits: 1}, false},
		{"zero chapters", Subject{Name: "Math", TotalUnits: 0}, true},
		{"negative chapters", Subject{Name: "Math", TotalUnits: -4}, true},
		{"unknown grade", Subject{Name: "Math", Grade: "7-1", TotalUnits: 4}, true},
		{"known grade", Subject{Name: "Math", Grade: Grade6Sem2, TotalUnits: 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.subject.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSubject))
		})
	}
}

func TestDateRangeValidate(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, NewDateRange(start, start.AddDate(0, 0, 1)).Validate())
	assert.ErrorIs(t, NewDateRange(start, start).Validate(), ErrInvalidRange)
	assert.ErrorIs(t, NewDateRange(start, start.AddDate(0, 0, -1)).Validate(), ErrInvalidRange)
}

func TestNewDateRange_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	r := NewDateRange(end, start)
	assert.ErrorIs(t, r.Validate(), ErrInvalidRange, "same calendar day is not a valid range")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.March, d.Month())

	_, err = ParseDate("03/01/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestGradeLabel(t *testing.T) {
	assert.Equal(t, "Grade 3, semester 1", Grade3Sem1.Label())
	assert.Equal(t, "9-9", Grade("9-9").Label())
	assert.Len(t, Grades, 12)
}

func TestChapterIntervalActive(t *testing.T) {
	assert.True(t, ChapterInterval{Start: 8, End: 8}.Active())
	assert.False(t, ChapterInterval{Start: 1, End: 0}.Active())
	assert.Equal(t, "2~5", ChapterInterval{Start: 2, End: 5}.String())
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "Math", Slot{Kind: SlotStudy, Subject: "Math"}.Label())
	assert.Equal(t, LunchLabel, Slot{Kind: SlotLunch}.Label())
	assert.Equal(t, ReadingPlayLabel, Slot{Kind: SlotReadingPlay}.Label())
	assert.Equal(t, "", Slot{Kind: SlotEmpty}.Label())
}

func TestProgressEntryString(t *testing.T) {
	assert.Equal(t, "[Math] 1~2", ProgressEntry{Subject: "Math", Interval: ChapterInterval{Start: 1, End: 2}}.String())
	assert.Equal(t, "[Math] "+ReviewLabel, ProgressEntry{Subject: "Math", Review: true}.String())
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, "", Coalesce("", ""))
	assert.Equal(t, Grade4Sem2, Coalesce(Grade(""), Grade4Sem2, DefaultGrade))
	assert.Equal(t, 3, Coalesce(0, 3))
}
