package domain

import (
	"fmt"
	"strings"
	"time"
)

// Subject is one study topic to cover within a date range.
type Subject struct {
	Name       string `json:"name"`
	Grade      Grade  `json:"grade"`
	TotalUnits int    `json:"total_units"`
}

// Normalize fills the blank name and grade with their defaults.
func (s Subject) Normalize() Subject {
	s.Name = Coalesce(strings.TrimSpace(s.Name), DefaultSubject)
	s.Grade = Coalesce(s.Grade, DefaultGrade)
	return s
}

// Validate checks the subject's preconditions for allocation.
func (s Subject) Validate() error {
	if s.TotalUnits < 1 {
		return fmt.Errorf("subject %q: total units %d: %w", s.Name, s.TotalUnits, ErrInvalidSubject)
	}
	if s.Grade != "" && !ValidGrades[string(s.Grade)] {
		return fmt.Errorf("subject %q: unknown grade %q: %w", s.Name, s.Grade, ErrInvalidSubject)
	}
	return nil
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange truncates both endpoints to their calendar date.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: CivilDate(start), End: CivilDate(end)}
}

// Validate reports ErrInvalidRange unless End is a later day than Start.
func (r DateRange) Validate() error {
	if !r.End.After(r.Start) {
		return fmt.Errorf("%s to %s: %w", r.Start.Format(DateLayout), r.End.Format(DateLayout), ErrInvalidRange)
	}
	return nil
}

// DateLayout is the wire and flag format for calendar dates.
const DateLayout = "2006-01-02"

// CivilDate drops the time of day and location, keeping the calendar date
// as seen in t's own location.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
