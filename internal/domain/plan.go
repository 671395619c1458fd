package domain

import (
	"fmt"
	"time"
)

// ChapterInterval is the range of chapters assigned to one subject on one day.
// End < Start means nothing is assigned that day.
type ChapterInterval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Active reports whether the interval covers at least one chapter.
func (c ChapterInterval) Active() bool {
	return c.End >= c.Start
}

func (c ChapterInterval) String() string {
	return fmt.Sprintf("%d~%d", c.Start, c.End)
}

// Slot is one cell of the weekly timetable. Day 0 is Monday.
type Slot struct {
	Day     int      `json:"day"`
	Hour    int      `json:"hour"`
	Kind    SlotKind `json:"kind"`
	Subject string   `json:"subject,omitempty"`
}

// Label returns the text shown in the cell.
func (s Slot) Label() string {
	switch s.Kind {
	case SlotStudy:
		return s.Subject
	case SlotLunch:
		return LunchLabel
	case SlotReadingPlay:
		return ReadingPlayLabel
	default:
		return ""
	}
}

// Timetable is the weekly grid, one row per hour and one column per weekday.
type Timetable struct {
	Days  []string `json:"days"`
	Hours []int    `json:"hours"`
	Rows  [][]Slot `json:"rows"`
}

// CalendarTag is a subject's chapter range printed inside a calendar cell.
type CalendarTag struct {
	Subject  string          `json:"subject"`
	Interval ChapterInterval `json:"interval"`
}

func (t CalendarTag) String() string {
	return t.Subject + ": " + t.Interval.String()
}

type CalendarCell struct {
	Index   int           `json:"index"`
	Date    time.Time     `json:"date"`
	IsToday bool          `json:"is_today"`
	Tags    []CalendarTag `json:"tags"`
}

// Calendar is a month grid laid out Sunday first. LeadingBlanks empty cells
// precede the first real day so it lands in its weekday column.
type Calendar struct {
	LeadingBlanks int            `json:"leading_blanks"`
	Cells         []CalendarCell `json:"cells"`
}

// ProgressEntry is one subject's work on one day of the checklist. Review
// entries carry no numeric interval.
type ProgressEntry struct {
	Subject  string          `json:"subject"`
	Interval ChapterInterval `json:"interval"`
	Review   bool            `json:"review,omitempty"`
}

func (e ProgressEntry) String() string {
	if e.Review {
		return "[" + e.Subject + "] " + ReviewLabel
	}
	return "[" + e.Subject + "] " + e.Interval.String()
}

type ProgressDay struct {
	Index   int             `json:"index"`
	Date    time.Time       `json:"date"`
	Weekday string          `json:"weekday"`
	Entries []ProgressEntry `json:"entries"`
}

// FreeTime reports whether nothing is scheduled that day.
func (d ProgressDay) FreeTime() bool {
	return len(d.Entries) == 0
}
