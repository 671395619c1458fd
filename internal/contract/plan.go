package contract

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// GenerateRequest carries everything one "generate" action needs. Today is
// only used to highlight the current day on the calendar; nil leaves every
// cell unhighlighted.
type GenerateRequest struct {
	Subjects []domain.Subject
	Start    time.Time
	End      time.Time
	Today    *time.Time
}

func NewGenerateRequest(subjects []domain.Subject, start, end time.Time) GenerateRequest {
	return GenerateRequest{
		Subjects: subjects,
		Start:    start,
		End:      end,
	}
}

// GenerateResponse is the render model for the timetable, progress list and
// calendar views. It holds no wall-clock data, so identical requests produce
// identical responses.
type GenerateResponse struct {
	PlanID    string               `json:"plan_id"`
	Start     time.Time            `json:"start"`
	End       time.Time            `json:"end"`
	TotalDays int                  `json:"total_days"`
	Subjects  []domain.Subject     `json:"subjects"`
	Timetable domain.Timetable     `json:"timetable"`
	Progress  []domain.ProgressDay `json:"progress"`
	Calendar  domain.Calendar      `json:"calendar"`
}

type GenerateErrorCode string

const (
	ErrNoSubjects      GenerateErrorCode = "NO_SUBJECTS"
	ErrInvalidRange    GenerateErrorCode = "INVALID_RANGE"
	ErrInvalidSubject  GenerateErrorCode = "INVALID_SUBJECT"
	ErrInvalidPlanFile GenerateErrorCode = "INVALID_PLAN_FILE"
	ErrInternalError   GenerateErrorCode = "INTERNAL_ERROR"
)

// GenerateError is a validation failure that stops a generate action before
// any view is built.
type GenerateError struct {
	Code    GenerateErrorCode
	Message string
	Details []string
	Err     error
}

func (e *GenerateError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}
