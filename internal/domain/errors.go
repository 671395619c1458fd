package domain

import "errors"

var (
	// ErrInvalidRange means the end date is not strictly after the start date,
	// or a day count below one reached the allocator.
	ErrInvalidRange = errors.New("end date must be after start date")

	// ErrInvalidSubject means a subject's total unit count is below one.
	ErrInvalidSubject = errors.New("subject must have at least one chapter")

	// ErrNoSubjects means a plan was requested without any subjects.
	ErrNoSubjects = errors.New("at least one subject is required")

	// ErrDayIndexOutOfRange means a day index fell outside [0, totalDays).
	ErrDayIndexOutOfRange = errors.New("day index out of range")
)
