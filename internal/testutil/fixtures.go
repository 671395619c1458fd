// Package testutil builds subjects and generate requests for tests.
package testutil

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// PlanStart is the Sunday most fixtures start on.
var PlanStart = time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

// Subject options
type SubjectOption func(*domain.Subject)

func WithGrade(g domain.Grade) SubjectOption {
	return func(s *domain.Subject) {
		s.Grade = g
	}
}

func WithUnits(n int) SubjectOption {
	return func(s *domain.Subject) {
		s.TotalUnits = n
	}
}

// NewTestSubject returns a subject with 8 chapters and no grade.
func NewTestSubject(name string, opts ...SubjectOption) domain.Subject {
	s := domain.Subject{Name: name, TotalUnits: 8}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Request options
type RequestOption func(*contract.GenerateRequest)

func WithStart(start time.Time) RequestOption {
	return func(r *contract.GenerateRequest) {
		span := r.End.Sub(r.Start)
		r.Start = start
		r.End = start.Add(span)
	}
}

func WithToday(today time.Time) RequestOption {
	return func(r *contract.GenerateRequest) {
		r.Today = &today
	}
}

// NewTestRequest covers days calendar days from PlanStart, counting both ends.
func NewTestRequest(days int, subjects []domain.Subject, opts ...RequestOption) contract.GenerateRequest {
	r := contract.NewGenerateRequest(subjects, PlanStart, PlanStart.AddDate(0, 0, days-1))
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
