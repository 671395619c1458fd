package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/importer"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/google/uuid"
)

// planNamespace scopes plan IDs so equal inputs always map to the same ID.
var planNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("studyplan.plan"))

type planService struct {
	defaultGrade domain.Grade
	observer     UseCaseObserver
}

func NewPlanService(defaultGrade domain.Grade, observers ...UseCaseObserver) PlanService {
	if defaultGrade == "" {
		defaultGrade = domain.DefaultGrade
	}
	return &planService{
		defaultGrade: defaultGrade,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Generate(ctx context.Context, req contract.GenerateRequest) (resp *contract.GenerateResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"subject_count": len(req.Subjects),
	}
	defer func() {
		if resp != nil {
			fields["plan_id"] = resp.PlanID
			fields["total_days"] = resp.TotalDays
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	return s.generate(req)
}

func (s *planService) generate(req contract.GenerateRequest) (*contract.GenerateResponse, error) {
	r := domain.NewDateRange(req.Start, req.End)
	totalDays, err := scheduler.ComputeDayCount(r.Start, r.End)
	if err != nil {
		return nil, &contract.GenerateError{Code: contract.ErrInvalidRange, Message: err.Error(), Err: err}
	}

	if len(req.Subjects) == 0 {
		return nil, &contract.GenerateError{
			Code:    contract.ErrNoSubjects,
			Message: domain.ErrNoSubjects.Error(),
			Err:     domain.ErrNoSubjects,
		}
	}

	subjects := make([]domain.Subject, len(req.Subjects))
	for i, sub := range req.Subjects {
		sub.Grade = domain.Coalesce(sub.Grade, s.defaultGrade)
		sub = sub.Normalize()
		if err := sub.Validate(); err != nil {
			return nil, &contract.GenerateError{Code: contract.ErrInvalidSubject, Message: err.Error(), Err: err}
		}
		subjects[i] = sub
	}

	progress, err := scheduler.BuildProgress(r.Start, totalDays, subjects)
	if err != nil {
		return nil, internalError("building progress list", err)
	}

	var today time.Time
	if req.Today != nil {
		today = *req.Today
	}
	calendar, err := scheduler.BuildCalendar(r.Start, totalDays, subjects, today)
	if err != nil {
		return nil, internalError("building calendar", err)
	}

	return &contract.GenerateResponse{
		PlanID:    planID(r, subjects),
		Start:     r.Start,
		End:       r.End,
		TotalDays: totalDays,
		Subjects:  subjects,
		Timetable: scheduler.BuildTimetable(subjects),
		Progress:  progress,
		Calendar:  calendar,
	}, nil
}

// GenerateFromFile loads a plan file and generates it. A non-empty grade
// overrides the file's default_grade for subjects that do not name one.
func (s *planService) GenerateFromFile(ctx context.Context, filePath string, grade domain.Grade, today *time.Time) (*contract.GenerateResponse, error) {
	schema, err := importer.LoadPlanSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading plan file: %w", err)
	}
	schema.DefaultGrade = string(domain.Coalesce(grade, domain.Grade(schema.DefaultGrade)))
	return s.GenerateFromSchema(ctx, schema, today)
}

func (s *planService) GenerateFromSchema(ctx context.Context, schema *importer.PlanSchema, today *time.Time) (*contract.GenerateResponse, error) {
	if errs := importer.ValidatePlanSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	req, err := importer.Convert(schema, s.defaultGrade)
	if err != nil {
		return nil, fmt.Errorf("converting plan file: %w", err)
	}
	req.Today = today
	return s.Generate(ctx, req)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("plan file validation failed (%d errors):", len(errs))
	details := make([]string, len(errs))
	for i, e := range errs {
		details[i] = e.Error()
		msg += "\n  - " + details[i]
	}
	return &contract.GenerateError{
		Code:    contract.ErrInvalidPlanFile,
		Message: msg,
		Details: details,
		Err:     errors.Join(errs...),
	}
}

func internalError(step string, err error) error {
	return &contract.GenerateError{
		Code:    contract.ErrInternalError,
		Message: fmt.Sprintf("%s: %v", step, err),
		Err:     err,
	}
}

// planID derives a stable identifier from the normalized inputs.
func planID(r domain.DateRange, subjects []domain.Subject) string {
	var b strings.Builder
	b.WriteString(r.Start.Format(domain.DateLayout))
	b.WriteString("|")
	b.WriteString(r.End.Format(domain.DateLayout))
	for _, sub := range subjects {
		fmt.Fprintf(&b, "|%q/%s/%d", sub.Name, sub.Grade, sub.TotalUnits)
	}
	return uuid.NewSHA1(planNamespace, []byte(b.String())).String()
}
