package importer

import (
	"fmt"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// Convert transforms a validated PlanSchema into a generate request.
// Call ValidatePlanSchema first; Convert assumes the schema is valid.
// Subjects without a grade take the file's default_grade, then fallbackGrade.
func Convert(schema *PlanSchema, fallbackGrade domain.Grade) (contract.GenerateRequest, error) {
	start, err := domain.ParseDate(schema.StartDate)
	if err != nil {
		return contract.GenerateRequest{}, fmt.Errorf("parsing start_date: %w", err)
	}
	end, err := domain.ParseDate(schema.EndDate)
	if err != nil {
		return contract.GenerateRequest{}, fmt.Errorf("parsing end_date: %w", err)
	}

	subjects := make([]domain.Subject, 0, len(schema.Subjects))
	for _, s := range schema.Subjects {
		subjects = append(subjects, domain.Subject{
			Name:       s.Name,
			Grade:      domain.Coalesce(domain.Grade(s.Grade), domain.Grade(schema.DefaultGrade), fallbackGrade),
			TotalUnits: s.TotalUnits,
		}.Normalize())
	}

	return contract.NewGenerateRequest(subjects, start, end), nil
}
