package service

import (
	"context"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/importer"
)

// PlanService is the single entry point for building study plans.
type PlanService interface {
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResponse, error)
	GenerateFromFile(ctx context.Context, filePath string, grade domain.Grade, today *time.Time) (*contract.GenerateResponse, error)
	GenerateFromSchema(ctx context.Context, schema *importer.PlanSchema, today *time.Time) (*contract.GenerateResponse, error)
}
