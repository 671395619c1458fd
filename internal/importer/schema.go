package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PlanSchema is the top-level structure of a plan file.
type PlanSchema struct {
	StartDate    string          `json:"start_date" yaml:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string          `json:"end_date" yaml:"end_date" validate:"required,datetime=2006-01-02"`
	DefaultGrade string          `json:"default_grade,omitempty" yaml:"default_grade,omitempty" validate:"omitempty,grade"`
	Subjects     []SubjectImport `json:"subjects" yaml:"subjects" validate:"required,min=1,dive"`
}

// SubjectImport defines one subject in the plan file. A blank name becomes
// the default subject name.
type SubjectImport struct {
	Name       string `json:"name" yaml:"name" validate:"max=64"`
	Grade      string `json:"grade,omitempty" yaml:"grade,omitempty" validate:"omitempty,grade"`
	TotalUnits int    `json:"total_units" yaml:"total_units" validate:"gte=1"`
}

// Format selects the plan file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks YAML for .yaml/.yml files and JSON for everything else.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadPlanSchema reads and parses a plan file.
func LoadPlanSchema(path string) (*PlanSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlanSchema(data, FormatForPath(path))
}

// ParsePlanSchema decodes plan file contents in the given format.
func ParsePlanSchema(data []byte, format Format) (*PlanSchema, error) {
	var schema PlanSchema
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing plan file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing plan file: %w", err)
		}
	}
	return &schema, nil
}
