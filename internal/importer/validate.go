package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		return domain.ValidGrades[fl.Field().String()]
	})
	return v
}

// ValidatePlanSchema checks the plan file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidatePlanSchema(schema *PlanSchema) []error {
	var errs []error

	if err := validate.Struct(schema); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return []error{err}
		}
		for _, fe := range ve {
			errs = append(errs, describeFieldError(fe))
		}
	}

	start, startErr := time.Parse(domain.DateLayout, schema.StartDate)
	end, endErr := time.Parse(domain.DateLayout, schema.EndDate)
	if startErr == nil && endErr == nil && !end.After(start) {
		errs = append(errs, fmt.Errorf("end_date %q must be after start_date %q", schema.EndDate, schema.StartDate))
	}

	return errs
}

func describeFieldError(fe validator.FieldError) error {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Errorf("%s: at least %s entry is required", field, fe.Param())
		}
		return fmt.Errorf("%s: must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Errorf("%s: must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "max":
		return fmt.Errorf("%s: must be at most %s characters", field, fe.Param())
	case "datetime":
		return fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, fe.Value())
	case "grade":
		return fmt.Errorf("%s: unknown grade %q", field, fe.Value())
	default:
		return fmt.Errorf("%s: failed %s check", field, fe.Tag())
	}
}
