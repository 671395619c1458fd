package api

import (
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/importer"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/gofiber/fiber/v2"
)

// Handler serves plan generation over HTTP.
type Handler struct {
	Plans service.PlanService
	// Now supplies "today" for calendar highlighting when the request does
	// not pass ?today=.
	Now func() time.Time
}

func (h *Handler) today(c *fiber.Ctx) (*time.Time, error) {
	if v := c.Query("today"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			return nil, err
		}
		return &d, nil
	}
	if h.Now == nil {
		return nil, nil
	}
	d := domain.CivilDate(h.Now())
	return &d, nil
}

// CreatePlan builds a plan from a plan-file JSON body.
func (h *Handler) CreatePlan(c *fiber.Ctx) error {
	var schema importer.PlanSchema
	if err := c.BodyParser(&schema); err != nil {
		return Error(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON plan")
	}

	today, err := h.today(c)
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "INVALID_QUERY", err.Error())
	}

	resp, err := h.Plans.GenerateFromSchema(c.UserContext(), &schema, today)
	if err != nil {
		return generateFailure(c, err)
	}
	return Success(c, "plan generated", resp)
}

// GetTimetable returns the weekly timetable for a comma-separated subject
// list. The timetable does not depend on dates.
func (h *Handler) GetTimetable(c *fiber.Ctx) error {
	var subjects []domain.Subject
	for _, name := range strings.Split(c.Query("subjects"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			subjects = append(subjects, domain.Subject{Name: name, TotalUnits: 1})
		}
	}
	if len(subjects) == 0 {
		return Error(c, fiber.StatusBadRequest, string(contract.ErrNoSubjects), domain.ErrNoSubjects.Error())
	}
	return Success(c, "timetable generated", scheduler.BuildTimetable(subjects))
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func generateFailure(c *fiber.Ctx, err error) error {
	var ge *contract.GenerateError
	if !errors.As(err, &ge) {
		return Error(c, fiber.StatusInternalServerError, string(contract.ErrInternalError), err.Error())
	}
	if ge.Code == contract.ErrInternalError {
		return Error(c, fiber.StatusInternalServerError, string(ge.Code), ge.Message)
	}
	if len(ge.Details) > 0 {
		return ErrorWithDetails(c, fiber.StatusBadRequest, string(ge.Code), "plan file validation failed", ge.Details)
	}
	return Error(c, fiber.StatusBadRequest, string(ge.Code), ge.Message)
}
