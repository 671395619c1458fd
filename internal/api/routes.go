// Package api exposes plan generation as a JSON HTTP API.
package api

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application. Request logs go to logOutput; nil
// disables request logging.
func NewApp(h *Handler, logOutput io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "studyplan",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	if logOutput != nil {
		app.Use(logger.New(logger.Config{Output: logOutput}))
	}

	SetupRoutes(app, h)
	return app
}

func SetupRoutes(app *fiber.App, h *Handler) {
	app.Get("/healthz", Health)

	plans := app.Group("/api/plans")
	plans.Post("/", h.CreatePlan)
	plans.Get("/timetable", h.GetTimetable)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return Error(c, code, "HTTP_ERROR", err.Error())
}
