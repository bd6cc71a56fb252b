package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dreamtoapp/modonty/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	applications *handlers.ApplicationHandler,
	interviews *handlers.InterviewHandler,
	staff *handlers.StaffHandler,
	careers *handlers.CareersHandler,
	authMW fiber.Handler,
	adminMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/login", auth.Login)

	// Публичная часть: карьерная страница, приём заявки, анкета кандидата
	v1.Get("/careers", careers.Sections)
	v1.Post("/applications", applications.Submit)
	v1.Post("/applications/:id/interview/response", interviews.SubmitResponse)

	// Админка: пайплайн найма
	admin := v1.Group("", authMW, adminMW)
	admin.Get("/applications", applications.List)
	admin.Get("/applications/:id", applications.GetByID)
	admin.Patch("/applications/:id/status", applications.UpdateStatus)

	admin.Put("/applications/:id/interview", interviews.Schedule)
	admin.Patch("/applications/:id/interview/confirm", interviews.Confirm)
	admin.Delete("/applications/:id/interview/response", interviews.DeleteResponse)
	admin.Put("/applications/:id/interview/result", interviews.RecordResult)
	admin.Get("/interviews/calendar", interviews.Calendar)

	admin.Post("/staff/convert", staff.Convert)
	admin.Get("/staff", staff.List)
	admin.Get("/staff/:id", staff.GetByID)
}
