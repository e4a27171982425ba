package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(app *fiber.App, quiz *QuizHandler, submissions *SubmissionHandler) {
	api := app.Group("/api")

	api.Get("/health", quiz.Health)
	api.Get("/questions", quiz.GetQuestions)

	api.Post("/submit", submissions.Submit)
	api.Get("/submissions", submissions.ListSubmissions)
	api.Get("/submissions/:id", submissions.GetSubmission)
}
