package handler

import (
	"agapept/internal/dto"
	"agapept/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler serves the questionnaire and the liveness probe.
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *QuizHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{OK: true})
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns the questionnaire in a new random order on every call
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuestionsResponse
// @Router /questions [get]
func (h *QuizHandler) GetQuestions(c *fiber.Ctx) error {
	return c.JSON(h.service.ListQuestions(c.UserContext()))
}
