package handler

import (
	"agapept/internal/domain"
	"agapept/internal/dto"
	"agapept/internal/logger"
	"agapept/internal/service"
	"agapept/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SubmissionHandler handles scoring and lookup of submissions
type SubmissionHandler struct {
	service   service.SubmissionService
	validator *validation.Validator
}

// NewSubmissionHandler creates a new SubmissionHandler instance
func NewSubmissionHandler(service service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// Submit godoc
// @Summary Score and store a submission
// @Description Scores the answers, stores the submission and returns the personalized result
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Respondent and answers"
// @Success 200 {object} dto.SubmitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submit [post]
func (h *SubmissionHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Unparseable submission body", zap.Error(err))
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}

	resp, err := h.service.Submit(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSubmission godoc
// @Summary Get a submission
// @Tags submissions
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(c *fiber.Ctx) error {
	id, errs := h.validator.ParseSubmissionID(c.Params("id"))
	if len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListSubmissions godoc
// @Summary List recent submissions
// @Description Newest first
// @Tags submissions
// @Produce json
// @Param limit query int false "Maximum number of submissions (1-100)" default(20)
// @Success 200 {object} dto.SubmissionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submissions [get]
func (h *SubmissionHandler) ListSubmissions(c *fiber.Ctx) error {
	limit, errs := h.validator.ParseListLimit(c.Query("limit"))
	if len(errs) > 0 {
		return errs
	}

	resp, err := h.service.ListRecent(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
