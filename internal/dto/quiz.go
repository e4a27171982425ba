package dto

import "agapept/internal/domain"

// QuestionsResponse lists the questionnaire in a freshly shuffled order
// @Description Questionnaire
type QuestionsResponse struct {
	Questions []domain.Question `json:"questions"`
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	OK bool `json:"ok" example:"true"`
}

// ErrorResponse represents an error in the API response
// @Description Error body; error is always present
type ErrorResponse struct {
	Error   string                   `json:"error"`
	Code    string                   `json:"code,omitempty"`
	Details map[string]interface{}   `json:"details,omitempty"`
	Errors  []domain.ValidationError `json:"errors,omitempty"`
}
