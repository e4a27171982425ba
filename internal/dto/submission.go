package dto

import "agapept/internal/domain"

// SubmitRequest is the body of POST /api/submit
// @Description Respondent details and answers to score
type SubmitRequest struct {
	Name string `json:"name" example:"Ana"`
	Age  int    `json:"age" example:"9"`
	// Answers is a pointer so an absent field can be told apart from an empty list.
	Answers *[]domain.Answer `json:"answers"`
}

// SubmitResponse is returned after a submission is scored and stored
// @Description Scored result with the stored submission id
type SubmitResponse struct {
	Success   bool   `json:"success"`
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	domain.Result
}

// SubmissionResponse is a stored submission
// @Description Stored submission with its scored result
type SubmissionResponse struct {
	ID        int64           `json:"id"`
	Timestamp string          `json:"timestamp"`
	Name      string          `json:"name"`
	Age       int             `json:"age"`
	Answers   []domain.Answer `json:"answers"`
	domain.Result
}

// SubmissionListResponse wraps the most recent submissions, newest first.
type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
}

// NewSubmissionResponse flattens a stored submission for the API.
func NewSubmissionResponse(s *domain.Submission) SubmissionResponse {
	answers := s.Answers
	if answers == nil {
		answers = []domain.Answer{}
	}
	resp := SubmissionResponse{
		ID:        s.ID,
		Timestamp: s.FormattedTimestamp(),
		Name:      s.Name,
		Age:       s.Age,
		Answers:   answers,
	}
	if s.Result != nil {
		resp.Result = *s.Result
	}
	return resp
}
