package domain

import "fmt"

// QuestionType tells the client how to collect an answer.
type QuestionType string

const (
	QuestionTypeChoice QuestionType = "choice"
	QuestionTypeText   QuestionType = "text"
)

// Question is one entry of the static questionnaire.
type Question struct {
	ID      int          `json:"id" yaml:"id"`
	Text    string       `json:"text" yaml:"text"`
	Type    QuestionType `json:"type" yaml:"type"`
	Options []string     `json:"options,omitempty" yaml:"options,omitempty"`
}

// Validate checks that the question is well formed for its type.
func (q *Question) Validate() error {
	if q.ID <= 0 {
		return NewValidationError(fmt.Sprintf("question id must be positive, got %d", q.ID))
	}
	if q.Text == "" {
		return NewValidationError(fmt.Sprintf("question %d: text is required", q.ID))
	}
	switch q.Type {
	case QuestionTypeChoice:
		if len(q.Options) < 2 {
			return NewValidationError(fmt.Sprintf("question %d: choice questions need at least two options", q.ID))
		}
	case QuestionTypeText:
		if len(q.Options) > 0 {
			return NewValidationError(fmt.Sprintf("question %d: text questions cannot have options", q.ID))
		}
	default:
		return NewValidationError(fmt.Sprintf("question %d: unknown type %q", q.ID, q.Type))
	}
	return nil
}

// Clone returns a copy that shares no memory with q.
func (q Question) Clone() Question {
	if q.Options != nil {
		q.Options = append([]string(nil), q.Options...)
	}
	return q
}
