package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"agapept/internal/domain"
	"agapept/internal/dto"
)

const (
	MaxNameLength   = 100
	MaxAge          = 150
	MaxAnswerLength = 2000

	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSubmitRequest checks a submission before it is scored.
func (v *Validator) ValidateSubmitRequest(req *dto.SubmitRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req == nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("body")}
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if n := utf8.RuneCountInString(name); n > MaxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", n, 1, MaxNameLength))
	}

	if req.Age <= 0 || req.Age > MaxAge {
		errors = append(errors, domain.NewOutOfRangeError("age", req.Age, 1, MaxAge))
	}

	if req.Answers == nil {
		errors = append(errors, domain.NewMissingFieldError("answers"))
		return errors
	}
	// Unknown question ids are scored, not rejected.
	for i, a := range *req.Answers {
		if n := utf8.RuneCountInString(a.Value); n > MaxAnswerLength {
			errors = append(errors, domain.NewOutOfRangeError(answerField(i, "a"), n, 0, MaxAnswerLength))
		}
	}

	return errors
}

// ParseSubmissionID validates a path id.
func (v *Validator) ParseSubmissionID(raw string) (int64, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("id", raw)}
	}
	return id, nil
}

// ParseListLimit returns DefaultListLimit for an empty value.
func (v *Validator) ParseListLimit(raw string) (int, domain.ValidationErrors) {
	if raw == "" {
		return DefaultListLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("limit", raw)}
	}
	if limit < 1 || limit > MaxListLimit {
		return 0, domain.ValidationErrors{domain.NewOutOfRangeError("limit", limit, 1, MaxListLimit)}
	}
	return limit, nil
}

func answerField(i int, name string) string {
	return "answers[" + strconv.Itoa(i) + "]." + name
}
