package domain

import (
	"context"
	"time"
)

// TimestampLayout is the ISO-8601 form submissions are stamped with.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Submission is a scored questionnaire together with who answered it.
type Submission struct {
	ID        int64
	Timestamp time.Time
	Name      string
	Age       int
	Answers   []Answer
	Result    *Result
}

// NewSubmission stamps a scored questionnaire with the current UTC time.
func NewSubmission(name string, age int, answers []Answer, result *Result) *Submission {
	return &Submission{
		Timestamp: time.Now().UTC(),
		Name:      name,
		Age:       age,
		Answers:   answers,
		Result:    result,
	}
}

// FormattedTimestamp returns Timestamp in TimestampLayout, always in UTC.
func (s *Submission) FormattedTimestamp() string {
	return s.Timestamp.UTC().Format(TimestampLayout)
}

// SubmissionRepository is the durable store for scored submissions.
type SubmissionRepository interface {
	// Create stores s and sets its auto-incremented ID.
	Create(ctx context.Context, s *Submission) error
	// GetByID returns nil, nil when no submission has the id.
	GetByID(ctx context.Context, id int64) (*Submission, error)
	ListRecent(ctx context.Context, limit int) ([]*Submission, error)
}

// AuditLog appends a plain-text trail of every submission.
type AuditLog interface {
	Append(ctx context.Context, s *Submission) error
}

// Notifier forwards a submission summary to an outbound channel.
type Notifier interface {
	Notify(ctx context.Context, s *Submission) error
}
