// Package questionnaire holds the static question set served to clients.
package questionnaire

import (
	_ "embed"
	"fmt"
	"math/rand/v2"

	"agapept/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

type document struct {
	Questions []domain.Question `yaml:"questions"`
}

// Questionnaire is an immutable, ordered question set.
type Questionnaire struct {
	questions []domain.Question
}

// Default parses the embedded question set.
func Default() (*Questionnaire, error) {
	return Parse(questionsYAML)
}

// Parse decodes and validates a YAML question set.
func Parse(data []byte) (*Questionnaire, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode questionnaire: %w", err)
	}
	if len(doc.Questions) == 0 {
		return nil, fmt.Errorf("questionnaire has no questions")
	}

	seen := make(map[int]struct{}, len(doc.Questions))
	for i := range doc.Questions {
		q := &doc.Questions[i]
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("invalid questionnaire: %w", err)
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("invalid questionnaire: duplicate question id %d", q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return &Questionnaire{questions: doc.Questions}, nil
}

// All returns a copy of the questions in their defined order.
func (q *Questionnaire) All() []domain.Question {
	out := make([]domain.Question, len(q.questions))
	for i, question := range q.questions {
		out[i] = question.Clone()
	}
	return out
}

// Shuffled returns a freshly shuffled copy; the stored order never changes.
func (q *Questionnaire) Shuffled() []domain.Question {
	out := q.All()
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ShuffledWith is Shuffled driven by r, for reproducible orderings.
func (q *Questionnaire) ShuffledWith(r *rand.Rand) []domain.Question {
	out := q.All()
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
