package audit

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"agapept/internal/domain"
)

const recordHeader = "=== Submission ==="

// FormatRecord renders s as one audit entry, including the trailing
// blank separator.
func FormatRecord(s *domain.Submission) string {
	answers := s.Answers
	if answers == nil {
		answers = []domain.Answer{}
	}
	var result domain.Result
	if s.Result != nil {
		result = *s.Result
	}
	styles := result.RecommendedLearningStyles
	if styles == nil {
		styles = []domain.LearningStyle{}
	}

	lines := []string{
		recordHeader,
		"Timestamp: " + s.FormattedTimestamp(),
		"Name: " + s.Name,
		"Age: " + strconv.Itoa(s.Age),
		"Answers: " + compactJSON(answers),
		"Scores: " + compactJSON(result.CategoryScores),
		"Dominant Type: " + result.DominantType,
		"Overall Score: " + domain.FormatScore(result.OverallScore),
		"Learning Styles: " + compactJSON(styles),
		"Calculation Steps:",
	}
	lines = append(lines, result.CalculationSteps...)
	lines = append(lines, "Description:", result.PersonalizedDescription, "\n\n")
	return strings.Join(lines, "\n")
}

// compactJSON encodes v without HTML escaping so free text reads as typed.
func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
