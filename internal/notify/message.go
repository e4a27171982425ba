package notify

import (
	"fmt"
	"strings"

	"agapept/internal/audit"
	"agapept/internal/domain"
)

// Message is a composed plain-text notification.
type Message struct {
	Subject string
	Body    string
}

// Compose builds the summary email for s. The body ends with the full
// audit record.
func Compose(s *domain.Submission) Message {
	var result domain.Result
	if s.Result != nil {
		result = *s.Result
	}
	overall := domain.FormatScore(result.OverallScore)

	styles := make([]string, len(result.RecommendedLearningStyles))
	for i, style := range result.RecommendedLearningStyles {
		styles[i] = string(style)
	}

	body := strings.Join([]string{
		"Hello,",
		"",
		"A new Personality Development Test submission has been received.",
		"",
		"Student: " + s.Name,
		fmt.Sprintf("Age: %d", s.Age),
		"Dominant Type: " + result.DominantType,
		"Overall Score: " + overall + "/5",
		"Recommended Learning Styles: " + strings.Join(styles, ", "),
		"",
		"Summary:",
		result.PersonalizedDescription,
		"",
		"— Full submission details below —",
		audit.FormatRecord(s),
		"Best regards,",
		"AgapePT System",
	}, "\n")

	return Message{
		Subject: fmt.Sprintf("AgapePT Submission • %s (Age %d) • %s • %s/5", s.Name, s.Age, result.DominantType, overall),
		Body:    body,
	}
}
