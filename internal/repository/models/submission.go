package models

// Submission is the row shape of the submissions table.
type Submission struct {
	ID               int64       `db:"id"`
	Timestamp        string      `db:"timestamp"`
	Name             string      `db:"name"`
	Age              int         `db:"age"`
	ScoresJSON       string      `db:"scores_json"`
	DominantType     string      `db:"dominant_type"`
	OverallScore     float64     `db:"overall_score"`
	Description      string      `db:"description"`
	LearningStyles   StringSlice `db:"learning_styles"`
	RawAnswersJSON   string      `db:"raw_answers_json"`
	CalculationSteps StringSlice `db:"calculation_steps"`
}

func (Submission) TableName() string {
	return "submissions"
}
