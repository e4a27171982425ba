package domain

// NeutralScore is used for any option label the lexicon does not know,
// including free-text answers.
const NeutralScore = 3

// Rubric holds the static tables the score engine works from.
type Rubric struct {
	// QuestionCategories maps a question id to the categories it feeds.
	QuestionCategories map[int][]Category
	// OptionScores maps an exact option label to its 1..5 score.
	OptionScores map[string]int
}

// DefaultRubric returns a fresh copy of the questionnaire's scoring tables.
func DefaultRubric() Rubric {
	return Rubric{
		QuestionCategories: map[int][]Category{
			1:  {CategoryOpenness},
			2:  {CategoryConscientiousness},
			3:  {CategoryAgreeableness},
			4:  {CategoryExtraversion},
			5:  {CategoryConscientiousness},
			6:  {CategoryConscientiousness},
			7:  {CategoryAgreeableness},
			8:  {CategoryExtraversion},
			9:  {CategoryOpenness},
			10: {CategoryReflection},
		},
		OptionScores: map[string]int{
			"Not familiar at all":  1,
			"Never":                1,
			"Not important at all": 1,
			"Strongly Disagree":    1,
			"Strongly disagree":    1,
			"Not likely at all":    1,

			"Somewhat familiar":  2,
			"Rarely":             2,
			"Somewhat important": 2,
			"Disagree":           2,
			"Somewhat Likely":    2,

			"Neutral":      3,
			"Occasionally": 3,

			"Fairly familiar":  4,
			"Frequently":       4,
			"Fairly important": 4,
			"Agree":            4,
			"Fairly likely":    4,

			"Very familiar":  5,
			"Almost Always":  5,
			"Very important": 5,
			"Strongly Agree": 5,
			"Strongly agree": 5,
			"Very likely":    5,
		},
	}
}

func (r Rubric) clone() Rubric {
	out := Rubric{
		QuestionCategories: make(map[int][]Category, len(r.QuestionCategories)),
		OptionScores:       make(map[string]int, len(r.OptionScores)),
	}
	for id, cats := range r.QuestionCategories {
		out.QuestionCategories[id] = append([]Category(nil), cats...)
	}
	for label, score := range r.OptionScores {
		out.OptionScores[label] = score
	}
	return out
}
