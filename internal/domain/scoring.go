package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const styleThreshold = 4.0

// Answer is a respondent's option label or free text for one question.
type Answer struct {
	QuestionID int    `json:"q"`
	Value      string `json:"a"`
}

// CategoryScores holds the averaged score of each category. It always
// serializes in the fixed category order.
type CategoryScores map[Category]float64

// MarshalJSON writes the scores as an object keyed in enumeration order.
func (s CategoryScores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, c := range allCategories {
		v, ok := s[c]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(string(c))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Result is the scored outcome of one questionnaire.
type Result struct {
	CategoryScores            CategoryScores  `json:"categoryScores"`
	DominantType              string          `json:"dominantType"`
	OverallScore              float64         `json:"overallScore"`
	RecommendedLearningStyles []LearningStyle `json:"recommendedLearningStyles"`
	PersonalizedDescription   string          `json:"personalizedDescription"`
	CalculationSteps          []string        `json:"calculationSteps"`
}

// ScoreEngine turns answers into a Result. It is immutable after
// construction and safe for concurrent use.
type ScoreEngine struct {
	rubric Rubric
}

// NewScoreEngine builds an engine from its own copy of rubric.
func NewScoreEngine(rubric Rubric) *ScoreEngine {
	return &ScoreEngine{rubric: rubric.clone()}
}

var defaultEngine = NewScoreEngine(DefaultRubric())

// ComputeResult scores answers with the default rubric.
func ComputeResult(answers []Answer) *Result {
	return defaultEngine.ComputeResult(answers)
}

// ScoreOption returns the lexicon score for label, or NeutralScore.
func (e *ScoreEngine) ScoreOption(label string) int {
	if score, ok := e.rubric.OptionScores[label]; ok {
		return score
	}
	return NeutralScore
}

// CategoriesFor returns the categories question id feeds; unknown ids feed none.
func (e *ScoreEngine) CategoriesFor(id int) []Category {
	return e.rubric.QuestionCategories[id]
}

// ComputeResult never fails: unknown questions and labels degrade to no
// categories and the neutral score.
func (e *ScoreEngine) ComputeResult(answers []Answer) *Result {
	totals := make(map[Category]float64, len(allCategories))
	counts := make(map[Category]int, len(allCategories))
	steps := make([]string, 0, len(answers))

	for _, a := range answers {
		cats := e.CategoriesFor(a.QuestionID)
		score := e.ScoreOption(a.Value)
		steps = append(steps, traceLine(a, score, cats))
		for _, c := range cats {
			totals[c] += float64(score)
			counts[c]++
		}
	}

	scores := make(CategoryScores, len(allCategories))
	for _, c := range allCategories {
		count := counts[c]
		if count == 0 {
			count = 1
		}
		scores[c] = round2(totals[c] / float64(count))
	}

	dominant := DominantBalanced
	maxScore := math.Inf(-1)
	for _, c := range bigFive {
		if scores[c] > maxScore {
			maxScore = scores[c]
			dominant = string(c)
		}
	}

	var sum float64
	for _, c := range bigFive {
		sum += scores[c]
	}
	overall := round2(sum / float64(len(bigFive)))

	styles := learningStyles(scores)

	return &Result{
		CategoryScores:            scores,
		DominantType:              dominant,
		OverallScore:              overall,
		RecommendedLearningStyles: styles,
		PersonalizedDescription:   describe(dominant, overall, strengths(scores), styles),
		CalculationSteps:          steps,
	}
}

func traceLine(a Answer, score int, cats []Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return fmt.Sprintf("Q%d: option \"%s\" → score %d → categories %s",
		a.QuestionID, a.Value, score, strings.Join(names, ", "))
}

func learningStyles(scores CategoryScores) []LearningStyle {
	var styles []LearningStyle
	add := func(s LearningStyle) {
		for _, existing := range styles {
			if existing == s {
				return
			}
		}
		styles = append(styles, s)
	}
	if scores[CategoryOpenness] >= styleThreshold {
		add(LearningStyleVisual)
	}
	if scores[CategoryExtraversion] >= styleThreshold {
		add(LearningStyleAuditory)
	}
	if scores[CategoryConscientiousness] >= styleThreshold {
		add(LearningStyleReadWrite)
	}
	if scores[CategoryAgreeableness] >= styleThreshold {
		add(LearningStyleKinesthetic)
	}
	if len(styles) == 0 {
		add(LearningStyleMultimodal)
	}
	return styles
}

func strengths(scores CategoryScores) []string {
	var out []string
	if scores[CategoryExtraversion] >= styleThreshold {
		out = append(out, "Communication and initiative")
	}
	if scores[CategoryAgreeableness] >= styleThreshold {
		out = append(out, "Collaboration and empathy")
	}
	if scores[CategoryConscientiousness] >= styleThreshold {
		out = append(out, "Discipline and goal-setting")
	}
	if scores[CategoryOpenness] >= styleThreshold {
		out = append(out, "Curiosity and creativity")
	}
	return out
}

var styleActivities = []struct {
	style    LearningStyle
	activity string
}{
	{LearningStyleVisual, "Mind maps, diagrams, and visual summaries"},
	{LearningStyleAuditory, "Discussions, presentations, and storytelling"},
	{LearningStyleReadWrite, "Journaling, checklists, and structured notes"},
	{LearningStyleKinesthetic, "Role-play, experiments, and hands-on projects"},
}

func activities(styles []LearningStyle) []string {
	var out []string
	for _, sa := range styleActivities {
		for _, s := range styles {
			if s == sa.style {
				out = append(out, sa.activity)
				break
			}
		}
	}
	return out
}

func describe(dominant string, overall float64, strengths []string, styles []LearningStyle) string {
	styleNames := make([]string, len(styles))
	for i, s := range styles {
		styleNames[i] = string(s)
	}

	parts := []string{
		fmt.Sprintf("Dominant tendency: %s.", dominant),
		fmt.Sprintf("Overall development score: %s/5.", FormatScore(overall)),
	}
	if len(strengths) > 0 {
		parts = append(parts, fmt.Sprintf("Strengths: %s.", strings.Join(strengths, "; ")))
	} else {
		parts = append(parts, "Balanced profile with potential across areas.")
	}
	parts = append(parts, fmt.Sprintf("Recommended learning styles: %s.", strings.Join(styleNames, ", ")))
	if acts := activities(styles); len(acts) > 0 {
		parts = append(parts, fmt.Sprintf("Suggested activities: %s.", strings.Join(acts, "; ")))
	} else {
		parts = append(parts, "Try a multimodal mix to explore preferences.")
	}
	return strings.Join(parts, " ")
}

// FormatScore renders a score in its shortest form: 1, 3.5, 4.33.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// round2 rounds to two decimals by looking at the exact binary value, so
// 2.675 (stored as 2.67499...) becomes 2.67 while 1.125 becomes 1.13.
// Scaling by 100 in float64 first would land on the half and round up.
func round2(v float64) float64 {
	if v < 0 {
		return -round2(-v)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v >= 1e21 {
		return v
	}
	// 128 bits hold v*100+0.5 exactly for every v in range.
	x := new(big.Float).SetPrec(128).SetFloat64(v)
	x.Mul(x, big.NewFloat(100))
	x.Add(x, big.NewFloat(0.5))
	n, _ := x.Int(nil)
	f, _ := new(big.Float).SetInt(n).Float64()
	return f / 100
}
