package domain

// Category is a personality dimension a question contributes to.
type Category string

const (
	CategoryExtraversion      Category = "Extraversion"
	CategoryAgreeableness     Category = "Agreeableness"
	CategoryConscientiousness Category = "Conscientiousness"
	CategoryNeuroticism       Category = "Neuroticism"
	CategoryOpenness          Category = "Openness"
	// CategoryReflection is scored but never competes for the dominant type
	// and is left out of the overall score.
	CategoryReflection Category = "Reflection"
)

// DominantBalanced is reported when no Big Five category leads.
const DominantBalanced = "Balanced"

// allCategories is the fixed enumeration order used for output.
var allCategories = [...]Category{
	CategoryExtraversion,
	CategoryAgreeableness,
	CategoryConscientiousness,
	CategoryNeuroticism,
	CategoryOpenness,
	CategoryReflection,
}

var bigFive = [...]Category{
	CategoryExtraversion,
	CategoryAgreeableness,
	CategoryConscientiousness,
	CategoryNeuroticism,
	CategoryOpenness,
}

// AllCategories returns every scored category in enumeration order.
func AllCategories() []Category {
	return append([]Category(nil), allCategories[:]...)
}

// BigFive returns the five categories eligible for the dominant type.
func BigFive() []Category {
	return append([]Category(nil), bigFive[:]...)
}

// IsBigFive reports whether c takes part in the dominant type and overall score.
func (c Category) IsBigFive() bool {
	for _, b := range bigFive {
		if b == c {
			return true
		}
	}
	return false
}

// Valid reports whether c belongs to the fixed enumeration.
func (c Category) Valid() bool {
	return c == CategoryReflection || c.IsBigFive()
}

// LearningStyle is a recommended way of studying derived from category scores.
type LearningStyle string

const (
	LearningStyleVisual      LearningStyle = "Visual"
	LearningStyleAuditory    LearningStyle = "Auditory"
	LearningStyleReadWrite   LearningStyle = "Read/Write"
	LearningStyleKinesthetic LearningStyle = "Kinesthetic"
	LearningStyleMultimodal  LearningStyle = "Multimodal"
)
