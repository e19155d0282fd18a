package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesCategory_CaseInsensitive(t *testing.T) {
	assert.True(t, MatchesCategory("PYTHON", CategoryDevelopment))
	assert.True(t, MatchesCategory("Machine Learning Engineer", CategoryTechnical))
	assert.False(t, MatchesCategory("Gardening", CategoryDevelopment))
}

func TestMatchesCategory_SubstringContainment(t *testing.T) {
	// Matching is containment, not word equality.
	assert.True(t, MatchesCategory("react native", CategoryDevelopment))
	assert.True(t, MatchesCategory("nodejs", CategoryDevelopment))
}

func TestFilterByCategory_PreservesOrder(t *testing.T) {
	skills := []string{"Vue", "Cooking", "PHP", "Chess", "React"}
	got := FilterByCategory(skills, CategoryDevelopment)

	assert.Equal(t, []string{"Vue", "PHP", "React"}, got)
}

func TestFilterByCategory_NoMatchesReturnsEmptySlice(t *testing.T) {
	got := FilterByCategory([]string{"Cooking"}, CategoryDesign)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestKeywords_ReturnsCopy(t *testing.T) {
	first := Keywords(CategoryQuizTopic)
	first[0] = "mutated"

	second := Keywords(CategoryQuizTopic)
	assert.NotEqual(t, "mutated", second[0])
}
