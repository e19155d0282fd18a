package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillhive/parsers"
)

func devProfile(skills ...string) *parsers.Profile {
	return &parsers.Profile{Skills: skills}
}

func TestRecommend_DevelopmentSkills(t *testing.T) {
	s := NewRecommendationService()

	recs := s.Recommend(devProfile("Vue", "PHP"))

	if assert.Len(t, recs, 2) {
		assert.Equal(t, "Vue.js Developer", recs[0].Title)
		assert.Equal(t, "$70,000 - $100,000", recs[0].SalaryRange)
		assert.Equal(t, []string{"Vue", "PHP"}, recs[0].RequiredSkills)
		assert.Equal(t, "Full Stack Developer", recs[1].Title)
		assert.Equal(t, "$75,000 - $110,000", recs[1].SalaryRange)
	}
}

func TestRecommend_FrameworkTitleOrder(t *testing.T) {
	s := NewRecommendationService()

	// react outranks node in the title table regardless of skill order.
	recs := s.Recommend(devProfile("Node", "React"))
	assert.Equal(t, "React Developer", recs[0].Title)
}

func TestRecommend_SeniorByTitle(t *testing.T) {
	s := NewRecommendationService()

	profile := devProfile("Vue", "PHP")
	profile.Experience = []parsers.ExperienceEntry{
		{Title: "Senior Engineer", Duration: "2 years"},
	}

	recs := s.Recommend(profile)
	assert.Equal(t, "Senior Vue.js Developer", recs[0].Title)
	assert.Equal(t, "$90,000 - $130,000", recs[0].SalaryRange)
	assert.Equal(t, "Principal Engineer, Technical Architect", recs[0].CareerGrowth)
	assert.Equal(t, "Senior Full Stack Developer", recs[1].Title)
}

func TestRecommend_SeniorByDuration(t *testing.T) {
	s := NewRecommendationService()

	profile := devProfile("Vue", "PHP")
	profile.Experience = []parsers.ExperienceEntry{
		{Title: "Engineer", Duration: "7 years"},
	}

	recs := s.Recommend(profile)
	assert.Equal(t, "Senior Vue.js Developer", recs[0].Title)
}

func TestRecommend_YearLikeDurationReadsAsSenior(t *testing.T) {
	s := NewRecommendationService()

	// The duration heuristic reads the first number; "2020" clears the
	// five-year bar even though it is a calendar year.
	profile := devProfile("Vue", "PHP")
	profile.Experience = []parsers.ExperienceEntry{
		{Title: "Engineer", Duration: "2020"},
	}

	recs := s.Recommend(profile)
	assert.Equal(t, "Senior Vue.js Developer", recs[0].Title)
}

func TestRecommend_DataSkills(t *testing.T) {
	s := NewRecommendationService()

	recs := s.Recommend(devProfile("Excel"))

	if assert.Len(t, recs, 2) {
		assert.Equal(t, "Data Analyst", recs[0].Title)
		assert.Equal(t, "Data Scientist", recs[1].Title)
		assert.Equal(t, "$85,000 - $130,000", recs[1].SalaryRange)
	}
}

func TestRecommend_DesignSkills(t *testing.T) {
	s := NewRecommendationService()

	recs := s.Recommend(devProfile("Figma"))

	if assert.Len(t, recs, 1) {
		assert.Equal(t, "UX/UI Designer", recs[0].Title)
	}
}

func TestRecommend_ManagementSkills(t *testing.T) {
	s := NewRecommendationService()

	recs := s.Recommend(devProfile("Planning"))

	if assert.Len(t, recs, 1) {
		assert.Equal(t, "Project Manager", recs[0].Title)
	}
}

func TestRecommend_AllCategoriesCapAtSix(t *testing.T) {
	s := NewRecommendationService()

	recs := s.Recommend(devProfile("React", "Python", "Figma", "Project Manager"))

	assert.Len(t, recs, 6)
	for _, rec := range recs {
		assert.LessOrEqual(t, len(rec.RequiredSkills), 4)
		assert.NotEmpty(t, rec.Title)
		assert.NotEmpty(t, rec.SalaryRange)
	}
}

func TestRecommend_RequiredSkillsTruncatedToFour(t *testing.T) {
	s := NewRecommendationService()

	recs := s.Recommend(devProfile("React", "Vue", "Angular", "Node", "Python", "PHP"))
	assert.Equal(t, []string{"React", "Vue", "Angular", "Node"}, recs[0].RequiredSkills)
}

func TestRecommend_GenericFallback(t *testing.T) {
	s := NewRecommendationService()

	recs := s.Recommend(devProfile("Cooking", "Chess", "Baking", "Singing", "Dancing"))

	if assert.Len(t, recs, 1) {
		rec := recs[0]
		assert.Equal(t, "Professional", rec.Title)
		assert.Contains(t, rec.Description, "Cooking, Chess, Baking")
		assert.Equal(t, []string{"Cooking", "Chess", "Baking", "Singing"}, rec.RequiredSkills)
		assert.Equal(t, "$60,000 - $90,000", rec.SalaryRange)
	}
}

func TestRecommend_NoSkillsStillRecommends(t *testing.T) {
	s := NewRecommendationService()

	recs := s.Recommend(&parsers.Profile{Skills: []string{}})

	if assert.Len(t, recs, 1) {
		assert.Equal(t, "Professional", recs[0].Title)
	}
}
