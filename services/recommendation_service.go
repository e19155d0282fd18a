package services

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"skillhive/parsers"
)

// JobRecommendation is one suggested job, generated fresh per request and
// never persisted.
type JobRecommendation struct {
	Title          string   `json:"title"`
	CompanyType    string   `json:"company_type"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	SalaryRange    string   `json:"salary_range"`
	CareerGrowth   string   `json:"career_growth"`
	Industry       string   `json:"industry"`
}

// frameworkTitles maps a framework/language keyword to a specific job
// title. Checked in order; the first keyword found in the skill list wins.
var frameworkTitles = []struct {
	Keyword string
	Title   string
}{
	{"react", "React Developer"},
	{"angular", "Angular Developer"},
	{"vue", "Vue.js Developer"},
	{"node", "Node.js Developer"},
	{"javascript", "JavaScript Developer"},
	{"typescript", "TypeScript Developer"},
	{"python", "Python Developer"},
	{"java", "Java Developer"},
	{"php", "PHP Developer"},
}

var firstNumberRegex = regexp.MustCompile(`\d+`)

// RecommendationService turns a profile into a small set of job
// recommendations using keyword predicates over the profile's skills.
type RecommendationService struct {
	salaryPrinter *message.Printer
}

// NewRecommendationService creates a recommendation service.
func NewRecommendationService() *RecommendationService {
	return &RecommendationService{
		salaryPrinter: message.NewPrinter(language.English),
	}
}

// Recommend produces between 1 and 6 recommendations. It never fails:
// when no category predicate matches the profile's skills it returns a
// single generic recommendation.
func (s *RecommendationService) Recommend(profile *parsers.Profile) []JobRecommendation {
	skills := profile.Skills
	recommendations := []JobRecommendation{}

	if len(parsers.FilterByCategory(skills, parsers.CategoryDevelopment)) > 0 {
		senior := s.isSenior(profile)
		prefix := ""
		if senior {
			prefix = "Senior "
		}

		title := "Software Developer"
		for _, ft := range frameworkTitles {
			if s.anySkillContains(skills, ft.Keyword) {
				title = ft.Title
				break
			}
		}

		devSkills := s.requiredSkills(skills, parsers.CategoryDevelopment)
		growth := "Senior Developer, Team Lead"
		if senior {
			growth = "Principal Engineer, Technical Architect"
		}
		recommendations = append(recommendations, JobRecommendation{
			Title:          prefix + title,
			CompanyType:    "Technology Company",
			Description:    "Develop and maintain software applications using modern development practices and tools.",
			RequiredSkills: devSkills,
			SalaryRange:    s.salary(senior, 70000, 100000, 90000, 130000),
			CareerGrowth:   growth,
			Industry:       "Technology",
		})

		fullStackGrowth := "Senior Developer, Team Lead"
		if senior {
			fullStackGrowth = "Technical Lead, Solution Architect"
		}
		recommendations = append(recommendations, JobRecommendation{
			Title:          prefix + "Full Stack Developer",
			CompanyType:    "Software Company",
			Description:    "Work on both frontend and backend systems, designing and implementing features across the stack.",
			RequiredSkills: devSkills,
			SalaryRange:    s.salary(senior, 75000, 110000, 95000, 135000),
			CareerGrowth:   fullStackGrowth,
			Industry:       "Technology",
		})
	}

	if len(parsers.FilterByCategory(skills, parsers.CategoryData)) > 0 {
		dataSkills := s.requiredSkills(skills, parsers.CategoryData)
		recommendations = append(recommendations,
			JobRecommendation{
				Title:          "Data Analyst",
				CompanyType:    "Various Industries",
				Description:    "Analyze data to extract valuable insights and support decision-making processes.",
				RequiredSkills: dataSkills,
				SalaryRange:    s.formatSalary(70000, 100000),
				CareerGrowth:   "Senior Analyst, Data Scientist",
				Industry:       "Business Intelligence",
			},
			JobRecommendation{
				Title:          "Data Scientist",
				CompanyType:    "Technology / Analytics Company",
				Description:    "Apply statistical models and machine learning algorithms to solve complex business problems.",
				RequiredSkills: dataSkills,
				SalaryRange:    s.formatSalary(85000, 130000),
				CareerGrowth:   "Lead Data Scientist, ML Engineer",
				Industry:       "Data Science",
			})
	}

	if len(parsers.FilterByCategory(skills, parsers.CategoryDesign)) > 0 {
		recommendations = append(recommendations, JobRecommendation{
			Title:          "UX/UI Designer",
			CompanyType:    "Creative Agency",
			Description:    "Design user interfaces and experiences for web and mobile applications.",
			RequiredSkills: s.requiredSkills(skills, parsers.CategoryDesign),
			SalaryRange:    s.formatSalary(75000, 110000),
			CareerGrowth:   "Senior Designer, Design Lead",
			Industry:       "Design",
		})
	}

	if len(parsers.FilterByCategory(skills, parsers.CategoryManagement)) > 0 {
		recommendations = append(recommendations, JobRecommendation{
			Title:          "Project Manager",
			CompanyType:    "Various Industries",
			Description:    "Lead and coordinate projects from inception to completion, ensuring timely delivery within budget.",
			RequiredSkills: s.requiredSkills(skills, parsers.CategoryManagement),
			SalaryRange:    s.formatSalary(80000, 120000),
			CareerGrowth:   "Senior PM, Program Manager",
			Industry:       "Management",
		})
	}

	if len(recommendations) == 0 {
		head := skills
		if len(head) > 3 {
			head = head[:3]
		}
		required := skills
		if len(required) > 4 {
			required = required[:4]
		}
		recommendations = append(recommendations, JobRecommendation{
			Title:          "Professional",
			CompanyType:    "Various Companies",
			Description:    "Work with a team to apply your skills in " + strings.Join(head, ", ") + ".",
			RequiredSkills: append([]string{}, required...),
			SalaryRange:    s.formatSalary(60000, 90000),
			CareerGrowth:   "Senior Professional, Team Lead",
			Industry:       "Various",
		})
	}

	return recommendations
}

// isSenior applies the seniority heuristic: the most recent title contains
// "senior", or any experience duration contains a number of at least 5.
func (s *RecommendationService) isSenior(profile *parsers.Profile) bool {
	if len(profile.Experience) > 0 &&
		strings.Contains(strings.ToLower(profile.Experience[0].Title), "senior") {
		return true
	}
	for _, exp := range profile.Experience {
		if num := firstNumberRegex.FindString(exp.Duration); num != "" {
			if years, err := strconv.Atoi(num); err == nil && years >= 5 {
				return true
			}
		}
	}
	return false
}

// requiredSkills filters the profile's skills by category, preserving
// order, truncated to the first 4 matches.
func (s *RecommendationService) requiredSkills(skills []string, category parsers.SkillCategory) []string {
	matched := parsers.FilterByCategory(skills, category)
	if len(matched) > 4 {
		matched = matched[:4]
	}
	return matched
}

func (s *RecommendationService) anySkillContains(skills []string, keyword string) bool {
	for _, skill := range skills {
		if strings.Contains(strings.ToLower(skill), keyword) {
			return true
		}
	}
	return false
}

func (s *RecommendationService) salary(senior bool, min, max, seniorMin, seniorMax int) string {
	if senior {
		return s.formatSalary(seniorMin, seniorMax)
	}
	return s.formatSalary(min, max)
}

// formatSalary renders a display range like "$70,000 - $100,000".
func (s *RecommendationService) formatSalary(min, max int) string {
	return s.salaryPrinter.Sprintf("$%d - $%d", min, max)
}
