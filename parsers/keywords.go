package parsers

import "strings"

// SkillCategory names one of the fixed keyword tables used for skill
// classification and recommendation predicates.
type SkillCategory string

const (
	CategoryTechnical   SkillCategory = "technical"
	CategorySoft        SkillCategory = "soft"
	CategoryDevelopment SkillCategory = "development"
	CategoryData        SkillCategory = "data"
	CategoryDesign      SkillCategory = "design"
	CategoryManagement  SkillCategory = "management"
	CategoryQuizTopic   SkillCategory = "quiz_topic"
)

// KeywordTableVersion is bumped whenever a keyword table changes, so
// cached classifications can be invalidated.
const KeywordTableVersion = 2

var keywordTables = map[SkillCategory][]string{
	CategoryTechnical: {
		"programming", "language", "framework", "technology", "database",
		"software", "hardware", "code", "development", "engineering",
		"system", "frontend", "backend", "full-stack", "machine learning",
		"data science", "sql", "javascript", "python", "java", "c#", "c++",
		"ruby", "php", "typescript", "react", "angular", "vue", "node",
		"django", "flask", ".net", "spring", "express", "golang",
	},
	CategorySoft: {
		"communication", "leadership", "teamwork", "problem-solving",
		"collaboration", "management", "organizational", "interpersonal",
		"creativity", "adaptability", "presentation", "negotiation",
	},
	CategoryDevelopment: {
		"javascript", "python", "java", "c#", "c++", "ruby", "php",
		"typescript", "react", "angular", "vue", "node", "django", "flask",
		".net", "spring", "express", "golang",
	},
	CategoryData: {
		"data", "analytics", "statistics", "machine learning", "ml", "ai",
		"artificial intelligence", "python", "r", "tableau", "power bi",
		"sql", "excel",
	},
	CategoryDesign: {
		"design", "ui", "ux", "user interface", "user experience", "figma",
		"sketch", "adobe", "photoshop", "illustrator", "xd",
	},
	CategoryManagement: {
		"management", "leader", "supervisor", "project manager", "director",
		"coordination", "strategy", "planning",
	},
	CategoryQuizTopic: {
		"javascript", "react", "python", "node", "java", "cloud",
		"database", "blockchain", "web", "mobile", "css", "html",
		"typescript", "angular", "vue", "ui", "ux", "design", "api",
		"testing", "devops", "security", "golang",
	},
}

// Keywords returns a copy of the keyword table for a category.
func Keywords(category SkillCategory) []string {
	table := keywordTables[category]
	out := make([]string, len(table))
	copy(out, table)
	return out
}

// MatchesCategory reports whether a skill matches any keyword in the
// category's table, by case-insensitive substring containment.
func MatchesCategory(skill string, category SkillCategory) bool {
	lower := strings.ToLower(skill)
	for _, keyword := range keywordTables[category] {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// FilterByCategory returns the skills matching a category, preserving
// their original order.
func FilterByCategory(skills []string, category SkillCategory) []string {
	matched := []string{}
	for _, skill := range skills {
		if MatchesCategory(skill, category) {
			matched = append(matched, skill)
		}
	}
	return matched
}
