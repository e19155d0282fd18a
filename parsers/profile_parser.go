package parsers

import (
	"regexp"
	"strings"
)

// PersonalInfo holds the contact block extracted from a CV.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// ExperienceEntry represents one work experience block.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry represents one education block.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Profile is the structured record extracted from a CV. Fields that could
// not be found are empty strings or empty slices, never nil or missing;
// consumers treat empty as "not found".
type Profile struct {
	PersonalInfo    PersonalInfo      `json:"personal_info"`
	Skills          []string          `json:"skills"`
	TechnicalSkills []string          `json:"technical_skills"`
	SoftSkills      []string          `json:"soft_skills"`
	Experience      []ExperienceEntry `json:"experience"`
	Education       []EducationEntry  `json:"education"`
	Interests       []string          `json:"interests"`
}

// ProfileParser extracts a best-effort Profile from CV text using a
// cascade of independent pattern matches. It never fails: a field whose
// pattern does not match is simply left empty.
type ProfileParser struct {
	nameRegex     *regexp.Regexp
	emailRegex    *regexp.Regexp
	locationRegex *regexp.Regexp
	summaryRegex  *regexp.Regexp
	skillsRegex   *regexp.Regexp
	expRegex      *regexp.Regexp
	eduRegex      *regexp.Regexp
	interestRegex *regexp.Regexp

	listSplitRegex *regexp.Regexp
	labelRegex     *regexp.Regexp
	expBlockRegex  *regexp.Regexp
	eduBlockRegex  *regexp.Regexp
	titleRegex     *regexp.Regexp
	companyRegex   *regexp.Regexp
	durationRegex  *regexp.Regexp
	descRegex      *regexp.Regexp
	yearRegex      *regexp.Regexp
	newlinesRegex  *regexp.Regexp
}

// NewProfileParser creates a profile parser with compiled regexes.
func NewProfileParser() *ProfileParser {
	return &ProfileParser{
		nameRegex:     regexp.MustCompile(`(?m)^[A-Z][a-z]+(?: [A-Z][a-z]+)+`),
		emailRegex:    regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		locationRegex: regexp.MustCompile(`^[A-Za-z][A-Za-z .]*,\s*[A-Za-z][A-Za-z .]*(?:\s*[-–]\s*\d{5})?$`),
		summaryRegex:  regexp.MustCompile(`(?s)(?i:professional summary|summary of qualifications|profile|summary|about)[:\s]*(.*?)(?:\n\n|\n[A-Z]|\z)`),
		skillsRegex:   regexp.MustCompile(`(?s)(?i:technical skills|core competencies|skills)[:\s]*(.*?)(?:\n\n|\n[A-Z]|\z)`),
		expRegex:      regexp.MustCompile(`(?s)(?i:work experience|professional experience|experience|employment)[:\s]*(.*?)(?:\n\n|\n(?i:education)|\z)`),
		eduRegex:      regexp.MustCompile(`(?s)(?i:education|academic background|academic qualifications)[:\s]*(.*?)(?:\n\n|\z)`),
		interestRegex: regexp.MustCompile(`(?s)(?i:interests|hobbies|activities)[:\s]*(.*?)(?:\n\n|\n[A-Z]|\z)`),

		listSplitRegex: regexp.MustCompile(`[,\n•*-]+`),
		labelRegex:     regexp.MustCompile(`^[A-Z][a-z]+:$`),
		expBlockRegex:  regexp.MustCompile(`^(?:[A-Z][a-z]+ [A-Z]|[A-Z]{2,}\s|\d{4})`),
		eduBlockRegex:  regexp.MustCompile(`^[A-Z]`),
		titleRegex:     regexp.MustCompile(`^(.*?)(?:\||at|\n)`),
		companyRegex:   regexp.MustCompile(`(?:\||at)\s*(.*?)(?:\||–|-|\(|\n)`),
		durationRegex:  regexp.MustCompile(`(?:–|-|\()\s*(.*?)(?:\)|\n)`),
		descRegex:      regexp.MustCompile(`(?s)\n(.*)`),
		yearRegex:      regexp.MustCompile(`(?:–|-|\(|\s)(\d{4})`),
		newlinesRegex:  regexp.MustCompile(`\n+`),
	}
}

// Parse extracts a Profile from CV text. Every field is matched
// independently; a failed match yields an empty value for that field.
func (p *ProfileParser) Parse(text string) *Profile {
	profile := &Profile{
		Skills:          []string{},
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		Experience:      []ExperienceEntry{},
		Education:       []EducationEntry{},
		Interests:       []string{},
	}

	profile.PersonalInfo.Name = strings.TrimSpace(p.nameRegex.FindString(text))
	profile.PersonalInfo.Email = strings.TrimSpace(p.emailRegex.FindString(text))
	profile.PersonalInfo.Location = p.extractLocation(text)
	profile.PersonalInfo.Summary = p.extractSection(p.summaryRegex, text)

	profile.Skills = p.extractList(p.skillsRegex, text, true)
	profile.Experience = p.extractExperience(text)
	profile.Education = p.extractEducation(text)
	profile.Interests = p.extractList(p.interestRegex, text, false)

	return profile
}

// extractLocation returns the first line of the form "<words>, <words>",
// optionally followed by a postal code.
func (p *ProfileParser) extractLocation(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if p.locationRegex.MatchString(line) {
			return line
		}
	}
	return ""
}

// extractSection returns the trimmed body captured by a section regex.
func (p *ProfileParser) extractSection(re *regexp.Regexp, text string) string {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// extractList splits a section body on commas, newlines and bullet
// characters. Fragments of length <= 1 are dropped; when dropLabels is
// set, bare "Word:" labels are dropped too.
func (p *ProfileParser) extractList(re *regexp.Regexp, text string, dropLabels bool) []string {
	items := []string{}
	body := p.extractSection(re, text)
	if body == "" {
		return items
	}

	for _, part := range p.listSplitRegex.Split(body, -1) {
		part = strings.TrimSpace(part)
		if len(part) <= 1 {
			continue
		}
		if dropLabels && p.labelRegex.MatchString(part) {
			continue
		}
		items = append(items, part)
	}
	return items
}

// extractExperience parses the experience section into entries.
func (p *ProfileParser) extractExperience(text string) []ExperienceEntry {
	entries := []ExperienceEntry{}
	body := p.extractSection(p.expRegex, text)
	if body == "" {
		return entries
	}

	for _, block := range p.splitBlocks(body, p.expBlockRegex) {
		if len(strings.TrimSpace(block)) < 10 {
			continue
		}

		entry := ExperienceEntry{
			Title:    p.firstGroup(p.titleRegex, block),
			Company:  p.firstGroup(p.companyRegex, block),
			Duration: p.firstGroup(p.durationRegex, block),
		}
		if desc := p.firstGroup(p.descRegex, block); desc != "" {
			entry.Description = strings.TrimSpace(p.newlinesRegex.ReplaceAllString(desc, " "))
		}
		entries = append(entries, entry)
	}
	return entries
}

// extractEducation parses the education section into entries.
func (p *ProfileParser) extractEducation(text string) []EducationEntry {
	entries := []EducationEntry{}
	body := p.extractSection(p.eduRegex, text)
	if body == "" {
		return entries
	}

	for _, block := range p.splitBlocks(body, p.eduBlockRegex) {
		if len(strings.TrimSpace(block)) < 10 {
			continue
		}

		entry := EducationEntry{
			Degree:      p.firstGroup(p.titleRegex, block),
			Institution: p.firstGroup(p.companyRegex, block),
			Year:        p.firstGroup(p.yearRegex, block),
		}
		entries = append(entries, entry)
	}
	return entries
}

// splitBlocks splits a section body into blocks, starting a new block at
// every line whose beginning matches the boundary pattern.
func (p *ProfileParser) splitBlocks(body string, boundary *regexp.Regexp) []string {
	var blocks []string
	var current []string

	for i, line := range strings.Split(body, "\n") {
		if i > 0 && boundary.MatchString(line) && len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

// firstGroup returns the trimmed first capture group, or "".
func (p *ProfileParser) firstGroup(re *regexp.Regexp, text string) string {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}
