package parsers

// Classification is the result of partitioning a skill list into
// technical and soft skills. The partition is non-exclusive: a skill
// matching both keyword tables appears in both lists.
type Classification struct {
	Technical []string
	Soft      []string

	// TechnicalFallback / SoftFallback are set when the corresponding
	// keyword table matched nothing and the positional half-split was
	// used instead.
	TechnicalFallback bool
	SoftFallback      bool
}

// ClassifySkills partitions skills by case-insensitive keyword matching
// against the technical and soft tables. When a table matches nothing,
// the classifier falls back to a positional split: the first half of the
// skill list (rounded up) stands in for technical skills, the second
// half for soft skills, so downstream consumers always have something to
// work with. The input slice is never mutated.
func ClassifySkills(skills []string) Classification {
	c := Classification{
		Technical: FilterByCategory(skills, CategoryTechnical),
		Soft:      FilterByCategory(skills, CategorySoft),
	}

	half := (len(skills) + 1) / 2

	if len(c.Technical) == 0 {
		c.Technical = append([]string{}, skills[:half]...)
		c.TechnicalFallback = true
	}
	if len(c.Soft) == 0 {
		c.Soft = append([]string{}, skills[half:]...)
		c.SoftFallback = true
	}

	return c
}
