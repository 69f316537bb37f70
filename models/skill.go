package models

// SkillCategory groups skills under an author-ordered heading.
type SkillCategory struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name"`
	Slug        Slug          `json:"slug"`
	Description string        `json:"description,omitempty"`
	Icon        *Image        `json:"icon,omitempty"`
	Color       CategoryColor `json:"color,omitempty"`
	Order       int           `json:"order"`
	IsActive    bool          `json:"isActive"`
}

// Skill is a single technology with an author-assigned proficiency 0-100.
type Skill struct {
	ID                string         `json:"_id"`
	Name              string         `json:"name"`
	Category          *SkillCategory `json:"category,omitempty"`
	Proficiency       int            `json:"proficiency"`
	Icon              *Image         `json:"icon,omitempty"`
	Description       string         `json:"description,omitempty"`
	YearsOfExperience int            `json:"yearsOfExperience,omitempty"`
	IsHighlighted     bool           `json:"isHighlighted"`
	Order             int            `json:"order"`
	IsActive          bool           `json:"isActive"`
}

// ProficiencyLabel derives the banding label from the stored proficiency.
// The label is always computed here, never trusted from the content store,
// so it can never disagree with the number.
func ProficiencyLabel(proficiency int) string {
	switch {
	case proficiency >= 85:
		return "expert"
	case proficiency >= 70:
		return "advanced"
	case proficiency >= 60:
		return "intermediate"
	default:
		return "learning"
	}
}

// ProficiencyLabel returns the banding label for this skill.
func (s Skill) ProficiencyLabel() string {
	return ProficiencyLabel(s.Proficiency)
}

// SkillsWithCategories is the combined projection used by the skills page:
// both lists fetched in a single round trip.
type SkillsWithCategories struct {
	Categories []SkillCategory `json:"categories"`
	Skills     []Skill         `json:"skills"`
}
