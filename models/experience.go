package models

// Experience is one timeline entry: a job, contract or personal engagement.
type Experience struct {
	ID              string         `json:"_id"`
	Title           string         `json:"title"`
	Company         string         `json:"company,omitempty"`
	CompanyURL      string         `json:"companyUrl,omitempty"`
	CompanyLogo     *Image         `json:"companyLogo,omitempty"`
	CompanyWebsite  string         `json:"companyWebsite,omitempty"`
	Type            ExperienceType `json:"type,omitempty"`
	Location        string         `json:"location,omitempty"`
	StartDate       string         `json:"startDate"`
	EndDate         string         `json:"endDate,omitempty"`
	IsCurrent       bool           `json:"isCurrent"`
	Description     []Block        `json:"description,omitempty"`
	Achievements    []string       `json:"achievements,omitempty"`
	Technologies    []Skill        `json:"technologies,omitempty"`
	RelatedProjects []Project      `json:"relatedProjects,omitempty"`
	Order           int            `json:"order"`
	IsActive        bool           `json:"isActive"`
}
