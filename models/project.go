package models

// Project is a portfolio entry. Slug is unique among active projects.
type Project struct {
	ID              string          `json:"_id"`
	Title           string          `json:"title"`
	Slug            Slug            `json:"slug"`
	Description     string          `json:"description"`
	LongDescription []Block         `json:"longDescription,omitempty"`
	MainImage       *Image          `json:"mainImage,omitempty"`
	Gallery         []Image         `json:"gallery,omitempty"`
	Category        ProjectCategory `json:"category,omitempty"`
	Technologies    []Skill         `json:"technologies,omitempty"`
	Features        []string        `json:"features,omitempty"`
	Challenges      []Block         `json:"challenges,omitempty"`
	Solutions       []Block         `json:"solutions,omitempty"`
	Results         []Block         `json:"results,omitempty"`
	LiveURL         string          `json:"liveUrl,omitempty"`
	GithubURL       string          `json:"githubUrl,omitempty"`
	DemoURL         string          `json:"demoUrl,omitempty"`
	CaseStudyURL    string          `json:"caseStudyUrl,omitempty"`
	StartDate       string          `json:"startDate,omitempty"`
	EndDate         string          `json:"endDate,omitempty"`
	Client          string          `json:"client,omitempty"`
	TeamSize        int             `json:"teamSize,omitempty"`
	MyRole          string          `json:"myRole,omitempty"`
	Status          ProjectStatus   `json:"status,omitempty"`
	Testimonial     *Testimonial    `json:"testimonial,omitempty"`
	IsFeatured      bool            `json:"isFeatured"`
	Order           int             `json:"order"`
	IsActive        bool            `json:"isActive"`
}

// Testimonial is an optional quote attached to a project.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
}

// ProjectSlug is the minimal projection used to enumerate detail routes.
type ProjectSlug struct {
	Slug string `json:"slug"`
}
