package models

// PersonalInfo is the singleton bio document. At most one instance exists in
// the content store; absence is valid and every consumer renders fallback copy.
type PersonalInfo struct {
	ID                string       `json:"_id"`
	Name              string       `json:"name"`
	FirstName         string       `json:"firstName"`
	LastName          string       `json:"lastName,omitempty"`
	Title             string       `json:"title,omitempty"`
	Roles             []string     `json:"roles,omitempty"`
	Tagline           string       `json:"tagline,omitempty"`
	Bio               []Block      `json:"bio,omitempty"`
	ProfileImage      *Image       `json:"profileImage,omitempty"`
	ResumeFile        *File        `json:"resumeFile,omitempty"`
	Location          string       `json:"location,omitempty"`
	Availability      Availability `json:"availability,omitempty"`
	YearsOfExperience int          `json:"yearsOfExperience,omitempty"`
	ProjectsCompleted int          `json:"projectsCompleted,omitempty"`
	Email             string       `json:"email,omitempty"`
	Phone             string       `json:"phone,omitempty"`
	SocialLinks       []SocialLink `json:"socialLinks,omitempty"`
}

// FullName joins first and last name, falling back to the display name when
// the parts are not filled in.
func (p *PersonalInfo) FullName() string {
	if p == nil {
		return ""
	}
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.Name
	}
}
