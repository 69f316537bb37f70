package models

// CategoryColor is the fixed palette authors can tag a skill category with.
type CategoryColor string

const (
	ColorBlue   CategoryColor = "blue"
	ColorGreen  CategoryColor = "green"
	ColorPurple CategoryColor = "purple"
	ColorOrange CategoryColor = "orange"
	ColorRed    CategoryColor = "red"
	ColorIndigo CategoryColor = "indigo"
	ColorGray   CategoryColor = "gray"
)

// CSSClass maps a palette color to its stylesheet class. Unrecognized values
// fall back to the gray theme rather than leaking raw strings into markup.
func (c CategoryColor) CSSClass() string {
	switch c {
	case ColorBlue, ColorGreen, ColorPurple, ColorOrange, ColorRed, ColorIndigo:
		return "theme-" + string(c)
	default:
		return "theme-gray"
	}
}

// Platform identifies a social link destination.
type Platform string

const (
	PlatformGitHub        Platform = "github"
	PlatformLinkedIn      Platform = "linkedin"
	PlatformTwitter       Platform = "twitter"
	PlatformInstagram     Platform = "instagram"
	PlatformFacebook      Platform = "facebook"
	PlatformYouTube       Platform = "youtube"
	PlatformTikTok        Platform = "tiktok"
	PlatformMedium        Platform = "medium"
	PlatformDevTo         Platform = "devto"
	PlatformHashnode      Platform = "hashnode"
	PlatformStackOverflow Platform = "stackoverflow"
	PlatformCodePen       Platform = "codepen"
	PlatformDribbble      Platform = "dribbble"
	PlatformBehance       Platform = "behance"
	PlatformDiscord       Platform = "discord"
	PlatformSlack         Platform = "slack"
	PlatformEmail         Platform = "email"
	PlatformWebsite       Platform = "website"
	PlatformRSS           Platform = "rss"
	PlatformOther         Platform = "other"
)

var platformLabels = map[Platform]string{
	PlatformGitHub:        "GitHub",
	PlatformLinkedIn:      "LinkedIn",
	PlatformTwitter:       "Twitter/X",
	PlatformInstagram:     "Instagram",
	PlatformFacebook:      "Facebook",
	PlatformYouTube:       "YouTube",
	PlatformTikTok:        "TikTok",
	PlatformMedium:        "Medium",
	PlatformDevTo:         "Dev.to",
	PlatformHashnode:      "Hashnode",
	PlatformStackOverflow: "Stack Overflow",
	PlatformCodePen:       "CodePen",
	PlatformDribbble:      "Dribbble",
	PlatformBehance:       "Behance",
	PlatformDiscord:       "Discord",
	PlatformSlack:         "Slack",
	PlatformEmail:         "Email",
	PlatformWebsite:       "Website",
	PlatformRSS:           "RSS",
}

// Label returns the display name for the platform, "Other" when unrecognized.
func (p Platform) Label() string {
	if label, ok := platformLabels[p]; ok {
		return label
	}
	return "Other"
}

// ProjectCategory is the closed set of project groupings.
type ProjectCategory string

const (
	CategoryFrontend  ProjectCategory = "frontend"
	CategoryBackend   ProjectCategory = "backend"
	CategoryFullstack ProjectCategory = "fullstack"
	CategoryMobile    ProjectCategory = "mobile"
	CategoryData      ProjectCategory = "data"
	CategoryDevOps    ProjectCategory = "devops"
	CategoryML        ProjectCategory = "ml"
	CategoryDesign    ProjectCategory = "design"
	CategoryOther     ProjectCategory = "other"
)

var projectCategoryLabels = map[ProjectCategory]string{
	CategoryFrontend:  "Frontend",
	CategoryBackend:   "Backend",
	CategoryFullstack: "Full-Stack",
	CategoryMobile:    "Mobile",
	CategoryData:      "Data Engineering",
	CategoryDevOps:    "DevOps",
	CategoryML:        "Machine Learning",
	CategoryDesign:    "Design",
}

func (c ProjectCategory) Label() string {
	if label, ok := projectCategoryLabels[c]; ok {
		return label
	}
	return "Other"
}

// ProjectStatus tracks whether a project shipped.
type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusOnHold     ProjectStatus = "on-hold"
	StatusArchived   ProjectStatus = "archived"
)

var projectStatusLabels = map[ProjectStatus]string{
	StatusCompleted:  "Completed",
	StatusInProgress: "In Progress",
	StatusOnHold:     "On Hold",
	StatusArchived:   "Archived",
}

func (s ProjectStatus) Label() string {
	if label, ok := projectStatusLabels[s]; ok {
		return label
	}
	return "Completed"
}

// ExperienceType is the closed set of engagement kinds.
type ExperienceType string

const (
	TypeFullTime   ExperienceType = "fulltime"
	TypePartTime   ExperienceType = "parttime"
	TypeFreelance  ExperienceType = "freelance"
	TypeContract   ExperienceType = "contract"
	TypeInternship ExperienceType = "internship"
	TypeProject    ExperienceType = "project"
	TypePersonal   ExperienceType = "personal"
	TypeVolunteer  ExperienceType = "volunteer"
)

var experienceTypeLabels = map[ExperienceType]string{
	TypeFullTime:   "Full-time",
	TypePartTime:   "Part-time",
	TypeFreelance:  "Freelance",
	TypeContract:   "Contract",
	TypeInternship: "Internship",
	TypeProject:    "Project Work",
	TypePersonal:   "Personal Project",
	TypeVolunteer:  "Volunteer",
}

func (t ExperienceType) Label() string {
	if label, ok := experienceTypeLabels[t]; ok {
		return label
	}
	return "Other"
}

// Availability is the author's current status shown in the hero and about
// sections.
type Availability string

const (
	Available   Availability = "available"
	Busy        Availability = "busy"
	Unavailable Availability = "unavailable"
)

func (a Availability) Label() string {
	switch a {
	case Available:
		return "Available for work"
	case Busy:
		return "Limited availability"
	default:
		return "Not available"
	}
}
