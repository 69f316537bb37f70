package models

// SocialLink is an outbound profile link with per-surface visibility flags.
type SocialLink struct {
	ID            string   `json:"_id"`
	Platform      Platform `json:"platform"`
	URL           string   `json:"url"`
	Username      string   `json:"username,omitempty"`
	DisplayText   string   `json:"displayText,omitempty"`
	Icon          *Image   `json:"icon,omitempty"`
	Order         int      `json:"order"`
	IsActive      bool     `json:"isActive"`
	ShowInHeader  bool     `json:"showInHeader"`
	ShowInFooter  bool     `json:"showInFooter"`
	ShowInHero    bool     `json:"showInHero"`
	ShowInContact bool     `json:"showInContact"`
}

// Label returns the text to render for the link: explicit display text first,
// then the username, then the platform name.
func (l SocialLink) Label() string {
	if l.DisplayText != "" {
		return l.DisplayText
	}
	if l.Username != "" {
		return l.Username
	}
	return l.Platform.Label()
}
