package models

// SiteSettings is the singleton holding site-wide SEO defaults and feature
// flags. Absence is valid; metadata falls back to hardcoded literals.
type SiteSettings struct {
	ID                string   `json:"_id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Keywords          []string `json:"keywords,omitempty"`
	Author            string   `json:"author,omitempty"`
	SiteURL           string   `json:"siteUrl,omitempty"`
	OGImage           *Image   `json:"ogImage,omitempty"`
	TwitterHandle     string   `json:"twitterHandle,omitempty"`
	GoogleAnalyticsID string   `json:"googleAnalyticsId,omitempty"`
	EnableBlog        bool     `json:"enableBlog"`
	EnableDarkMode    bool     `json:"enableDarkMode"`
}
