// Package seo derives page metadata and schema.org structured data from
// fetched content. Everything here is a pure transform over already-resolved
// entities; no I/O happens in this package.
package seo

import (
	"github.com/rinilkunhiraman/portfolio-2026/content"
	"github.com/rinilkunhiraman/portfolio-2026/models"
)

const (
	// DefaultOGImage is the share-image path served from the site itself when
	// neither the entity nor the site settings carry one.
	DefaultOGImage = "/og-image-placeholder.svg"

	OGImageWidth  = 1200
	OGImageHeight = 630

	defaultSiteURL = "https://example.com"
)

// OGImage describes one Open Graph share image.
type OGImage struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// OpenGraph carries the og:* head tags for a page.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	SiteName    string
	Images      []OGImage
	Locale      string
	Type        string
}

// TwitterCard carries the twitter:* head tags for a page.
type TwitterCard struct {
	Card        string
	Title       string
	Description string
	Images      []string
	Creator     string
}

// PageMeta is the full head metadata for one rendered page.
type PageMeta struct {
	Title       string
	Description string
	Keywords    []string
	OpenGraph   OpenGraph
	Twitter     TwitterCard
}

// Builder derives metadata with the configured fallbacks. The site URL
// precedence everywhere is: site settings -> configured fallback -> a
// hardcoded literal.
type Builder struct {
	fallbackSiteURL string
	images          content.ImageBuilder
}

func NewBuilder(fallbackSiteURL string, images content.ImageBuilder) Builder {
	return Builder{fallbackSiteURL: fallbackSiteURL, images: images}
}

// SiteURL resolves the canonical site URL for the given settings.
func (b Builder) SiteURL(settings *models.SiteSettings) string {
	if settings != nil && settings.SiteURL != "" {
		return settings.SiteURL
	}
	if b.fallbackSiteURL != "" {
		return b.fallbackSiteURL
	}
	return defaultSiteURL
}

// Home derives the front-page metadata: site title first, then hardcoded
// literals; description falls back through settings, tagline, literal.
func (b Builder) Home(personal *models.PersonalInfo, settings *models.SiteSettings) PageMeta {
	title := settingsTitle(settings)

	description := "Professional Portfolio"
	if settings != nil && settings.Description != "" {
		description = settings.Description
	} else if personal != nil && personal.Tagline != "" {
		description = personal.Tagline
	}

	siteURL := b.SiteURL(settings)
	ogImage := b.ogImage(nil, settings, siteURL)

	meta := b.page(title, description, siteURL, settings, ogImage, "website")
	if settings != nil {
		meta.Keywords = settings.Keywords
	}
	return meta
}

// About derives the about-page metadata; the description precedence flips to
// prefer the personal tagline over the site description.
func (b Builder) About(personal *models.PersonalInfo, settings *models.SiteSettings) PageMeta {
	name := "Me"
	if personal != nil && personal.FirstName != "" {
		name = personal.FirstName
	}
	title := "About " + name + " | " + settingsTitle(settings)

	description := "Learn more about my journey and expertise"
	if personal != nil && personal.Tagline != "" {
		description = personal.Tagline
	} else if settings != nil && settings.Description != "" {
		description = settings.Description
	}

	siteURL := b.SiteURL(settings)

	var profileImage *models.Image
	if personal != nil {
		profileImage = personal.ProfileImage
	}
	ogImage := b.ogImage(profileImage, settings, siteURL)

	return b.page(title, description, siteURL+"/about", settings, ogImage, "profile")
}

func (b Builder) Contact(settings *models.SiteSettings) PageMeta {
	return b.sectionPage(settings, "Contact Me", "/contact",
		"Get in touch for collaborations, opportunities, or just to say hello")
}

func (b Builder) Experience(settings *models.SiteSettings) PageMeta {
	return b.sectionPage(settings, "Experience & Timeline", "/experience",
		"Explore my professional journey, work experience, and career milestones")
}

func (b Builder) Projects(settings *models.SiteSettings) PageMeta {
	return b.sectionPage(settings, "Projects & Work", "/projects",
		"Browse through my portfolio of projects showcasing my development skills and expertise")
}

func (b Builder) Skills(settings *models.SiteSettings) PageMeta {
	return b.sectionPage(settings, "Skills & Technologies", "/skills",
		"Explore my technical skills and expertise across various technologies and frameworks")
}

// ProjectDetail derives detail-page metadata from the entity itself: its
// title and short description, its main image before the site-wide one.
func (b Builder) ProjectDetail(project *models.Project, settings *models.SiteSettings) PageMeta {
	title := project.Title + " | " + settingsTitle(settings)
	siteURL := b.SiteURL(settings)
	ogImage := b.ogImage(project.MainImage, settings, siteURL)

	meta := b.page(title, project.Description, siteURL+"/projects/"+project.Slug.Current, settings, ogImage, "article")
	meta.OpenGraph.Images[0].Alt = project.Title
	return meta
}

// page assembles the shared metadata shape every route uses.
func (b Builder) page(title, description, pageURL string, settings *models.SiteSettings, ogImage, ogType string) PageMeta {
	var siteName, creator string
	if settings != nil {
		siteName = settings.Title
		creator = settings.TwitterHandle
	}

	return PageMeta{
		Title:       title,
		Description: description,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         pageURL,
			SiteName:    siteName,
			Images: []OGImage{{
				URL:    ogImage,
				Width:  OGImageWidth,
				Height: OGImageHeight,
				Alt:    title,
			}},
			Locale: "en_US",
			Type:   ogType,
		},
		Twitter: TwitterCard{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Images:      []string{ogImage},
			Creator:     creator,
		},
	}
}

// sectionPage is the common shape for list pages with a fixed description.
func (b Builder) sectionPage(settings *models.SiteSettings, section, path, description string) PageMeta {
	title := section + " | " + settingsTitle(settings)
	siteURL := b.SiteURL(settings)
	ogImage := b.ogImage(nil, settings, siteURL)
	return b.page(title, description, siteURL+path, settings, ogImage, "website")
}

// ogImage resolves the share image: entity image first, then the site-wide
// default, then the hardcoded placeholder under the site URL. A malformed
// reference falls through to the next candidate instead of failing the page.
func (b Builder) ogImage(primary *models.Image, settings *models.SiteSettings, siteURL string) string {
	if ref := primary.Ref(); ref != "" {
		if u, err := b.images.Image(ref).Width(OGImageWidth).Height(OGImageHeight).URL(); err == nil {
			return u
		}
	}
	if settings != nil {
		if ref := settings.OGImage.Ref(); ref != "" {
			if u, err := b.images.Image(ref).Width(OGImageWidth).Height(OGImageHeight).URL(); err == nil {
				return u
			}
		}
	}
	return siteURL + DefaultOGImage
}

func settingsTitle(settings *models.SiteSettings) string {
	if settings != nil && settings.Title != "" {
		return settings.Title
	}
	return "Portfolio"
}
