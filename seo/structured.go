package seo

import (
	"encoding/json"
	"strings"

	"github.com/rinilkunhiraman/portfolio-2026/models"
)

const schemaContext = "https://schema.org"

// Schema generators map entity fields to schema.org properties. A property
// whose source field is absent is omitted from the JSON entirely (omitempty),
// never emitted as null.

// Ref is a minimal nested schema reference ({@type, name}).
type Ref struct {
	Type string `json:"@type"`
	Name string `json:"name,omitempty"`
}

// PostalAddress is a schema.org PostalAddress.
type PostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality,omitempty"`
}

// ImageObject is a schema.org ImageObject.
type ImageObject struct {
	Type string `json:"@type"`
	URL  string `json:"url,omitempty"`
}

// PersonSchema is a schema.org Person.
type PersonSchema struct {
	Context     string         `json:"@context"`
	Type        string         `json:"@type"`
	Name        string         `json:"name,omitempty"`
	JobTitle    string         `json:"jobTitle,omitempty"`
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url,omitempty"`
	Image       string         `json:"image,omitempty"`
	SameAs      []string       `json:"sameAs,omitempty"`
	Email       string         `json:"email,omitempty"`
	Telephone   string         `json:"telephone,omitempty"`
	Address     *PostalAddress `json:"address,omitempty"`
}

// WebsiteSchema is a schema.org WebSite.
type WebsiteSchema struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Author      *Ref   `json:"author,omitempty"`
}

// CreativeWorkSchema is a schema.org CreativeWork describing a project.
type CreativeWorkSchema struct {
	Context      string `json:"@context"`
	Type         string `json:"@type"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	URL          string `json:"url,omitempty"`
	Image        string `json:"image,omitempty"`
	DateCreated  string `json:"dateCreated,omitempty"`
	DateModified string `json:"dateModified,omitempty"`
	Keywords     string `json:"keywords,omitempty"`
	Author       *Ref   `json:"author,omitempty"`
}

// ArticleSchema is a schema.org Article for a project detail page.
type ArticleSchema struct {
	Context       string               `json:"@context"`
	Type          string               `json:"@type"`
	Headline      string               `json:"headline,omitempty"`
	Description   string               `json:"description,omitempty"`
	Image         string               `json:"image,omitempty"`
	DatePublished string               `json:"datePublished,omitempty"`
	DateModified  string               `json:"dateModified,omitempty"`
	Author        *Ref                 `json:"author,omitempty"`
	Publisher     *OrganizationPartial `json:"publisher,omitempty"`
}

// OrganizationPartial is a nested publisher object.
type OrganizationPartial struct {
	Type string       `json:"@type"`
	Name string       `json:"name,omitempty"`
	Logo *ImageObject `json:"logo,omitempty"`
}

// OrganizationSchema is a schema.org Organization for an employer.
type OrganizationSchema struct {
	Context string `json:"@context,omitempty"`
	Type    string `json:"@type"`
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	Logo    string `json:"logo,omitempty"`
}

// WorkExperienceSchema is a schema.org WorkExperience entry.
type WorkExperienceSchema struct {
	Context     string              `json:"@context"`
	Type        string              `json:"@type"`
	Name        string              `json:"name,omitempty"`
	Description string              `json:"description,omitempty"`
	StartDate   string              `json:"startDate,omitempty"`
	EndDate     string              `json:"endDate,omitempty"`
	Employer    *OrganizationSchema `json:"employer,omitempty"`
	Employee    *Ref                `json:"employee,omitempty"`
}

// ListItem is one breadcrumb entry with a 1-based position.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbSchema is a schema.org BreadcrumbList.
type BreadcrumbSchema struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// Crumb is one ordered {name, url} pair fed to Breadcrumbs.
type Crumb struct {
	Name string
	URL  string
}

// Breadcrumbs builds a BreadcrumbList with positions starting at 1.
func Breadcrumbs(items []Crumb) BreadcrumbSchema {
	elements := make([]ListItem, len(items))
	for i, item := range items {
		elements[i] = ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     item.Name,
			Item:     item.URL,
		}
	}
	return BreadcrumbSchema{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: elements,
	}
}

// Person maps the bio singleton to a Person schema. The links become the
// sameAs profile list; callers pass the widest set they have fetched.
func (b Builder) Person(personal *models.PersonalInfo, links []models.SocialLink, settings *models.SiteSettings) PersonSchema {
	schema := PersonSchema{
		Context:     schemaContext,
		Type:        "Person",
		Name:        personal.FullName(),
		JobTitle:    personal.Title,
		Description: models.PlainText(personal.Bio),
		URL:         b.SiteURL(settings),
		Image:       b.imageURL(personal.ProfileImage),
		Email:       personal.Email,
		Telephone:   personal.Phone,
	}
	if len(links) == 0 {
		links = personal.SocialLinks
	}
	for _, link := range links {
		schema.SameAs = append(schema.SameAs, link.URL)
	}
	if personal.Location != "" {
		schema.Address = &PostalAddress{Type: "PostalAddress", AddressLocality: personal.Location}
	}
	return schema
}

// Website maps the site settings singleton to a WebSite schema.
func (b Builder) Website(settings *models.SiteSettings) WebsiteSchema {
	schema := WebsiteSchema{
		Context:     schemaContext,
		Type:        "WebSite",
		Name:        settings.Title,
		Description: settings.Description,
		URL:         b.SiteURL(settings),
	}
	if settings.Author != "" {
		schema.Author = &Ref{Type: "Person", Name: settings.Author}
	}
	return schema
}

// CreativeWork maps a project to a CreativeWork schema. The URL prefers the
// live deployment over the detail page.
func (b Builder) CreativeWork(project *models.Project, settings *models.SiteSettings) CreativeWorkSchema {
	siteURL := b.SiteURL(settings)

	pageURL := project.LiveURL
	if pageURL == "" {
		pageURL = siteURL + "/projects/" + project.Slug.Current
	}

	author := "Portfolio Owner"
	if settings != nil && settings.Author != "" {
		author = settings.Author
	}

	var keywords []string
	for _, tech := range project.Technologies {
		keywords = append(keywords, tech.Name)
	}

	return CreativeWorkSchema{
		Context:      schemaContext,
		Type:         "CreativeWork",
		Name:         project.Title,
		Description:  project.Description,
		URL:          pageURL,
		Image:        b.imageURL(project.MainImage),
		DateCreated:  project.StartDate,
		DateModified: laterOf(project.EndDate, project.StartDate),
		Keywords:     strings.Join(keywords, ", "),
		Author:       &Ref{Type: "Person", Name: author},
	}
}

// Article maps a project to an Article schema for the detail page.
func (b Builder) Article(project *models.Project, personal *models.PersonalInfo, settings *models.SiteSettings) ArticleSchema {
	schema := ArticleSchema{
		Context:       schemaContext,
		Type:          "Article",
		Headline:      project.Title,
		Description:   project.Description,
		Image:         b.imageURL(project.MainImage),
		DatePublished: project.StartDate,
		DateModified:  laterOf(project.EndDate, project.StartDate),
	}
	if personal != nil {
		schema.Author = &Ref{Type: "Person", Name: personal.FullName()}
	}
	if settings != nil {
		schema.Publisher = &OrganizationPartial{
			Type: "Organization",
			Name: settings.Title,
			Logo: &ImageObject{Type: "ImageObject", URL: b.SiteURL(settings) + "/logo.png"},
		}
	}
	return schema
}

// Organization maps an experience's employer to an Organization schema.
func (b Builder) Organization(experience *models.Experience) OrganizationSchema {
	return OrganizationSchema{
		Context: schemaContext,
		Type:    "Organization",
		Name:    experience.Company,
		URL:     experience.CompanyURL,
		Logo:    b.imageURL(experience.CompanyLogo),
	}
}

// WorkExperience maps a timeline entry to a WorkExperience schema. Current
// positions omit the end date.
func (b Builder) WorkExperience(experience *models.Experience, personal *models.PersonalInfo) WorkExperienceSchema {
	schema := WorkExperienceSchema{
		Context:     schemaContext,
		Type:        "WorkExperience",
		Name:        experience.Title,
		Description: models.PlainText(experience.Description),
		StartDate:   experience.StartDate,
	}
	if !experience.IsCurrent {
		schema.EndDate = experience.EndDate
	}
	if experience.Company != "" {
		employer := b.Organization(experience)
		employer.Context = ""
		schema.Employer = &employer
	}
	if personal != nil {
		schema.Employee = &Ref{Type: "Person", Name: personal.FullName()}
	}
	return schema
}

// MarshalLD serializes the page's schema objects as the JSON array embedded
// in its ld+json script tag.
func MarshalLD(schemas []any) (string, error) {
	data, err := json.Marshal(schemas)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// imageURL builds the full-size CDN URL for an image, or "" when the image
// is absent or its reference is malformed.
func (b Builder) imageURL(image *models.Image) string {
	ref := image.Ref()
	if ref == "" {
		return ""
	}
	u, err := b.images.Image(ref).URL()
	if err != nil {
		return ""
	}
	return u
}

func laterOf(preferred, fallback string) string {
	if preferred != "" {
		return preferred
	}
	return fallback
}
