// Package render is the presentational layer: embedded HTML templates plus
// display-only helpers. Business data arrives already fetched and derived;
// nothing here transforms it beyond formatting.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/rinilkunhiraman/portfolio-2026/content"
	"github.com/rinilkunhiraman/portfolio-2026/models"
	"github.com/rinilkunhiraman/portfolio-2026/seo"
)

//go:embed templates
var templateFS embed.FS

var pageNames = []string{
	"home",
	"about",
	"contact",
	"experience",
	"projects",
	"project_detail",
	"skills",
	"not_found",
	"error",
}

// PageData is the envelope every template executes against.
type PageData struct {
	Meta           seo.PageMeta
	StructuredData template.JS // ld+json array, empty when the page has none
	Settings       *models.SiteSettings
	HeaderLinks    []models.SocialLink
	FooterLinks    []models.SocialLink
	Content        any
}

// Per-page content shapes.

type HomeData struct {
	Personal    *models.PersonalInfo
	Skills      []models.Skill
	Categories  []models.SkillCategory
	Featured    []models.Project
	Experiences []models.Experience
}

type AboutData struct {
	Personal *models.PersonalInfo
}

type ContactData struct {
	Personal *models.PersonalInfo
	Info     *models.ContactInfo
	Links    []models.SocialLink
}

type ExperienceData struct {
	Experiences []models.Experience
}

type ProjectsData struct {
	Projects []models.Project
}

type ProjectDetailData struct {
	Project *models.Project
}

type SkillsData struct {
	Categories []models.SkillCategory
	Skills     []models.Skill
}

// Renderer holds one compiled template set per page, each sharing the layout
// and partials.
type Renderer struct {
	pages map[string]*template.Template
}

// New compiles the embedded templates. The image builder backs the imageURL
// template helper.
func New(images content.ImageBuilder) (*Renderer, error) {
	funcs := template.FuncMap{
		"formatDate": FormatDate,
		"dateRange":  DateRange,
		"duration":   Duration,
		"pluralize":  Pluralize,
		"blocksHTML": BlocksHTML,
		"imageURL": func(img models.Image, w, h int) string {
			ref := img.Ref()
			if ref == "" {
				return ""
			}
			u, err := images.Image(ref).Width(w).Height(h).URL()
			if err != nil {
				return ""
			}
			return u
		},
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/pages/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parsing templates for page %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the named page into w.
func (r *Renderer) Render(w io.Writer, page string, data PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		return fmt.Errorf("rendering page %s: %w", page, err)
	}
	return nil
}
