package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rinilkunhiraman/portfolio-2026/content"
	"github.com/rinilkunhiraman/portfolio-2026/models"
	"github.com/rinilkunhiraman/portfolio-2026/seo"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(content.NewImageBuilder("proj123", "production"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return r
}

func testPersonal() *models.PersonalInfo {
	return &models.PersonalInfo{
		Name:         "Ada Lovelace",
		FirstName:    "Ada",
		Roles:        []string{"Engineer", "Writer"},
		Tagline:      "Building things",
		Availability: models.Available,
		ProfileImage: &models.Image{Asset: models.ImageAsset{ID: "image-portrait-400x400-jpg"}, Alt: "Ada"},
		SocialLinks:  []models.SocialLink{{Platform: models.PlatformGitHub, URL: "https://github.com/ada"}},
	}
}

func testProject() models.Project {
	return models.Project{
		Title:        "My App",
		Slug:         models.Slug{Current: "my-app"},
		Description:  "A small app",
		Category:     models.CategoryFullstack,
		Status:       models.StatusCompleted,
		MainImage:    &models.Image{Asset: models.ImageAsset{ID: "image-main-1600x900-jpg"}},
		Technologies: []models.Skill{{Name: "Go"}},
		StartDate:    "2023-01-01",
		EndDate:      "2023-07-01",
		LiveURL:      "https://myapp.example",
	}
}

func testExperience() models.Experience {
	return models.Experience{
		Title:        "Engineer",
		Company:      "Initech",
		Type:         models.TypeFullTime,
		StartDate:    "2022-01-01",
		IsCurrent:    true,
		Achievements: []string{"Shipped things"},
		Technologies: []models.Skill{{Name: "Go"}},
	}
}

func basePageData(pageContent any) PageData {
	return PageData{
		Meta: seo.PageMeta{
			Title:       "Test Page",
			Description: "A test page",
			OpenGraph: seo.OpenGraph{
				Title:  "Test Page",
				Images: []seo.OGImage{{URL: "https://ada.example/og.png", Width: 1200, Height: 630}},
			},
			Twitter: seo.TwitterCard{Card: "summary_large_image", Images: []string{"https://ada.example/og.png"}},
		},
		Settings:    &models.SiteSettings{Title: "Ada's Site", Author: "Ada"},
		FooterLinks: []models.SocialLink{{Platform: models.PlatformGitHub, URL: "https://github.com/ada"}},
		Content:     pageContent,
	}
}

func TestRenderEveryPage(t *testing.T) {
	r := newTestRenderer(t)

	category := models.SkillCategory{ID: "c1", Name: "Languages", Color: models.ColorBlue}
	skill := models.Skill{ID: "s1", Name: "Go", Proficiency: 90, Category: &category}
	project := testProject()

	pages := map[string]any{
		"home": HomeData{
			Personal:    testPersonal(),
			Skills:      []models.Skill{skill},
			Categories:  []models.SkillCategory{category},
			Featured:    []models.Project{project},
			Experiences: []models.Experience{testExperience()},
		},
		"about":   AboutData{Personal: testPersonal()},
		"contact": ContactData{Info: &models.ContactInfo{Email: "ada@example.com", FormEnabled: true}},
		"experience": ExperienceData{
			Experiences: []models.Experience{testExperience()},
		},
		"projects":       ProjectsData{Projects: []models.Project{project}},
		"project_detail": ProjectDetailData{Project: &project},
		"skills":         SkillsData{Categories: []models.SkillCategory{category}, Skills: []models.Skill{skill}},
		"not_found":      nil,
		"error":          nil,
	}

	for page, pageContent := range pages {
		t.Run(page, func(t *testing.T) {
			var buf bytes.Buffer
			if err := r.Render(&buf, page, basePageData(pageContent)); err != nil {
				t.Fatalf("Render(%s) error: %v", page, err)
			}
			out := buf.String()
			if !strings.Contains(out, "<title>Test Page</title>") {
				t.Errorf("page %s missing title", page)
			}
			if !strings.Contains(out, "Ada&#39;s Site") && !strings.Contains(out, "Ada's Site") {
				t.Errorf("page %s missing site header brand", page)
			}
		})
	}
}

func TestRenderEveryPageWithAbsentContent(t *testing.T) {
	r := newTestRenderer(t)

	// Every singleton may be missing; pages still render with fallback copy.
	pages := map[string]any{
		"home":       HomeData{},
		"about":      AboutData{},
		"contact":    ContactData{},
		"experience": ExperienceData{},
		"projects":   ProjectsData{},
		"skills":     SkillsData{},
	}

	for page, pageContent := range pages {
		t.Run(page, func(t *testing.T) {
			data := basePageData(pageContent)
			data.Settings = nil
			data.FooterLinks = nil

			var buf bytes.Buffer
			if err := r.Render(&buf, page, data); err != nil {
				t.Fatalf("Render(%s) with absent content: %v", page, err)
			}
		})
	}
}

func TestRenderStructuredData(t *testing.T) {
	r := newTestRenderer(t)

	data := basePageData(AboutData{Personal: testPersonal()})
	data.StructuredData = `[{"@context":"https://schema.org","@type":"Person"}]`

	var buf bytes.Buffer
	if err := r.Render(&buf, "about", data); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), `<script type="application/ld+json">`) {
		t.Error("missing ld+json script tag")
	}
	if !strings.Contains(buf.String(), `"@type":"Person"`) {
		t.Error("structured data not embedded")
	}
}

func TestRenderNoStructuredDataOmitsScript(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	if err := r.Render(&buf, "not_found", basePageData(nil)); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(buf.String(), "application/ld+json") {
		t.Error("empty structured data should omit the script tag")
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	if err := r.Render(&buf, "dashboard", PageData{}); err == nil {
		t.Error("expected error for unknown page name")
	}
}

func TestRenderFallbackHeroAndAbout(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	if err := r.Render(&buf, "home", basePageData(HomeData{})); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Welcome") {
		t.Error("missing hero fallback heading")
	}
	if !strings.Contains(out, "15+") || !strings.Contains(out, "3+") {
		t.Error("missing fallback stats")
	}
	if !strings.Contains(out, "My Journey") {
		t.Error("missing fallback bio")
	}
}
