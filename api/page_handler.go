package api

import (
	"context"
	"encoding/xml"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rinilkunhiraman/portfolio-2026/content"
	"github.com/rinilkunhiraman/portfolio-2026/errs"
	"github.com/rinilkunhiraman/portfolio-2026/models"
	"github.com/rinilkunhiraman/portfolio-2026/render"
	"github.com/rinilkunhiraman/portfolio-2026/seo"
)

// pageHandler assembles the rendered pages. Every route fetches its content
// concurrently, derives metadata and structured data, and renders; any fetch
// failure is fatal for the whole page, never a partial render.
type pageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	store       *content.Store
	meta        seo.Builder
	startupTime time.Time
}

func newPageHandler(store *content.Store, renderer *render.Renderer, meta seo.Builder, startupTime time.Time) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()
	return pageHandler{
		responder:   NewResponder(logger, renderer),
		logger:      logger,
		store:       store,
		meta:        meta,
		startupTime: startupTime,
	}
}

// chrome is the shared shell every page needs alongside its own content.
type chrome struct {
	settings    *models.SiteSettings
	headerLinks []models.SocialLink
	footerLinks []models.SocialLink
}

func (h pageHandler) fetchChrome(g *errgroup.Group, ctx context.Context, shell *chrome) {
	g.Go(func() (err error) { shell.settings, err = h.store.GetSiteSettings(ctx); return })
	g.Go(func() (err error) { shell.headerLinks, err = h.store.GetHeaderSocialLinks(ctx); return })
	g.Go(func() (err error) { shell.footerLinks, err = h.store.GetFooterSocialLinks(ctx); return })
}

func (h pageHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		g, gctx := errgroup.WithContext(ctx)

		var (
			shell      chrome
			personal   *models.PersonalInfo
			skills     []models.Skill
			categories []models.SkillCategory
			featured   []models.Project
			timeline   []models.Experience
		)

		h.fetchChrome(g, gctx, &shell)
		g.Go(func() (err error) { personal, err = h.store.GetPersonalInfo(gctx); return })
		g.Go(func() (err error) { skills, err = h.store.GetSkills(gctx); return })
		g.Go(func() (err error) { categories, err = h.store.GetSkillCategories(gctx); return })
		g.Go(func() (err error) { featured, err = h.store.GetFeaturedProjects(gctx); return })
		g.Go(func() (err error) { timeline, err = h.store.GetExperiences(gctx); return })

		if err := g.Wait(); err != nil {
			h.responder.WritePageError(w, errs.NewFetchError("loading home page content", err))
			return
		}

		homeContent := render.HomeData{
			Personal:    personal,
			Skills:      skills,
			Categories:  categories,
			Featured:    featured,
			Experiences: timeline,
		}

		var schemas []any
		if personal != nil {
			schemas = append(schemas, h.meta.Person(personal, nil, shell.settings))
		}
		if shell.settings != nil {
			schemas = append(schemas, h.meta.Website(shell.settings))
		}

		h.renderPage(w, "home", h.meta.Home(personal, shell.settings), schemas, shell, homeContent)
	}
}

func (h pageHandler) about() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		g, gctx := errgroup.WithContext(ctx)

		var (
			shell    chrome
			personal *models.PersonalInfo
			profiles []models.SocialLink
		)

		h.fetchChrome(g, gctx, &shell)
		g.Go(func() (err error) { personal, err = h.store.GetPersonalInfo(gctx); return })
		g.Go(func() (err error) { profiles, err = h.store.GetSocialLinks(gctx); return })

		if err := g.Wait(); err != nil {
			h.responder.WritePageError(w, errs.NewFetchError("loading about page content", err))
			return
		}

		siteURL := h.meta.SiteURL(shell.settings)
		var schemas []any
		if personal != nil {
			// The about page carries the fullest Person schema: every active
			// profile, not just the hero subset.
			schemas = append(schemas, h.meta.Person(personal, profiles, shell.settings))
		}
		schemas = append(schemas, seo.Breadcrumbs([]seo.Crumb{
			{Name: "Home", URL: siteURL},
			{Name: "About", URL: siteURL + "/about"},
		}))

		h.renderPage(w, "about", h.meta.About(personal, shell.settings), schemas, shell, render.AboutData{Personal: personal})
	}
}

func (h pageHandler) contact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		g, gctx := errgroup.WithContext(ctx)

		var (
			shell    chrome
			personal *models.PersonalInfo
			info     *models.ContactInfo
			links    []models.SocialLink
		)

		h.fetchChrome(g, gctx, &shell)
		g.Go(func() (err error) { personal, err = h.store.GetPersonalInfo(gctx); return })
		g.Go(func() (err error) { info, err = h.store.GetContactInfo(gctx); return })
		g.Go(func() (err error) { links, err = h.store.GetContactSocialLinks(gctx); return })

		if err := g.Wait(); err != nil {
			h.responder.WritePageError(w, errs.NewFetchError("loading contact page content", err))
			return
		}

		siteURL := h.meta.SiteURL(shell.settings)
		schemas := []any{seo.Breadcrumbs([]seo.Crumb{
			{Name: "Home", URL: siteURL},
			{Name: "Contact", URL: siteURL + "/contact"},
		})}

		h.renderPage(w, "contact", h.meta.Contact(shell.settings), schemas, shell, render.ContactData{
			Personal: personal,
			Info:     info,
			Links:    links,
		})
	}
}

func (h pageHandler) experience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		g, gctx := errgroup.WithContext(ctx)

		var (
			shell    chrome
			personal *models.PersonalInfo
			timeline []models.Experience
		)

		h.fetchChrome(g, gctx, &shell)
		g.Go(func() (err error) { personal, err = h.store.GetPersonalInfo(gctx); return })
		g.Go(func() (err error) { timeline, err = h.store.GetExperiences(gctx); return })

		if err := g.Wait(); err != nil {
			h.responder.WritePageError(w, errs.NewFetchError("loading experience page content", err))
			return
		}

		siteURL := h.meta.SiteURL(shell.settings)
		schemas := []any{seo.Breadcrumbs([]seo.Crumb{
			{Name: "Home", URL: siteURL},
			{Name: "Experience", URL: siteURL + "/experience"},
		})}
		for i := range timeline {
			schemas = append(schemas, h.meta.WorkExperience(&timeline[i], personal))
		}

		h.renderPage(w, "experience", h.meta.Experience(shell.settings), schemas, shell, render.ExperienceData{Experiences: timeline})
	}
}

func (h pageHandler) projects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		g, gctx := errgroup.WithContext(ctx)

		var (
			shell    chrome
			projects []models.Project
		)

		h.fetchChrome(g, gctx, &shell)
		g.Go(func() (err error) { projects, err = h.store.GetProjects(gctx); return })

		if err := g.Wait(); err != nil {
			h.responder.WritePageError(w, errs.NewFetchError("loading projects page content", err))
			return
		}

		siteURL := h.meta.SiteURL(shell.settings)
		schemas := []any{seo.Breadcrumbs([]seo.Crumb{
			{Name: "Home", URL: siteURL},
			{Name: "Projects", URL: siteURL + "/projects"},
		})}
		for i := range projects {
			schemas = append(schemas, h.meta.CreativeWork(&projects[i], shell.settings))
		}

		h.renderPage(w, "projects", h.meta.Projects(shell.settings), schemas, shell, render.ProjectsData{Projects: projects})
	}
}

func (h pageHandler) projectDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		slug := chi.URLParam(r, "slug")

		g, gctx := errgroup.WithContext(ctx)

		var (
			shell    chrome
			personal *models.PersonalInfo
			project  *models.Project
		)

		h.fetchChrome(g, gctx, &shell)
		g.Go(func() (err error) { personal, err = h.store.GetPersonalInfo(gctx); return })
		g.Go(func() (err error) { project, err = h.store.GetProjectBySlug(gctx, slug); return })

		if err := g.Wait(); err != nil {
			h.responder.WritePageError(w, errs.NewFetchError("loading project detail content", err))
			return
		}

		// An unknown slug is a missing page, not a server failure.
		if project == nil {
			h.logger.Warn().Str("slug", slug).Msg("project not found")
			h.responder.WriteNotFoundPage(w, "Project Not Found")
			return
		}

		siteURL := h.meta.SiteURL(shell.settings)
		schemas := []any{
			h.meta.Article(project, personal, shell.settings),
			h.meta.CreativeWork(project, shell.settings),
			seo.Breadcrumbs([]seo.Crumb{
				{Name: "Home", URL: siteURL},
				{Name: "Projects", URL: siteURL + "/projects"},
				{Name: project.Title, URL: siteURL + "/projects/" + project.Slug.Current},
			}),
		}

		h.renderPage(w, "project_detail", h.meta.ProjectDetail(project, shell.settings), schemas, shell, render.ProjectDetailData{Project: project})
	}
}

func (h pageHandler) skills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		g, gctx := errgroup.WithContext(ctx)

		var (
			shell   chrome
			grouped *models.SkillsWithCategories
		)

		h.fetchChrome(g, gctx, &shell)
		g.Go(func() (err error) { grouped, err = h.store.GetSkillsWithCategories(gctx); return })

		if err := g.Wait(); err != nil {
			h.responder.WritePageError(w, errs.NewFetchError("loading skills page content", err))
			return
		}

		skillsContent := render.SkillsData{}
		if grouped != nil {
			skillsContent.Categories = grouped.Categories
			skillsContent.Skills = grouped.Skills
		}

		siteURL := h.meta.SiteURL(shell.settings)
		schemas := []any{seo.Breadcrumbs([]seo.Crumb{
			{Name: "Home", URL: siteURL},
			{Name: "Skills", URL: siteURL + "/skills"},
		})}

		h.renderPage(w, "skills", h.meta.Skills(shell.settings), schemas, shell, skillsContent)
	}
}

type sitemapURL struct {
	XMLName xml.Name `xml:"url"`
	Loc     string   `xml:"loc"`
}

type sitemapSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemap lists every reachable page: the fixed routes plus one entry per
// active project slug.
func (h pageHandler) sitemap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		g, gctx := errgroup.WithContext(ctx)

		var (
			settings *models.SiteSettings
			slugs    []models.ProjectSlug
		)

		g.Go(func() (err error) { settings, err = h.store.GetSiteSettings(gctx); return })
		g.Go(func() (err error) { slugs, err = h.store.GetProjectSlugs(gctx); return })

		if err := g.Wait(); err != nil {
			h.logger.Error().Err(err).Msg("Failed to build sitemap")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		siteURL := h.meta.SiteURL(settings)
		set := sitemapSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
		for _, path := range []string{"", "/about", "/contact", "/experience", "/projects", "/skills"} {
			set.URLs = append(set.URLs, sitemapURL{Loc: siteURL + path})
		}
		for _, slug := range slugs {
			set.URLs = append(set.URLs, sitemapURL{Loc: siteURL + "/projects/" + slug.Slug})
		}

		body, err := xml.Marshal(set)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to marshal sitemap")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Write([]byte(xml.Header))
		w.Write(body)
	}
}

func (h pageHandler) health() http.HandlerFunc {
	type healthResponse struct {
		Status string `json:"status"`
		Uptime string `json:"uptime"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, healthResponse{
			Status: "healthy",
			Uptime: time.Since(h.startupTime).String(),
		})
	}
}

func (h pageHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WritePageError(w, errs.NewNotFoundError("no route matches "+r.URL.Path))
	}
}

// renderPage finishes a page request: serializes the structured data and
// hands the full envelope to the renderer. A broken schema set drops the
// ld+json script rather than the page.
func (h pageHandler) renderPage(w http.ResponseWriter, page string, meta seo.PageMeta, schemas []any, shell chrome, pageContent any) {
	var structured template.JS
	if len(schemas) > 0 {
		ld, err := seo.MarshalLD(schemas)
		if err != nil {
			h.logger.Error().Err(err).Str("page", page).Msg("Failed to marshal structured data")
		} else {
			structured = template.JS(ld)
		}
	}

	h.responder.WritePage(w, page, render.PageData{
		Meta:           meta,
		StructuredData: structured,
		Settings:       shell.settings,
		HeaderLinks:    shell.headerLinks,
		FooterLinks:    shell.footerLinks,
		Content:        pageContent,
	})
}
