package content

import (
	"context"
	"fmt"

	"github.com/rinilkunhiraman/portfolio-2026/models"
)

// Store exposes one typed accessor per content shape. Singletons and detail
// lookups return a nil pointer when no document matches; absence is a valid,
// expected outcome and never an error. Transport and query errors surface to
// the caller untouched. Nothing is cached or mutated in process; every call
// is an independent read.
type Store struct {
	client *Client
}

func NewStore(client *Client) *Store {
	return &Store{client: client}
}

func (s *Store) GetPersonalInfo(ctx context.Context) (*models.PersonalInfo, error) {
	var info *models.PersonalInfo
	if err := s.client.Query(ctx, personalInfoQuery, nil, &info); err != nil {
		return nil, fmt.Errorf("content.GetPersonalInfo: %w", err)
	}
	return info, nil
}

func (s *Store) GetSkillCategories(ctx context.Context) ([]models.SkillCategory, error) {
	var categories []models.SkillCategory
	if err := s.client.Query(ctx, skillCategoriesQuery, nil, &categories); err != nil {
		return nil, fmt.Errorf("content.GetSkillCategories: %w", err)
	}
	return categories, nil
}

func (s *Store) GetSkills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := s.client.Query(ctx, skillsQuery, nil, &skills); err != nil {
		return nil, fmt.Errorf("content.GetSkills: %w", err)
	}
	return skills, nil
}

func (s *Store) GetSkillsWithCategories(ctx context.Context) (*models.SkillsWithCategories, error) {
	var data *models.SkillsWithCategories
	if err := s.client.Query(ctx, skillsWithCategoriesQuery, nil, &data); err != nil {
		return nil, fmt.Errorf("content.GetSkillsWithCategories: %w", err)
	}
	return data, nil
}

func (s *Store) GetProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.client.Query(ctx, projectsQuery, nil, &projects); err != nil {
		return nil, fmt.Errorf("content.GetProjects: %w", err)
	}
	return projects, nil
}

func (s *Store) GetFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.client.Query(ctx, featuredProjectsQuery, nil, &projects); err != nil {
		return nil, fmt.Errorf("content.GetFeaturedProjects: %w", err)
	}
	return projects, nil
}

func (s *Store) GetProjectSlugs(ctx context.Context) ([]models.ProjectSlug, error) {
	var slugs []models.ProjectSlug
	if err := s.client.Query(ctx, projectSlugsQuery, nil, &slugs); err != nil {
		return nil, fmt.Errorf("content.GetProjectSlugs: %w", err)
	}
	return slugs, nil
}

func (s *Store) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project *models.Project
	params := map[string]string{"slug": slug}
	if err := s.client.Query(ctx, projectBySlugQuery, params, &project); err != nil {
		return nil, fmt.Errorf("content.GetProjectBySlug: %w", err)
	}
	return project, nil
}

func (s *Store) GetExperiences(ctx context.Context) ([]models.Experience, error) {
	var experiences []models.Experience
	if err := s.client.Query(ctx, experiencesQuery, nil, &experiences); err != nil {
		return nil, fmt.Errorf("content.GetExperiences: %w", err)
	}
	return experiences, nil
}

func (s *Store) GetSocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	var links []models.SocialLink
	if err := s.client.Query(ctx, socialLinksQuery, nil, &links); err != nil {
		return nil, fmt.Errorf("content.GetSocialLinks: %w", err)
	}
	return links, nil
}

func (s *Store) GetHeaderSocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	var links []models.SocialLink
	if err := s.client.Query(ctx, headerSocialLinksQuery, nil, &links); err != nil {
		return nil, fmt.Errorf("content.GetHeaderSocialLinks: %w", err)
	}
	return links, nil
}

func (s *Store) GetFooterSocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	var links []models.SocialLink
	if err := s.client.Query(ctx, footerSocialLinksQuery, nil, &links); err != nil {
		return nil, fmt.Errorf("content.GetFooterSocialLinks: %w", err)
	}
	return links, nil
}

func (s *Store) GetContactSocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	var links []models.SocialLink
	if err := s.client.Query(ctx, contactSocialLinksQuery, nil, &links); err != nil {
		return nil, fmt.Errorf("content.GetContactSocialLinks: %w", err)
	}
	return links, nil
}

func (s *Store) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	var info *models.ContactInfo
	if err := s.client.Query(ctx, contactInfoQuery, nil, &info); err != nil {
		return nil, fmt.Errorf("content.GetContactInfo: %w", err)
	}
	return info, nil
}

func (s *Store) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	var settings *models.SiteSettings
	if err := s.client.Query(ctx, siteSettingsQuery, nil, &settings); err != nil {
		return nil, fmt.Errorf("content.GetSiteSettings: %w", err)
	}
	return settings, nil
}
