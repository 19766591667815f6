package cms

import (
	"context"
	"sort"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLimit is applied when a recent/featured fetch is called without a
// positive limit.
const DefaultLimit = 3

// Service exposes the content read operations. Collection operations degrade
// to an empty result on query failure so a CMS outage yields a site with no
// content rather than a crash; the homepage is the one load-bearing fetch
// that fails loudly.
type Service struct {
	clients *Clients
	mapper  Mapper
	logger  zerolog.Logger
}

func NewService(clients *Clients, mapper Mapper) *Service {
	logger := log.With().Str("component", "cmsService").Logger()

	return &Service{
		clients: clients,
		mapper:  mapper,
		logger:  logger,
	}
}

// Homepage fetches and maps the homepage singleton. Any failure is fatal to
// the caller: there is no reasonable empty-state rendering for the homepage.
func (s *Service) Homepage(ctx context.Context, preview bool) (models.Homepage, error) {
	var raw models.RawHomepage
	found, err := s.clients.For(preview).Fetch(ctx, "homepage", homepageQuery, nil, &raw)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch homepage")
		return models.Homepage{}, errs.NewQueryError("homepage", "", err)
	}
	if !found {
		return models.Homepage{}, errs.NewMissingDocumentError("homepage")
	}
	return s.mapper.MapHomepage(raw)
}

// AllPosts returns every post, newest first. Degrades to empty on failure.
func (s *Service) AllPosts(ctx context.Context, preview bool) []models.BlogPost {
	var raw []models.RawPost
	if _, err := s.clients.For(preview).Fetch(ctx, "allPosts", allPostsQuery, nil, &raw); err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch posts, returning empty result")
		return []models.BlogPost{}
	}

	posts := s.mapper.MapPosts(raw)
	sortPostsByDate(posts)
	return posts
}

// RecentPosts returns up to limit posts, newest first.
func (s *Service) RecentPosts(ctx context.Context, limit int, preview bool) []models.BlogPost {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var raw []models.RawPost
	params := map[string]any{"limit": limit}
	if _, err := s.clients.For(preview).Fetch(ctx, "recentPosts", recentPostsQuery, params, &raw); err != nil {
		s.logger.Error().Err(err).Int("limit", limit).Msg("failed to fetch recent posts, returning empty result")
		return []models.BlogPost{}
	}

	posts := s.mapper.MapPosts(raw)
	sortPostsByDate(posts)
	return truncatePosts(posts, limit)
}

// PostBySlug returns the post with the given slug, or nil when no post
// matches. A query failure is logged and wrapped; callers treat it as
// not-found upstream.
func (s *Service) PostBySlug(ctx context.Context, slug string, preview bool) (*models.BlogPost, error) {
	var raw models.RawPost
	params := map[string]any{"slug": slug}
	found, err := s.clients.For(preview).Fetch(ctx, "postBySlug", postBySlugQuery, params, &raw)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", slug).Msg("failed to fetch post by slug")
		return nil, errs.NewQueryError("postBySlug", slug, err)
	}
	if !found {
		return nil, nil
	}

	post := s.mapper.MapPost(raw)
	return &post, nil
}

// AllPostSlugs returns the slug of every post, for route enumeration.
// Always reads published content.
func (s *Service) AllPostSlugs(ctx context.Context) []string {
	return s.fetchSlugs(ctx, "allPostSlugs", allPostSlugsQuery)
}

// AllProjects returns every project, featured first, then most recently
// completed first. Degrades to empty on failure.
func (s *Service) AllProjects(ctx context.Context, preview bool) []models.Project {
	var raw []models.RawProject
	if _, err := s.clients.For(preview).Fetch(ctx, "allProjects", allProjectsQuery, nil, &raw); err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch projects, returning empty result")
		return []models.Project{}
	}

	projects := s.mapper.MapProjects(raw)
	sortProjects(projects)
	return projects
}

// FeaturedProjects returns up to limit featured projects, most recently
// completed first.
func (s *Service) FeaturedProjects(ctx context.Context, limit int, preview bool) []models.Project {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var raw []models.RawProject
	params := map[string]any{"limit": limit}
	if _, err := s.clients.For(preview).Fetch(ctx, "featuredProjects", featuredProjectsQuery, params, &raw); err != nil {
		s.logger.Error().Err(err).Int("limit", limit).Msg("failed to fetch featured projects, returning empty result")
		return []models.Project{}
	}

	projects := s.mapper.MapProjects(raw)
	projects = filterFeatured(projects)
	sortProjectsByCompletion(projects)
	return truncateProjects(projects, limit)
}

// ProjectBySlug returns the project with the given slug, or nil when no
// project matches. Failures behave as in PostBySlug.
func (s *Service) ProjectBySlug(ctx context.Context, slug string, preview bool) (*models.Project, error) {
	var raw models.RawProject
	params := map[string]any{"slug": slug}
	found, err := s.clients.For(preview).Fetch(ctx, "projectBySlug", projectBySlugQuery, params, &raw)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", slug).Msg("failed to fetch project by slug")
		return nil, errs.NewQueryError("projectBySlug", slug, err)
	}
	if !found {
		return nil, nil
	}

	project := s.mapper.MapProject(raw)
	return &project, nil
}

// AllProjectSlugs returns the slug of every project, for route enumeration.
// Always reads published content.
func (s *Service) AllProjectSlugs(ctx context.Context) []string {
	return s.fetchSlugs(ctx, "allProjectSlugs", allProjectSlugsQuery)
}

func (s *Service) fetchSlugs(ctx context.Context, operation, query string) []string {
	var raw []models.SlugEntry
	if _, err := s.clients.For(false).Fetch(ctx, operation, query, nil, &raw); err != nil {
		s.logger.Error().Err(err).Str("operation", operation).Msg("failed to fetch slugs, returning empty result")
		return []string{}
	}

	slugs := make([]string, 0, len(raw))
	for _, entry := range raw {
		if entry.Slug != "" {
			slugs = append(slugs, entry.Slug)
		}
	}
	return slugs
}

// Dates are ISO strings ("YYYY-MM-DD" / "YYYY-MM"), so lexicographic order
// is chronological. The query already orders results; sorting again here
// keeps the ordering contract independent of CDN behavior.

func sortPostsByDate(posts []models.BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedDate > posts[j].PublishedDate
	})
}

func sortProjects(projects []models.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].Featured != projects[j].Featured {
			return projects[i].Featured
		}
		return projects[i].CompletionDate > projects[j].CompletionDate
	})
}

func sortProjectsByCompletion(projects []models.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CompletionDate > projects[j].CompletionDate
	})
}

func filterFeatured(projects []models.Project) []models.Project {
	featured := projects[:0]
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

func truncatePosts(posts []models.BlogPost, limit int) []models.BlogPost {
	if len(posts) > limit {
		return posts[:limit]
	}
	return posts
}

func truncateProjects(projects []models.Project, limit int) []models.Project {
	if len(projects) > limit {
		return projects[:limit]
	}
	return projects
}
