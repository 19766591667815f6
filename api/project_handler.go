package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/cms"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *cms.Service
}

func newProjectHandler(content *cms.Service) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

// ProjectCollection represents multiple projects
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
}

// getAllProjects retrieves all projects, featured first then most recently
// completed first
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects := h.content.AllProjects(r.Context(), ctxPreview(r.Context()))

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getFeaturedProjects retrieves up to `limit` featured projects (default 3)
func (h projectHandler) getFeaturedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := limitParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects := h.content.FeaturedProjects(r.Context(), limit, ctxPreview(r.Context()))

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject retrieves a single project by slug
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.content.ProjectBySlug(r.Context(), slug, ctxPreview(r.Context()))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// getProjectSlugs retrieves the slug of every project
func (h projectHandler) getProjectSlugs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slugs := h.content.AllProjectSlugs(r.Context())

		h.responder.WriteJSON(w, SlugCollection{
			Slugs: slugs,
			Total: len(slugs),
		})
	}
}
