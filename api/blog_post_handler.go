package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/cms"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *cms.Service
}

func newBlogPostHandler(content *cms.Service) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

// BlogPostCollection represents multiple blog posts
type BlogPostCollection struct {
	BlogPosts []models.BlogPost `json:"blogPosts"`
	Total     int               `json:"total"`
}

// SlugCollection represents a slug-only listing used for route enumeration
type SlugCollection struct {
	Slugs []string `json:"slugs"`
	Total int      `json:"total"`
}

// getAllBlogPosts retrieves all blog posts, newest first
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := h.content.AllPosts(r.Context(), ctxPreview(r.Context()))

		h.responder.WriteJSON(w, BlogPostCollection{
			BlogPosts: posts,
			Total:     len(posts),
		})
	}
}

// getRecentBlogPosts retrieves up to `limit` recent blog posts (default 3)
func (h blogPostHandler) getRecentBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := limitParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		posts := h.content.RecentPosts(r.Context(), limit, ctxPreview(r.Context()))

		h.responder.WriteJSON(w, BlogPostCollection{
			BlogPosts: posts,
			Total:     len(posts),
		})
	}
}

// getBlogPost retrieves a single blog post by slug
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.content.PostBySlug(r.Context(), slug, ctxPreview(r.Context()))
		if err != nil {
			// Query failures on detail pages render as not-found; the
			// service already logged the cause.
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// getBlogPostSlugs retrieves the slug of every blog post
func (h blogPostHandler) getBlogPostSlugs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slugs := h.content.AllPostSlugs(r.Context())

		h.responder.WriteJSON(w, SlugCollection{
			Slugs: slugs,
			Total: len(slugs),
		})
	}
}

// limitParam parses the optional limit query parameter. Absent means the
// service default; a non-integer or negative value is a bad request.
func limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errs.NewBadRequestError("invalid limit")
	}
	return limit, nil
}
