package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/cms"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type homeHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *cms.Service
}

func newHomeHandler(content *cms.Service) homeHandler {
	logger := log.With().Str("handlerName", "homeHandler").Logger()

	return homeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

// HomeResponse aggregates everything the home page renders.
type HomeResponse struct {
	Homepage         models.Homepage   `json:"homepage"`
	FeaturedProjects []models.Project  `json:"featuredProjects"`
	RecentPosts      []models.BlogPost `json:"recentPosts"`
}

// getHome serves the home aggregate. The three fetches run concurrently and
// the response joins on all of them; only the homepage fetch can fail the
// request, the two collections degrade to empty on their own.
func (h homeHandler) getHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		preview := ctxPreview(r.Context())

		var (
			homepage models.Homepage
			featured []models.Project
			recent   []models.BlogPost
		)

		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			result, err := h.content.Homepage(ctx, preview)
			if err != nil {
				return err
			}
			homepage = result
			return nil
		})
		g.Go(func() error {
			featured = h.content.FeaturedProjects(ctx, cms.DefaultLimit, preview)
			return nil
		})
		g.Go(func() error {
			recent = h.content.RecentPosts(ctx, cms.DefaultLimit, preview)
			return nil
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, HomeResponse{
			Homepage:         homepage,
			FeaturedProjects: featured,
			RecentPosts:      recent,
		})
	}
}

// getHomepage serves the homepage singleton alone.
func (h homeHandler) getHomepage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		homepage, err := h.content.Homepage(r.Context(), ctxPreview(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, homepage)
	}
}
