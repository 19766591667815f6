package api

import (
	"github.com/go-chi/chi/v5"
)

// setupContentRoutes wires the content and draft-mode endpoints. Every
// content route runs behind the draft-mode middleware so handlers can pass
// the preview flag explicitly into the content service.
func setupContentRoutes(r chi.Router, handlers *routeHandlers, drafts draftSession) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(drafts.middleware)

		// Home aggregate and homepage singleton
		r.Get("/home", handlers.homeHandler.getHome())
		r.Get("/homepage", handlers.homeHandler.getHomepage())

		// Blog post endpoints
		r.Get("/blog-posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Get("/blog-posts/recent", handlers.blogPostHandler.getRecentBlogPosts())
		r.Get("/blog-posts/slugs", handlers.blogPostHandler.getBlogPostSlugs())
		r.Get("/blog-post/{slug}", handlers.blogPostHandler.getBlogPost())

		// Project endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/featured", handlers.projectHandler.getFeaturedProjects())
		r.Get("/projects/slugs", handlers.projectHandler.getProjectSlugs())
		r.Get("/project/{slug}", handlers.projectHandler.getProject())

		// Draft mode toggle
		r.Get("/api/draft", handlers.draftHandler.enableDraft())
		r.Get("/api/disable-draft", handlers.draftHandler.disableDraft())
	})
}
