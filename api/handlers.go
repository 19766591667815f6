package api

import (
	"github.com/rpupo63/portfolio-backend/cms"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(content *cms.Service, drafts draftSession, draftSecret string) *routeHandlers {
	return &routeHandlers{
		homeHandler:     newHomeHandler(content),
		blogPostHandler: newBlogPostHandler(content),
		projectHandler:  newProjectHandler(content),
		draftHandler:    newDraftHandler(drafts, draftSecret),
	}
}
