package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/cms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contentService builds a cms.Service against a fake CMS endpoint whose
// responses are chosen per query text.
func contentService(t *testing.T, respond func(query string) any) *cms.Service {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		result := respond(r.URL.Query().Get("query"))
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"result": result}))
	}))
	t.Cleanup(server.Close)

	published := cms.NewClient(server.URL, "published", "")
	mapper := cms.NewMapper(cms.NewImageResolver("abc123", "production"))
	return cms.NewService(cms.NewClientPair(published, nil), mapper)
}

// brokenContentService simulates a CMS outage.
func brokenContentService(t *testing.T) *cms.Service {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	published := cms.NewClient(server.URL, "published", "")
	mapper := cms.NewMapper(cms.NewImageResolver("abc123", "production"))
	return cms.NewService(cms.NewClientPair(published, nil), mapper)
}

func rawPostDoc() map[string]any {
	return map[string]any{
		"_id":           "p1",
		"title":         "My Post",
		"slug":          "my-post",
		"publishedDate": "2024-05-01",
		"author":        "Jane Doe",
		"content":       "Body",
	}
}

func rawHomepageDoc() map[string]any {
	return map[string]any{
		"_id":     "homepage",
		"name":    "Jane Doe",
		"title":   "Software Engineer",
		"tagline": "Building things",
		"bio":     "A bio",
		"headshot": map[string]any{
			"asset": map[string]any{"_ref": "image-deadbeef-800x600-jpg"},
		},
	}
}

func TestGetBlogPost(t *testing.T) {
	serve := func(t *testing.T, content *cms.Service, target string) *httptest.ResponseRecorder {
		t.Helper()
		handler := newBlogPostHandler(content)
		router := chi.NewRouter()
		router.Get("/blog-post/{slug}", handler.getBlogPost())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	t.Run("Found", func(t *testing.T) {
		content := contentService(t, func(query string) any { return rawPostDoc() })

		rec := serve(t, content, "/blog-post/my-post")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slug":"my-post"`)
	})

	t.Run("NotFound", func(t *testing.T) {
		content := contentService(t, func(query string) any { return nil })

		rec := serve(t, content, "/blog-post/missing")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("TransportFailureRendersNotFound", func(t *testing.T) {
		rec := serve(t, brokenContentService(t), "/blog-post/any")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetAllBlogPosts(t *testing.T) {
	t.Run("TransportFailureYieldsEmptyCollection", func(t *testing.T) {
		handler := newBlogPostHandler(brokenContentService(t))

		rec := httptest.NewRecorder()
		handler.getAllBlogPosts()(rec, httptest.NewRequest(http.MethodGet, "/blog-posts", nil))

		assert.Equal(t, http.StatusOK, rec.Code, "a CMS outage degrades to no content, not an error")

		var body BlogPostCollection
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Zero(t, body.Total)
		assert.Empty(t, body.BlogPosts)
	})

	t.Run("InvalidLimitIsBadRequest", func(t *testing.T) {
		handler := newBlogPostHandler(contentService(t, func(query string) any { return nil }))

		rec := httptest.NewRecorder()
		handler.getRecentBlogPosts()(rec, httptest.NewRequest(http.MethodGet, "/blog-posts/recent?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetHome(t *testing.T) {
	t.Run("AggregatesAllThreeFetches", func(t *testing.T) {
		content := contentService(t, func(query string) any {
			switch {
			case strings.Contains(query, `"homepage"`):
				return rawHomepageDoc()
			case strings.Contains(query, "featured == true"):
				return []map[string]any{{"_id": "f1", "title": "Project", "featured": true, "completionDate": "2024-04"}}
			default:
				return []map[string]any{rawPostDoc()}
			}
		})
		handler := newHomeHandler(content)

		rec := httptest.NewRecorder()
		handler.getHome()(rec, httptest.NewRequest(http.MethodGet, "/home", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body HomeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Jane Doe", body.Homepage.Name)
		require.Len(t, body.FeaturedProjects, 1)
		require.Len(t, body.RecentPosts, 1)
	})

	t.Run("HomepageFailureIsFatal", func(t *testing.T) {
		handler := newHomeHandler(brokenContentService(t))

		rec := httptest.NewRecorder()
		handler.getHome()(rec, httptest.NewRequest(http.MethodGet, "/home", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code, "there is no empty-state rendering for the homepage")
	})

	t.Run("MissingHeadshotIsFatal", func(t *testing.T) {
		content := contentService(t, func(query string) any {
			if strings.Contains(query, `"homepage"`) {
				doc := rawHomepageDoc()
				delete(doc, "headshot")
				return doc
			}
			return []map[string]any{}
		})
		handler := newHomeHandler(content)

		rec := httptest.NewRecorder()
		handler.getHome()(rec, httptest.NewRequest(http.MethodGet, "/home", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "headshot")
	})
}
