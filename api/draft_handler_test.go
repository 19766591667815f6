package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == draftCookieName {
			return cookie
		}
	}
	return nil
}

func TestEnableDraft(t *testing.T) {
	session := newDraftSession("s3cret")
	handler := newDraftHandler(session, "s3cret")

	t.Run("MissingServerSecretIsServerError", func(t *testing.T) {
		unconfigured := newDraftHandler(newDraftSession(""), "")
		req := httptest.NewRequest(http.MethodGet, "/api/draft?secret=anything&slug=/blog/my-post", nil)
		rec := httptest.NewRecorder()

		unconfigured.enableDraft()(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code, "missing server config is a deployment error, not an auth failure")
		assert.Nil(t, draftCookie(t, rec))
	})

	t.Run("WrongSecretIsUnauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/draft?secret=wrong&slug=/blog/my-post", nil)
		rec := httptest.NewRecorder()

		handler.enableDraft()(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, draftCookie(t, rec), "draft mode must stay disabled")
		assert.NotContains(t, rec.Body.String(), "my-post", "the response must not reveal whether the slug exists")
	})

	t.Run("MissingSlugIsBadRequest", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/draft?secret=s3cret", nil)
		rec := httptest.NewRecorder()

		handler.enableDraft()(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, draftCookie(t, rec))
	})

	t.Run("NonRelativeSlugIsBadRequest", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/draft?secret=s3cret&slug=https://evil.example", nil)
		rec := httptest.NewRecorder()

		handler.enableDraft()(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("SuccessRedirectsWithDraftCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/draft?secret=s3cret&slug=/blog/my-post", nil)
		rec := httptest.NewRecorder()

		handler.enableDraft()(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/blog/my-post", rec.Result().Header.Get("Location"))

		cookie := draftCookie(t, rec)
		require.NotNil(t, cookie)
		assert.True(t, session.verify(cookie.Value), "cookie must carry a validly signed draft claim")
		assert.True(t, cookie.HttpOnly)
	})
}

func TestDisableDraft(t *testing.T) {
	handler := newDraftHandler(newDraftSession("s3cret"), "s3cret")

	req := httptest.NewRequest(http.MethodGet, "/api/disable-draft", nil)
	rec := httptest.NewRecorder()

	handler.disableDraft()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "draft mode disabled")

	cookie := draftCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge, "disable must expire the cookie")
}

func TestDraftMiddleware(t *testing.T) {
	session := newDraftSession("s3cret")

	capturePreview := func(preview *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*preview = ctxPreview(r.Context())
		})
	}

	t.Run("NoCookieMeansPublished", func(t *testing.T) {
		var preview bool
		req := httptest.NewRequest(http.MethodGet, "/blog-posts", nil)

		session.middleware(capturePreview(&preview)).ServeHTTP(httptest.NewRecorder(), req)

		assert.False(t, preview)
	})

	t.Run("SignedCookieEnablesPreview", func(t *testing.T) {
		token, err := session.issue()
		require.NoError(t, err)

		var preview bool
		req := httptest.NewRequest(http.MethodGet, "/blog-posts", nil)
		req.AddCookie(&http.Cookie{Name: draftCookieName, Value: token})

		session.middleware(capturePreview(&preview)).ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, preview)
	})

	t.Run("TamperedCookieMeansPublished", func(t *testing.T) {
		var preview bool
		req := httptest.NewRequest(http.MethodGet, "/blog-posts", nil)
		req.AddCookie(&http.Cookie{Name: draftCookieName, Value: "not-a-valid-token"})

		session.middleware(capturePreview(&preview)).ServeHTTP(httptest.NewRecorder(), req)

		assert.False(t, preview)
	})

	t.Run("CookieSignedWithOtherKeyMeansPublished", func(t *testing.T) {
		other := newDraftSession("different-secret")
		token, err := other.issue()
		require.NoError(t, err)

		var preview bool
		req := httptest.NewRequest(http.MethodGet, "/blog-posts", nil)
		req.AddCookie(&http.Cookie{Name: draftCookieName, Value: token})

		session.middleware(capturePreview(&preview)).ServeHTTP(httptest.NewRecorder(), req)

		assert.False(t, preview)
	})
}
