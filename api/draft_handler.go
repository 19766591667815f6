package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type draftHandler struct {
	responder Responder
	logger    zerolog.Logger
	session   draftSession
	secret    string
}

func newDraftHandler(session draftSession, secret string) draftHandler {
	logger := log.With().Str("handlerName", "draftHandler").Logger()

	return draftHandler{
		responder: NewResponder(logger),
		logger:    logger,
		session:   session,
		secret:    secret,
	}
}

// enableDraft turns draft mode on for the caller's session and redirects to
// the requested path. A missing server secret is a deployment error (500); a
// mismatched caller secret is an auth failure (401) that never reveals
// whether the slug exists; a missing slug is a validation failure (400).
func (h draftHandler) enableDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.secret == "" {
			h.logger.Error().Msg("draft mode secret is not configured")
			h.responder.WriteError(w, errs.NewConfigError("DRAFT_MODE_SECRET", "draft mode is not configured on this server"))
			return
		}

		secret := r.URL.Query().Get("secret")
		if subtle.ConstantTimeCompare([]byte(secret), []byte(h.secret)) != 1 {
			h.responder.WriteError(w, errs.NewInvalidSecretError())
			return
		}

		slug := r.URL.Query().Get("slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewMissingParamError("slug"))
			return
		}
		if !strings.HasPrefix(slug, "/") {
			h.responder.WriteError(w, errs.BadRequest("slug must be an application-relative path"))
			return
		}

		token, err := h.session.issue()
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to issue draft session token")
			h.responder.WriteError(w, errs.NewInternalError("failed to enable draft mode"))
			return
		}

		h.session.set(w, token)
		h.logger.Info().Str("slug", slug).Msg("draft mode enabled")
		http.Redirect(w, r, slug, http.StatusFound)
	}
}

// disableDraft turns draft mode off for the caller's session. Idempotent;
// always succeeds.
func (h draftHandler) disableDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.session.clear(w)
		h.responder.WriteJSON(w, map[string]string{
			"message": "draft mode disabled",
		})
	}
}
