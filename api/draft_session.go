package api

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

const draftCookieName = "portfolio_draft"

// draftSession manages the session-scoped draft-mode flag as a signed
// cookie. The cookie carries no expiry claim; its lifetime is the browser
// session's, which is the delegated session mechanism.
type draftSession struct {
	signingKey []byte
}

func newDraftSession(secret string) draftSession {
	return draftSession{signingKey: []byte(secret)}
}

func (d draftSession) configured() bool {
	return len(d.signingKey) > 0
}

// issue mints the signed token stored in the draft cookie.
func (d draftSession) issue() (string, error) {
	if !d.configured() {
		return "", errors.New("draft session secret is not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"draft": true,
	})
	return token.SignedString(d.signingKey)
}

// verify reports whether the token is a validly signed draft claim.
func (d draftSession) verify(tokenString string) bool {
	if !d.configured() {
		return false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return d.signingKey, nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	draft, ok := claims["draft"].(bool)
	return ok && draft
}

// set writes the draft cookie on the response.
func (d draftSession) set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clear expires the draft cookie. Safe to call whether or not it is set.
func (d draftSession) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// middleware decodes the draft cookie into an explicit preview flag on the
// request context. Content handlers read the flag from there and pass it as
// an argument; nothing downstream touches the cookie.
func (d draftSession) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		preview := false
		if cookie, err := r.Cookie(draftCookieName); err == nil {
			preview = d.verify(cookie.Value)
		}
		next.ServeHTTP(w, r.WithContext(ctxWithPreview(r.Context(), preview)))
	})
}
