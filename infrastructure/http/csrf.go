package http

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	sessioncontext "companysite/frontend/shared/context"
	"companysite/frontend/shared/html"
)

const (
	// CSRFCookieName holds the per-browser token. Pages echo it back through
	// the hidden CSRFFieldName input rendered into every form.
	CSRFCookieName = "X-CSRF-Token"
	CSRFFieldName  = html.CSRFField
	csrfHeaderName = "X-CSRF-Token"
)

// CSRFMiddleware checks unsafe requests against the double-submit cookie and
// hands the token to the views of safe ones.
func (s *Server) CSRFMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, issued := csrfToken(w, r)
		if !isSafeMethod(r.Method) {
			if reason := checkCSRF(r, token, issued); reason != "" {
				http.Error(w, reason, http.StatusForbidden)
				return
			}
		}
		next.ServeHTTP(w, r.WithContext(sessioncontext.NewContextWithCSRFToken(r.Context(), token)))
	})
}

// checkCSRF returns why r fails the check, or "" when it passes.
func checkCSRF(r *http.Request, token string, issued bool) string {
	if issued {
		return "missing csrf cookie"
	}
	echoed := strings.TrimSpace(r.Header.Get(csrfHeaderName))
	if echoed == "" {
		echoed = strings.TrimSpace(r.PostFormValue(CSRFFieldName))
	}
	if echoed == "" || subtle.ConstantTimeCompare([]byte(token), []byte(echoed)) != 1 {
		return "invalid csrf token"
	}
	return ""
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

// csrfToken reads the browser's token, issuing a new cookie when there is none.
func csrfToken(w http.ResponseWriter, r *http.Request) (token string, issued bool) {
	if c, err := r.Cookie(CSRFCookieName); err == nil {
		if v := strings.TrimSpace(c.Value); v != "" {
			return v, false
		}
	}
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	token = hex.EncodeToString(buf)
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token, true
}
