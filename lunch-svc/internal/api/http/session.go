package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	SessionCookie = "lunchtime_session"
	SessionHeader = "X-Session-ID"
)

type sessionKey struct{}

// SessionFromContext returns the visitor session set by WithSession.
func SessionFromContext(ctx context.Context) string {
	session, _ := ctx.Value(sessionKey{}).(string)
	return session
}

// WithSession resolves the visitor session from the header or cookie and
// mints a new one when neither is present or valid.
func WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := r.Header.Get(SessionHeader)
		if session == "" {
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				session = cookie.Value
			}
		}
		if _, err := uuid.Parse(session); err != nil {
			session = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    session,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		w.Header().Set(SessionHeader, session)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, session)))
	})
}

func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[lunch-svc] %s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}
