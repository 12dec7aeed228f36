package httpx

import (
	"context"
	"net/http"

	"github.com/ariefcatur/go-repair-shop/internal/locale"
	"github.com/ariefcatur/go-repair-shop/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// SessionCookie names the cookie carrying the visitor's session id.
const SessionCookie = "sid"

type ctxKey int

const (
	localeKey ctxKey = iota
	sessionKey
)

func withLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := locale.OrDefault(chi.URLParam(r, "locale"))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), localeKey, l)))
	})
}

func withSession(reg *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(SessionCookie); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					id = c.Value
				}
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			s, err := reg.Get(r.Context(), id)
			if err != nil {
				respondError(w, http.StatusServiceUnavailable, "session unavailable, retry", CodeUnavailable)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, s)))
		})
	}
}

func localeFrom(ctx context.Context) locale.Locale {
	if l, ok := ctx.Value(localeKey).(locale.Locale); ok {
		return l
	}
	return locale.Default
}

func sessionFrom(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionKey).(*session.Session)
	return s
}
