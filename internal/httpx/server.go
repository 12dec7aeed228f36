package httpx

import (
	"net/http"
	"time"

	"github.com/ariefcatur/go-repair-shop/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Registrar is implemented by every handler group mounted under /{locale}.
type Registrar interface {
	Register(r chi.Router)
}

func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// Mount attaches the localized storefront routes. Every request under /{locale}
// carries a resolved locale and a visitor session.
func Mount(r chi.Router, sessions *session.Registry, handlers ...Registrar) {
	r.Route("/{locale}", func(lr chi.Router) {
		lr.Use(withLocale, withSession(sessions))
		for _, h := range handlers {
			h.Register(lr)
		}
	})
}
