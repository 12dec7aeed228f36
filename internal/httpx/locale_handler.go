package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-repair-shop/internal/locale"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LocaleHandler struct {
	Prefs locale.Preferences
	Log   *zap.Logger
}

func (h *LocaleHandler) Register(r chi.Router) {
	r.Get("/locale", h.get)
	r.Put("/locale", h.set)
}

type localeResp struct {
	Current   locale.Locale   `json:"current"`
	Preferred locale.Locale   `json:"preferred"`
	Available []locale.Locale `json:"available"`
	// Redirect is the request path rewritten for the preferred locale.
	Redirect string `json:"redirect,omitempty"`
}

type localeReq struct {
	Locale string `json:"locale"`
	Path   string `json:"path"`
}

func (h *LocaleHandler) get(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r.Context())
	pref, err := h.Prefs.Get(r.Context(), s.ID)
	if err != nil {
		h.Log.Warn("locale preference read failed", zap.String("session_id", s.ID), zap.Error(err))
	}
	writeJSON(w, http.StatusOK, localeResp{
		Current:   localeFrom(r.Context()),
		Preferred: pref,
		Available: locale.All,
	})
}

// PUT /locale stores the preference and returns path localized for it.
func (h *LocaleHandler) set(w http.ResponseWriter, r *http.Request) {
	var req localeReq
	if !decode(w, r, &req) {
		return
	}
	l, ok := locale.Parse(req.Locale)
	if !ok {
		respondError(w, http.StatusUnprocessableEntity, "unsupported locale", "locale.unsupported")
		return
	}
	s := sessionFrom(r.Context())
	if err := h.Prefs.Set(r.Context(), s.ID, l); err != nil {
		respondErr(w, r, err)
		return
	}
	resp := localeResp{Current: l, Preferred: l, Available: locale.All}
	if req.Path != "" {
		resp.Redirect = locale.LocalizePath(req.Path, l)
	}
	writeJSON(w, http.StatusOK, resp)
}
