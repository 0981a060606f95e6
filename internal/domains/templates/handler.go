package templates

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pushstack/template-service-mock/internal/handlers"
	"github.com/pushstack/template-service-mock/internal/metrics"
)

type Handler struct {
	svc     *Service
	metrics *metrics.Metrics
}

func NewHandler(store *Store, m *metrics.Metrics) *Handler {
	return &Handler{svc: NewService(store), metrics: m}
}

func (h *Handler) RegisterTemplateRoutes(r chi.Router) {
	r.Get("/{code}", h.getTemplate)
}

func (h *Handler) getTemplate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = DefaultLanguage
	}

	tpl, err := h.svc.Lookup(code, lang)
	switch {
	case errors.Is(err, ErrTemplateNotFound):
		h.trackLookup("not_found")
		handlers.RespondWithError(w, http.StatusNotFound, "Template not found")
		return
	case errors.Is(err, ErrLanguageNotAvailable):
		// Same 404 as an unknown code, distinguished by message text only.
		h.trackLookup("language_mismatch")
		handlers.RespondWithError(w, http.StatusNotFound, "Template not available in language: "+lang)
		return
	}

	h.trackLookup("hit")
	handlers.RespondWithJSON(w, http.StatusOK, tpl)
}

func (h *Handler) trackLookup(result string) {
	if h.metrics == nil {
		return
	}
	h.metrics.TemplateLookupsTotal.WithLabelValues(result).Inc()
}
