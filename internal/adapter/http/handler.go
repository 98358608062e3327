package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"mesa-dash/internal/core/port"
)

// Handler is the inbound HTTP adapter for the dashboard coordinator. It
// exposes the organization selection store and the campaign wizard session
// to the view layer. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	selection port.SelectionStore
	wizard    port.WizardSession
	api       port.CampaignAPI
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(selection port.SelectionStore, wizard port.WizardSession, api port.CampaignAPI, logger *slog.Logger) *Handler {
	h := &Handler{selection: selection, wizard: wizard, api: api, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/organizations", h.handleOrganizations)
		r.Get("/organizations/current", h.handleCurrentOrganization)
		r.Post("/organizations/select", h.handleSelectOrganization)

		r.Get("/wizard", h.handleWizardSnapshot)
		r.Post("/wizard/resume", h.handleWizardResume)
		r.Post("/wizard/steps/{step}", h.handleWizardStep)
		r.Get("/wizard/review", h.handleWizardReview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
