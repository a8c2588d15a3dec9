// internal/handler/router.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every route of the admin console backend.
func NewRouter(campaigns *CampaignHandler, clients *ClientHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	// Directory
	r.Get("/clients", clients.ListClients)
	r.Get("/clients/export", clients.ExportClients)

	// Campaign board & lifecycle
	r.Post("/campaigns", campaigns.CreateCampaign)
	r.Get("/campaigns", campaigns.Board)
	r.Get("/campaigns/{id}", campaigns.GetCampaign)
	r.Put("/campaigns/{id}", campaigns.UpdateCampaign)
	r.Post("/campaigns/{id}/advance", campaigns.Advance)

	// Audience & membership
	r.Get("/campaigns/{id}/candidates", campaigns.Candidates)
	r.Post("/campaigns/{id}/members", campaigns.AddMembers)
	r.Delete("/campaigns/{id}/members/{memberID}", campaigns.RemoveMember)
	r.Post("/campaigns/{id}/members/{memberID}/advance", campaigns.AdvanceMember)
	r.Post("/campaigns/{id}/retry-failed", campaigns.RetryFailed)

	// Messaging
	r.Post("/campaigns/{id}/send", campaigns.Send)
	r.Delete("/campaigns/{id}/send", campaigns.CancelSend)
	r.Post("/campaigns/{id}/preview", campaigns.Preview)
	r.Get("/campaigns/{id}/analytics", campaigns.Analytics)

	return r
}
