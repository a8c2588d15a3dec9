// internal/handler/client_handler.go
package handler

import (
	"net/http"

	"github.com/credicardpos/console-backend/internal/export"
	"github.com/credicardpos/console-backend/internal/model"
	"github.com/credicardpos/console-backend/internal/service"
)

// ClientHandler serves the client directory: faceted listing and the master
// CSV export.
type ClientHandler struct {
	Service *service.CampaignService
}

func filterFromQuery(r *http.Request) model.ClientFilter {
	q := r.URL.Query()
	return model.ClientFilter{
		Query:    q.Get("q"),
		Banks:    q["bank"],
		Regions:  q["region"],
		Gestions: q["gestion"],
	}
}

// ListClients returns the filtered directory in import order.
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients := h.Service.FilteredClients(filterFromQuery(r))
	writeJSON(w, http.StatusOK, map[string]any{"data": clients, "count": len(clients)})
}

// ExportClients streams the master CSV for the filtered directory. One row
// per client passing the active filters, in filtered order.
func (h *ClientHandler) ExportClients(w http.ResponseWriter, r *http.Request) {
	clients := h.Service.FilteredClients(filterFromQuery(r))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	if err := export.WriteClients(w, clients); err != nil {
		http.Error(w, "failed to write export: "+err.Error(), http.StatusInternalServerError)
	}
}
