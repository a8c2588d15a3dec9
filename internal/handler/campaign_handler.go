// internal/handler/campaign_handler.go
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/credicardpos/console-backend/internal/dispatch"
	"github.com/credicardpos/console-backend/internal/model"
	"github.com/credicardpos/console-backend/internal/service"
)

// CampaignHandler holds the dependencies for campaign-related HTTP handlers
type CampaignHandler struct {
	Service    *service.CampaignService
	Dispatcher *dispatch.Dispatcher

	// BaseCtx bounds in-flight sends to the server lifetime instead of the
	// request that started them.
	BaseCtx context.Context
}

// CreateCampaign handles the wizard's finalize: it creates a new draft.
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var payload service.WizardData
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	campaign, err := h.Service.CreateCampaign(payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

// Board returns campaigns grouped per kanban column.
func (h *CampaignHandler) Board(w http.ResponseWriter, r *http.Request) {
	board := h.Service.Board()

	columns := make([]map[string]any, 0, 5)
	for _, status := range model.CampaignStatuses() {
		columns = append(columns, map[string]any{
			"status":    status,
			"label":     status.Label(),
			"campaigns": board[status],
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"columns": columns})
}

// GetCampaign returns a single campaign with recomputed stats.
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.Service.GetCampaign(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// UpdateCampaign edits a draft's configuration.
func (h *CampaignHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var payload service.WizardData
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	campaign, err := h.Service.UpdateDraft(chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// Advance moves a campaign to the next lifecycle state.
func (h *CampaignHandler) Advance(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.Service.Advance(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// Candidates returns the clients eligible to join the campaign.
func (h *CampaignHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.Service.Candidates(chi.URLParam(r, "id"), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"candidates": candidates, "count": len(candidates)})
}

// AddMembers enrolls selected clients into the campaign.
func (h *CampaignHandler) AddMembers(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ClientIDs []string `json:"client_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	campaign, err := h.Service.AddMembers(chi.URLParam(r, "id"), payload.ClientIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// RemoveMember drops a member; unknown ids are a no-op.
func (h *CampaignHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.Service.RemoveMember(chi.URLParam(r, "id"), chi.URLParam(r, "memberID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// AdvanceMember applies a delivery transition to one member.
func (h *CampaignHandler) AdvanceMember(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status model.DeliveryStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	campaign, err := h.Service.AdvanceMember(chi.URLParam(r, "id"), chi.URLParam(r, "memberID"), payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// RetryFailed resets failed members back to sent.
func (h *CampaignHandler) RetryFailed(w http.ResponseWriter, r *http.Request) {
	retried, err := h.Service.RetryFailed(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"retried": retried})
}

// Send starts the simulated dispatch for the campaign.
func (h *CampaignHandler) Send(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx := h.BaseCtx
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := h.Dispatcher.Send(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	// Drain in the background; outcomes land in the member list and metrics.
	go func() {
		for range results {
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"campaign_id": id, "status": string(model.StatusSending)})
}

// CancelSend aborts an in-flight dispatch.
func (h *CampaignHandler) CancelSend(w http.ResponseWriter, r *http.Request) {
	h.Dispatcher.Cancel(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// Preview renders the campaign template with sample values.
func (h *CampaignHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		OverrideTemplate *string `json:"override_template"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	rendered, err := h.Service.Preview(chi.URLParam(r, "id"), payload.OverrideTemplate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rendered_message": rendered})
}

// Analytics returns the interaction series, either as a timeline or ranked
// by replies (view=best-hours).
func (h *CampaignHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	series, err := h.Service.Analytics(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	view := r.URL.Query().Get("view")
	if view == "best-hours" {
		series = service.BestHours(series)
	}
	writeJSON(w, http.StatusOK, map[string]any{"view": view, "series": series})
}
