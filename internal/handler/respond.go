// internal/handler/respond.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/credicardpos/console-backend/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the engine's error taxonomy onto HTTP status codes.
// Validation failures block the action locally (400), duplicates and
// in-flight sends conflict (409), transport failures surface as 502.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var notFound *appErrors.ErrCampaignNotFound
	var duplicate *appErrors.DuplicateMemberError
	var transport *appErrors.TransportError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &duplicate):
		status = http.StatusConflict
	case errors.Is(err, appErrors.ErrSendInFlight):
		status = http.StatusConflict
	case appErrors.IsValidation(err):
		status = http.StatusBadRequest
	case errors.As(err, &transport):
		status = http.StatusBadGateway
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
