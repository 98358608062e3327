package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"mesa-dash/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the coordinator's error taxonomy onto HTTP statuses.
// Validation failures are 422 with the offending field; missing context is
// a 409 the view resolves by sending the user back; remote failures pass
// their extracted message through as a 502.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		validation *port.ValidationError
		remote     *port.RemoteError
	)
	switch {
	case errors.As(err, &validation):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: validation.Reason, Field: validation.Field,
		})
	case errors.Is(err, port.ErrNoOrganizationSelected),
		errors.Is(err, port.ErrNoCampaignContext),
		errors.Is(err, port.ErrSubmitInFlight):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.As(err, &remote):
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: remote.Message})
	default:
		h.logger.Error("unhandled coordinator error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
