package httpadapter

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"mesa-dash/internal/core/domain"
)

// organizationView is the wire shape for an organization plus the display
// fields the views would otherwise each re-derive.
type organizationView struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name"`
	Initial     string `json:"initial"`
	ShortID     string `json:"short_id"`
	Selected    bool   `json:"selected"`
}

// handleOrganizations fetches the remote organization list, normalizes it
// and resolves the initial selection. The resolved selection is marked in
// the response so a freshly loaded screen needs no second round trip.
func (h *Handler) handleOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgs, err := h.api.ListOrganizations(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	selected := h.selection.ResolveInitial(ctx, orgs, nil)

	views := make([]organizationView, 0, len(orgs))
	for _, org := range orgs {
		views = append(views, organizationView{
			ID:          org.ID,
			Name:        org.Name,
			DisplayName: h.selection.DisplayName(ctx, org),
			Initial:     h.selection.Initial(ctx, org),
			ShortID:     domain.FormatOrgID(org.ID),
			Selected:    selected != nil && selected.ID == org.ID,
		})
	}
	h.writeJSON(w, http.StatusOK, views)
}

// handleCurrentOrganization is the explicit resync read for components
// becoming visible again: broadcasts missed while hidden are not replayed.
func (h *Handler) handleCurrentOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	org := h.selection.Current(ctx)
	if org == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, organizationView{
		ID:          org.ID,
		Name:        org.Name,
		DisplayName: h.selection.DisplayName(ctx, *org),
		Initial:     h.selection.Initial(ctx, *org),
		ShortID:     domain.FormatOrgID(org.ID),
		Selected:    true,
	})
}

// handleSelectOrganization persists an explicit user selection and
// broadcasts it. Re-selecting the active organization broadcasts again by
// design, so listeners pick up renamed labels.
func (h *Handler) handleSelectOrganization(w http.ResponseWriter, r *http.Request) {
	var org domain.Organization
	if err := json.NewDecoder(r.Body).Decode(&org); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if org.ID == "" {
		http.Error(w, "missing organization id", http.StatusBadRequest)
		return
	}
	if err := h.selection.Select(r.Context(), org); err != nil {
		h.logger.Error("select organization error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
