package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-dash/internal/core/domain"
	"mesa-dash/internal/core/port"
)

type sessionView struct {
	Step           string            `json:"step"`
	StepNumber     int               `json:"step_number"`
	CampaignID     string            `json:"campaign_id,omitempty"`
	CampaignStatus string            `json:"campaign_status,omitempty"`
	CampaignName   string            `json:"campaign_name,omitempty"`
	Platforms      []domain.Platform `json:"platforms"`
	Objective      domain.Objective  `json:"objective"`
	Audience       *domain.Audience  `json:"audience,omitempty"`
	Budget         *domain.Budget    `json:"budget,omitempty"`
	Creative       *domain.Creative  `json:"creative,omitempty"`
}

func sessionViewFrom(snap port.SessionSnapshot) sessionView {
	return sessionView{
		Step:           snap.Step.String(),
		StepNumber:     int(snap.Step),
		CampaignID:     snap.CampaignID,
		CampaignStatus: snap.CampaignStatus,
		CampaignName:   snap.CampaignName,
		Platforms:      snap.Platforms,
		Objective:      snap.Objective,
		Audience:       snap.Audience,
		Budget:         snap.Budget,
		Creative:       snap.Creative,
	}
}

// handleWizardSnapshot returns the current session state: step, cached
// campaign identity and drafts.
func (h *Handler) handleWizardSnapshot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, sessionViewFrom(h.wizard.Snapshot()))
}

// handleWizardResume loads an existing campaign into the session. An empty
// campaign_id falls back to the id cached from a previous visit.
func (h *Handler) handleWizardResume(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CampaignID string `json:"campaign_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.wizard.Resume(r.Context(), req.CampaignID); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sessionViewFrom(h.wizard.Snapshot()))
}

// handleWizardStep dispatches a step submit by its route name. Each body
// carries only that step's fields; validation happens in the session
// before any remote call.
func (h *Handler) handleWizardStep(w http.ResponseWriter, r *http.Request) {
	step, ok := domain.StepFromName(chi.URLParam(r, "step"))
	if !ok {
		http.Error(w, "unknown wizard step", http.StatusNotFound)
		return
	}

	ctx := r.Context()
	var err error
	switch step {
	case domain.StepName:
		var req struct {
			Name string `json:"name"`
		}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		err = h.wizard.SubmitName(ctx, req.Name)
	case domain.StepPlatforms:
		var req struct {
			Platforms []domain.Platform `json:"platforms"`
		}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		err = h.wizard.SubmitPlatforms(ctx, req.Platforms)
	case domain.StepObjective:
		var req struct {
			Objective domain.Objective `json:"objective"`
		}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		err = h.wizard.SubmitObjective(ctx, req.Objective)
	case domain.StepAudience:
		var req domain.Audience
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		err = h.wizard.SubmitAudience(ctx, req)
	case domain.StepBudget:
		var req domain.Budget
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		err = h.wizard.SubmitBudget(ctx, req)
	case domain.StepCreative:
		var req domain.Creative
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		err = h.wizard.SubmitCreative(ctx, req)
	case domain.StepReview:
		http.Error(w, "review has no submit; GET /wizard/review", http.StatusMethodNotAllowed)
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sessionViewFrom(h.wizard.Snapshot()))
}

type campaignView struct {
	ID        string            `json:"id"`
	OrgID     string            `json:"org_id"`
	Name      string            `json:"name"`
	Status    string            `json:"status"`
	Platforms []domain.Platform `json:"platforms"`
	Objective domain.Objective  `json:"objective"`
	Audience  *domain.Audience  `json:"audience,omitempty"`
	Budget    *domain.Budget    `json:"budget,omitempty"`
	Creative  *domain.Creative  `json:"creative,omitempty"`
}

// handleWizardReview serves the final step: a fresh fetch of the campaign
// for the user to confirm. Completing review performs no write.
func (h *Handler) handleWizardReview(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.wizard.Review(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignView{
		ID:        campaign.ID,
		OrgID:     campaign.OrgID,
		Name:      campaign.Name,
		Status:    campaign.Status,
		Platforms: campaign.Platforms,
		Objective: campaign.Objective,
		Audience:  campaign.Audience,
		Budget:    campaign.Budget,
		Creative:  campaign.Creative,
	})
}
