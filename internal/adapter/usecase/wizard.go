package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"mesa-dash/internal/core/domain"
	"mesa-dash/internal/core/port"
)

// Wizard implements port.WizardSession. It binds each step's local draft to
// the remote campaign resource scoped by the active organization, caches
// the campaign identity triple durably after every successful submit, and
// guards against concurrent submits of the same session.
type Wizard struct {
	selection port.SelectionStore
	api       port.CampaignAPI
	state     port.StateStore
	logger    *slog.Logger

	mu       sync.Mutex
	inFlight bool

	step           domain.Step
	campaignID     string
	campaignStatus string
	campaignName   string

	platforms []domain.Platform
	objective domain.Objective
	audience  *domain.Audience
	budget    *domain.Budget
	creative  *domain.Creative
}

// NewWizard creates a fresh session positioned at the name step.
func NewWizard(selection port.SelectionStore, api port.CampaignAPI, state port.StateStore, logger *slog.Logger) *Wizard {
	return &Wizard{
		selection: selection,
		api:       api,
		state:     state,
		logger:    logger,
		step:      domain.StepName,
		objective: domain.DefaultObjective,
	}
}

// Snapshot returns a copy of the current session state.
func (w *Wizard) Snapshot() port.SessionSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	snap := port.SessionSnapshot{
		Step:           w.step,
		CampaignID:     w.campaignID,
		CampaignStatus: w.campaignStatus,
		CampaignName:   w.campaignName,
		Platforms:      append([]domain.Platform(nil), w.platforms...),
		Objective:      w.objective,
	}
	if w.audience != nil {
		a := *w.audience
		snap.Audience = &a
	}
	if w.budget != nil {
		b := *w.budget
		snap.Budget = &b
	}
	if w.creative != nil {
		c := *w.creative
		snap.Creative = &c
	}
	return snap
}

// Resume loads an existing campaign into the session and pre-populates the
// drafts, decoding wire enums permissively. With a blank id it falls back
// to the campaign cached from a previous visit. The session restarts at
// the name step.
func (w *Wizard) Resume(ctx context.Context, campaignID string) error {
	org := w.selection.Current(ctx)
	if org == nil {
		return port.ErrNoOrganizationSelected
	}
	if campaignID == "" {
		campaignID = w.cachedCampaignID(ctx)
	}
	if campaignID == "" {
		return port.ErrNoCampaignContext
	}
	if err := w.beginSubmit(); err != nil {
		return err
	}
	defer w.endSubmit()

	rec, err := w.api.GetCampaign(ctx, org.ID, campaignID)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.step = domain.StepName
	w.applyRecordLocked(rec)
	w.mu.Unlock()

	w.persistCampaign(ctx, rec)
	return nil
}

// SubmitName completes the name step. Without a cached campaign it creates
// one; with one (resume) it patches the name only.
func (w *Wizard) SubmitName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &port.ValidationError{Field: "campaign_name", Reason: "must not be blank"}
	}
	org := w.selection.Current(ctx)
	if org == nil {
		return port.ErrNoOrganizationSelected
	}
	if err := w.beginSubmit(); err != nil {
		return err
	}
	defer w.endSubmit()

	var (
		rec *port.CampaignRecord
		err error
	)
	if id := w.currentCampaignID(); id == "" {
		rec, err = w.api.CreateCampaign(ctx, org.ID, name)
	} else {
		rec, err = w.api.PatchCampaign(ctx, org.ID, id, map[string]any{"name": name})
	}
	if err != nil {
		return err
	}
	w.completeStep(ctx, domain.StepName, rec)
	return nil
}

// SubmitPlatforms completes the platforms step. The write is a full
// replace against the dedicated update endpoint, with the campaign
// identified by an integer id in the body; the remote contract is
// asymmetric here and the asymmetry is preserved.
func (w *Wizard) SubmitPlatforms(ctx context.Context, platforms []domain.Platform) error {
	selected := dedupePlatforms(platforms)
	if len(selected) == 0 {
		return &port.ValidationError{Field: "platforms", Reason: "select at least one platform"}
	}
	for _, p := range selected {
		if _, ok := p.Wire(); !ok {
			return &port.ValidationError{Field: "platforms", Reason: fmt.Sprintf("unknown platform %q", p)}
		}
	}
	org, id, err := w.stepContext(ctx)
	if err != nil {
		return err
	}
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("campaign id %q is not numeric: %w", id, err)
	}
	if err = w.beginSubmit(); err != nil {
		return err
	}
	defer w.endSubmit()

	rec, err := w.api.ReplacePlatforms(ctx, org.ID, numericID, domain.EncodePlatforms(selected))
	if err != nil {
		return err
	}
	w.completeStep(ctx, domain.StepPlatforms, rec)
	return nil
}

// SubmitObjective completes the objective step with a partial update.
func (w *Wizard) SubmitObjective(ctx context.Context, objective domain.Objective) error {
	wire, ok := objective.Wire()
	if !ok {
		return &port.ValidationError{Field: "objective", Reason: fmt.Sprintf("unknown objective %q", objective)}
	}
	org, id, err := w.stepContext(ctx)
	if err != nil {
		return err
	}
	if err = w.beginSubmit(); err != nil {
		return err
	}
	defer w.endSubmit()

	rec, err := w.api.PatchCampaign(ctx, org.ID, id, map[string]any{"objective": wire})
	if err != nil {
		return err
	}
	w.completeStep(ctx, domain.StepObjective, rec)
	return nil
}

// SubmitAudience completes the audience step.
func (w *Wizard) SubmitAudience(ctx context.Context, audience domain.Audience) error {
	if len(audience.Locations) == 0 {
		return &port.ValidationError{Field: "locations", Reason: "select at least one location"}
	}
	if audience.AgeMin > audience.AgeMax {
		return &port.ValidationError{Field: "age_range", Reason: "minimum age exceeds maximum"}
	}
	org, id, err := w.stepContext(ctx)
	if err != nil {
		return err
	}
	if err = w.beginSubmit(); err != nil {
		return err
	}
	defer w.endSubmit()

	rec, err := w.api.PatchCampaign(ctx, org.ID, id, map[string]any{"target_audience": audience})
	if err != nil {
		return err
	}
	w.mu.Lock()
	a := audience
	w.audience = &a
	w.mu.Unlock()
	w.completeStep(ctx, domain.StepAudience, rec)
	return nil
}

// SubmitBudget completes the budget step.
func (w *Wizard) SubmitBudget(ctx context.Context, budget domain.Budget) error {
	if budget.DailyBudget <= 0 {
		return &port.ValidationError{Field: "daily_budget", Reason: "must be positive"}
	}
	if budget.TotalBudget <= 0 {
		return &port.ValidationError{Field: "total_budget", Reason: "must be positive"}
	}
	if budget.TotalBudget < budget.DailyBudget {
		return &port.ValidationError{Field: "total_budget", Reason: "must cover at least one day"}
	}
	org, id, err := w.stepContext(ctx)
	if err != nil {
		return err
	}
	if err = w.beginSubmit(); err != nil {
		return err
	}
	defer w.endSubmit()

	rec, err := w.api.PatchCampaign(ctx, org.ID, id, map[string]any{
		"daily_budget": budget.DailyBudget,
		"total_budget": budget.TotalBudget,
	})
	if err != nil {
		return err
	}
	w.mu.Lock()
	b := budget
	w.budget = &b
	w.mu.Unlock()
	w.completeStep(ctx, domain.StepBudget, rec)
	return nil
}

// SubmitCreative completes the creative step.
func (w *Wizard) SubmitCreative(ctx context.Context, creative domain.Creative) error {
	if strings.TrimSpace(creative.Headline) == "" {
		return &port.ValidationError{Field: "headline", Reason: "must not be blank"}
	}
	org, id, err := w.stepContext(ctx)
	if err != nil {
		return err
	}
	if err = w.beginSubmit(); err != nil {
		return err
	}
	defer w.endSubmit()

	rec, err := w.api.PatchCampaign(ctx, org.ID, id, map[string]any{"creative": creative})
	if err != nil {
		return err
	}
	w.mu.Lock()
	c := creative
	w.creative = &c
	w.mu.Unlock()
	w.completeStep(ctx, domain.StepCreative, rec)
	return nil
}

// Review fetches the campaign fresh for the final step. No write happens
// here; the session is simply abandoned once the user leaves.
func (w *Wizard) Review(ctx context.Context) (*domain.Campaign, error) {
	org, id, err := w.stepContext(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := w.api.GetCampaign(ctx, org.ID, id)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.applyRecordLocked(rec)
	w.step = domain.StepReview
	campaign := &domain.Campaign{
		ID:        rec.ID,
		OrgID:     rec.OrgID,
		Name:      rec.Name,
		Status:    rec.Status,
		Platforms: append([]domain.Platform(nil), w.platforms...),
		Objective: w.objective,
		Audience:  w.audience,
		Budget:    w.budget,
		Creative:  w.creative,
	}
	w.mu.Unlock()

	w.persistCampaign(ctx, rec)
	return campaign, nil
}

// stepContext resolves the preconditions shared by every step past the
// first: an active organization and a cached campaign id, checked in that
// order and before any network call.
func (w *Wizard) stepContext(ctx context.Context) (*domain.Organization, string, error) {
	org := w.selection.Current(ctx)
	if org == nil {
		return nil, "", port.ErrNoOrganizationSelected
	}
	id := w.currentCampaignID()
	if id == "" {
		return nil, "", port.ErrNoCampaignContext
	}
	return org, id, nil
}

func (w *Wizard) currentCampaignID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.campaignID
}

// cachedCampaignID falls back to the durably stored id from a previous
// visit when the in-memory session has none.
func (w *Wizard) cachedCampaignID(ctx context.Context) string {
	if id := w.currentCampaignID(); id != "" {
		return id
	}
	id, ok, err := w.state.Get(ctx, port.KeyCampaignID)
	if err != nil {
		w.logger.Warn("reading cached campaign id failed", slog.Any("error", err))
		return ""
	}
	if !ok {
		return ""
	}
	return id
}

func (w *Wizard) beginSubmit() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight {
		return port.ErrSubmitInFlight
	}
	w.inFlight = true
	return nil
}

func (w *Wizard) endSubmit() {
	w.mu.Lock()
	w.inFlight = false
	w.mu.Unlock()
}

// completeStep records a successful submit: the server's view of the
// campaign replaces the local cache, the identity triple is persisted, and
// the session advances to the step after the one just submitted.
func (w *Wizard) completeStep(ctx context.Context, submitted domain.Step, rec *port.CampaignRecord) {
	w.mu.Lock()
	w.applyRecordLocked(rec)
	w.step = submitted.Next()
	w.mu.Unlock()

	w.persistCampaign(ctx, rec)
}

// applyRecordLocked refreshes the cached identity and drafts from a remote
// record. Unknown platform wire values are dropped and an unknown
// objective collapses to the default; both degradations are logged, never
// surfaced. Callers hold w.mu.
func (w *Wizard) applyRecordLocked(rec *port.CampaignRecord) {
	w.campaignID = rec.ID
	w.campaignStatus = rec.Status
	w.campaignName = rec.Name

	// A partial-update response may omit collections entirely; only an
	// explicit value replaces the draft.
	if rec.Platforms != nil {
		platforms, dropped := domain.DecodePlatforms(rec.Platforms)
		if dropped > 0 {
			w.logger.Warn("dropped unrecognized platform values",
				slog.String("campaign_id", rec.ID), slog.Int("count", dropped))
		}
		w.platforms = platforms
	}

	if rec.Objective != "" {
		if _, ok := domain.ObjectiveFromWire(rec.Objective); !ok {
			w.logger.Warn("unrecognized objective value, using default",
				slog.String("campaign_id", rec.ID), slog.String("objective", rec.Objective))
		}
		w.objective = domain.ObjectiveFromWireOrDefault(rec.Objective)
	}
}

// persistCampaign writes the identity triple together so a reader never
// sees a campaign id from one write paired with a name from another. A
// storage failure after a successful remote write is logged, not returned:
// the remote state already moved and the step did succeed.
func (w *Wizard) persistCampaign(ctx context.Context, rec *port.CampaignRecord) {
	err := w.state.PutAll(ctx, map[string]string{
		port.KeyCampaignID:     rec.ID,
		port.KeyCampaignStatus: rec.Status,
		port.KeyCampaignName:   rec.Name,
	})
	if err != nil {
		w.logger.Warn("persisting campaign state failed",
			slog.String("campaign_id", rec.ID), slog.Any("error", err))
	}
}

// dedupePlatforms drops repeated selections while preserving selection
// order, so toggling a platform twice encodes the same payload as once.
func dedupePlatforms(ps []domain.Platform) []domain.Platform {
	seen := make(map[domain.Platform]struct{}, len(ps))
	out := make([]domain.Platform, 0, len(ps))
	for _, p := range ps {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
