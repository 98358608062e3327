package port

import (
	"context"

	"mesa-dash/internal/core/domain"
)

// SessionSnapshot is a read-only view of the wizard session for the
// inbound layer: the current step, the cached campaign identity and the
// editable drafts.
type SessionSnapshot struct {
	Step           domain.Step
	CampaignID     string
	CampaignStatus string
	CampaignName   string
	Platforms      []domain.Platform
	Objective      domain.Objective
	Audience       *domain.Audience
	Budget         *domain.Budget
	Creative       *domain.Creative
}

// WizardSession orchestrates the linear seven-step campaign flow. Each
// submit validates locally first (ValidationError), requires an active
// organization (ErrNoOrganizationSelected), and past the first step a
// cached campaign id (ErrNoCampaignContext). On remote failure the draft
// and step are preserved so the user can retry without re-entering data.
type WizardSession interface {
	// Snapshot returns the current session state.
	Snapshot() SessionSnapshot

	// Resume loads an existing campaign into the session, pre-populating
	// drafts. Unrecognised wire enum values are dropped (platforms) or
	// defaulted (objective), never fatal.
	Resume(ctx context.Context, campaignID string) error

	// SubmitName completes the name step: create when no campaign is
	// cached, partial name update when resuming an existing one.
	SubmitName(ctx context.Context, name string) error

	// SubmitPlatforms completes the platforms step via the full-replace
	// update endpoint.
	SubmitPlatforms(ctx context.Context, platforms []domain.Platform) error

	// SubmitObjective completes the objective step.
	SubmitObjective(ctx context.Context, objective domain.Objective) error

	// SubmitAudience completes the audience step.
	SubmitAudience(ctx context.Context, audience domain.Audience) error

	// SubmitBudget completes the budget step.
	SubmitBudget(ctx context.Context, budget domain.Budget) error

	// SubmitCreative completes the creative step.
	SubmitCreative(ctx context.Context, creative domain.Creative) error

	// Review fetches the campaign fresh for the final step. It performs no
	// write; the session is simply abandoned afterwards.
	Review(ctx context.Context) (*domain.Campaign, error)
}
