package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-dash/internal/adapter/memory"
	"mesa-dash/internal/core/domain"
	"mesa-dash/internal/core/port"
	"mesa-dash/internal/core/port/mocks"
)

// newWizardFixture wires a wizard against an in-memory state store, a real
// selection store with orgID selected, and a mocked remote API.
func newWizardFixture(t *testing.T, orgID string) (*Wizard, *mocks.MockCampaignAPI, *memory.StateStore) {
	t.Helper()
	state := memory.NewStateStore()
	sel := NewSelection(state, testLogger())
	if orgID != "" {
		require.NoError(t, sel.Select(context.Background(), domain.Organization{ID: orgID}))
	}
	api := mocks.NewMockCampaignAPI(t)
	return NewWizard(sel, api, state, testLogger()), api, state
}

// TestSubmitNameBlankRejectedLocally ensures a blank campaign name is a
// field-level validation error and that no remote call is issued. The mock
// has no expectations, so any call would fail the test.
func TestSubmitNameBlankRejectedLocally(t *testing.T) {
	w, _, _ := newWizardFixture(t, "org_1")

	err := w.SubmitName(context.Background(), "   ")
	var validation *port.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "campaign_name", validation.Field)
}

func TestSubmitNameRequiresOrganization(t *testing.T) {
	w, _, _ := newWizardFixture(t, "")

	err := w.SubmitName(context.Background(), "Spring Launch")
	require.ErrorIs(t, err, port.ErrNoOrganizationSelected)
}

func TestSubmitNameCreatesCampaign(t *testing.T) {
	w, api, state := newWizardFixture(t, "org_1")
	ctx := context.Background()

	api.EXPECT().
		CreateCampaign(mock.Anything, "org_1", "Spring Launch").
		Return(&port.CampaignRecord{ID: "42", Name: "Spring Launch", Status: domain.StatusDraft, OrgID: "org_1"}, nil)

	require.NoError(t, w.SubmitName(ctx, "Spring Launch"))

	snap := w.Snapshot()
	require.Equal(t, domain.StepPlatforms, snap.Step)
	require.Equal(t, "42", snap.CampaignID)
	require.Equal(t, domain.StatusDraft, snap.CampaignStatus)
	require.Equal(t, "Spring Launch", snap.CampaignName)

	// The identity triple is persisted together for resume.
	for key, want := range map[string]string{
		port.KeyCampaignID:     "42",
		port.KeyCampaignStatus: domain.StatusDraft,
		port.KeyCampaignName:   "Spring Launch",
	} {
		got, ok, err := state.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok, "missing %s", key)
		require.Equal(t, want, got)
	}
}

// TestSubmitNamePatchesWhenResuming ensures the name step updates instead
// of creating once a campaign is in context.
func TestSubmitNamePatchesWhenResuming(t *testing.T) {
	w, api, _ := newWizardFixture(t, "org_1")
	ctx := context.Background()

	api.EXPECT().
		GetCampaign(mock.Anything, "org_1", "42").
		Return(&port.CampaignRecord{ID: "42", Name: "Old", Status: domain.StatusDraft, OrgID: "org_1"}, nil)
	require.NoError(t, w.Resume(ctx, "42"))

	api.EXPECT().
		PatchCampaign(mock.Anything, "org_1", "42", map[string]any{"name": "New Name"}).
		Return(&port.CampaignRecord{ID: "42", Name: "New Name", Status: domain.StatusDraft, OrgID: "org_1"}, nil)

	require.NoError(t, w.SubmitName(ctx, "New Name"))
	require.Equal(t, "New Name", w.Snapshot().CampaignName)
}

func TestSubmitPlatformsRequiresCampaign(t *testing.T) {
	w, _, _ := newWizardFixture(t, "org_1")

	err := w.SubmitPlatforms(context.Background(), []domain.Platform{domain.PlatformFacebook})
	require.ErrorIs(t, err, port.ErrNoCampaignContext)
}

// TestSubmitPlatformsFullReplace checks the asymmetric update endpoint
// contract: an integer campaign id in the body and wire values in the
// user's selection order.
func TestSubmitPlatformsFullReplace(t *testing.T) {
	w, api, _ := newWizardFixture(t, "org_9")
	ctx := context.Background()

	api.EXPECT().
		CreateCampaign(mock.Anything, "org_9", "Campaign").
		Return(&port.CampaignRecord{ID: "42", Name: "Campaign", Status: domain.StatusDraft, OrgID: "org_9"}, nil)
	require.NoError(t, w.SubmitName(ctx, "Campaign"))

	api.EXPECT().
		ReplacePlatforms(mock.Anything, "org_9", int64(42), []string{"META", "TIKTOK"}).
		Return(&port.CampaignRecord{
			ID: "42", Name: "Campaign", Status: domain.StatusDraft,
			Platforms: []string{"META", "TIKTOK"}, OrgID: "org_9",
		}, nil)

	err := w.SubmitPlatforms(ctx, []domain.Platform{domain.PlatformFacebook, domain.PlatformTikTok})
	require.NoError(t, err)

	snap := w.Snapshot()
	require.Equal(t, domain.StepObjective, snap.Step)
	require.Equal(t, []domain.Platform{domain.PlatformFacebook, domain.PlatformTikTok}, snap.Platforms)
}

// TestSubmitPlatformsIdempotentToggle ensures a platform toggled twice
// produces the same payload as a single selection.
func TestSubmitPlatformsIdempotentToggle(t *testing.T) {
	w, api, _ := newWizardFixture(t, "org_9")
	ctx := context.Background()

	api.EXPECT().
		CreateCampaign(mock.Anything, "org_9", "Campaign").
		Return(&port.CampaignRecord{ID: "42", Name: "Campaign", Status: domain.StatusDraft, OrgID: "org_9"}, nil)
	require.NoError(t, w.SubmitName(ctx, "Campaign"))

	api.EXPECT().
		ReplacePlatforms(mock.Anything, "org_9", int64(42), []string{"META"}).
		Return(&port.CampaignRecord{
			ID: "42", Name: "Campaign", Status: domain.StatusDraft,
			Platforms: []string{"META"}, OrgID: "org_9",
		}, nil)

	err := w.SubmitPlatforms(ctx, []domain.Platform{
		domain.PlatformFacebook, domain.PlatformFacebook,
	})
	require.NoError(t, err)
}

func TestSubmitPlatformsEmptySelection(t *testing.T) {
	w, _, _ := newWizardFixture(t, "org_1")

	err := w.SubmitPlatforms(context.Background(), nil)
	var validation *port.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "platforms", validation.Field)
}

// TestResumeUnknownEnumValues checks the permissive decode on resume: an
// unrecognized objective defaults to conversions and unknown platform wire
// values are dropped, never fatal.
func TestResumeUnknownEnumValues(t *testing.T) {
	w, api, _ := newWizardFixture(t, "org_1")
	ctx := context.Background()

	api.EXPECT().
		GetCampaign(mock.Anything, "org_1", "42").
		Return(&port.CampaignRecord{
			ID: "42", Name: "Imported", Status: domain.StatusActive,
			Platforms: []string{"META", "HOLOGRAM"},
			Objective: "BRAND_LIFT",
			OrgID:     "org_1",
		}, nil)

	require.NoError(t, w.Resume(ctx, "42"))

	snap := w.Snapshot()
	require.Equal(t, domain.StepName, snap.Step)
	require.Equal(t, []domain.Platform{domain.PlatformFacebook}, snap.Platforms)
	require.Equal(t, domain.ObjectiveConversions, snap.Objective)
}

// TestResumeFallsBackToCachedID checks that a session can resume from the
// durably cached campaign id when the route carries none.
func TestResumeFallsBackToCachedID(t *testing.T) {
	w, api, state := newWizardFixture(t, "org_1")
	ctx := context.Background()

	require.NoError(t, state.PutAll(ctx, map[string]string{
		port.KeyCampaignID:     "77",
		port.KeyCampaignStatus: domain.StatusDraft,
		port.KeyCampaignName:   "Cached",
	}))

	api.EXPECT().
		GetCampaign(mock.Anything, "org_1", "77").
		Return(&port.CampaignRecord{ID: "77", Name: "Cached", Status: domain.StatusDraft, OrgID: "org_1"}, nil)

	require.NoError(t, w.Resume(ctx, ""))
	require.Equal(t, "77", w.Snapshot().CampaignID)
}

func TestSubmitObjectivePartialUpdate(t *testing.T) {
	w, api, _ := newWizardFixture(t, "org_1")
	ctx := context.Background()

	api.EXPECT().
		CreateCampaign(mock.Anything, "org_1", "Campaign").
		Return(&port.CampaignRecord{ID: "42", Name: "Campaign", Status: domain.StatusDraft, OrgID: "org_1"}, nil)
	require.NoError(t, w.SubmitName(ctx, "Campaign"))

	api.EXPECT().
		PatchCampaign(mock.Anything, "org_1", "42", map[string]any{"objective": "TRAFFIC"}).
		Return(&port.CampaignRecord{
			ID: "42", Name: "Campaign", Status: domain.StatusDraft,
			Objective: "TRAFFIC", OrgID: "org_1",
		}, nil)

	require.NoError(t, w.SubmitObjective(ctx, domain.ObjectiveTraffic))

	snap := w.Snapshot()
	require.Equal(t, domain.StepAudience, snap.Step)
	require.Equal(t, domain.ObjectiveTraffic, snap.Objective)
}

// TestRemoteFailurePreservesDraft checks that a failed submit leaves the
// step and cached state untouched so the user can retry.
func TestRemoteFailurePreservesDraft(t *testing.T) {
	w, api, _ := newWizardFixture(t, "org_1")
	ctx := context.Background()

	api.EXPECT().
		CreateCampaign(mock.Anything, "org_1", "Campaign").
		Return(&port.CampaignRecord{ID: "42", Name: "Campaign", Status: domain.StatusDraft, OrgID: "org_1"}, nil)
	require.NoError(t, w.SubmitName(ctx, "Campaign"))

	remoteErr := &port.RemoteError{StatusCode: 500, Message: "campaign locked"}
	api.EXPECT().
		PatchCampaign(mock.Anything, "org_1", "42", map[string]any{"objective": "LEADS"}).
		Return(nil, remoteErr)

	err := w.SubmitObjective(ctx, domain.ObjectiveLeads)
	var remote *port.RemoteError
	require.ErrorAs(t, err, &remote)
	require.Equal(t, "campaign locked", remote.Message)

	snap := w.Snapshot()
	require.Equal(t, domain.StepPlatforms, snap.Step, "failed submit must not advance")
	require.Equal(t, "42", snap.CampaignID, "cached identity survives the failure")
}

func TestSubmitAudienceValidation(t *testing.T) {
	w, _, _ := newWizardFixture(t, "org_1")
	ctx := context.Background()

	err := w.SubmitAudience(ctx, domain.Audience{AgeMin: 18, AgeMax: 65})
	var validation *port.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "locations", validation.Field)

	err = w.SubmitAudience(ctx, domain.Audience{Locations: []string{"US"}, AgeMin: 40, AgeMax: 20})
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "age_range", validation.Field)
}

func TestSubmitBudgetValidation(t *testing.T) {
	w, _, _ := newWizardFixture(t, "org_1")
	ctx := context.Background()

	var validation *port.ValidationError
	require.ErrorAs(t, w.SubmitBudget(ctx, domain.Budget{DailyBudget: 0, TotalBudget: 100}), &validation)
	require.ErrorAs(t, w.SubmitBudget(ctx, domain.Budget{DailyBudget: 500, TotalBudget: 100}), &validation)
	require.Equal(t, "total_budget", validation.Field)
}

// TestSubmitInFlightGuard ensures a second submit is rejected while the
// first one is still talking to the remote API.
func TestSubmitInFlightGuard(t *testing.T) {
	w, api, _ := newWizardFixture(t, "org_1")
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().
		CreateCampaign(mock.Anything, "org_1", "Slow").
		RunAndReturn(func(context.Context, string, string) (*port.CampaignRecord, error) {
			close(entered)
			<-release
			return &port.CampaignRecord{ID: "42", Name: "Slow", Status: domain.StatusDraft, OrgID: "org_1"}, nil
		})

	done := make(chan error, 1)
	go func() { done <- w.SubmitName(ctx, "Slow") }()

	<-entered
	err := w.SubmitName(ctx, "Second")
	require.ErrorIs(t, err, port.ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestReviewFetchesFresh(t *testing.T) {
	w, api, _ := newWizardFixture(t, "org_1")
	ctx := context.Background()

	api.EXPECT().
		CreateCampaign(mock.Anything, "org_1", "Campaign").
		Return(&port.CampaignRecord{ID: "42", Name: "Campaign", Status: domain.StatusDraft, OrgID: "org_1"}, nil)
	require.NoError(t, w.SubmitName(ctx, "Campaign"))

	api.EXPECT().
		GetCampaign(mock.Anything, "org_1", "42").
		Return(&port.CampaignRecord{
			ID: "42", Name: "Campaign", Status: domain.StatusActive,
			Platforms: []string{"GOOGLE"}, Objective: "SALES", OrgID: "org_1",
		}, nil)

	campaign, err := w.Review(ctx)
	require.NoError(t, err)
	require.Equal(t, "42", campaign.ID)
	require.Equal(t, domain.StatusActive, campaign.Status)
	require.Equal(t, []domain.Platform{domain.PlatformGoogle}, campaign.Platforms)
	require.Equal(t, domain.ObjectiveSales, campaign.Objective)
	require.Equal(t, domain.StepReview, w.Snapshot().Step)
}

func TestReviewRequiresContext(t *testing.T) {
	w, _, _ := newWizardFixture(t, "org_1")
	_, err := w.Review(context.Background())
	require.ErrorIs(t, err, port.ErrNoCampaignContext)

	w2, _, _ := newWizardFixture(t, "")
	_, err = w2.Review(context.Background())
	require.True(t, errors.Is(err, port.ErrNoOrganizationSelected))
}
