package port

import (
	"context"

	"mesa-dash/internal/core/domain"
)

// CampaignRecord is the wire-level campaign representation returned by the
// remote API. Platforms and Objective carry raw wire enumeration values;
// decoding to UI keys is the wizard's job, so an unknown value coming back
// from the server stays visible to the layer that decides how to degrade.
type CampaignRecord struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	Platforms []string `json:"platforms"`
	Objective string   `json:"objective"`
	OrgID     string   `json:"org_id"`
}

// CampaignAPI is the outbound port for the remote campaign service. Every
// call is scoped by the active organization id. Failures are reported as
// *RemoteError with a message extracted from the response body; there are
// no automatic retries.
type CampaignAPI interface {
	// ListOrganizations fetches the raw organization list and returns it
	// normalized into canonical entities.
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)

	// CreateCampaign creates a named campaign under the organization.
	CreateCampaign(ctx context.Context, orgID, name string) (*CampaignRecord, error)

	// GetCampaign fetches an existing campaign.
	GetCampaign(ctx context.Context, orgID, campaignID string) (*CampaignRecord, error)

	// PatchCampaign partially updates the path-scoped campaign resource.
	// fields holds the subset of attributes to change.
	PatchCampaign(ctx context.Context, orgID, campaignID string, fields map[string]any) (*CampaignRecord, error)

	// ReplacePlatforms performs the full-replace platforms write against
	// the dedicated update endpoint. Unlike PatchCampaign the campaign is
	// identified by an integer id in the request body; this asymmetry is
	// part of the remote contract and is preserved here.
	ReplacePlatforms(ctx context.Context, orgID string, campaignID int64, platforms []string) (*CampaignRecord, error)
}
