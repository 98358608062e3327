package port

import "context"

// Well-known keys in the durable dashboard state. The selected organization
// is serialized JSON; the campaign entries are plain scalars written
// together after every successful wizard step.
const (
	KeySelectedOrganization = "selected_organization"
	KeyCampaignID           = "campaign_id"
	KeyCampaignStatus       = "campaign_status"
	KeyCampaignName         = "campaign_name"
)

// StateStore is the outbound persistence port for dashboard coordination
// state. It is a flat key/value surface; callers own serialization.
// Implementations must make PutAll atomic so related keys (the campaign
// triple) are never observed partially written.
type StateStore interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Put writes a single key.
	Put(ctx context.Context, key, value string) error
	// PutAll writes all entries or none.
	PutAll(ctx context.Context, entries map[string]string) error
	// Delete removes a key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
