package domain

import "strconv"

// UnknownOrgID is the sentinel identifier assigned to organization records
// whose source carried no usable id. Records normalise to it instead of
// being dropped so list positions stay stable.
const UnknownOrgID = "unknown"

// Organization is the canonical tenant entity scoping every campaign
// operation. Name is optional; an empty string means the source had none.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// NormalizeOrganizations converts a heterogeneous raw organization list into
// canonical entities. It is total: unrecognised shapes degrade to the
// UnknownOrgID sentinel rather than erroring, and input order is preserved.
//
// Accepted shapes, in priority order per element:
//   - a sequence of length >= 2: element 0 is the id, element 1 the name
//   - an object with "id" and "name" fields
//   - a bare identifier string
func NormalizeOrganizations(raw []any) []Organization {
	orgs := make([]Organization, 0, len(raw))
	for _, item := range raw {
		orgs = append(orgs, normalizeOrganization(item))
	}
	return orgs
}

func normalizeOrganization(item any) Organization {
	switch v := item.(type) {
	case []any:
		if len(v) >= 2 {
			return Organization{
				ID:   stringOr(v[0], UnknownOrgID),
				Name: stringOr(v[1], ""),
			}
		}
	case map[string]any:
		return Organization{
			ID:   stringOr(v["id"], UnknownOrgID),
			Name: stringOr(v["name"], ""),
		}
	case string:
		if v != "" {
			return Organization{ID: v}
		}
	}
	return Organization{ID: UnknownOrgID}
}

func stringOr(v any, fallback string) string {
	switch s := v.(type) {
	case string:
		if s != "" {
			return s
		}
	case float64:
		// JSON numbers decode as float64; numeric ids are kept verbatim.
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fallback
}

// FallbackName synthesises a display label for an organization without a
// usable name, from the last 6 characters of its id.
func (o Organization) FallbackName() string {
	id := o.ID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return "Organization " + id
}

// FormatOrgID renders an organization id for display. Ids longer than 12
// characters are shortened to first6…last4. Missing or sentinel ids render
// as "N/A".
func FormatOrgID(id string) string {
	if id == "" || id == UnknownOrgID {
		return "N/A"
	}
	if len(id) <= 12 {
		return id
	}
	return id[:6] + "…" + id[len(id)-4:]
}
