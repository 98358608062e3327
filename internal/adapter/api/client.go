package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"mesa-dash/internal/core/domain"
	"mesa-dash/internal/core/port"
)

// Client implements port.CampaignAPI against the remote campaign service.
// Failures carry a single message extracted from the response body; there
// are no automatic retries.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
}

// NewClient creates a client for the service rooted at base. The supplied
// http.Client controls timeouts; a nil client falls back to the default.
func NewClient(base *url.URL, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: base, http: httpClient, logger: logger}
}

// ListOrganizations fetches the raw organization list and normalizes it.
// The endpoint historically returns mixed shapes (pairs, objects, bare
// ids), which the normalizer absorbs.
func (c *Client) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	var raw []any
	if err := c.do(ctx, http.MethodGet, "/main/organizations/", nil, nil, &raw); err != nil {
		return nil, err
	}
	return domain.NormalizeOrganizations(raw), nil
}

// CreateCampaign creates a named campaign under the organization.
func (c *Client) CreateCampaign(ctx context.Context, orgID, name string) (*port.CampaignRecord, error) {
	body := map[string]any{"campaign_name": name}
	var resp struct {
		CampaignID   flexibleID `json:"campaign_id"`
		Status       string     `json:"status"`
		CampaignName string     `json:"campaign_name"`
	}
	if err := c.do(ctx, http.MethodPost, "/main/create-ad/", orgQuery(orgID), body, &resp); err != nil {
		return nil, err
	}
	return &port.CampaignRecord{
		ID:     resp.CampaignID.String(),
		Status: resp.Status,
		Name:   resp.CampaignName,
		OrgID:  orgID,
	}, nil
}

// GetCampaign fetches an existing campaign.
func (c *Client) GetCampaign(ctx context.Context, orgID, campaignID string) (*port.CampaignRecord, error) {
	var rec wireCampaign
	path := fmt.Sprintf("/main/campaign/%s/", url.PathEscape(campaignID))
	if err := c.do(ctx, http.MethodGet, path, orgQuery(orgID), nil, &rec); err != nil {
		return nil, err
	}
	return rec.record(orgID), nil
}

// PatchCampaign partially updates the path-scoped campaign resource.
func (c *Client) PatchCampaign(ctx context.Context, orgID, campaignID string, fields map[string]any) (*port.CampaignRecord, error) {
	var rec wireCampaign
	path := fmt.Sprintf("/main/campaign/%s/", url.PathEscape(campaignID))
	if err := c.do(ctx, http.MethodPatch, path, orgQuery(orgID), fields, &rec); err != nil {
		return nil, err
	}
	return rec.record(orgID), nil
}

// ReplacePlatforms issues the full-replace platforms write. The campaign is
// identified by an integer id in the body rather than the path; that shape
// belongs to the remote contract and is kept as-is.
func (c *Client) ReplacePlatforms(ctx context.Context, orgID string, campaignID int64, platforms []string) (*port.CampaignRecord, error) {
	body := map[string]any{
		"campaign_id": campaignID,
		"platforms":   platforms,
	}
	var rec wireCampaign
	if err := c.do(ctx, http.MethodPost, "/main/update-ad/", orgQuery(orgID), body, &rec); err != nil {
		return nil, err
	}
	return rec.record(orgID), nil
}

// flexibleID absorbs the API's habit of returning ids as either JSON
// numbers or strings.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

func (f flexibleID) String() string { return string(f) }

// wireCampaign mirrors the campaign representation every read and write
// endpoint returns.
type wireCampaign struct {
	ID        flexibleID `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Platforms []string   `json:"platforms"`
	Objective string     `json:"objective"`
	OrgID     string     `json:"org_id"`
}

func (w wireCampaign) record(orgID string) *port.CampaignRecord {
	if w.OrgID != "" {
		orgID = w.OrgID
	}
	return &port.CampaignRecord{
		ID:        w.ID.String(),
		Name:      w.Name,
		Status:    w.Status,
		Platforms: w.Platforms,
		Objective: w.Objective,
		OrgID:     orgID,
	}
}

func orgQuery(orgID string) url.Values {
	return url.Values{"org_id": []string{orgID}}
}

// do performs one request/response cycle. Non-2xx responses and transport
// failures both come back as *port.RemoteError so callers see exactly one
// failure shape with one human-readable message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("campaign api request failed",
			slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return &port.RemoteError{Message: genericRemoteMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &port.RemoteError{StatusCode: resp.StatusCode, Message: genericRemoteMessage}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := extractMessage(raw)
		c.logger.Warn("campaign api error response",
			slog.String("method", method), slog.String("path", path),
			slog.Int("status", resp.StatusCode), slog.String("message", msg))
		return &port.RemoteError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return &port.RemoteError{StatusCode: resp.StatusCode, Message: genericRemoteMessage}
	}
	return nil
}

const genericRemoteMessage = "request failed"

// extractMessage pulls a human-readable error out of a response body,
// trying message, then error, then detail, before giving up on a generic
// fallback. Bodies that are not JSON objects fall straight through.
func extractMessage(raw []byte) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return genericRemoteMessage
	}
	for _, key := range []string{"message", "error", "detail"} {
		if v, ok := body[key].(string); ok && v != "" {
			return v
		}
	}
	return genericRemoteMessage
}
