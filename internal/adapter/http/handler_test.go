package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-dash/internal/adapter/memory"
	"mesa-dash/internal/adapter/usecase"
	"mesa-dash/internal/core/domain"
	"mesa-dash/internal/core/port"
	"mesa-dash/internal/core/port/mocks"
)

type fixture struct {
	handler *Handler
	api     *mocks.MockCampaignAPI
	sel     *usecase.Selection
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	state := memory.NewStateStore()
	sel := usecase.NewSelection(state, logger)
	api := mocks.NewMockCampaignAPI(t)
	wizard := usecase.NewWizard(sel, api, state, logger)
	return &fixture{
		handler: NewHandler(sel, wizard, api, logger),
		api:     api,
		sel:     sel,
	}
}

func (f *fixture) request(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.handler.Router().ServeHTTP(rec, req)
	return rec
}

func TestOrganizationsResolvesSelection(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().ListOrganizations(mock.Anything).Return([]domain.Organization{
		{ID: "org_1", Name: "Acme"},
		{ID: "org_2"},
	}, nil)

	rec := f.request(t, http.MethodGet, "/api/v1/organizations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var views []struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
		Selected    bool   `json:"selected"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
	require.True(t, views[0].Selected, "first entry becomes the default selection")
	require.Equal(t, "Acme", views[0].DisplayName)
	require.False(t, views[1].Selected)
}

func TestCurrentOrganizationResync(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodGet, "/api/v1/organizations/current", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.request(t, http.MethodPost, "/api/v1/organizations/select", `{"id":"org_5","name":"Five"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.request(t, http.MethodGet, "/api/v1/organizations/current", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"org_5"`)
}

// TestStepErrorStatuses checks the taxonomy-to-status mapping: validation
// 422, missing context 409, remote failure 502 with the extracted message.
func TestStepErrorStatuses(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sel.Select(context.Background(), domain.Organization{ID: "org_1"}))

	// Blank name never reaches the network.
	rec := f.request(t, http.MethodPost, "/api/v1/wizard/steps/name", `{"name":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "campaign_name")

	// Platforms before any campaign exists.
	rec = f.request(t, http.MethodPost, "/api/v1/wizard/steps/platforms", `{"platforms":["facebook"]}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	// Remote failure passes the extracted message through.
	f.api.EXPECT().
		CreateCampaign(mock.Anything, "org_1", "Spring").
		Return(nil, &port.RemoteError{StatusCode: 500, Message: "campaign name taken"})
	rec = f.request(t, http.MethodPost, "/api/v1/wizard/steps/name", `{"name":"Spring"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "campaign name taken")
}

func TestStepNoOrganization(t *testing.T) {
	f := newFixture(t)
	rec := f.request(t, http.MethodPost, "/api/v1/wizard/steps/name", `{"name":"Spring"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestUnknownStep(t *testing.T) {
	f := newFixture(t)
	rec := f.request(t, http.MethodPost, "/api/v1/wizard/steps/launch", `{}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStepFlowAdvances(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sel.Select(context.Background(), domain.Organization{ID: "org_9"}))

	f.api.EXPECT().
		CreateCampaign(mock.Anything, "org_9", "Spring").
		Return(&port.CampaignRecord{ID: "42", Name: "Spring", Status: "DRAFT", OrgID: "org_9"}, nil)

	rec := f.request(t, http.MethodPost, "/api/v1/wizard/steps/name", `{"name":"Spring"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		Step       string `json:"step"`
		StepNumber int    `json:"step_number"`
		CampaignID string `json:"campaign_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Equal(t, "platforms", view.Step)
	require.Equal(t, 2, view.StepNumber)
	require.Equal(t, "42", view.CampaignID)
}

func TestWizardSnapshot(t *testing.T) {
	f := newFixture(t)
	rec := f.request(t, http.MethodGet, "/api/v1/wizard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"step":"name"`)
}
