package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"mesa-dash/internal/adapter/memory"
	"mesa-dash/internal/core/domain"
	"mesa-dash/internal/core/port"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func storedOrg(t *testing.T, state port.StateStore) *domain.Organization {
	t.Helper()
	raw, ok, err := state.Get(context.Background(), port.KeySelectedOrganization)
	require.NoError(t, err)
	if !ok {
		return nil
	}
	var org domain.Organization
	require.NoError(t, json.Unmarshal([]byte(raw), &org))
	return &org
}

func TestResolveInitialPrefersPersisted(t *testing.T) {
	ctx := context.Background()
	state := memory.NewStateStore()
	sel := NewSelection(state, testLogger())

	require.NoError(t, sel.Select(ctx, domain.Organization{ID: "org_2", Name: "Two"}))

	list := []domain.Organization{{ID: "org_1"}, {ID: "org_2", Name: "Two (canonical)"}}
	got := sel.ResolveInitial(ctx, list, &domain.Organization{ID: "org_external"})
	require.NotNil(t, got)
	require.Equal(t, "org_2", got.ID)
}

func TestResolveInitialFallsBackToProvided(t *testing.T) {
	ctx := context.Background()
	sel := NewSelection(memory.NewStateStore(), testLogger())

	provided := &domain.Organization{ID: "org_ext", Name: "External"}
	list := []domain.Organization{{ID: "org_1"}}
	got := sel.ResolveInitial(ctx, list, provided)
	require.Equal(t, provided, got)
}

// TestResolveInitialPersistsFirstEntry checks that picking the first list
// entry as the default is observable in storage afterwards.
func TestResolveInitialPersistsFirstEntry(t *testing.T) {
	ctx := context.Background()
	state := memory.NewStateStore()
	sel := NewSelection(state, testLogger())

	list := []domain.Organization{{ID: "org_1", Name: "First"}, {ID: "org_2"}}
	got := sel.ResolveInitial(ctx, list, nil)
	require.NotNil(t, got)
	require.Equal(t, "org_1", got.ID)

	stored := storedOrg(t, state)
	require.NotNil(t, stored)
	require.Equal(t, "org_1", stored.ID)
}

func TestResolveInitialEmptyList(t *testing.T) {
	sel := NewSelection(memory.NewStateStore(), testLogger())
	require.Nil(t, sel.ResolveInitial(context.Background(), nil, nil))
}

// TestResolveInitialCorruptPersisted checks that unreadable persisted state
// degrades to "no persisted selection" instead of failing resolution.
func TestResolveInitialCorruptPersisted(t *testing.T) {
	ctx := context.Background()
	state := memory.NewStateStore()
	require.NoError(t, state.Put(ctx, port.KeySelectedOrganization, "{not json"))
	sel := NewSelection(state, testLogger())

	list := []domain.Organization{{ID: "org_1"}}
	got := sel.ResolveInitial(ctx, list, nil)
	require.NotNil(t, got)
	require.Equal(t, "org_1", got.ID)
}

// TestSelectRebroadcastsSameOrganization checks that re-selecting the
// active organization still notifies listeners, so they can refresh
// derived display state.
func TestSelectRebroadcastsSameOrganization(t *testing.T) {
	ctx := context.Background()
	sel := NewSelection(memory.NewStateStore(), testLogger())

	var notified []string
	unsub := sel.Subscribe(func(org domain.Organization) {
		notified = append(notified, org.ID)
	})
	defer unsub()

	org := domain.Organization{ID: "org_1", Name: "Acme"}
	require.NoError(t, sel.Select(ctx, org))
	require.NoError(t, sel.Select(ctx, org))
	require.Equal(t, []string{"org_1", "org_1"}, notified)
}

// TestLateSubscribeResync checks the become-visible contract: a listener
// subscribed after a change sees nothing replayed but an explicit Current
// read yields the selection.
func TestLateSubscribeResync(t *testing.T) {
	ctx := context.Background()
	sel := NewSelection(memory.NewStateStore(), testLogger())

	org := domain.Organization{ID: "org_7", Name: "Seven"}
	require.NoError(t, sel.Select(ctx, org))

	called := false
	unsub := sel.Subscribe(func(domain.Organization) { called = true })
	defer unsub()
	require.False(t, called, "missed broadcasts must not be replayed")

	current := sel.Current(ctx)
	require.NotNil(t, current)
	require.Equal(t, org, *current)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	ctx := context.Background()
	sel := NewSelection(memory.NewStateStore(), testLogger())

	count := 0
	unsub := sel.Subscribe(func(domain.Organization) { count++ })
	require.NoError(t, sel.Select(ctx, domain.Organization{ID: "a"}))
	unsub()
	require.NoError(t, sel.Select(ctx, domain.Organization{ID: "b"}))
	require.Equal(t, 1, count)
}

// TestDisplayNamePriority checks the persisted-name-override > org.Name >
// synthesized-label chain.
func TestDisplayNamePriority(t *testing.T) {
	ctx := context.Background()
	sel := NewSelection(memory.NewStateStore(), testLogger())

	// Persisted name wins over a stale canonical name for the same id.
	require.NoError(t, sel.Select(ctx, domain.Organization{ID: "org_1", Name: "Renamed"}))
	got := sel.DisplayName(ctx, domain.Organization{ID: "org_1", Name: "Old Name"})
	require.Equal(t, "Renamed", got)

	// A different id keeps its own name.
	got = sel.DisplayName(ctx, domain.Organization{ID: "org_2", Name: "Other"})
	require.Equal(t, "Other", got)

	// No name anywhere: label synthesized from the id tail.
	got = sel.DisplayName(ctx, domain.Organization{ID: "abc123def456"})
	require.Equal(t, "Organization def456", got)
}

func TestInitial(t *testing.T) {
	ctx := context.Background()
	sel := NewSelection(memory.NewStateStore(), testLogger())

	require.Equal(t, "A", sel.Initial(ctx, domain.Organization{ID: "org_1", Name: "acme"}))
	require.Equal(t, "O", sel.Initial(ctx, domain.Organization{ID: "abc123def456"}))
}
