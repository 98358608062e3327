package port

import (
	"context"

	"mesa-dash/internal/core/domain"
)

// SelectionStore is the single source of truth for the active organization,
// shared by every screen. It is backed by durable storage plus an
// in-process broadcast: notifications reach only currently subscribed
// listeners (at most once per change), so intermittently visible consumers
// must resync via Current when they become visible again.
type SelectionStore interface {
	// ResolveInitial picks the active organization for a freshly loaded
	// organization list. Priority: a persisted selection still present in
	// the list, then provided (if non-nil), then the first list entry
	// (persisted immediately as the new default), then nil for an empty
	// list. Corrupt persisted state reads as "no selection", never an error.
	ResolveInitial(ctx context.Context, list []domain.Organization, provided *domain.Organization) *domain.Organization

	// Select persists org and broadcasts it to all subscribers before
	// returning. Re-selecting the current organization still broadcasts,
	// so listeners can refresh derived display state.
	Select(ctx context.Context, org domain.Organization) error

	// Current re-reads the persisted selection. Nil when nothing is
	// selected or the stored value is unreadable.
	Current(ctx context.Context) *domain.Organization

	// Subscribe registers a listener for selection changes and returns its
	// unsubscribe func. Changes broadcast while unsubscribed are not
	// replayed.
	Subscribe(fn func(domain.Organization)) (unsubscribe func())

	// DisplayName renders org for display. A persisted name for the same
	// id wins over org.Name (the canonical list may be stale relative to a
	// rename); a blank name falls back to a label synthesised from the id.
	DisplayName(ctx context.Context, org domain.Organization) string

	// Initial is the single-character avatar form of DisplayName.
	Initial(ctx context.Context, org domain.Organization) string
}
