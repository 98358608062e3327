package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"

	"mesa-dash/internal/core/domain"
	"mesa-dash/internal/core/port"
)

// Selection implements port.SelectionStore. The persisted record in the
// injected StateStore is the source of truth; the in-process subscriber
// registry only fans out change notifications. Subscribers are keyed by
// random tokens so unsubscribing one listener never disturbs another.
type Selection struct {
	state  port.StateStore
	logger *slog.Logger

	mu   sync.Mutex
	subs map[string]func(domain.Organization)
}

// NewSelection creates a selection store over the given persistence port.
func NewSelection(state port.StateStore, logger *slog.Logger) *Selection {
	return &Selection{
		state:  state,
		logger: logger,
		subs:   make(map[string]func(domain.Organization)),
	}
}

// ResolveInitial picks the active organization for a freshly loaded list.
// Priority: persisted selection still present in the list, then provided,
// then the first entry (persisted immediately as the new default), then nil.
func (s *Selection) ResolveInitial(ctx context.Context, list []domain.Organization, provided *domain.Organization) *domain.Organization {
	if persisted := s.readPersisted(ctx); persisted != nil {
		for i := range list {
			if list[i].ID == persisted.ID {
				return &list[i]
			}
		}
	}
	if provided != nil {
		return provided
	}
	if len(list) == 0 {
		return nil
	}
	first := list[0]
	if err := s.persist(ctx, first); err != nil {
		s.logger.Warn("persisting default organization failed",
			slog.String("org_id", first.ID), slog.Any("error", err))
	}
	return &first
}

// Select persists org and notifies every current subscriber before
// returning. Re-selecting the already active organization still broadcasts
// so listeners can refresh derived display state such as a renamed label.
func (s *Selection) Select(ctx context.Context, org domain.Organization) error {
	if err := s.persist(ctx, org); err != nil {
		return err
	}

	s.mu.Lock()
	listeners := make([]func(domain.Organization), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(org)
	}
	return nil
}

// Current re-reads the persisted selection. Components that are only
// intermittently visible call this on becoming visible again, since
// broadcasts are not replayed.
func (s *Selection) Current(ctx context.Context) *domain.Organization {
	return s.readPersisted(ctx)
}

// Subscribe registers a change listener and returns its unsubscribe func.
func (s *Selection) Subscribe(fn func(domain.Organization)) func() {
	token := uuid.NewString()
	s.mu.Lock()
	s.subs[token] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, token)
		s.mu.Unlock()
	}
}

// DisplayName renders org for display. A persisted name for the same id
// wins over org.Name, covering a rename the canonical list has not caught
// up with yet. A blank name falls back to a label built from the id.
func (s *Selection) DisplayName(ctx context.Context, org domain.Organization) string {
	if name := s.resolvedName(ctx, org); name != "" {
		return name
	}
	return org.FallbackName()
}

// Initial is the single-character avatar form of DisplayName. The
// synthesised fallback label yields the literal "O".
func (s *Selection) Initial(ctx context.Context, org domain.Organization) string {
	name := s.resolvedName(ctx, org)
	if name == "" {
		return "O"
	}
	r := []rune(name)[0]
	return string(unicode.ToUpper(r))
}

func (s *Selection) resolvedName(ctx context.Context, org domain.Organization) string {
	if persisted := s.readPersisted(ctx); persisted != nil && persisted.ID == org.ID {
		if name := strings.TrimSpace(persisted.Name); name != "" {
			return name
		}
	}
	return strings.TrimSpace(org.Name)
}

func (s *Selection) persist(ctx context.Context, org domain.Organization) error {
	raw, err := json.Marshal(org)
	if err != nil {
		return err
	}
	return s.state.Put(ctx, port.KeySelectedOrganization, string(raw))
}

// readPersisted degrades every failure mode to "no selection": a corrupt
// or unreadable record is logged and treated as absent, never surfaced.
func (s *Selection) readPersisted(ctx context.Context) *domain.Organization {
	raw, ok, err := s.state.Get(ctx, port.KeySelectedOrganization)
	if err != nil {
		s.logger.Warn("reading persisted organization failed", slog.Any("error", err))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var org domain.Organization
	if err = json.Unmarshal([]byte(raw), &org); err != nil {
		s.logger.Warn("corrupt persisted organization, treating as empty",
			slog.Any("error", err))
		return nil
	}
	if org.ID == "" {
		return nil
	}
	return &org
}
