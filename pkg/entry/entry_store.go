package entry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/internal/event_bus"
	"github.com/moneystream/moneystream/internal/utils"
	log "github.com/sirupsen/logrus"
	"github.com/shopspring/decimal"
)

var ErrEntryNotFound = errors.New("entry not found")

// Store is the authoritative in-memory collection of entries. Every
// mutation produces a new snapshot, persists it through the repo, and
// publishes an EntriesChanged event. Persistence is best-effort: on
// write failure the in-memory state remains the source of truth for the
// session.
type Store interface {
	List(ctx context.Context) []Entry
	Get(ctx context.Context, id string) (Entry, bool)
	Add(ctx context.Context, e Entry) (Entry, error)
	Update(ctx context.Context, id string, e Entry) (Entry, error)
	Delete(ctx context.Context, id string) error
	// DeleteOccurrence suppresses a single occurrence of a recurring
	// entry by inserting a tombstone. It is a call pattern on top of
	// Add, not a separate mutation of the recurring series.
	DeleteOccurrence(ctx context.Context, parentID string, day date.Date) (Entry, error)
	// ReplaceAll swaps the entire collection, used by import.
	ReplaceAll(ctx context.Context, entries []Entry) error
}

type StoreImpl struct {
	mu      sync.RWMutex
	entries []Entry
	repo    EntryRepo
	clock   utils.Clock
	bus     *event_bus.EventBus
}

// NewStore loads the persisted entries once. A load failure degrades to
// an empty collection.
func NewStore(repo EntryRepo, clock utils.Clock, bus *event_bus.EventBus) *StoreImpl {
	entries, err := repo.Load(context.Background())
	if err != nil {
		log.Warnf("could not load persisted entries, starting empty: %v", err)
		entries = []Entry{}
	}
	return &StoreImpl{entries: entries, repo: repo, clock: clock, bus: bus}
}

func (s *StoreImpl) List(ctx context.Context) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.entries)
}

func (s *StoreImpl) Get(ctx context.Context, id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return clone(e), true
		}
	}
	return Entry{}, false
}

func (s *StoreImpl) Add(ctx context.Context, e Entry) (Entry, error) {
	s.mu.Lock()
	e.ID = uuid.NewString()
	e.CreatedAt = s.clock.Now().UTC()

	updated := snapshot(s.entries)
	updated = append(updated, clone(e))
	s.entries = updated
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx)
	return e, nil
}

func (s *StoreImpl) Update(ctx context.Context, id string, e Entry) (Entry, error) {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	// Identity and creation time are immutable.
	e.ID = id
	e.CreatedAt = s.entries[idx].CreatedAt

	updated := snapshot(s.entries)
	updated[idx] = clone(e)
	s.entries = updated
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx)
	return e, nil
}

func (s *StoreImpl) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	// Override and tombstone children are left orphaned on purpose;
	// the resolver treats them as plain one-time entries.
	updated := snapshot(s.entries)
	updated = append(updated[:idx], updated[idx+1:]...)
	s.entries = updated
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx)
	return nil
}

func (s *StoreImpl) DeleteOccurrence(ctx context.Context, parentID string, day date.Date) (Entry, error) {
	parent, ok := s.Get(ctx, parentID)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, parentID)
	}
	specificDate := day
	tombstone := Entry{
		Label:         parent.Label,
		Amount:        decimal.Zero,
		Type:          parent.Type,
		RepeatType:    RepeatOnce,
		SpecificDate:  &specificDate,
		ParentEntryID: parentID,
		Deleted:       true,
	}
	return s.Add(ctx, tombstone)
}

func (s *StoreImpl) ReplaceAll(ctx context.Context, entries []Entry) error {
	s.mu.Lock()
	s.entries = snapshot(entries)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx)
	return nil
}

func (s *StoreImpl) indexOfLocked(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *StoreImpl) persistLocked(ctx context.Context) {
	if err := s.repo.Save(ctx, s.entries); err != nil {
		log.Errorf("failed to persist entries: %v", err)
	}
}

func (s *StoreImpl) notify(ctx context.Context) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.EntriesChanged, nil)); err != nil {
		log.Errorf("failed to publish entries change: %v", err)
	}
}

// snapshot deep-copies the collection so callers never alias the
// store's internal state.
func snapshot(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = clone(e)
	}
	return out
}

func clone(e Entry) Entry {
	if e.StartDate != nil {
		startDate := *e.StartDate
		e.StartDate = &startDate
	}
	if e.SpecificDate != nil {
		specificDate := *e.SpecificDate
		e.SpecificDate = &specificDate
	}
	return e
}
