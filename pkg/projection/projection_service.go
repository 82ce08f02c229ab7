package projection

import (
	"context"
	"sync"

	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/internal/event_bus"
	"github.com/moneystream/moneystream/internal/utils"
	"github.com/moneystream/moneystream/pkg/entry"
	"github.com/moneystream/moneystream/pkg/settings"
	log "github.com/sirupsen/logrus"
	"github.com/shopspring/decimal"
)

type Service interface {
	// Current returns the projection for the current entry set and
	// settings, recomputing only when something changed since the last
	// query.
	Current(ctx context.Context) (Projection, error)
	BalanceOn(ctx context.Context, d date.Date) (decimal.Decimal, error)
}

// ServiceImpl caches the latest projection. The core stays pure; the
// reactive part is just this cache plus event-bus invalidation, so every
// store mutation leads to at most one recomputation on the next query
// instead of one per render.
type ServiceImpl struct {
	store           entry.Store
	settingsService settings.Service
	clock           utils.Clock

	mu     sync.Mutex
	cached *Projection
	asOf   date.Date
}

func NewService(store entry.Store, settingsService settings.Service, clock utils.Clock, bus *event_bus.EventBus) *ServiceImpl {
	s := &ServiceImpl{store: store, settingsService: settingsService, clock: clock}
	if bus != nil {
		bus.Subscribe(event_bus.EntriesChanged, func(event_bus.Event) error {
			s.invalidate()
			return nil
		})
		bus.Subscribe(event_bus.SettingsChanged, func(event_bus.Event) error {
			s.invalidate()
			return nil
		})
	}
	return s
}

func (s *ServiceImpl) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *ServiceImpl) Current(ctx context.Context) (Projection, error) {
	appSettings, err := s.settingsService.Get(ctx)
	if err != nil {
		return Projection{}, err
	}
	today := date.FromTime(s.clock.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	// The window is anchored at today, so a cached projection goes stale
	// at midnight even without any data change.
	if s.cached != nil && s.asOf == today {
		return *s.cached, nil
	}

	log.Debugf("recomputing balance projection as of %s", today)
	p := Project(s.store.List(ctx), appSettings, today)
	s.cached = &p
	s.asOf = today
	return p, nil
}

func (s *ServiceImpl) BalanceOn(ctx context.Context, d date.Date) (decimal.Decimal, error) {
	p, err := s.Current(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return p.BalanceOn(d), nil
}
