package settings

import (
	"context"
	"errors"
	"sync"

	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/internal/event_bus"
	"github.com/moneystream/moneystream/internal/utils"
	log "github.com/sirupsen/logrus"
	"github.com/shopspring/decimal"
)

// ErrNotConfigured is returned before an initial balance has been set.
var ErrNotConfigured = errors.New("initial balance has not been set")

type Service interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, s Settings) (Settings, error)
	// SetInitialBalance sets the balance anchor to today, the way the
	// original initial-balance dialog does. Display toggles survive.
	SetInitialBalance(ctx context.Context, amount decimal.Decimal) (Settings, error)
}

type ServiceImpl struct {
	mu       sync.RWMutex
	settings *Settings
	repo     SettingsRepo
	clock    utils.Clock
	bus      *event_bus.EventBus
}

func NewService(repo SettingsRepo, clock utils.Clock, bus *event_bus.EventBus) *ServiceImpl {
	settings, err := repo.Load(context.Background())
	if err != nil {
		log.Warnf("could not load persisted settings, treating as absent: %v", err)
		settings = nil
	}
	return &ServiceImpl{settings: settings, repo: repo, clock: clock, bus: bus}
}

func (s *ServiceImpl) Get(ctx context.Context) (Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return Settings{}, ErrNotConfigured
	}
	return *s.settings, nil
}

func (s *ServiceImpl) Update(ctx context.Context, settings Settings) (Settings, error) {
	s.mu.Lock()
	s.settings = &settings
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx)
	return settings, nil
}

func (s *ServiceImpl) SetInitialBalance(ctx context.Context, amount decimal.Decimal) (Settings, error) {
	s.mu.Lock()
	settings := Settings{
		InitialBalance: amount,
		BalanceSetDate: date.FromTime(s.clock.Now()),
	}
	if s.settings != nil {
		settings.ShowDaysIndicator = s.settings.ShowDaysIndicator
		settings.ShowBalanceIndicator = s.settings.ShowBalanceIndicator
	}
	s.settings = &settings
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx)
	return settings, nil
}

func (s *ServiceImpl) persistLocked(ctx context.Context) {
	if err := s.repo.Save(ctx, *s.settings); err != nil {
		log.Errorf("failed to persist settings: %v", err)
	}
}

func (s *ServiceImpl) notify(ctx context.Context) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.SettingsChanged, nil)); err != nil {
		log.Errorf("failed to publish settings change: %v", err)
	}
}
