package settings

import (
	"context"
	"testing"
	"time"

	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/internal/event_bus"
	"github.com/moneystream/moneystream/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServiceTest(t *testing.T) (*ServiceImpl, *StubSettingsRepo, *utils.MockClock, context.Context) {
	t.Helper()
	repo := NewStubSettingsRepo()
	clock := &utils.MockClock{FixedNow: time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)}
	service := NewService(repo, clock, event_bus.NewEventBus())
	return service, repo, clock, context.Background()
}

func TestGet(t *testing.T) {

	t.Run("fails before any settings exist", func(t *testing.T) {
		service, _, _, ctx := setupServiceTest(t)

		_, err := service.Get(ctx)

		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("returns persisted settings loaded on construction", func(t *testing.T) {
		repo := NewStubSettingsRepo()
		persisted := Settings{
			InitialBalance: decimal.NewFromInt(250),
			BalanceSetDate: date.New(2023, time.December, 15),
		}
		require.NoError(t, repo.Save(context.Background(), persisted))
		clock := &utils.MockClock{FixedNow: time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)}

		service := NewService(repo, clock, event_bus.NewEventBus())

		got, err := service.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, persisted, got)
	})
}

func TestSetInitialBalance(t *testing.T) {

	t.Run("anchors the balance at today's date", func(t *testing.T) {
		service, repo, clock, ctx := setupServiceTest(t)

		got, err := service.SetInitialBalance(ctx, decimal.NewFromInt(500))

		require.NoError(t, err)
		assert.True(t, got.InitialBalance.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, date.FromTime(clock.Now()), got.BalanceSetDate)
		assert.Equal(t, 1, repo.SaveCalls)
	})

	t.Run("re-anchoring moves the date and keeps display toggles", func(t *testing.T) {
		service, _, clock, ctx := setupServiceTest(t)
		_, err := service.Update(ctx, Settings{
			InitialBalance:       decimal.NewFromInt(100),
			BalanceSetDate:       date.New(2023, time.June, 1),
			ShowDaysIndicator:    true,
			ShowBalanceIndicator: true,
		})
		require.NoError(t, err)

		clock.SetNow(time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC))
		got, err := service.SetInitialBalance(ctx, decimal.NewFromInt(700))

		require.NoError(t, err)
		assert.Equal(t, date.New(2024, time.February, 10), got.BalanceSetDate)
		assert.True(t, got.ShowDaysIndicator)
		assert.True(t, got.ShowBalanceIndicator)
	})
}

func TestUpdate(t *testing.T) {
	service, repo, _, ctx := setupServiceTest(t)
	updated := Settings{
		InitialBalance:    decimal.NewFromInt(300),
		BalanceSetDate:    date.New(2024, time.January, 1),
		ShowDaysIndicator: true,
	}

	got, err := service.Update(ctx, updated)

	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, 1, repo.SaveCalls)
	fromService, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, fromService)
}
