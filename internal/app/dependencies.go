package app

import (
	"database/sql"

	"github.com/moneystream/moneystream/internal/event_bus"
	"github.com/moneystream/moneystream/internal/utils"
	"github.com/moneystream/moneystream/pkg/entry"
	"github.com/moneystream/moneystream/pkg/projection"
	"github.com/moneystream/moneystream/pkg/settings"
	"github.com/moneystream/moneystream/pkg/timeline"
	"github.com/moneystream/moneystream/pkg/transfer"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	EntryRepo    entry.EntryRepo
	EntryStore   *entry.StoreImpl
	EntryHandler *entry.EntryHandler

	SettingsRepo    settings.SettingsRepo
	SettingsService *settings.ServiceImpl
	SettingsHandler *settings.SettingsHandler

	ProjectionService *projection.ServiceImpl
	ProjectionHandler *projection.ProjectionHandler

	TimelineService     *timeline.ServiceImpl
	CsvTimelineRenderer *timeline.CsvTimelineRendererImpl
	TimelineHandler     *timeline.TimelineHandler

	TransferService *transfer.ServiceImpl
	TransferHandler *transfer.TransferHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.EntryRepo = entry.NewEntryRepo(db)
	deps.EntryStore = entry.NewStore(deps.EntryRepo, deps.Clock, deps.EventBus)
	deps.EntryHandler = entry.NewEntryHandler(deps.EntryStore)

	deps.SettingsRepo = settings.NewSettingsRepo(db)
	deps.SettingsService = settings.NewService(deps.SettingsRepo, deps.Clock, deps.EventBus)
	deps.SettingsHandler = settings.NewSettingsHandler(deps.SettingsService)

	deps.ProjectionService = projection.NewService(deps.EntryStore, deps.SettingsService, deps.Clock, deps.EventBus)
	deps.ProjectionHandler = projection.NewProjectionHandler(deps.ProjectionService)

	deps.TimelineService = timeline.NewService(deps.EntryStore, deps.ProjectionService, deps.Clock)
	deps.CsvTimelineRenderer = timeline.NewCsvTimelineRenderer()
	deps.TimelineHandler = timeline.NewTimelineHandler(deps.TimelineService, deps.CsvTimelineRenderer)

	deps.TransferService = transfer.NewService(deps.EntryStore, deps.SettingsService)
	deps.TransferHandler = transfer.NewTransferHandler(deps.TransferService)

	return deps
}
