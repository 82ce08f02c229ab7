package transfer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moneystream/moneystream/pkg/entry"
	"github.com/moneystream/moneystream/pkg/settings"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Export(ctx context.Context) (ExportDTO, error)
	// Import validates the whole document and then atomically replaces
	// both entries and settings. On any validation failure nothing is
	// applied.
	Import(ctx context.Context, raw []byte) error
}

type ServiceImpl struct {
	store           entry.Store
	settingsService settings.Service
}

func NewService(store entry.Store, settingsService settings.Service) *ServiceImpl {
	return &ServiceImpl{store: store, settingsService: settingsService}
}

func (s *ServiceImpl) Export(ctx context.Context) (ExportDTO, error) {
	appSettings, err := s.settingsService.Get(ctx)
	if err != nil {
		return ExportDTO{}, err
	}

	entries := s.store.List(ctx)
	dtos := make([]entry.EntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, entry.EntryToDTO(e))
	}
	return ExportDTO{
		Entries:  dtos,
		Settings: settings.SettingsToDTO(appSettings),
	}, nil
}

func (s *ServiceImpl) Import(ctx context.Context, raw []byte) error {
	if err := validateDocument(raw); err != nil {
		return err
	}

	var doc ExportDTO
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: file structure: %v", ErrInvalidImport, err)
	}

	entries := make([]entry.Entry, 0, len(doc.Entries))
	for i, dto := range doc.Entries {
		e, err := entry.DTOToEntry(dto)
		if err != nil {
			return fmt.Errorf("%w: entry data: entry %d: %v", ErrInvalidImport, i, err)
		}
		entries = append(entries, e)
	}
	newSettings, err := settings.DTOToSettings(doc.Settings)
	if err != nil {
		return fmt.Errorf("%w: settings data: %v", ErrInvalidImport, err)
	}

	// Everything validated; only now touch the store.
	if err := s.store.ReplaceAll(ctx, entries); err != nil {
		return fmt.Errorf("failed to replace entries: %w", err)
	}
	if _, err := s.settingsService.Update(ctx, newSettings); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}

	log.Infof("imported %d entries", len(entries))
	return nil
}
