package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

const settingsKey = "moneystream_settings"

// SettingsRepo persists the settings as a single document. Load returns
// (nil, nil) when no settings have been saved yet.
type SettingsRepo interface {
	Load(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s Settings) error
}

type SettingsRepoImpl struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepoImpl {
	return &SettingsRepoImpl{db: db}
}

func (r *SettingsRepoImpl) Load(ctx context.Context) (*Settings, error) {
	var value string
	query := "SELECT value FROM kv_store WHERE key = ?"
	err := r.db.QueryRowContext(ctx, query, settingsKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		err := fmt.Errorf("could not load settings: %w", err)
		log.Error(err)
		return nil, err
	}

	var dto SettingsDTO
	if err := json.Unmarshal([]byte(value), &dto); err != nil {
		log.Warnf("stored settings are not valid JSON, treating as absent: %v", err)
		return nil, nil
	}
	s, err := DTOToSettings(dto)
	if err != nil {
		log.Warnf("stored settings are malformed, treating as absent: %v", err)
		return nil, nil
	}
	return &s, nil
}

func (r *SettingsRepoImpl) Save(ctx context.Context, s Settings) error {
	value, err := json.Marshal(SettingsToDTO(s))
	if err != nil {
		err := fmt.Errorf("could not encode settings: %w", err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, datetime('now'))
			  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, settingsKey, string(value)); err != nil {
		err := fmt.Errorf("could not save settings: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
