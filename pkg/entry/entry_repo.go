package entry

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

const entriesKey = "moneystream_entries"

// EntryRepo persists the full entry collection as a single document.
// The store keeps the authoritative copy in memory; the repo is its
// best-effort backing.
type EntryRepo interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

type EntryRepoImpl struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepoImpl {
	return &EntryRepoImpl{db: db}
}

func (r *EntryRepoImpl) Load(ctx context.Context) ([]Entry, error) {
	var value string
	query := "SELECT value FROM kv_store WHERE key = ?"
	err := r.db.QueryRowContext(ctx, query, entriesKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []Entry{}, nil
	}
	if err != nil {
		err := fmt.Errorf("could not load entries: %w", err)
		log.Error(err)
		return nil, err
	}

	var dtos []EntryDTO
	if err := json.Unmarshal([]byte(value), &dtos); err != nil {
		// Malformed persisted data is treated as absence, not a fatal error.
		log.Warnf("stored entries are not valid JSON, starting empty: %v", err)
		return []Entry{}, nil
	}

	entries := make([]Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := DTOToEntry(dto)
		if err != nil {
			log.Warnf("skipping stored entry %q: %v", dto.ID, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *EntryRepoImpl) Save(ctx context.Context, entries []Entry) error {
	dtos := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, EntryToDTO(e))
	}
	value, err := json.Marshal(dtos)
	if err != nil {
		err := fmt.Errorf("could not encode entries: %w", err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, datetime('now'))
			  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, entriesKey, string(value)); err != nil {
		err := fmt.Errorf("could not save entries: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
