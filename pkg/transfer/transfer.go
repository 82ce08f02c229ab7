// Package transfer implements JSON export and all-or-nothing import of
// the full store contents: { "entries": [...], "settings": {...} }.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/moneystream/moneystream/pkg/entry"
	"github.com/moneystream/moneystream/pkg/settings"
)

// ErrInvalidImport wraps every validation failure so handlers can tell
// bad input from internal errors.
var ErrInvalidImport = errors.New("invalid import data")

type ExportDTO struct {
	Entries  []entry.EntryDTO     `json:"entries"`
	Settings settings.SettingsDTO `json:"settings"`
}

var validEntryTypes = map[string]bool{"income": true, "expense": true}
var validRepeatTypes = map[string]bool{"monthly": true, "weekly": true, "biweekly": true, "once": true}

// validateDocument checks the import file field by field before anything
// is applied. Errors name the failing category and field: file structure
// first, then per-entry data, then settings data.
func validateDocument(raw []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var doc map[string]any
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("%w: file structure: not a JSON object: %v", ErrInvalidImport, err)
	}

	rawEntries, ok := doc["entries"]
	if !ok {
		return fmt.Errorf("%w: file structure: missing \"entries\"", ErrInvalidImport)
	}
	entryList, ok := rawEntries.([]any)
	if !ok {
		return fmt.Errorf("%w: file structure: \"entries\" must be an array", ErrInvalidImport)
	}

	rawSettings, ok := doc["settings"]
	if !ok {
		return fmt.Errorf("%w: file structure: missing \"settings\"", ErrInvalidImport)
	}
	settingsObject, ok := rawSettings.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: file structure: \"settings\" must be an object", ErrInvalidImport)
	}

	for i, rawEntry := range entryList {
		entryObject, ok := rawEntry.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: entry data: entry %d is not an object", ErrInvalidImport, i)
		}
		if err := validateEntry(entryObject); err != nil {
			return fmt.Errorf("%w: entry data: entry %d: %v", ErrInvalidImport, i, err)
		}
	}

	if err := validateSettings(settingsObject); err != nil {
		return fmt.Errorf("%w: settings data: %v", ErrInvalidImport, err)
	}
	return nil
}

func validateEntry(e map[string]any) error {
	if err := requireString(e, "id"); err != nil {
		return err
	}
	if err := requireString(e, "label"); err != nil {
		return err
	}
	if err := requireNumber(e, "amount"); err != nil {
		return err
	}
	entryType, _ := e["type"].(string)
	if !validEntryTypes[entryType] {
		return fmt.Errorf("\"type\" must be \"income\" or \"expense\"")
	}
	repeatType, _ := e["repeatType"].(string)
	if !validRepeatTypes[repeatType] {
		return fmt.Errorf("\"repeatType\" must be one of monthly, weekly, biweekly, once")
	}
	if _, ok := e["createdAt"].(string); !ok {
		return fmt.Errorf("\"createdAt\" must be a string")
	}
	return nil
}

func validateSettings(s map[string]any) error {
	if err := requireNumber(s, "initialBalance"); err != nil {
		return err
	}
	if _, ok := s["balanceSetDate"].(string); !ok {
		return fmt.Errorf("\"balanceSetDate\" must be a string")
	}
	return nil
}

func requireString(object map[string]any, field string) error {
	value, ok := object[field].(string)
	if !ok || value == "" {
		return fmt.Errorf("%q must be a non-empty string", field)
	}
	return nil
}

func requireNumber(object map[string]any, field string) error {
	if _, ok := object[field].(json.Number); !ok {
		return fmt.Errorf("%q must be a number", field)
	}
	return nil
}
