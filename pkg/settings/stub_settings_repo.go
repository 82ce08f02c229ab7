package settings

import (
	"context"
	"errors"
)

type StubSettingsRepo struct {
	settings  *Settings
	SaveCalls int
	FailSave  bool
}

func NewStubSettingsRepo() *StubSettingsRepo {
	return &StubSettingsRepo{}
}

func (s *StubSettingsRepo) Load(ctx context.Context) (*Settings, error) {
	if s.settings == nil {
		return nil, nil
	}
	copied := *s.settings
	return &copied, nil
}

func (s *StubSettingsRepo) Save(ctx context.Context, settings Settings) error {
	s.SaveCalls++
	if s.FailSave {
		return errors.New("stub save failure")
	}
	s.settings = &settings
	return nil
}

func (s *StubSettingsRepo) Cleanup() {
	s.settings = nil
	s.SaveCalls = 0
	s.FailSave = false
}
