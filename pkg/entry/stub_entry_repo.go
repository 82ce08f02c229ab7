package entry

import (
	"context"
	"errors"
)

type StubEntryRepo struct {
	entries   []Entry
	SaveCalls int
	FailLoad  bool
	FailSave  bool
}

func NewStubEntryRepo() *StubEntryRepo {
	return &StubEntryRepo{entries: []Entry{}}
}

func (s *StubEntryRepo) Load(ctx context.Context) ([]Entry, error) {
	if s.FailLoad {
		return nil, errors.New("stub load failure")
	}
	return append([]Entry{}, s.entries...), nil
}

func (s *StubEntryRepo) Save(ctx context.Context, entries []Entry) error {
	s.SaveCalls++
	if s.FailSave {
		return errors.New("stub save failure")
	}
	s.entries = append([]Entry{}, entries...)
	return nil
}

func (s *StubEntryRepo) Stored() []Entry {
	return s.entries
}

func (s *StubEntryRepo) Cleanup() {
	s.entries = []Entry{}
	s.SaveCalls = 0
	s.FailLoad = false
	s.FailSave = false
}
