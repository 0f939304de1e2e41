package flagstore

import (
	"context"
	"sync"

	"github.com/jobsignal/jobsignal/jobmod/helpers"
)

type MemFlagStore struct {
	lk   sync.Mutex
	Data map[string][]string
}

var _ FlagStore = (*MemFlagStore)(nil)

func NewMemFlagStore() *MemFlagStore {
	return &MemFlagStore{
		Data: make(map[string][]string),
	}
}

func (s *MemFlagStore) Get(ctx context.Context, key string) ([]string, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	v, ok := s.Data[key]
	if !ok {
		return []string{}, nil
	}
	return v, nil
}

func (s *MemFlagStore) Add(ctx context.Context, key string, flags []string) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	v := append(s.Data[key], flags...)
	s.Data[key] = helpers.DedupeStrings(v)
	return nil
}

// does not error if flags not in set
func (s *MemFlagStore) Remove(ctx context.Context, key string, flags []string) error {
	if len(flags) == 0 {
		return nil
	}
	s.lk.Lock()
	defer s.lk.Unlock()
	v := s.Data[key]
	m := make(map[string]bool, len(v))
	for _, f := range v {
		m[f] = true
	}
	for _, f := range flags {
		delete(m, f)
	}
	out := []string{}
	for _, f := range v {
		if m[f] {
			out = append(out, f)
			delete(m, f)
		}
	}
	s.Data[key] = out
	return nil
}
