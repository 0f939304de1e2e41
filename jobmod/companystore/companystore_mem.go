package companystore

import (
	"context"
	"sync"
)

type MemCompanyStore struct {
	lk   sync.RWMutex
	Data map[string]CompanySnapshot
}

var _ CompanyStore = (*MemCompanyStore)(nil)

func NewMemCompanyStore() *MemCompanyStore {
	return &MemCompanyStore{
		Data: make(map[string]CompanySnapshot),
	}
}

func (s *MemCompanyStore) Put(snap CompanySnapshot) {
	s.lk.Lock()
	defer s.lk.Unlock()
	s.Data[snap.CompanyID] = snap
}

func (s *MemCompanyStore) GetCompany(ctx context.Context, companyID string) (*CompanySnapshot, error) {
	s.lk.RLock()
	defer s.lk.RUnlock()
	snap, ok := s.Data[companyID]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}
