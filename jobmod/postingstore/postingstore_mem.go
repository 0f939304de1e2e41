package postingstore

import (
	"context"
	"sync"
	"time"
)

type memPosting struct {
	Posting
	CompanyID string
	Status    string
}

// MemPostingStore is an in-memory PostingStore, for testing and small
// deployments.
type MemPostingStore struct {
	lk       sync.RWMutex
	postings []memPosting
}

var _ PostingStore = (*MemPostingStore)(nil)

func NewMemPostingStore() *MemPostingStore {
	return &MemPostingStore{}
}

// Add records a posting with the given approval status.
func (s *MemPostingStore) Add(companyID, title, description, status string, createdAt time.Time) {
	s.lk.Lock()
	defer s.lk.Unlock()
	s.postings = append(s.postings, memPosting{
		Posting: Posting{
			Title:       title,
			Description: description,
			CreatedAt:   createdAt,
		},
		CompanyID: companyID,
		Status:    status,
	})
}

func (s *MemPostingStore) RecentByCompany(ctx context.Context, companyID string, window time.Duration) ([]Posting, error) {
	s.lk.RLock()
	defer s.lk.RUnlock()
	cutoff := time.Now().Add(-window)
	out := []Posting{}
	for _, p := range s.postings {
		if p.CompanyID == companyID && p.CreatedAt.After(cutoff) {
			out = append(out, p.Posting)
		}
	}
	return out, nil
}

func (s *MemPostingStore) CountApproved(ctx context.Context, companyID string) (int, error) {
	s.lk.RLock()
	defer s.lk.RUnlock()
	count := 0
	for _, p := range s.postings {
		if p.CompanyID == companyID && p.Status == StatusApproved {
			count++
		}
	}
	return count, nil
}
