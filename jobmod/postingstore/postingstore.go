package postingstore

import (
	"context"
	"time"
)

// Posting approval states, as persisted by the submission workflow (which is
// outside this engine). Only StatusApproved is meaningful to verification.
const (
	StatusApproved = "APPROVED"
	StatusPending  = "PENDING"
	StatusRejected = "REJECTED"
)

// Posting is a read projection of a historical job posting. Only the fields
// needed for duplicate/spam detection are included.
type Posting struct {
	Title       string
	Description string
	CreatedAt   time.Time
}

// PostingStore provides read-only access to a company's posting history.
// Implementations must be safe for concurrent use.
type PostingStore interface {
	// RecentByCompany returns postings created by the company within the
	// trailing window (eg, the last 7 days), newest first.
	RecentByCompany(ctx context.Context, companyID string, window time.Duration) ([]Posting, error)
	// CountApproved returns the number of postings by the company which were
	// approved for publication, over all time.
	CountApproved(ctx context.Context, companyID string) (int, error)
}
