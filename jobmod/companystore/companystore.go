package companystore

import (
	"context"
	"time"
)

// Company verification states, as managed by the (external) company
// onboarding workflow.
const (
	VerificationApproved = "APPROVED"
	VerificationPending  = "PENDING"
	VerificationRejected = "REJECTED"
)

// CompanySnapshot is a read projection of a company's verification state.
type CompanySnapshot struct {
	CompanyID          string     `json:"companyID"`
	IsVerified         bool       `json:"isVerified"`
	VerificationStatus string     `json:"verificationStatus"`
	VerifiedAt         *time.Time `json:"verifiedAt,omitempty"`
}

// CompanyStore provides read-only access to company verification records.
//
// GetCompany returns (nil, nil) when no record exists; an error return
// indicates the store itself could not be read.
type CompanyStore interface {
	GetCompany(ctx context.Context, companyID string) (*CompanySnapshot, error)
}
