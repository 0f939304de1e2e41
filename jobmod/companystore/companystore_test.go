package companystore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemCompanyStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemCompanyStore()

	snap, err := s.GetCompany(ctx, "corp1")
	assert.NoError(err)
	assert.Nil(snap)

	verifiedAt := time.Now().Add(-30 * 24 * time.Hour)
	s.Put(CompanySnapshot{
		CompanyID:          "corp1",
		IsVerified:         true,
		VerificationStatus: VerificationApproved,
		VerifiedAt:         &verifiedAt,
	})

	snap, err = s.GetCompany(ctx, "corp1")
	assert.NoError(err)
	if assert.NotNil(snap) {
		assert.True(snap.IsVerified)
		assert.Equal(VerificationApproved, snap.VerificationStatus)
		assert.NotNil(snap.VerifiedAt)
	}
}
