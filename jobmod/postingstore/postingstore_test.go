package postingstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemPostingStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemPostingStore()

	recent, err := s.RecentByCompany(ctx, "corp1", 7*24*time.Hour)
	assert.NoError(err)
	assert.Empty(recent)

	now := time.Now()
	s.Add("corp1", "Line Cook", "cooking on the line", StatusApproved, now.Add(-time.Hour))
	s.Add("corp1", "Dishwasher", "washing dishes", StatusPending, now.Add(-2*time.Hour))
	s.Add("corp1", "Old Posting", "from another era", StatusApproved, now.Add(-30*24*time.Hour))
	s.Add("corp2", "Line Cook", "a different company", StatusApproved, now.Add(-time.Hour))

	recent, err = s.RecentByCompany(ctx, "corp1", 7*24*time.Hour)
	assert.NoError(err)
	assert.Equal(2, len(recent))

	count, err := s.CountApproved(ctx, "corp1")
	assert.NoError(err)
	assert.Equal(2, count)

	count, err = s.CountApproved(ctx, "corp3")
	assert.NoError(err)
	assert.Equal(0, count)
}
