package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jobsignal/jobsignal/jobmod/companystore"
	"github.com/jobsignal/jobsignal/jobmod/postingstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPostingStore struct{}

func (failingPostingStore) RecentByCompany(ctx context.Context, companyID string, window time.Duration) ([]postingstore.Posting, error) {
	return nil, fmt.Errorf("connection reset")
}

func (failingPostingStore) CountApproved(ctx context.Context, companyID string) (int, error) {
	return 0, fmt.Errorf("connection reset")
}

type failingCompanyStore struct{}

func (failingCompanyStore) GetCompany(ctx context.Context, companyID string) (*companystore.CompanySnapshot, error) {
	return nil, fmt.Errorf("connection reset")
}

func TestCheckRequiredFields(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng, _, _, _ := EngineTestFixture()

	// all deficiencies flag independently, no early exit
	c := NewSubmissionContext(ctx, eng, JobSubmission{CompanyID: "corp1"})
	require.NoError(t, CheckRequiredFields(&c))
	assert.Equal([]string{
		"Title too short or missing",
		"Job description too short or incomplete",
		"Requirements section too brief",
		"Location information incomplete",
	}, ExtractEffects(&c).FieldFlags)

	// whitespace padding does not count toward minimums
	c = NewSubmissionContext(ctx, eng, JobSubmission{
		CompanyID: "corp1",
		Title:     "   Cook      ",
		City:      "Portland",
		State:     "OR",
	})
	require.NoError(t, CheckRequiredFields(&c))
	assert.Contains(ExtractEffects(&c).FieldFlags, "Title too short or missing")

	c = NewSubmissionContext(ctx, eng, cleanSubmission())
	require.NoError(t, CheckRequiredFields(&c))
	assert.Empty(ExtractEffects(&c).FieldFlags)
	assert.False(ExtractEffects(&c).FieldsInvalid())
}

func TestCheckDuplicatesVelocity(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng, postings, _, _ := EngineTestFixture()
	// exactly the velocity maximum does not flag; one more does
	for i := 0; i < 10; i++ {
		postings.Add("corp-busy", fmt.Sprintf("Opening %d for various roles", i), fmt.Sprintf("unique description number %d with distinct words entirely", i), postingstore.StatusPending, time.Now().Add(-time.Duration(i)*time.Hour))
	}
	sub := cleanSubmission()
	sub.CompanyID = "corp-busy"

	c := NewSubmissionContext(ctx, eng, sub)
	require.NoError(t, CheckDuplicates(&c))
	assert.Empty(ExtractEffects(&c).DuplicateFlags)

	postings.Add("corp-busy", "Opening 11 for various roles", "unique description number eleven with distinct words entirely", postingstore.StatusPending, time.Now().Add(-11*time.Hour))
	c = NewSubmissionContext(ctx, eng, sub)
	require.NoError(t, CheckDuplicates(&c))
	assert.Equal([]string{"Too many job posts in short period (spam indicator)"}, ExtractEffects(&c).DuplicateFlags)
}

func TestCheckDuplicatesSimilarityBoundary(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng, postings, _, _ := EngineTestFixture()

	// historical description shares 4 of 5 tokens in the union: exactly 0.8,
	// which must NOT flag (strictly greater than)
	postings.Add("corp-sim", "Unrelated Title Entirely", "alpha bravo charlie delta", postingstore.StatusApproved, time.Now().Add(-24*time.Hour))

	sub := cleanSubmission()
	sub.CompanyID = "corp-sim"
	sub.Description = "alpha bravo charlie delta echo"

	c := NewSubmissionContext(ctx, eng, sub)
	require.NoError(t, CheckDuplicates(&c))
	assert.Empty(ExtractEffects(&c).DuplicateFlags)

	// identical token set: similarity 1.0, flags exactly once even with
	// multiple matching postings
	postings.Add("corp-sim", "Another Unrelated Title", "alpha bravo charlie delta echo", postingstore.StatusApproved, time.Now().Add(-23*time.Hour))
	postings.Add("corp-sim", "Third Unrelated Title", "echo delta charlie bravo alpha", postingstore.StatusApproved, time.Now().Add(-22*time.Hour))

	c = NewSubmissionContext(ctx, eng, sub)
	require.NoError(t, CheckDuplicates(&c))
	assert.Equal([]string{"Very similar job description to recent post"}, ExtractEffects(&c).DuplicateFlags)
}

// fail-open: a history read failure is treated as no duplicates found
func TestCheckDuplicatesFailOpen(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng, _, _, _ := EngineTestFixture()
	eng.Postings = failingPostingStore{}

	c := NewSubmissionContext(ctx, eng, cleanSubmission())
	require.NoError(t, CheckDuplicates(&c))
	assert.Empty(ExtractEffects(&c).DuplicateFlags)
	assert.NotEmpty(ExtractEffects(&c).DuplicateDegraded)
}

func TestCheckCompanyTrust(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng, postings, companies, _ := EngineTestFixture()

	// unknown company short-circuits as suspicious
	sub := cleanSubmission()
	sub.CompanyID = "corp-missing"
	c := NewSubmissionContext(ctx, eng, sub)
	require.NoError(t, CheckCompanyTrust(&c))
	assert.Equal([]string{"Company not found"}, ExtractEffects(&c).TrustFlags)

	// recently verified company with no approvals yet
	justVerified := time.Now().Add(-2 * 24 * time.Hour)
	companies.Put(companystore.CompanySnapshot{
		CompanyID:          "corp-new",
		IsVerified:         true,
		VerificationStatus: companystore.VerificationApproved,
		VerifiedAt:         &justVerified,
	})
	sub.CompanyID = "corp-new"
	c = NewSubmissionContext(ctx, eng, sub)
	require.NoError(t, CheckCompanyTrust(&c))
	assert.Equal([]string{
		"New company (verified less than 7 days ago)",
		"First job post from this company (requires review)",
	}, ExtractEffects(&c).TrustFlags)

	// verification still pending
	companies.Put(companystore.CompanySnapshot{
		CompanyID:          "corp-pending",
		IsVerified:         false,
		VerificationStatus: companystore.VerificationPending,
	})
	postings.Add("corp-pending", "Old Role", "an old approved posting description", postingstore.StatusApproved, time.Now().Add(-60*24*time.Hour))
	sub.CompanyID = "corp-pending"
	c = NewSubmissionContext(ctx, eng, sub)
	require.NoError(t, CheckCompanyTrust(&c))
	assert.Equal([]string{"Company verification pending or incomplete"}, ExtractEffects(&c).TrustFlags)

	// trusted company raises nothing
	c = NewSubmissionContext(ctx, eng, cleanSubmission())
	require.NoError(t, CheckCompanyTrust(&c))
	assert.Empty(ExtractEffects(&c).TrustFlags)
}

// fail-closed: a company read failure is itself a trust flag
func TestCheckCompanyTrustFailClosed(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng, _, _, _ := EngineTestFixture()
	eng.Companies = failingCompanyStore{}
	eng.Cache = nil

	c := NewSubmissionContext(ctx, eng, cleanSubmission())
	require.NoError(t, CheckCompanyTrust(&c))
	assert.Equal([]string{"Unable to verify company history"}, ExtractEffects(&c).TrustFlags)
	assert.NotEmpty(ExtractEffects(&c).TrustDegraded)

	// approved-count failure has the same polarity
	eng, _, _, _ = EngineTestFixture()
	eng.Postings = failingPostingStore{}
	c = NewSubmissionContext(ctx, eng, cleanSubmission())
	require.NoError(t, CheckCompanyTrust(&c))
	assert.Equal([]string{"Unable to verify company history"}, ExtractEffects(&c).TrustFlags)
}
