package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobsignal/jobsignal/jobmod/cachestore"
	"github.com/jobsignal/jobsignal/jobmod/companystore"
	"github.com/jobsignal/jobsignal/jobmod/content"
	"github.com/jobsignal/jobsignal/jobmod/countstore"
	"github.com/jobsignal/jobsignal/jobmod/flagstore"
	"github.com/jobsignal/jobsignal/jobmod/postingstore"
)

// StubAnalyzer returns a fixed assessment (or error) for every posting.
// Intended for tests; exported so other packages can build fixtures.
type StubAnalyzer struct {
	Assessment *content.Assessment
	Err        error
}

var _ ContentAnalyzer = (*StubAnalyzer)(nil)

func (s *StubAnalyzer) Analyze(ctx context.Context, p content.Posting) (*content.Assessment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Assessment, nil
}

// EngineTestFixture returns an engine wired entirely to in-memory stores,
// with a trusted company "corp1" (verified long ago, one approved posting)
// and an analyzer that reports a zero-risk assessment.
func EngineTestFixture() (*Engine, *postingstore.MemPostingStore, *companystore.MemCompanyStore, *StubAnalyzer) {
	postings := postingstore.NewMemPostingStore()
	companies := companystore.NewMemCompanyStore()

	verifiedAt := time.Now().Add(-90 * 24 * time.Hour)
	companies.Put(companystore.CompanySnapshot{
		CompanyID:          "corp1",
		IsVerified:         true,
		VerificationStatus: companystore.VerificationApproved,
		VerifiedAt:         &verifiedAt,
	})
	postings.Add("corp1", "Shift Supervisor", "supervising shifts at the downtown location for several years now", postingstore.StatusApproved, time.Now().Add(-60*24*time.Hour))

	analyzer := &StubAnalyzer{
		Assessment: &content.Assessment{
			RiskScore:         0,
			IsScam:            false,
			IsProfessional:    true,
			IsSalaryRealistic: true,
			Reasoning:         "test fixture",
			SpecificFlags:     []string{},
		},
	}

	eng := &Engine{
		Logger:    slog.Default(),
		Policy:    DefaultScoringPolicy(),
		Checks:    DefaultCheckSet(),
		Postings:  postings,
		Companies: companies,
		Analyzer:  analyzer,
		Counters:  countstore.NewMemCountStore(),
		Flags:     flagstore.NewMemFlagStore(),
		Cache:     cachestore.NewMemCacheStore(100, time.Hour),
	}
	return eng, postings, companies, analyzer
}

// ExtractEffects exposes the private effects field from a context. Intended
// for test code, not for checks.
func ExtractEffects(c *SubmissionContext) *Effects {
	return c.effects
}
