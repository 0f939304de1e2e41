package engine

import (
	"errors"
	"strings"
	"sync"

	"github.com/jobsignal/jobsignal/jobmod/companystore"
	"github.com/jobsignal/jobsignal/jobmod/content"
	"github.com/jobsignal/jobsignal/jobmod/helpers"
)

type CheckFunc = func(c *SubmissionContext) error

// CheckSet holds the checks to run for each submission. The four defaults
// are mutually independent and are dispatched concurrently; each writes its
// own Effects slot so the final flag order stays fixed.
type CheckSet struct {
	Checks []CheckFunc
}

func DefaultCheckSet() CheckSet {
	return CheckSet{
		Checks: []CheckFunc{
			CheckRequiredFields,
			CheckDuplicates,
			CheckCompanyTrust,
			CheckContent,
		},
	}
}

// CallChecks dispatches all checks concurrently and joins. A check returning
// an error (or panicking) never aborts the others; failures are logged and
// counted, and the corresponding slot simply stays empty.
func (s *CheckSet) CallChecks(c *SubmissionContext) {
	var wg sync.WaitGroup
	for _, f := range s.Checks {
		wg.Add(1)
		go func(check CheckFunc) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					checkErrorCount.WithLabelValues("panic").Inc()
					c.Logger.Error("check execution panic", "panic", r)
				}
			}()
			if err := check(c); err != nil {
				checkErrorCount.WithLabelValues("error").Inc()
				c.Logger.Error("check execution failed", "err", err)
			}
		}(f)
	}
	wg.Wait()
}

var _ CheckFunc = CheckRequiredFields

// CheckRequiredFields validates structural completeness of the submission.
// Pure, no I/O. Every deficiency is flagged independently; there is no early
// exit.
func CheckRequiredFields(c *SubmissionContext) error {
	sub := c.Submission
	policy := c.engine.Policy

	if len(strings.TrimSpace(sub.Title)) < policy.MinTitleLen {
		c.AddFieldFlag("Title too short or missing")
	}
	if len(strings.TrimSpace(sub.Description)) < policy.MinDescriptionLen {
		c.AddFieldFlag("Job description too short or incomplete")
	}
	if len(strings.TrimSpace(sub.Requirements)) < policy.MinRequirementsLen {
		c.AddFieldFlag("Requirements section too brief")
	}
	if strings.TrimSpace(sub.City) == "" || strings.TrimSpace(sub.State) == "" {
		c.AddFieldFlag("Location information incomplete")
	}
	return nil
}

var _ CheckFunc = CheckDuplicates

// CheckDuplicates looks for repeat, near-duplicate, and high-velocity
// submissions inside the trailing window. Fail-open: if the history read
// fails the submission is treated as having no duplicates.
func CheckDuplicates(c *SubmissionContext) error {
	policy := c.engine.Policy

	recent, err := c.RecentPostings()
	if err != nil {
		c.Logger.Warn("posting history read failed, skipping duplicate check", "err", err)
		c.effects.MarkDuplicateDegraded(err.Error())
		checkDegradedCount.WithLabelValues("duplicate").Inc()
		return nil
	}

	for _, p := range recent {
		if strings.EqualFold(p.Title, c.Submission.Title) {
			c.AddDuplicateFlag("Duplicate job post detected (same title in last 7 days)")
			break
		}
	}

	if len(recent) > policy.VelocityMax {
		c.AddDuplicateFlag("Too many job posts in short period (spam indicator)")
	}

	candidate := helpers.TokenizeText(c.Submission.Description)
	for _, p := range recent {
		// strictly greater than: a similarity of exactly the threshold does
		// not flag
		if helpers.JaccardSimilarity(candidate, helpers.TokenizeText(p.Description)) > policy.SimilarityThreshold {
			c.AddDuplicateFlag("Very similar job description to recent post")
			break
		}
	}
	return nil
}

var _ CheckFunc = CheckCompanyTrust

// CheckCompanyTrust scores the company's track record. Fail-closed: if
// either read collaborator fails, the company is treated as suspicious.
func CheckCompanyTrust(c *SubmissionContext) error {
	policy := c.engine.Policy

	snap, err := c.CompanyMeta()
	if err != nil {
		c.Logger.Warn("company read failed, treating as suspicious", "err", err)
		c.effects.MarkTrustDegraded(err.Error())
		checkDegradedCount.WithLabelValues("trust").Inc()
		c.AddTrustFlag("Unable to verify company history")
		return nil
	}
	if snap == nil {
		c.AddTrustFlag("Company not found")
		return nil
	}

	approvedCount, err := c.ApprovedPostingCount()
	if err != nil {
		c.Logger.Warn("approved posting count read failed, treating as suspicious", "err", err)
		c.effects.MarkTrustDegraded(err.Error())
		checkDegradedCount.WithLabelValues("trust").Inc()
		c.AddTrustFlag("Unable to verify company history")
		return nil
	}

	if snap.VerifiedAt != nil && c.engine.now().Sub(*snap.VerifiedAt) < policy.NewCompanyAge {
		c.AddTrustFlag("New company (verified less than 7 days ago)")
	}
	if approvedCount == 0 {
		c.AddTrustFlag("First job post from this company (requires review)")
	}
	if !snap.IsVerified || snap.VerificationStatus != companystore.VerificationApproved {
		c.AddTrustFlag("Company verification pending or incomplete")
	}
	return nil
}

var _ CheckFunc = CheckContent

// CheckContent runs the model-backed fraud classification. Analysis
// unavailability is a first-class outcome, converted to a fixed penalty and
// review flag during aggregation.
func CheckContent(c *SubmissionContext) error {
	assessment, err := c.AnalyzeContent()
	if err != nil {
		if !errors.Is(err, content.ErrAnalysisUnavailable) {
			// analyzer contract violation; degrade anyway but surface it
			c.Logger.Error("unexpected analyzer error", "err", err)
		}
		c.effects.MarkAnalysisUnavailable()
		return nil
	}
	c.effects.SetAssessment(assessment)
	return nil
}
