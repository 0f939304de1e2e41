package engine

import (
	"context"
	"log/slog"

	"github.com/jobsignal/jobsignal/jobmod/companystore"
	"github.com/jobsignal/jobsignal/jobmod/content"
	"github.com/jobsignal/jobsignal/jobmod/postingstore"
)

// SubmissionContext is the interface exposed to checks: the submission under
// verification, a pre-populated logger, and accessors for the engine's read
// collaborators.
type SubmissionContext struct {
	// actual golang "context.Context", for cancellation of in-flight I/O
	Ctx context.Context
	// slog logger handle with submission-specific fields pre-populated
	Logger *slog.Logger

	Submission JobSubmission

	engine  *Engine
	effects *Effects
}

func NewSubmissionContext(ctx context.Context, eng *Engine, sub JobSubmission) SubmissionContext {
	return SubmissionContext{
		Ctx:        ctx,
		Logger:     eng.Logger.With("companyID", sub.CompanyID),
		Submission: sub,
		engine:     eng,
		effects:    &Effects{},
	}
}

// RecentPostings returns the company's postings inside the duplicate window.
func (c *SubmissionContext) RecentPostings() ([]postingstore.Posting, error) {
	return c.engine.Postings.RecentByCompany(c.Ctx, c.Submission.CompanyID, c.engine.Policy.DuplicateWindow)
}

// ApprovedPostingCount returns how many of the company's postings were ever
// approved.
func (c *SubmissionContext) ApprovedPostingCount() (int, error) {
	return c.engine.Postings.CountApproved(c.Ctx, c.Submission.CompanyID)
}

// CompanyMeta fetches the company verification snapshot, through the
// engine's cache when one is configured. Returns (nil, nil) when the company
// does not exist.
func (c *SubmissionContext) CompanyMeta() (*companystore.CompanySnapshot, error) {
	return c.engine.GetCompanyMeta(c.Ctx, c.Submission.CompanyID)
}

// AnalyzeContent runs the model-backed fraud classification for the
// submission.
func (c *SubmissionContext) AnalyzeContent() (*content.Assessment, error) {
	return c.engine.Analyzer.Analyze(c.Ctx, c.Submission.contentPosting())
}

func (c *SubmissionContext) AddFieldFlag(val string)     { c.effects.AddFieldFlag(val) }
func (c *SubmissionContext) AddDuplicateFlag(val string) { c.effects.AddDuplicateFlag(val) }
func (c *SubmissionContext) AddTrustFlag(val string)     { c.effects.AddTrustFlag(val) }
func (c *SubmissionContext) Increment(name, val string)  { c.effects.Increment(name, val) }
