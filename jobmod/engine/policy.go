package engine

import (
	"time"
)

// ScoringPolicy holds every penalty weight, threshold, and window the engine
// applies, so decision tuning never requires touching control flow.
type ScoringPolicy struct {
	// flat penalty when any structural field flag is present (not per-flag)
	FieldPenalty int
	// flat penalty when any duplicate/spam flag is present
	DuplicatePenalty int
	// flat penalty when the company history is suspicious
	TrustPenalty int
	// flat penalty when model analysis is unavailable
	AnalysisUnavailablePenalty int

	// a result is clean when riskScore is strictly below this AND no flags
	CleanThreshold int
	// auto-approve requires riskScore strictly below this
	AutoApproveThreshold int
	// The observed production policy auto-approves on score alone: a posting
	// carrying a structural flag can still auto-approve if its score stays
	// under the threshold. Set this to require an empty flag list as well.
	ApproveRequiresNoFlags bool

	// trailing window for duplicate/spam detection
	DuplicateWindow time.Duration
	// more than this many postings inside the window is a spam indicator
	VelocityMax int
	// Jaccard similarity strictly greater than this flags a near-duplicate
	SimilarityThreshold float64

	// companies verified more recently than this are flagged as new
	NewCompanyAge time.Duration

	// minimum trimmed lengths for structural validation
	MinTitleLen        int
	MinDescriptionLen  int
	MinRequirementsLen int
}

func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		FieldPenalty:               15,
		DuplicatePenalty:           25,
		TrustPenalty:               15,
		AnalysisUnavailablePenalty: 20,

		CleanThreshold:         30,
		AutoApproveThreshold:   20,
		ApproveRequiresNoFlags: false,

		DuplicateWindow:     7 * 24 * time.Hour,
		VelocityMax:         10,
		SimilarityThreshold: 0.8,

		NewCompanyAge: 7 * 24 * time.Hour,

		MinTitleLen:        10,
		MinDescriptionLen:  100,
		MinRequirementsLen: 50,
	}
}
