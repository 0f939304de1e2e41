package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jobsignal/jobsignal/jobmod/cachestore"
	"github.com/jobsignal/jobsignal/jobmod/companystore"
	"github.com/jobsignal/jobsignal/jobmod/content"
	"github.com/jobsignal/jobsignal/jobmod/countstore"
	"github.com/jobsignal/jobsignal/jobmod/flagstore"
	"github.com/jobsignal/jobsignal/jobmod/postingstore"

	"go.opentelemetry.io/otel"
	"golang.org/x/sync/singleflight"
)

// ContentAnalyzer classifies a posting using an external model. Implemented
// by content.Analyzer; kept as an interface here so tests (and alternate
// model backends) can swap it.
type ContentAnalyzer interface {
	Analyze(ctx context.Context, p content.Posting) (*content.Assessment, error)
}

// Notifier pushes flagged verification outcomes to a chat channel or similar.
type Notifier interface {
	SendFlagged(ctx context.Context, sub JobSubmission, res *VerificationResult) error
}

// Engine is the runtime for verifying job submissions: it fans the
// configured checks out over the read collaborators, merges their effects
// under the scoring policy, and emits a VerificationResult.
//
// Stateless per call; safe for concurrent use.
type Engine struct {
	Logger    *slog.Logger
	Policy    ScoringPolicy
	Checks    CheckSet
	Postings  postingstore.PostingStore
	Companies companystore.CompanyStore
	Analyzer  ContentAnalyzer

	// optional: counters persisted per verification
	Counters countstore.CountStore
	// optional: per-company flag history for reviewers
	Flags flagstore.FlagStore
	// optional: cache in front of the company store
	Cache cachestore.CacheStore
	// optional: flagged-result notifications
	Notifier Notifier

	// test hook; defaults to time.Now
	Now func() time.Time

	companyFetch singleflight.Group
}

func (eng *Engine) now() time.Time {
	if eng.Now != nil {
		return eng.Now()
	}
	return time.Now()
}

// VerifyJob runs all checks against a submission and returns the aggregate
// verdict. Sub-check failures never surface as errors: each check degrades
// per its own polarity. The only error return is for submissions that cannot
// be verified at all (missing company identity).
func (eng *Engine) VerifyJob(ctx context.Context, sub JobSubmission) (*VerificationResult, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	ctx, span := otel.Tracer("jobmod").Start(ctx, "VerifyJob")
	defer span.End()

	start := time.Now()
	defer func() {
		verifyDuration.Observe(time.Since(start).Seconds())
	}()

	c := NewSubmissionContext(ctx, eng, sub)
	eng.Checks.CallChecks(&c)

	res := eng.aggregate(c.effects)
	eng.canonicalLogLine(&c, res)

	c.effects.Increment("submission", sub.CompanyID)
	if len(res.Flags) > 0 {
		c.effects.Increment("flagged", sub.CompanyID)
	}
	eng.persistEffects(ctx, &c, res)

	verifyCount.WithLabelValues(outcomeLabel(res)).Inc()
	return res, nil
}

// aggregate merges check effects into the final result, under the scoring
// policy. Flag order is fixed: field, duplicate, trust, then AI (or the
// analysis-unavailable fallback).
func (eng *Engine) aggregate(eff *Effects) *VerificationResult {
	policy := eng.Policy

	score := 0
	if eff.FieldsInvalid() {
		score += policy.FieldPenalty
	}
	if eff.IsDuplicate() {
		score += policy.DuplicatePenalty
	}
	if eff.IsSuspicious() {
		score += policy.TrustPenalty
	}

	flags := []string{}
	flags = append(flags, eff.FieldFlags...)
	flags = append(flags, eff.DuplicateFlags...)
	flags = append(flags, eff.TrustFlags...)

	scamAsserted := false
	if eff.Assessment != nil {
		score += eff.Assessment.RiskScore
		flags = append(flags, eff.Assessment.SpecificFlags...)
		scamAsserted = eff.Assessment.IsScam
	} else {
		score += policy.AnalysisUnavailablePenalty
		flags = append(flags, "AI analysis unavailable - flagged for manual review")
	}

	autoApprove := score < policy.AutoApproveThreshold && !scamAsserted
	if policy.ApproveRequiresNoFlags && len(flags) > 0 {
		autoApprove = false
	}

	res := &VerificationResult{
		IsClean:     score < policy.CleanThreshold && len(flags) == 0,
		AutoApprove: autoApprove,
		RiskScore:   score,
		Flags:       flags,
	}
	if len(flags) > 0 {
		res.FlagReason = strings.Join(flags, "; ")
	}
	return res
}

// GetCompanyMeta fetches a company verification snapshot, reading through
// the engine's cache when configured. Concurrent fetches for the same
// company are coalesced.
func (eng *Engine) GetCompanyMeta(ctx context.Context, companyID string) (*companystore.CompanySnapshot, error) {
	if eng.Cache != nil {
		existing, err := eng.Cache.Get(ctx, "company", companyID)
		if err != nil {
			return nil, err
		}
		if existing != "" {
			var snap companystore.CompanySnapshot
			if err := json.Unmarshal([]byte(existing), &snap); err != nil {
				return nil, fmt.Errorf("parsing CompanySnapshot from cache: %v", err)
			}
			return &snap, nil
		}
	}

	v, err, _ := eng.companyFetch.Do(companyID, func() (interface{}, error) {
		snap, err := eng.Companies.GetCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}
		if snap != nil && eng.Cache != nil {
			raw, err := json.Marshal(snap)
			if err != nil {
				return nil, err
			}
			if err := eng.Cache.Set(ctx, "company", companyID, string(raw)); err != nil {
				eng.Logger.Warn("failed to cache company snapshot", "companyID", companyID, "err", err)
			}
		}
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*companystore.CompanySnapshot), nil
}

// PurgeCompanyCaches drops any cached snapshot for the company, eg after the
// onboarding workflow updates verification state.
func (eng *Engine) PurgeCompanyCaches(ctx context.Context, companyID string) error {
	if eng.Cache == nil {
		return nil
	}
	return eng.Cache.Purge(ctx, "company", companyID)
}

func (eng *Engine) canonicalLogLine(c *SubmissionContext, res *VerificationResult) {
	c.Logger.Info("verification complete",
		"riskScore", res.RiskScore,
		"isClean", res.IsClean,
		"autoApprove", res.AutoApprove,
		"numFlags", len(res.Flags),
		"analysisUnavailable", c.effects.AnalysisUnavailable,
		"duplicateDegraded", c.effects.DuplicateDegraded != "",
		"trustDegraded", c.effects.TrustDegraded != "",
	)
}

func outcomeLabel(res *VerificationResult) string {
	switch {
	case res.AutoApprove:
		return "auto-approve"
	case res.IsClean:
		return "clean"
	default:
		return "review"
	}
}
