package engine

import (
	"context"
)

// persistEffects writes counters, flag history, and notifications after rule
// execution. All persistence here is best-effort telemetry for reviewers and
// ops: failures are logged, never propagated, and never change the result.
func (eng *Engine) persistEffects(ctx context.Context, c *SubmissionContext, res *VerificationResult) {
	if eng.Counters != nil {
		for _, ref := range c.effects.CounterIncrements {
			if err := eng.Counters.Increment(ctx, ref.Name, ref.Val); err != nil {
				c.Logger.Warn("failed to increment counter", "name", ref.Name, "err", err)
			}
		}
	}

	if eng.Flags != nil && len(res.Flags) > 0 {
		if err := eng.Flags.Add(ctx, c.Submission.CompanyID, res.Flags); err != nil {
			c.Logger.Warn("failed to persist company flags", "err", err)
		}
	}

	if eng.Notifier != nil && !res.IsClean {
		if err := eng.Notifier.SendFlagged(ctx, c.Submission, res); err != nil {
			c.Logger.Warn("failed to send flagged notification", "err", err)
		}
	}
}
