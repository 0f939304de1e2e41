package engine

import (
	"fmt"
	"strings"
)

// VerificationResult is the sole output of verification. The caller persists
// approval state and surfaces FlagReason to reviewers; the engine itself
// keeps nothing.
type VerificationResult struct {
	IsClean     bool     `json:"isClean"`
	AutoApprove bool     `json:"autoApprove"`
	FlagReason  string   `json:"flagReason,omitempty"`
	RiskScore   int      `json:"riskScore"`
	Flags       []string `json:"flags"`
}

// GenerateVerificationSummary renders a plain-text block for human reviewers.
func GenerateVerificationSummary(res *VerificationResult) string {
	if res.AutoApprove {
		return "Job post verified successfully and approved for publication."
	}
	if len(res.Flags) == 0 {
		return "No issues detected."
	}
	var b strings.Builder
	b.WriteString("Flagged for review:\n")
	for i, flag := range res.Flags {
		fmt.Fprintf(&b, "%d. %s\n", i+1, flag)
	}
	fmt.Fprintf(&b, "\nRisk Score: %d/100", res.RiskScore)
	return b.String()
}
