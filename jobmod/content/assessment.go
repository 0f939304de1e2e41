package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrAnalysisUnavailable indicates the model could not be consulted, or its
// output could not be interpreted. This is a first-class outcome: callers
// convert it into a fixed penalty and a review flag, never a failed
// verification.
var ErrAnalysisUnavailable = errors.New("content analysis unavailable")

// Assessment is the model's fraud assessment of a single posting, after
// strict validation. RiskScore is clamped to [0, 100].
type Assessment struct {
	RiskScore         int      `json:"riskScore"`
	IsScam            bool     `json:"isScam"`
	IsProfessional    bool     `json:"isProfessional"`
	IsSalaryRealistic bool     `json:"isSalaryRealistic"`
	Reasoning         string   `json:"reasoning"`
	SpecificFlags     []string `json:"specificFlags"`
}

// wire shape: pointer fields so that absent and zero-valued can be told apart
type rawAssessment struct {
	RiskScore         *float64 `json:"riskScore"`
	IsScam            *bool    `json:"isScam"`
	IsProfessional    *bool    `json:"isProfessional"`
	IsSalaryRealistic *bool    `json:"isSalaryRealistic"`
	Reasoning         *string  `json:"reasoning"`
	SpecificFlags     []string `json:"specificFlags"`
}

// stripFences removes a markdown code fence wrapper, if the model ignored the
// JSON-only instruction.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// ParseAssessment interprets raw model output as an Assessment. Empty output,
// non-JSON output, and JSON with missing or mistyped fields all return an
// error wrapping ErrAnalysisUnavailable; the model response is never trusted
// beyond what validates.
func ParseAssessment(text string) (*Assessment, error) {
	cleaned := stripFences(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty model response", ErrAnalysisUnavailable)
	}

	var raw rawAssessment
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing model response: %v", ErrAnalysisUnavailable, err)
	}
	if raw.RiskScore == nil {
		return nil, fmt.Errorf("%w: assessment missing riskScore", ErrAnalysisUnavailable)
	}
	if raw.IsScam == nil {
		return nil, fmt.Errorf("%w: assessment missing isScam", ErrAnalysisUnavailable)
	}
	if raw.IsProfessional == nil {
		return nil, fmt.Errorf("%w: assessment missing isProfessional", ErrAnalysisUnavailable)
	}
	if raw.IsSalaryRealistic == nil {
		return nil, fmt.Errorf("%w: assessment missing isSalaryRealistic", ErrAnalysisUnavailable)
	}
	if raw.Reasoning == nil {
		return nil, fmt.Errorf("%w: assessment missing reasoning", ErrAnalysisUnavailable)
	}

	flags := raw.SpecificFlags
	if flags == nil {
		flags = []string{}
	}

	return &Assessment{
		RiskScore:         clampScore(*raw.RiskScore),
		IsScam:            *raw.IsScam,
		IsProfessional:    *raw.IsProfessional,
		IsSalaryRealistic: *raw.IsSalaryRealistic,
		Reasoning:         *raw.Reasoning,
		SpecificFlags:     flags,
	}, nil
}

// clampScore forces an out-of-range model score into [0, 100] instead of
// letting it propagate into the aggregate.
func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}
