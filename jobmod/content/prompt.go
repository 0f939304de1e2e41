package content

import (
	"fmt"
	"strings"
)

// Posting carries the submission fields the analyzer needs. It is a plain
// value type so prompt construction stays a pure function.
type Posting struct {
	Title        string
	Description  string
	Requirements string
	Benefits     string
	SalaryMin    *int64
	SalaryMax    *int64
	SalaryType   string
	City         string
	State        string
}

// PromptConfig holds the locale/domain policy constants interpolated into the
// fraud-detection prompt.
type PromptConfig struct {
	// MinimumHourlyWage is the legal wage floor for the marketplace locale,
	// used for salary realism checks.
	MinimumHourlyWage float64
	// ScamPhrases are phrases known to correlate with fraudulent postings.
	ScamPhrases []string
	// SalaryBandNote is a short freeform description of realistic salary
	// ranges for the marketplace's job categories.
	SalaryBandNote string
}

func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		MinimumHourlyWage: 7.25,
		ScamPhrases: []string{
			"no experience necessary, earn thousands weekly",
			"registration fee",
			"training fee required",
			"pay to apply",
			"wire transfer",
			"reshipping",
			"quick money from home",
			"contact us on telegram",
			"cash handling from personal account",
		},
		SalaryBandNote: "Most entry-level service and retail roles pay between $12 and $25 per hour; skilled trades and office roles between $18 and $45 per hour. Salaries wildly above these bands for low-skill roles are a strong fraud signal.",
	}
}

// FormatSalary renders a human-readable salary summary for the prompt.
// Returns "not specified" when no salary information is present.
func FormatSalary(p Posting) string {
	if p.SalaryMin == nil && p.SalaryMax == nil {
		return "not specified"
	}
	unit := p.SalaryType
	if unit == "" {
		unit = "unspecified period"
	}
	if p.SalaryMin != nil && p.SalaryMax != nil {
		return fmt.Sprintf("$%d to $%d (%s)", *p.SalaryMin, *p.SalaryMax, unit)
	}
	if p.SalaryMin != nil {
		return fmt.Sprintf("from $%d (%s)", *p.SalaryMin, unit)
	}
	return fmt.Sprintf("up to $%d (%s)", *p.SalaryMax, unit)
}

func orEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not provided)"
	}
	return s
}

// BuildPrompt renders the full fraud-detection prompt for a posting. Pure
// string construction, no I/O.
func BuildPrompt(p Posting, cfg PromptConfig) string {
	var b strings.Builder

	b.WriteString("You are a fraud-detection analyst for a job marketplace. Assess the following job posting for scams, spam, and unprofessional content.\n\n")

	b.WriteString("JOB POSTING\n")
	fmt.Fprintf(&b, "Title: %s\n", orEmpty(p.Title))
	fmt.Fprintf(&b, "Location: %s, %s\n", orEmpty(p.City), orEmpty(p.State))
	fmt.Fprintf(&b, "Salary: %s\n", FormatSalary(p))
	fmt.Fprintf(&b, "Description: %s\n", orEmpty(p.Description))
	fmt.Fprintf(&b, "Requirements: %s\n", orEmpty(p.Requirements))
	fmt.Fprintf(&b, "Benefits: %s\n\n", orEmpty(p.Benefits))

	b.WriteString("ASSESS FOR\n")
	b.WriteString("1. Scam indicators: requests for money or fees, personal financial information, off-platform contact, money mule or reshipping schemes, vague get-rich promises.\n")
	fmt.Fprintf(&b, "2. Salary realism: the legal minimum wage is $%.2f per hour. %s\n", cfg.MinimumHourlyWage, cfg.SalaryBandNote)
	b.WriteString("3. Professionalism: coherent language, concrete duties, plausible employer voice.\n")
	b.WriteString("4. Spam patterns: keyword stuffing, duplicated boilerplate, bait-and-switch titles.\n\n")

	if len(cfg.ScamPhrases) > 0 {
		b.WriteString("KNOWN SCAM PHRASES\n")
		for _, phrase := range cfg.ScamPhrases {
			fmt.Fprintf(&b, "- %s\n", phrase)
		}
		b.WriteString("\n")
	}

	b.WriteString("OUTPUT CONTRACT\n")
	b.WriteString("Respond with ONLY a JSON object, no markdown fences, no prose before or after:\n")
	b.WriteString(`{"riskScore": <integer 0-100>, "isScam": <bool>, "isProfessional": <bool>, "isSalaryRealistic": <bool>, "reasoning": "<short explanation>", "specificFlags": ["<flag>", ...]}`)
	b.WriteString("\n")

	return b.String()
}
