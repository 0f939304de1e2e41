package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSalary(t *testing.T) {
	assert := assert.New(t)

	min := int64(30000)
	max := int64(45000)

	assert.Equal("not specified", FormatSalary(Posting{}))
	assert.Equal("$30000 to $45000 (yearly)", FormatSalary(Posting{SalaryMin: &min, SalaryMax: &max, SalaryType: "yearly"}))
	assert.Equal("from $30000 (yearly)", FormatSalary(Posting{SalaryMin: &min, SalaryType: "yearly"}))
	assert.Equal("up to $45000 (unspecified period)", FormatSalary(Posting{SalaryMax: &max}))
}

func TestBuildPrompt(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultPromptConfig()
	p := Posting{
		Title:       "Line Cook",
		Description: "Prepare food on the line during dinner service.",
		City:        "Portland",
		State:       "OR",
	}
	prompt := BuildPrompt(p, cfg)

	assert.Contains(prompt, "Line Cook")
	assert.Contains(prompt, "Portland, OR")
	assert.Contains(prompt, "Salary: not specified")
	assert.Contains(prompt, "minimum wage is $7.25 per hour")
	assert.Contains(prompt, "ONLY a JSON object")
	assert.Contains(prompt, `"riskScore"`)
	for _, phrase := range cfg.ScamPhrases {
		assert.Contains(prompt, phrase)
	}
	// requirements/benefits absent but labeled
	assert.Contains(prompt, "Requirements: (not provided)")
	assert.Contains(prompt, "Benefits: (not provided)")

	// pure function: identical input, identical prompt
	assert.Equal(prompt, BuildPrompt(p, cfg))
	assert.False(strings.Contains(prompt, "```"))
}
