package engine

import (
	"fmt"

	"github.com/jobsignal/jobsignal/jobmod/content"
)

// JobSubmission is the posting under verification, as submitted. Immutable;
// owned by the submission workflow, not by this engine.
type JobSubmission struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements,omitempty"`
	Benefits     string `json:"benefits,omitempty"`
	SalaryMin    *int64 `json:"salaryMin,omitempty"`
	SalaryMax    *int64 `json:"salaryMax,omitempty"`
	SalaryType   string `json:"salaryType,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	IndustryID   string `json:"industryId"`
	CompanyID    string `json:"companyId"`
}

// Validate catches programmer errors, not data quality problems. Missing or
// short user-facing fields are scored by the field check; a submission with
// no company identity cannot be verified at all.
func (s *JobSubmission) Validate() error {
	if s.CompanyID == "" {
		return fmt.Errorf("job submission missing companyId")
	}
	return nil
}

func (s *JobSubmission) contentPosting() content.Posting {
	return content.Posting{
		Title:        s.Title,
		Description:  s.Description,
		Requirements: s.Requirements,
		Benefits:     s.Benefits,
		SalaryMin:    s.SalaryMin,
		SalaryMax:    s.SalaryMax,
		SalaryType:   s.SalaryType,
		City:         s.City,
		State:        s.State,
	}
}
