package engine

import (
	"sync"

	"github.com/jobsignal/jobsignal/jobmod/content"
)

type CounterRef struct {
	Name string
	Val  string
}

// Effects is the mutable container for everything the checks produce while
// processing one submission. Each check writes only its own slot, which keeps
// the final flag ordering deterministic even though checks run concurrently;
// the mutex guards against custom check sets that share slots.
type Effects struct {
	lk sync.Mutex

	// flags from structural field validation
	FieldFlags []string
	// flags from duplicate/spam detection over the posting history window
	DuplicateFlags []string
	// flags from company track-record evaluation
	TrustFlags []string

	// parsed model assessment; nil when unavailable
	Assessment *content.Assessment
	// set when the model could not be consulted or its output was unusable
	AnalysisUnavailable bool

	// degraded-outcome reasons, recorded so each failure polarity is an
	// explicit, observable policy rather than incidental error handling.
	// DuplicateDegraded means the history read failed (treated as no
	// duplicates, fail-open); TrustDegraded means the company read failed
	// (treated as suspicious, fail-closed).
	DuplicateDegraded string
	TrustDegraded     string

	// counters to persist in bulk after rule execution
	CounterIncrements []CounterRef
}

func (e *Effects) AddFieldFlag(val string) {
	e.lk.Lock()
	defer e.lk.Unlock()
	e.FieldFlags = append(e.FieldFlags, val)
}

func (e *Effects) AddDuplicateFlag(val string) {
	e.lk.Lock()
	defer e.lk.Unlock()
	e.DuplicateFlags = append(e.DuplicateFlags, val)
}

func (e *Effects) AddTrustFlag(val string) {
	e.lk.Lock()
	defer e.lk.Unlock()
	e.TrustFlags = append(e.TrustFlags, val)
}

func (e *Effects) SetAssessment(a *content.Assessment) {
	e.lk.Lock()
	defer e.lk.Unlock()
	e.Assessment = a
}

func (e *Effects) MarkAnalysisUnavailable() {
	e.lk.Lock()
	defer e.lk.Unlock()
	e.AnalysisUnavailable = true
}

func (e *Effects) MarkDuplicateDegraded(reason string) {
	e.lk.Lock()
	defer e.lk.Unlock()
	e.DuplicateDegraded = reason
}

func (e *Effects) MarkTrustDegraded(reason string) {
	e.lk.Lock()
	defer e.lk.Unlock()
	e.TrustDegraded = reason
}

// Increment enqueues the named counter to be incremented after all checks
// complete.
func (e *Effects) Increment(name, val string) {
	e.lk.Lock()
	defer e.lk.Unlock()
	e.CounterIncrements = append(e.CounterIncrements, CounterRef{Name: name, Val: val})
}

// FieldsInvalid reports whether structural validation raised any flag.
func (e *Effects) FieldsInvalid() bool {
	e.lk.Lock()
	defer e.lk.Unlock()
	return len(e.FieldFlags) > 0
}

// IsDuplicate reports whether duplicate/spam detection raised any flag.
func (e *Effects) IsDuplicate() bool {
	e.lk.Lock()
	defer e.lk.Unlock()
	return len(e.DuplicateFlags) > 0
}

// IsSuspicious reports whether trust evaluation raised any flag.
func (e *Effects) IsSuspicious() bool {
	e.lk.Lock()
	defer e.lk.Unlock()
	return len(e.TrustFlags) > 0
}
