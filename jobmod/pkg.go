package jobmod

import (
	"github.com/jobsignal/jobsignal/jobmod/countstore"
	"github.com/jobsignal/jobsignal/jobmod/engine"
)

type Engine = engine.Engine
type ScoringPolicy = engine.ScoringPolicy
type CheckSet = engine.CheckSet
type JobSubmission = engine.JobSubmission
type VerificationResult = engine.VerificationResult
type SubmissionContext = engine.SubmissionContext
type CheckFunc = engine.CheckFunc

type Notifier = engine.Notifier
type SlackNotifier = engine.SlackNotifier

var (
	DefaultScoringPolicy        = engine.DefaultScoringPolicy
	DefaultCheckSet             = engine.DefaultCheckSet
	GenerateVerificationSummary = engine.GenerateVerificationSummary

	PeriodTotal = countstore.PeriodTotal
	PeriodDay   = countstore.PeriodDay
	PeriodHour  = countstore.PeriodHour
)
