package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var verifyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "jobmod_verify_duration_sec",
	Help: "Total duration of job submission verification",
})

var verifyCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jobmod_verify_processed",
	Help: "Number of submissions verified, by outcome",
}, []string{"outcome"})

var checkErrorCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jobmod_check_errors",
	Help: "Number of checks which failed unexpectedly",
}, []string{"kind"})

var checkDegradedCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jobmod_check_degraded",
	Help: "Number of checks which degraded on collaborator failure, by check",
}, []string{"check"})
