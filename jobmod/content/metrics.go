package content

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var modelAPIDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "jobmod_model_api_duration_sec",
	Help: "Duration of fraud-assessment model API calls",
})

var modelAPICount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jobmod_model_api_count",
	Help: "Number of fraud-assessment model API calls, by HTTP status code",
}, []string{"status"})

var analysisUnavailableCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jobmod_analysis_unavailable",
	Help: "Number of submissions where model analysis was unavailable, by cause",
}, []string{"cause"})
