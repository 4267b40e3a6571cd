// Package metrics declares the Prometheus collectors of the FP service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AwardsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "frisfocus",
	Name:      "fp_awards_total",
	Help:      "FP award attempts by event type and outcome.",
}, []string{"event_type", "outcome"})

var AwardDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "frisfocus",
	Name:      "fp_award_duration_seconds",
	Help:      "Time spent handling one FP award.",
	Buckets:   prometheus.DefBuckets,
})

var FpAwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "frisfocus",
	Name:      "fp_awarded_points_total",
	Help:      "Sum of FP handed out by event type.",
}, []string{"event_type"})

var LeaderboardCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "frisfocus",
	Name:      "fp_leaderboard_cache_lookups_total",
	Help:      "Leaderboard cache lookups by result (hit, miss, error).",
}, []string{"result"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "frisfocus",
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request latency by method, route pattern and status code.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})

var TotalDrifts = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "frisfocus",
	Name:      "fp_total_drifted_users",
	Help:      "Users whose stored fp_total differed from their log sum at the last reconcile run.",
})
