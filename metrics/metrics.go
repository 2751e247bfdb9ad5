// Package metrics holds the Prometheus instruments for the HTTP API and the
// domain events of the tracker.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottotrack_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lottotrack_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lottotrack_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Statistics Metrics
	StatsRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottotrack_stats_refreshes_total",
			Help: "Total number of statistics refreshes",
		},
		[]string{"triggered_by"},
	)

	StatsDrawCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lottotrack_stats_draw_count",
			Help: "Number of draws covered by the current statistics",
		},
	)

	StatsLastRefresh = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lottotrack_stats_last_refresh_timestamp_seconds",
			Help: "Unix timestamp of the last statistics refresh",
		},
	)

	// Draw Import Metrics
	DrawsImportedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottotrack_draws_imported_total",
			Help: "Total number of draw rows processed by imports",
		},
		[]string{"result"}, // "inserted", "skipped"
	)

	LatestDrawNo = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lottotrack_latest_draw_no",
			Help: "Highest draw number stored",
		},
	)

	// Pick Metrics
	PicksSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lottotrack_picks_saved_total",
			Help: "Total number of picks saved",
		},
	)

	PicksDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lottotrack_picks_deleted_total",
			Help: "Total number of picks deleted",
		},
	)

	UsersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lottotrack_users_created_total",
			Help: "Total number of accounts created",
		},
	)

	// Analysis Metrics
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottotrack_analyses_total",
			Help: "Total number of pick analyses",
		},
		[]string{"result"}, // "ok", "fallback", "invalid"
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottotrack_recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"result"}, // "ok", "insufficient", "unavailable", "error"
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordAnalysis counts a pick analysis by outcome
func RecordAnalysis(result string) {
	AnalysesTotal.WithLabelValues(result).Inc()
}

// RecordRecommendation counts a recommendation request by outcome
func RecordRecommendation(result string) {
	RecommendationsTotal.WithLabelValues(result).Inc()
}
