// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - API endpoint latency and throughput
// - Compatibility scoring and suggestion throughput
// - Outfit generation and event planning
// - Suggestion cache efficiency

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Match Engine Metrics
	MatchScoresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_scores_total",
			Help: "Total number of pairwise compatibility scores computed",
		},
	)

	MatchScoreDistribution = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_score_distribution",
			Help:    "Distribution of composite compatibility scores",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)

	SuggestionRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "suggestion_requests_total",
			Help: "Total number of suggestion requests",
		},
	)

	SuggestionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "suggestion_duration_seconds",
			Help:    "Duration of suggestion requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	SuggestionWardrobeSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "suggestion_wardrobe_size",
			Help:    "Number of candidate items per suggestion request",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500},
		},
	)

	// Outfit Generation Metrics
	OutfitGenerations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outfit_generations_total",
			Help: "Total number of outfit generation requests",
		},
	)

	OutfitsProduced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outfits_produced_total",
			Help: "Total number of outfits returned to clients",
		},
	)

	OutfitGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "outfit_generation_duration_seconds",
			Help:    "Duration of outfit generation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	PlanRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plan_requests_total",
			Help: "Total number of event plan requests",
		},
	)

	PlanDays = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "plan_days",
			Help:    "Number of days per event plan request",
			Buckets: []float64{1, 2, 3, 5, 7, 14, 30},
		},
	)

	// Profile Analysis Metrics
	ProfileAnalyses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "profile_analyses_total",
			Help: "Total number of behavior profile analyses",
		},
	)

	// Cache Metrics (General)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "suggestion"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
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

// RecordScore records one computed compatibility score
func RecordScore(score float64) {
	MatchScoresTotal.Inc()
	MatchScoreDistribution.Observe(score)
}

// RecordSuggestionRequest records a suggestion request and its candidate pool size
func RecordSuggestionRequest(wardrobeSize int, duration time.Duration) {
	SuggestionRequests.Inc()
	SuggestionWardrobeSize.Observe(float64(wardrobeSize))
	SuggestionDuration.Observe(duration.Seconds())
}

// RecordOutfitGeneration records one generation request and its output size
func RecordOutfitGeneration(outfits int, duration time.Duration) {
	OutfitGenerations.Inc()
	OutfitsProduced.Add(float64(outfits))
	OutfitGenerationDuration.Observe(duration.Seconds())
}

// RecordPlanRequest records one event plan request
func RecordPlanRequest(days int) {
	PlanRequests.Inc()
	PlanDays.Observe(float64(days))
}

// RecordProfileAnalysis records one behavior profile analysis
func RecordProfileAnalysis() {
	ProfileAnalyses.Inc()
}

// RecordCacheHit records a cache hit for the given cache type
func RecordCacheHit(cacheType string) {
	CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss records a cache miss for the given cache type
func RecordCacheMiss(cacheType string) {
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// UpdateCacheSize updates the entry gauge for the given cache type
func UpdateCacheSize(cacheType string, entries int) {
	CacheSize.WithLabelValues(cacheType).Set(float64(entries))
}
