// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package instruments the application with the Prometheus client library,
exposing metrics for API latency and throughput, compatibility scoring volume,
outfit generation, and suggestion cache efficiency.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8820/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Match Engine Metrics:
  - match_scores_total: Pairwise scores computed (counter)
  - match_score_distribution: Composite score distribution (histogram)
  - suggestion_requests_total: Suggestion requests (counter)
  - suggestion_duration_seconds: Suggestion latency (histogram)
  - suggestion_wardrobe_size: Candidate pool sizes (histogram)

Outfit Metrics:
  - outfit_generations_total: Generation requests (counter)
  - outfits_produced_total: Outfits returned (counter)
  - outfit_generation_duration_seconds: Generation latency (histogram)
  - plan_requests_total: Event plan requests (counter)
  - plan_days: Days per plan request (histogram)

Cache Metrics:
  - cache_hits_total, cache_misses_total: Per-cache-type counters
  - cache_entries: Current entries per cache type (gauge)

# Usage Example

	import (
	    "github.com/tomtom215/stylehaus/internal/metrics"
	    "github.com/prometheus/client_golang/prometheus/promhttp"
	)

	http.Handle("/metrics", promhttp.Handler())
	metrics.RecordAPIRequest("POST", "/api/v1/match/score", "200", 12*time.Millisecond)
	metrics.RecordScore(0.87)

# Thread Safety

All metric recording functions are safe for concurrent use. The Prometheus
client library handles synchronization internally.

# Cardinality Management

Endpoint labels use route patterns rather than raw paths, status codes are
recorded as-is (small fixed set), and no user-specific labels are emitted.
*/
package metrics
