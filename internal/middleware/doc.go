// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - Request ID: UUID-based request tracking for distributed tracing
  - Prometheus Metrics: HTTP request/response instrumentation

Usage Example - Request ID:

	router.Use(middleware.RequestID)

	// Access request ID in handler
	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    logging.Info().Str("request_id", requestID).Msg("Processing request")
	}

The request ID middleware honors X-Request-ID headers set by upstream
proxies, echoes the ID back in the response, and threads it through the
logging context so every log line from the request carries it.

The Prometheus middleware records request counts, latency histograms, and
in-flight gauges, labeling endpoints by chi route pattern to keep metric
cardinality bounded.

Thread Safety:

All middleware components are thread-safe: request IDs travel in immutable
request contexts and Prometheus metrics use atomic operations internally.

See Also:

  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
