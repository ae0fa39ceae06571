// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

// Package api implements the HTTP surface of the recommendation service.
//
// Routing uses Chi with production middleware from the Chi ecosystem:
// go-chi/cors for CORS, go-chi/httprate for per-IP rate limiting. Request
// bodies are validated with go-playground/validator and encoded with
// goccy/go-json. Responses use the envelope in internal/models with FNV-1a
// ETags for client caching.
//
// Endpoints group by concern:
//
//	/api/v1/health     liveness, readiness, full health report
//	/api/v1/match      pair scoring, suggestions, palettes, occasions
//	/api/v1/outfits    generation, event plans, formality, gap analysis
//	/api/v1/profile    behavior analysis, personalized recommendations
//	/api/v1/stats      engine and generator counters
//	/metrics           Prometheus scrape endpoint
//
// The outfit endpoints additionally pass through a token-bucket throttle
// (golang.org/x/time/rate) shared across callers, since a single request
// can score hundreds of item pairs.
package api
