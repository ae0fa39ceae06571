// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package api

import (
	"net/http"
	"runtime"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/stylehaus/internal/config"
	"github.com/tomtom215/stylehaus/internal/match"
	"github.com/tomtom215/stylehaus/internal/metrics"
	"github.com/tomtom215/stylehaus/internal/models"
	"github.com/tomtom215/stylehaus/internal/outfits"
	"github.com/tomtom215/stylehaus/internal/profile"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	config    *config.Config
	engine    *match.Engine
	generator *outfits.Generator
	analyzer  *profile.Analyzer

	// bulkLimiter throttles wardrobe-wide scoring operations (outfit
	// generation, event plans). Nil when the throttle is disabled.
	bulkLimiter *rate.Limiter

	startTime time.Time
}

// NewHandler creates a Handler wired to the scoring engine, outfit
// generator, and profile analyzer.
func NewHandler(cfg *config.Config, engine *match.Engine, generator *outfits.Generator, analyzer *profile.Analyzer) *Handler {
	var limiter *rate.Limiter
	if cfg.API.BulkRatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.API.BulkRatePerSecond), cfg.API.BulkBurst)
	}

	return &Handler{
		config:      cfg,
		engine:      engine,
		generator:   generator,
		analyzer:    analyzer,
		bulkLimiter: limiter,
		startTime:   time.Now(),
	}
}

// allowBulk reports whether a bulk scoring request may proceed. On
// rejection it writes the 429 response and records the rate limit hit.
func (h *Handler) allowBulk(w http.ResponseWriter, endpoint string) bool {
	if h.bulkLimiter == nil || h.bulkLimiter.Allow() {
		return true
	}
	metrics.APIRateLimitHits.WithLabelValues(endpoint).Inc()
	respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED",
		"Too many bulk scoring requests, retry shortly", ErrBulkThrottled)
	return false
}

// checkWardrobeSize enforces the per-request item cap. On rejection it
// writes the 400 response.
func (h *Handler) checkWardrobeSize(w http.ResponseWriter, items int) bool {
	if items <= h.config.API.MaxWardrobeItems {
		return true
	}
	respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
		"Wardrobe exceeds the item limit", ErrWardrobeTooLarge)
	return false
}

// Health returns full health status including uptime and component checks.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, models.HealthStatus{
		Status:    "ok",
		Version:   Version,
		UptimeSec: int64(time.Since(h.startTime).Seconds()),
		Checks: map[string]string{
			"engine":    "ok",
			"generator": "ok",
			"go":        runtime.Version(),
		},
	}, start)
}

// HealthLive is a minimal liveness probe.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// HealthReady reports readiness. The engine and generator are constructed
// before the server starts, so readiness follows liveness.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// Occasions returns the occasion catalog.
func (h *Handler) Occasions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, map[string]interface{}{
		"occasions": match.Occasions(),
	}, start)
}

// Stats returns engine and generator activity counters.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, map[string]interface{}{
		"engine":    h.engine.Stats(),
		"generator": h.generator.Stats(),
	}, start)
}
