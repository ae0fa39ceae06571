// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

// chi_router.go - HTTP routing using Chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/stylehaus/internal/config"
	"github.com/tomtom215/stylehaus/internal/middleware"
)

// Router wires handlers and middleware into an http.Handler.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for the given handler set. Security settings
// (CORS origins, rate limits) come from the security config section.
func NewRouter(handler *Handler, security config.SecurityConfig) *Router {
	return &Router{
		handler: handler,
		chiMiddleware: NewChiMiddlewareFromSecurity(
			security.CORSOrigins,
			security.RateLimitReqs,
			security.RateLimitWindow,
			security.RateLimitDisabled,
		),
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// Health endpoints. Permissive rate limiting so monitoring tools
	// can poll without tripping the default limit.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Pair scoring, suggestions, and color tools. Interactive endpoints
	// with per-request cost bounded by wardrobe size.
	r.Route("/api/v1/match", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitScoring())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Post("/score", router.handler.Score)
		r.Post("/suggestions", router.handler.Suggestions)
		r.Post("/palette", router.handler.Palette)
		r.Get("/occasions", router.handler.Occasions)
	})

	// Outfit generation and event planning. Combination walks over the
	// whole wardrobe, so these get the strictest limits plus the
	// handler-level bulk throttle.
	r.Route("/api/v1/outfits", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitBulk())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Post("/generate", router.handler.GenerateOutfits)
		r.Post("/plan", router.handler.PlanOutfits)
		r.Post("/formality", router.handler.OutfitFormality)
		r.Post("/gaps", router.handler.WardrobeGaps)
	})

	// Behavior analysis and personalized recommendations.
	r.Route("/api/v1/profile", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitProfile())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Post("/analyze", router.handler.AnalyzeProfile)
		r.Post("/recommend", router.handler.Recommend)
	})

	// Service stats share the default API limit.
	r.Route("/api/v1/stats", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/", router.handler.Stats)
	})

	// Prometheus scrape endpoint. Not under /api/v1 so scrape configs
	// stay conventional.
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
