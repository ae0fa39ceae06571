// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/stylehaus/internal/match"
	"github.com/tomtom215/stylehaus/internal/metrics"
)

// Score handles POST /api/v1/match/score.
// It returns the composite compatibility score for one item pair along
// with per-component scores and human-readable reasons.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ScoreRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if req.A.ID == "" || req.B.ID == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"Both items need an id", nil)
		return
	}

	result := h.engine.Score(match.ScoreRequest{
		A:        req.A,
		B:        req.B,
		Occasion: req.Occasion,
		Profile:  req.Profile,
	})

	metrics.RecordScore(result.Score)
	respondSuccess(w, result, start)
}

// Suggestions handles POST /api/v1/match/suggestions.
// It ranks wardrobe items against an anchor item, best matches first.
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SuggestionsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if req.Item.ID == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"Anchor item needs an id", nil)
		return
	}
	if !h.checkWardrobeSize(w, len(req.Wardrobe)) {
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = h.config.API.DefaultSuggestions
	}
	if limit > h.config.API.MaxSuggestions {
		limit = h.config.API.MaxSuggestions
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.API.RequestTimeout)
	defer cancel()

	suggestions, err := h.engine.Suggestions(ctx, match.SuggestionRequest{
		Item:      req.Item,
		Wardrobe:  req.Wardrobe,
		Occasion:  req.Occasion,
		Profile:   req.Profile,
		Limit:     limit,
		Threshold: req.Threshold,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			respondError(w, http.StatusGatewayTimeout, "REQUEST_TIMEOUT",
				"Suggestion scoring timed out", err)
			return
		}
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), err)
		return
	}

	metrics.RecordSuggestionRequest(len(req.Wardrobe), time.Since(start))
	respondSuccess(w, map[string]interface{}{
		"suggestions": suggestions,
		"count":       len(suggestions),
	}, start)
}

// Palette handles POST /api/v1/match/palette.
// It returns harmony suggestions and the color temperature for a base color.
func (h *Handler) Palette(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req PaletteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	respondSuccess(w, map[string]interface{}{
		"palette":     match.ComplementaryPalette(req.BaseColor),
		"temperature": match.Temperature(req.BaseColor),
	}, start)
}
