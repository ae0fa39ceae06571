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

	"github.com/tomtom215/stylehaus/internal/metrics"
	"github.com/tomtom215/stylehaus/internal/outfits"
)

// GenerateOutfits handles POST /api/v1/outfits/generate.
// It builds ranked outfit combinations from the submitted wardrobe.
func (h *Handler) GenerateOutfits(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !h.allowBulk(w, "/api/v1/outfits/generate") {
		return
	}

	var req GenerateOutfitsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if !h.checkWardrobeSize(w, len(req.Wardrobe)) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.API.RequestTimeout)
	defer cancel()

	results, err := h.generator.Generate(ctx, outfits.GenerateRequest{
		Wardrobe:  req.Wardrobe,
		Occasion:  req.Occasion,
		Formality: outfits.FormalityLevel(req.Formality),
		Profile:   req.Profile,
		Limit:     req.Limit,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			respondError(w, http.StatusGatewayTimeout, "REQUEST_TIMEOUT",
				"Outfit generation timed out", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Outfit generation failed", err)
		return
	}

	metrics.RecordOutfitGeneration(len(results), time.Since(start))
	respondSuccess(w, map[string]interface{}{
		"outfits": results,
		"count":   len(results),
	}, start)
}

// PlanOutfits handles POST /api/v1/outfits/plan.
// It builds a day-by-day outfit plan for a multi-day event.
func (h *Handler) PlanOutfits(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !h.allowBulk(w, "/api/v1/outfits/plan") {
		return
	}

	var req PlanOutfitsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if !h.checkWardrobeSize(w, len(req.Wardrobe)) {
		return
	}

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.API.RequestTimeout)
	defer cancel()

	plan, err := h.generator.Plan(ctx, outfits.PlanRequest{
		Wardrobe:  req.Wardrobe,
		Occasion:  req.Occasion,
		Formality: outfits.FormalityLevel(req.Formality),
		Profile:   req.Profile,
		StartDate: startDate,
		Days:      req.Days,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			respondError(w, http.StatusGatewayTimeout, "REQUEST_TIMEOUT",
				"Event planning timed out", err)
			return
		}
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), err)
		return
	}

	metrics.RecordPlanRequest(req.Days)
	respondSuccess(w, map[string]interface{}{
		"plan": plan,
		"days": req.Days,
	}, start)
}

// OutfitFormality handles POST /api/v1/outfits/formality.
// It scores how closely an outfit hits a requested dress code.
func (h *Handler) OutfitFormality(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req FormalityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	level := outfits.FormalityLevel(req.Formality)
	target, _ := outfits.LevelScore(level)

	respondSuccess(w, map[string]interface{}{
		"outfit_formality": outfits.OutfitFormality(req.Items),
		"target":           target,
		"match":            outfits.FormalityMatch(req.Items, level),
	}, start)
}

// WardrobeGaps handles POST /api/v1/outfits/gaps.
// It reports essential categories missing from a wardrobe.
func (h *Handler) WardrobeGaps(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req GapsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !h.checkWardrobeSize(w, len(req.Wardrobe)) {
		return
	}

	respondSuccess(w, outfits.AnalyzeGaps(req.Wardrobe), start)
}
