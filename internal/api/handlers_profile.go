// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/stylehaus/internal/metrics"
	"github.com/tomtom215/stylehaus/internal/profile"
)

// AnalyzeProfile handles POST /api/v1/profile/analyze.
// It derives style preferences from wardrobe contents and wear history.
func (h *Handler) AnalyzeProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req AnalyzeProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if !h.checkWardrobeSize(w, len(req.WardrobeItems)) {
		return
	}

	prefs := h.analyzer.Analyze(profile.BehaviorData{
		WardrobeItems: req.WardrobeItems,
		OutfitHistory: req.OutfitHistory,
	})

	metrics.RecordProfileAnalysis()
	respondSuccess(w, map[string]interface{}{
		"preferences":        prefs,
		"preference_profile": prefs.ToPreferenceProfile(),
	}, start)
}

// Recommend handles POST /api/v1/profile/recommend.
// It analyzes behavior data and ranks the available items against the
// resulting preferences.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if !h.checkWardrobeSize(w, len(req.WardrobeItems)) {
		return
	}
	if !h.checkWardrobeSize(w, len(req.Available)) {
		return
	}

	prefs := h.analyzer.Analyze(profile.BehaviorData{
		WardrobeItems: req.WardrobeItems,
		OutfitHistory: req.OutfitHistory,
	})

	recs := profile.Recommend(req.Available, prefs, req.Target, req.Occasion, req.Limit)

	metrics.RecordProfileAnalysis()
	respondSuccess(w, map[string]interface{}{
		"recommendations": recs,
		"count":           len(recs),
	}, start)
}
