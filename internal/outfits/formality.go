// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package outfits

import (
	"math"
	"strings"

	"github.com/tomtom215/stylehaus/internal/match"
)

// FormalityLevel names a dress code.
type FormalityLevel string

// Dress code levels, from most to least relaxed.
const (
	FormalityVeryCasual  FormalityLevel = "very_casual"
	FormalityCasual      FormalityLevel = "casual"
	FormalitySmartCasual FormalityLevel = "smart_casual"
	FormalityBusiness    FormalityLevel = "business"
	FormalityFormal      FormalityLevel = "formal"
	FormalityBlackTie    FormalityLevel = "black_tie"
)

// formalityLevelScores maps dress codes to a target formality in [0, 1].
var formalityLevelScores = map[FormalityLevel]float64{
	FormalityVeryCasual:  0.1,
	FormalityCasual:      0.3,
	FormalitySmartCasual: 0.5,
	FormalityBusiness:    0.7,
	FormalityFormal:      0.9,
	FormalityBlackTie:    1.0,
}

// LevelScore returns the target formality for a dress code.
func LevelScore(level FormalityLevel) (float64, bool) {
	score, ok := formalityLevelScores[level]
	return score, ok
}

// Levels returns all known dress codes in ascending formality.
func Levels() []FormalityLevel {
	return []FormalityLevel{
		FormalityVeryCasual, FormalityCasual, FormalitySmartCasual,
		FormalityBusiness, FormalityFormal, FormalityBlackTie,
	}
}

// OutfitFormality estimates an outfit's overall formality by accumulating
// per-item contributions: formal items add 0.30, business 0.25,
// smart-casual 0.15, and casual 0.10, capped at 1.0.
func OutfitFormality(items []match.ClothingItem) float64 {
	var formality float64
	for _, item := range items {
		switch strings.ToLower(strings.TrimSpace(item.Style)) {
		case "formal":
			formality += 0.30
		case "business":
			formality += 0.25
		case "smart-casual":
			formality += 0.15
		case "casual":
			formality += 0.10
		}
	}
	return math.Min(1.0, formality)
}

// FormalityMatch scores how closely an outfit hits a target dress code,
// as 1 minus the distance between target and outfit formality. Unknown
// dress codes use a mid target of 0.5.
func FormalityMatch(items []match.ClothingItem, level FormalityLevel) float64 {
	target, ok := LevelScore(level)
	if !ok {
		target = 0.5
	}
	diff := math.Abs(target - OutfitFormality(items))
	return math.Max(0.0, 1.0-diff)
}
