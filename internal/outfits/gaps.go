// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package outfits

import (
	"github.com/tomtom215/stylehaus/internal/match"
)

// essentials are the categories a wardrobe needs before the generator can
// produce most outfit structures.
var essentials = []match.Category{
	match.CategoryTops,
	match.CategoryBottoms,
	match.CategoryShoes,
	match.CategoryOuterwear,
}

// GapReport describes what a wardrobe is missing.
type GapReport struct {
	// MissingEssentials lists essential categories with no items at all.
	MissingEssentials []match.Category `json:"missing_essentials"`

	// Counts holds the item count per category.
	Counts map[match.Category]int `json:"counts"`
}

// AnalyzeGaps reports essential categories absent from a wardrobe along
// with per-category item counts.
func AnalyzeGaps(wardrobe []match.ClothingItem) GapReport {
	counts := make(map[match.Category]int)
	for _, item := range wardrobe {
		counts[match.NormalizeCategory(string(item.Category))]++
	}

	missing := make([]match.Category, 0, len(essentials))
	for _, cat := range essentials {
		if counts[cat] == 0 {
			missing = append(missing, cat)
		}
	}

	return GapReport{
		MissingEssentials: missing,
		Counts:            counts,
	}
}
