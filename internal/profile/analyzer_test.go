// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package profile

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylehaus/internal/match"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testAnalyzer() *Analyzer {
	return NewAnalyzer(zerolog.Nop())
}

// testBehavior has two owned business items, both worn once for work in
// January.
func testBehavior() BehaviorData {
	shirt := match.ClothingItem{
		ID: "shirt-1", Name: "Blue shirt", Category: match.CategoryTops,
		Colors: []string{"#0000ff"}, Style: "business", Brand: "Acme",
	}
	pants := match.ClothingItem{
		ID: "pants-1", Name: "Black pants", Category: match.CategoryBottoms,
		Colors: []string{"#000000"}, Style: "business",
	}
	return BehaviorData{
		WardrobeItems: []match.ClothingItem{shirt, pants},
		OutfitHistory: []OutfitRecord{
			{
				Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Occasion: "work",
				Items:    []match.ClothingItem{shirt, pants},
			},
		},
	}
}

func TestAnalyzeColors(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())

	// Owned once plus worn once at double weight: 3 of 6 counts each.
	if !almostEqual(prefs.Colors["#0000ff"], 0.5) {
		t.Errorf("blue preference = %v, want 0.5", prefs.Colors["#0000ff"])
	}
	if !almostEqual(prefs.Colors["#000000"], 0.5) {
		t.Errorf("black preference = %v, want 0.5", prefs.Colors["#000000"])
	}
}

func TestAnalyzeStyles(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())

	if !almostEqual(prefs.Styles["business"], 1.0) {
		t.Errorf("business preference = %v, want 1.0", prefs.Styles["business"])
	}
}

func TestAnalyzeCategories(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())

	if !almostEqual(prefs.Categories["tops"], 0.5) {
		t.Errorf("tops preference = %v, want 0.5", prefs.Categories["tops"])
	}
	if !almostEqual(prefs.Categories["bottoms"], 0.5) {
		t.Errorf("bottoms preference = %v, want 0.5", prefs.Categories["bottoms"])
	}
}

func TestAnalyzeOccasions(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())

	pattern, ok := prefs.Occasions["work"]
	if !ok {
		t.Fatal("missing work occasion pattern")
	}
	if !almostEqual(pattern.Styles["business"], 1.0) {
		t.Errorf("work business style = %v, want 1.0", pattern.Styles["business"])
	}
	if !almostEqual(pattern.Colors["#0000ff"], 0.5) {
		t.Errorf("work blue = %v, want 0.5", pattern.Colors["#0000ff"])
	}
	if !almostEqual(pattern.Categories["tops"], 0.5) {
		t.Errorf("work tops = %v, want 0.5", pattern.Categories["tops"])
	}
}

func TestAnalyzeOccasionsDefaultsToCasual(t *testing.T) {
	t.Parallel()

	data := BehaviorData{
		OutfitHistory: []OutfitRecord{
			{Items: []match.ClothingItem{{ID: "i1", Style: "casual"}}},
		},
	}
	prefs := testAnalyzer().Analyze(data)

	if _, ok := prefs.Occasions["casual"]; !ok {
		t.Error("outfit without occasion not filed under casual")
	}
}

func TestAnalyzeSeasons(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())

	winter := prefs.Seasons["winter"]
	if !almostEqual(winter["tops"], 0.5) {
		t.Errorf("winter tops = %v, want 0.5", winter["tops"])
	}
	if len(prefs.Seasons["summer"]) != 0 {
		t.Errorf("summer has %d categories, want 0", len(prefs.Seasons["summer"]))
	}
}

func TestAnalyzeSeasonsSkipsUndated(t *testing.T) {
	t.Parallel()

	data := BehaviorData{
		OutfitHistory: []OutfitRecord{
			{Items: []match.ClothingItem{{ID: "i1", Category: match.CategoryTops}}},
		},
	}
	prefs := testAnalyzer().Analyze(data)

	for season, categories := range prefs.Seasons {
		if len(categories) != 0 {
			t.Errorf("season %q has %d categories from an undated outfit", season, len(categories))
		}
	}
}

func TestAnalyzeBrands(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())

	if !almostEqual(prefs.Brands["Acme"], 1.0) {
		t.Errorf("Acme preference = %v, want 1.0", prefs.Brands["Acme"])
	}
	if len(prefs.Brands) != 1 {
		t.Errorf("brands = %v, want Acme only", prefs.Brands)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(BehaviorData{})

	if len(prefs.Colors) != 0 || len(prefs.Styles) != 0 || len(prefs.Categories) != 0 {
		t.Errorf("empty data produced preferences: %+v", prefs)
	}
}

func TestSeasonForDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "winter"},
		{time.February, "winter"},
		{time.March, "spring"},
		{time.May, "spring"},
		{time.June, "summer"},
		{time.August, "summer"},
		{time.September, "autumn"},
		{time.November, "autumn"},
		{time.December, "winter"},
	}

	for _, tt := range tests {
		date := time.Date(2026, tt.month, 10, 0, 0, 0, 0, time.UTC)
		if got := SeasonForDate(date); got != tt.want {
			t.Errorf("SeasonForDate(%v) = %q, want %q", tt.month, got, tt.want)
		}
	}
}
