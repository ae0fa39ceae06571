// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package profile

import (
	"reflect"
	"testing"

	"github.com/tomtom215/stylehaus/internal/match"
)

func TestPersonalizedScore(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())

	whiteShirt := match.ClothingItem{
		ID: "shirt-2", Name: "White shirt", Category: match.CategoryTops,
		Colors: []string{"#ffffff"}, Style: "business",
	}

	// style 1.0*0.25 + category 0.5*0.15 + occasion (1.0*0.6)*0.20
	got := PersonalizedScore(whiteShirt, prefs, nil, "work")
	if !almostEqual(got, 0.445) {
		t.Errorf("PersonalizedScore = %v, want 0.445", got)
	}
}

func TestPersonalizedScoreNoSignal(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())

	redDress := match.ClothingItem{
		ID: "dress-1", Name: "Red dress", Category: match.CategoryDresses,
		Colors: []string{"#ff0000"}, Style: "elegant",
	}

	if got := PersonalizedScore(redDress, prefs, nil, "work"); !almostEqual(got, 0.0) {
		t.Errorf("PersonalizedScore = %v, want 0.0", got)
	}
}

func TestPersonalizedScoreUnknownOccasion(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())

	shirt := match.ClothingItem{
		ID: "shirt-2", Category: match.CategoryTops,
		Colors: []string{"#ffffff"}, Style: "business",
	}

	// Without a matching occasion pattern the occasion component is absent.
	got := PersonalizedScore(shirt, prefs, nil, "gala")
	if !almostEqual(got, 0.325) {
		t.Errorf("PersonalizedScore = %v, want 0.325", got)
	}
}

func TestPersonalizedScoreEmbeddingSimilarity(t *testing.T) {
	t.Parallel()

	prefs := Preferences{}
	target := match.ClothingItem{ID: "t", Embedding: []float64{1, 0}}
	item := match.ClothingItem{ID: "i", Embedding: []float64{1, 0}}

	// Identical embeddings map to similarity 1.0, weighted 0.15.
	got := PersonalizedScore(item, prefs, &target, "")
	if !almostEqual(got, 0.15) {
		t.Errorf("PersonalizedScore = %v, want 0.15", got)
	}

	noEmbedding := match.ClothingItem{ID: "i2"}
	if got := PersonalizedScore(noEmbedding, prefs, &target, ""); !almostEqual(got, 0.0) {
		t.Errorf("PersonalizedScore without embedding = %v, want 0.0", got)
	}
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())

	available := []match.ClothingItem{
		{ID: "shirt-2", Name: "White shirt", Category: match.CategoryTops, Colors: []string{"#ffffff"}, Style: "business"},
		{ID: "dress-1", Name: "Red dress", Category: match.CategoryDresses, Colors: []string{"#ff0000"}, Style: "elegant"},
		{ID: "shirt-3", Name: "Blue shirt", Category: match.CategoryTops, Colors: []string{"#0000ff"}, Style: "business"},
	}

	recs := Recommend(available, prefs, nil, "work", 0)
	if len(recs) != 2 {
		t.Fatalf("Recommend() = %d items, want 2", len(recs))
	}

	// The blue shirt also matches the color preference, so it ranks first.
	if recs[0].Item.ID != "shirt-3" {
		t.Errorf("top recommendation = %q, want shirt-3", recs[0].Item.ID)
	}
	if recs[1].Item.ID != "shirt-2" {
		t.Errorf("second recommendation = %q, want shirt-2", recs[1].Item.ID)
	}
	for i, rec := range recs {
		if rec.Score <= recommendThreshold {
			t.Errorf("recommendation %d score %v at or below threshold", i, rec.Score)
		}
		if len(rec.Reasons) == 0 {
			t.Errorf("recommendation %d has no reasons", i)
		}
	}
}

func TestRecommendLimit(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())
	available := []match.ClothingItem{
		{ID: "a", Category: match.CategoryTops, Colors: []string{"#0000ff"}, Style: "business"},
		{ID: "b", Category: match.CategoryTops, Colors: []string{"#000000"}, Style: "business"},
	}

	recs := Recommend(available, prefs, nil, "work", 1)
	if len(recs) != 1 {
		t.Errorf("Recommend() with limit 1 = %d items", len(recs))
	}
}

func TestRecommendationReasons(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())
	target := match.ClothingItem{ID: "pants-1", Name: "Black pants"}

	item := match.ClothingItem{
		ID: "shirt-3", Category: match.CategoryTops,
		Colors: []string{"#0000ff"}, Style: "business",
	}

	got := recommendationReasons(item, prefs, &target, "work")
	want := []string{
		"Matches your preferred colors",
		"Fits your business style preference",
		"Perfect for work occasions",
		"Complements your Black pants",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reasons = %v, want %v", got, want)
	}
}

func TestRecommendationReasonsFallback(t *testing.T) {
	t.Parallel()

	item := match.ClothingItem{ID: "i", Style: "elegant"}
	got := recommendationReasons(item, Preferences{}, nil, "")
	want := []string{"Recommended based on your profile"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reasons = %v, want %v", got, want)
	}
}

func TestToPreferenceProfile(t *testing.T) {
	t.Parallel()

	prefs := testAnalyzer().Analyze(testBehavior())
	profile := prefs.ToPreferenceProfile()

	wantColors := []string{"#000000", "#0000ff"}
	if !reflect.DeepEqual(profile.PreferredColors, wantColors) {
		t.Errorf("PreferredColors = %v, want %v", profile.PreferredColors, wantColors)
	}
	if !reflect.DeepEqual(profile.PreferredStyles, []string{"business"}) {
		t.Errorf("PreferredStyles = %v, want [business]", profile.PreferredStyles)
	}
	if !reflect.DeepEqual(profile.OccasionStyles["work"], []string{"business"}) {
		t.Errorf("OccasionStyles[work] = %v, want [business]", profile.OccasionStyles["work"])
	}
	if !reflect.DeepEqual(profile.OccasionColors["work"], wantColors) {
		t.Errorf("OccasionColors[work] = %v, want %v", profile.OccasionColors["work"], wantColors)
	}
}
