// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

// testLogger returns a no-op logger for tests.
func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func testWardrobe() []ClothingItem {
	return []ClothingItem{
		{ID: "shirt-white", Name: "White shirt", Category: CategoryTops,
			Colors: []string{"#ffffff"}, Style: "classic"},
		{ID: "chinos-navy", Name: "Navy chinos", Category: CategoryBottoms,
			Colors: []string{"#1a2b5c"}, Style: "smart-casual"},
		{ID: "sneakers", Name: "Sneakers", Category: CategoryShoes,
			Colors: []string{"#f0f0f0"}, Style: "sporty"},
		{ID: "blazer", Name: "Navy blazer", Category: CategoryOuterwear,
			Colors: []string{"#1a2b5c"}, Style: "business"},
		{ID: "tee-red", Name: "Red tee", Category: CategoryTops,
			Colors: []string{"#ff0000"}, Style: "casual"},
	}
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default config", func(c *Config) {}, false},
		{"zero weights fall back to defaults", func(c *Config) { c.Weights = ScoreWeights{} }, false},
		{"negative weight", func(c *Config) { c.Weights.Color = -1 }, true},
		{"bad threshold", func(c *Config) { c.MatchThreshold = 2 }, true},
		{"bad penalty", func(c *Config) { c.AvoidedColorPenalty = -0.1 }, true},
		{"zero limit", func(c *Config) { c.DefaultLimit = 0 }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := NewEngine(cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEngine error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEngineWeightsNormalized(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Weights = ScoreWeights{Color: 3, Style: 2.5, Category: 2, Occasion: 1.5, Preference: 1}

	engine, err := NewEngine(cfg, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	w := engine.Config().Weights
	sum := w.Color + w.Style + w.Category + w.Occasion + w.Preference
	if !almostEqual(sum, 1.0) {
		t.Errorf("weights sum = %v, want 1.0", sum)
	}
	// Ratios preserved: 3x total 10 becomes 0.3.
	if !almostEqual(w.Color, 0.3) {
		t.Errorf("color weight = %v, want 0.3", w.Color)
	}
}

func TestScoreBounds(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)
	wardrobe := testWardrobe()

	for i := range wardrobe {
		for j := range wardrobe {
			result := engine.Score(ScoreRequest{A: wardrobe[i], B: wardrobe[j], Occasion: "work"})
			if result.Score < 0 || result.Score > 1 {
				t.Errorf("score %v outside [0,1] for %s + %s",
					result.Score, wardrobe[i].ID, wardrobe[j].ID)
			}
		}
	}
}

func TestScoreSymmetric(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)
	wardrobe := testWardrobe()

	for i := range wardrobe {
		for j := range wardrobe {
			ab := engine.Score(ScoreRequest{A: wardrobe[i], B: wardrobe[j]})
			ba := engine.Score(ScoreRequest{A: wardrobe[j], B: wardrobe[i]})
			if !almostEqual(ab.Score, ba.Score) {
				t.Errorf("score not symmetric for %s + %s: %v vs %v",
					wardrobe[i].ID, wardrobe[j].ID, ab.Score, ba.Score)
			}
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)
	req := ScoreRequest{A: testWardrobe()[0], B: testWardrobe()[1], Occasion: "work"}

	first := engine.Score(req)
	for i := 0; i < 10; i++ {
		if got := engine.Score(req); !almostEqual(got.Score, first.Score) {
			t.Fatalf("score changed between identical calls: %v vs %v", got.Score, first.Score)
		}
	}
}

func TestScoreNoOccasionIsNeutral(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)
	a, b := testWardrobe()[0], testWardrobe()[1]

	result := engine.Score(ScoreRequest{A: a, B: b})
	if !almostEqual(result.OccasionScore, 1.0) {
		t.Errorf("occasion score without occasion = %v, want 1.0", result.OccasionScore)
	}
}

func TestScoreComponents(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)
	a := ClothingItem{ID: "a", Category: CategoryTops, Colors: []string{"#000000"}, Style: "formal"}
	b := ClothingItem{ID: "b", Category: CategoryBottoms, Colors: []string{"#ffffff"}, Style: "formal"}

	result := engine.Score(ScoreRequest{A: a, B: b, Occasion: "wedding"})

	if !almostEqual(result.ColorScore, 0.95) {
		t.Errorf("color score = %v, want 0.95", result.ColorScore)
	}
	if !almostEqual(result.StyleScore, 1.0) {
		t.Errorf("style score = %v, want 1.0", result.StyleScore)
	}
	if !almostEqual(result.CategoryScore, 0.9) {
		t.Errorf("category score = %v, want 0.9", result.CategoryScore)
	}
	if !almostEqual(result.OccasionScore, 0.9) {
		t.Errorf("occasion score = %v, want 0.9", result.OccasionScore)
	}
	if !almostEqual(result.PreferenceScore, 0.5) {
		t.Errorf("preference score = %v, want 0.5", result.PreferenceScore)
	}

	// Weighted composite: .3*.95 + .25*1 + .2*.9 + .15*.9 + .1*.5
	want := 0.3*0.95 + 0.25*1.0 + 0.2*0.9 + 0.15*0.9 + 0.1*0.5
	if !almostEqual(result.Score, want) {
		t.Errorf("composite = %v, want %v", result.Score, want)
	}
}

func TestScoreReasons(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)

	// High-scoring pair earns specific reasons.
	a := ClothingItem{ID: "a", Category: CategoryTops, Colors: []string{"#000000"}, Style: "formal"}
	b := ClothingItem{ID: "b", Category: CategoryBottoms, Colors: []string{"#ffffff"}, Style: "formal"}
	result := engine.Score(ScoreRequest{A: a, B: b})

	if !containsString(result.Reasons, "Excellent color harmony") {
		t.Errorf("missing color reason in %v", result.Reasons)
	}
	if !containsString(result.Reasons, "Perfect style match (formal + formal)") {
		t.Errorf("missing style reason in %v", result.Reasons)
	}
	if !containsString(result.Reasons, "Highly recommended combination") {
		t.Errorf("missing composite reason in %v", result.Reasons)
	}
}

func TestScoreReasonsFallback(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)

	// Clashing pair: same category, unrelated styles, clashing colors
	// (hue distance 80 falls in no harmony rule and scores 0.5).
	a := ClothingItem{ID: "a", Category: CategoryTops, Colors: []string{"#ff0000"}, Style: "goth"}
	b := ClothingItem{ID: "b", Category: CategoryTops, Colors: []string{"#aaff00"}, Style: "punk"}
	result := engine.Score(ScoreRequest{A: a, B: b, Occasion: "wedding"})

	if len(result.Reasons) != 1 || result.Reasons[0] != "Compatible items" {
		t.Errorf("expected fallback reason, got %v", result.Reasons)
	}
}

func TestSuggestions(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)
	wardrobe := testWardrobe()

	suggestions, err := engine.Suggestions(context.Background(), SuggestionRequest{
		Item:     wardrobe[0], // white shirt
		Wardrobe: wardrobe,
	})
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}

	if len(suggestions) == 0 {
		t.Fatal("expected suggestions, got none")
	}
	for _, s := range suggestions {
		if s.Item.ID == wardrobe[0].ID {
			t.Error("anchor item returned as its own match")
		}
		if s.Result.Score < engine.Config().MatchThreshold {
			t.Errorf("suggestion %s below threshold: %v", s.Item.ID, s.Result.Score)
		}
	}

	// Sorted descending.
	for i := 1; i < len(suggestions); i++ {
		if suggestions[i-1].Result.Score < suggestions[i].Result.Score {
			t.Error("suggestions not sorted by score descending")
		}
	}
}

func TestSuggestionsProfileRanking(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)

	// Both candidates pair equally well with the white anchor on color,
	// style, and category. The preferred color should rank the black
	// trousers first.
	anchor := ClothingItem{ID: "shirt", Category: CategoryTops,
		Colors: []string{"#ffffff"}, Style: "casual"}
	wardrobe := []ClothingItem{
		anchor,
		{ID: "trousers-gray", Category: CategoryBottoms,
			Colors: []string{"#808080"}, Style: "casual"},
		{ID: "trousers-black", Category: CategoryBottoms,
			Colors: []string{"#000000"}, Style: "casual"},
	}

	suggestions, err := engine.Suggestions(context.Background(), SuggestionRequest{
		Item:     anchor,
		Wardrobe: wardrobe,
		Profile:  &PreferenceProfile{PreferredColors: []string{"#000000"}},
	})
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(suggestions))
	}
	if suggestions[0].Item.ID != "trousers-black" {
		t.Errorf("preferred color not ranked first: got %s", suggestions[0].Item.ID)
	}
}

func TestSuggestionsThresholdIsStrict(t *testing.T) {
	t.Parallel()

	a := ClothingItem{ID: "a", Category: CategoryTops, Colors: []string{"#ffffff"}, Style: "casual"}
	b := ClothingItem{ID: "b", Category: CategoryBottoms, Colors: []string{"#000000"}, Style: "casual"}

	engine := testEngine(t)
	exact := engine.Score(ScoreRequest{A: a, B: b}).Score

	// A candidate exactly at the threshold is excluded.
	suggestions, err := engine.Suggestions(context.Background(), SuggestionRequest{
		Item: a, Wardrobe: []ClothingItem{a, b}, Threshold: exact,
	})
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}
	if len(suggestions) != 0 {
		t.Errorf("candidate at exact threshold kept: %d suggestions", len(suggestions))
	}

	// Separate engine: the cache key rounds thresholds to three decimals,
	// so nearby thresholds on one engine would share an entry.
	suggestions, err = testEngine(t).Suggestions(context.Background(), SuggestionRequest{
		Item: a, Wardrobe: []ClothingItem{a, b}, Threshold: exact - 1e-9,
	})
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}
	if len(suggestions) != 1 {
		t.Errorf("candidate just above threshold dropped: %d suggestions", len(suggestions))
	}
}

func TestSuggestionsCacheProfileIsolation(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)
	wardrobe := testWardrobe()

	// Two callers share the anchor and wardrobe but hold opposite
	// preferences. The second must never see the first's cached scores.
	liked, err := engine.Suggestions(context.Background(), SuggestionRequest{
		Item:      wardrobe[0],
		Wardrobe:  wardrobe,
		Threshold: 0.01,
		Profile:   &PreferenceProfile{PreferredColors: []string{"#1a2b5c"}},
	})
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}

	avoided, err := engine.Suggestions(context.Background(), SuggestionRequest{
		Item:      wardrobe[0],
		Wardrobe:  wardrobe,
		Threshold: 0.01,
		Profile:   &PreferenceProfile{AvoidedColors: []string{"#1a2b5c"}},
	})
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}

	findPref := func(t *testing.T, suggestions []Suggestion) float64 {
		t.Helper()
		for _, s := range suggestions {
			if s.Item.ID == "chinos-navy" {
				return s.Result.PreferenceScore
			}
		}
		t.Fatal("chinos-navy missing from suggestions")
		return 0
	}

	// Preferred color: 0.5 + 0.2. Avoided color: 0.5 - default penalty 0.3.
	if got := findPref(t, liked); !almostEqual(got, 0.7) {
		t.Errorf("preferred-color preference score = %v, want 0.7", got)
	}
	if got := findPref(t, avoided); !almostEqual(got, 0.2) {
		t.Errorf("avoided-color preference score = %v, want 0.2", got)
	}
}

func TestSuggestionsLimit(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)
	wardrobe := testWardrobe()

	suggestions, err := engine.Suggestions(context.Background(), SuggestionRequest{
		Item:      wardrobe[0],
		Wardrobe:  wardrobe,
		Limit:     1,
		Threshold: 0.01,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) > 1 {
		t.Errorf("limit 1 returned %d suggestions", len(suggestions))
	}
}

func TestSuggestionsRequiresAnchorID(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)
	_, err := engine.Suggestions(context.Background(), SuggestionRequest{
		Wardrobe: testWardrobe(),
	})
	if err == nil {
		t.Error("expected error for missing anchor ID")
	}
}

func TestSuggestionsContextCancelled(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Suggestions(ctx, SuggestionRequest{
		Item:     testWardrobe()[0],
		Wardrobe: testWardrobe(),
	})
	if err == nil {
		t.Error("expected context cancellation error")
	}
}

func TestSuggestionsCache(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)
	req := SuggestionRequest{Item: testWardrobe()[0], Wardrobe: testWardrobe()}

	if _, err := engine.Suggestions(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if _, err := engine.Suggestions(context.Background(), req); err != nil {
		t.Fatal(err)
	}

	stats := engine.Stats()
	if stats.CacheHits != 1 {
		t.Errorf("cache hits = %d, want 1", stats.CacheHits)
	}
	if stats.CacheMisses != 1 {
		t.Errorf("cache misses = %d, want 1", stats.CacheMisses)
	}
}

func TestEngineStats(t *testing.T) {
	t.Parallel()

	engine := testEngine(t)
	wardrobe := testWardrobe()

	engine.Score(ScoreRequest{A: wardrobe[0], B: wardrobe[1]})
	if _, err := engine.Suggestions(context.Background(), SuggestionRequest{
		Item: wardrobe[0], Wardrobe: wardrobe,
	}); err != nil {
		t.Fatal(err)
	}

	stats := engine.Stats()
	if stats.Scores == 0 {
		t.Error("expected score counter to advance")
	}
	if stats.Suggestions != 1 {
		t.Errorf("suggestion counter = %d, want 1", stats.Suggestions)
	}
}
