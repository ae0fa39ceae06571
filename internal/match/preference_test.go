// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

import (
	"testing"
)

func prefTestItems() (ClothingItem, ClothingItem) {
	a := ClothingItem{
		ID:       "shirt-1",
		Category: CategoryTops,
		Colors:   []string{"#0000ff"},
		Style:    "casual",
	}
	b := ClothingItem{
		ID:       "jeans-1",
		Category: CategoryBottoms,
		Colors:   []string{"#222222"},
		Style:    "casual",
	}
	return a, b
}

func TestPreferenceScoreNilProfile(t *testing.T) {
	t.Parallel()

	a, b := prefTestItems()
	if got := PreferenceScore(&a, &b, nil, 0.3); !almostEqual(got, 0.5) {
		t.Errorf("nil profile score = %v, want 0.5", got)
	}
}

func TestPreferenceScoreEmptyProfile(t *testing.T) {
	t.Parallel()

	a, b := prefTestItems()
	if got := PreferenceScore(&a, &b, &PreferenceProfile{}, 0.3); !almostEqual(got, 0.5) {
		t.Errorf("empty profile score = %v, want 0.5", got)
	}
}

func TestPreferenceScoreAdjustments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile PreferenceProfile
		penalty float64
		want    float64
	}{
		{
			"preferred color",
			PreferenceProfile{PreferredColors: []string{"#0000FF"}},
			0.3, 0.7,
		},
		{
			"preferred style",
			PreferenceProfile{PreferredStyles: []string{"Casual"}},
			0.3, 0.7,
		},
		{
			"preferred color and style",
			PreferenceProfile{
				PreferredColors: []string{"#0000ff"},
				PreferredStyles: []string{"casual"},
			},
			0.3, 0.9,
		},
		{
			"avoided color",
			PreferenceProfile{AvoidedColors: []string{"#222222"}},
			0.3, 0.2,
		},
		{
			"avoided color with custom penalty",
			PreferenceProfile{AvoidedColors: []string{"#222222"}},
			0.1, 0.4,
		},
		{
			"hits and penalty combine",
			PreferenceProfile{
				PreferredColors: []string{"#0000ff"},
				PreferredStyles: []string{"casual"},
				AvoidedColors:   []string{"#222222"},
			},
			0.3, 0.6,
		},
		{
			"no overlap stays neutral",
			PreferenceProfile{
				PreferredColors: []string{"#ff00ff"},
				PreferredStyles: []string{"formal"},
			},
			0.3, 0.5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, b := prefTestItems()
			got := PreferenceScore(&a, &b, &tt.profile, tt.penalty)
			if !almostEqual(got, tt.want) {
				t.Errorf("PreferenceScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreferenceScoreClamped(t *testing.T) {
	t.Parallel()

	a, b := prefTestItems()
	// Maximum penalty with no positive hits must clamp at 0, not go negative.
	profile := PreferenceProfile{AvoidedColors: []string{"#222222"}}
	got := PreferenceScore(&a, &b, &profile, 1.0)
	if got < 0 || got > 1 {
		t.Errorf("score %v outside [0,1]", got)
	}
	if !almostEqual(got, 0) {
		t.Errorf("score = %v, want 0", got)
	}
}

func TestPreferenceBoostEmptyProfile(t *testing.T) {
	t.Parallel()

	a, _ := prefTestItems()
	if got := PreferenceBoost(&a, &PreferenceProfile{}, "work"); got != 0.0 {
		t.Errorf("empty profile boost = %v, want exactly 0.0", got)
	}
	if got := PreferenceBoost(&a, nil, "work"); got != 0.0 {
		t.Errorf("nil profile boost = %v, want exactly 0.0", got)
	}
}

func TestPreferenceBoostComponents(t *testing.T) {
	t.Parallel()

	a, _ := prefTestItems()
	profile := PreferenceProfile{
		PreferredColors: []string{"#0000ff"},
		PreferredStyles: []string{"casual"},
		OccasionColors:  map[string][]string{"work": {"#0000ff"}},
		OccasionStyles:  map[string][]string{"work": {"casual"}},
	}

	tests := []struct {
		name     string
		occasion string
		want     float64
	}{
		{"general only without occasion", "", 0.10},
		{"general plus occasion specific", "work", 0.30},
		{"occasion with no specific prefs", "party", 0.10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := PreferenceBoost(&a, &profile, tt.occasion)
			if !almostEqual(got, tt.want) {
				t.Errorf("PreferenceBoost(occasion=%q) = %v, want %v", tt.occasion, got, tt.want)
			}
		})
	}
}
