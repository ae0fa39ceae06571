// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package profile

import (
	"testing"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	existing := Preferences{
		Colors: map[string]float64{"#000000": 0.8, "#ffffff": 0.2},
		Styles: map[string]float64{"casual": 1.0},
	}
	update := Preferences{
		Colors: map[string]float64{"#000000": 0.4, "#ff0000": 0.6},
		Brands: map[string]float64{"Acme": 1.0},
	}

	merged := Merge(existing, update)

	if !almostEqual(merged.Colors["#000000"], 0.6) {
		t.Errorf("shared color = %v, want averaged 0.6", merged.Colors["#000000"])
	}
	if !almostEqual(merged.Colors["#ffffff"], 0.2) {
		t.Errorf("existing-only color = %v, want 0.2", merged.Colors["#ffffff"])
	}
	if !almostEqual(merged.Colors["#ff0000"], 0.6) {
		t.Errorf("update-only color = %v, want 0.6", merged.Colors["#ff0000"])
	}
	if !almostEqual(merged.Styles["casual"], 1.0) {
		t.Errorf("existing-only style = %v, want 1.0", merged.Styles["casual"])
	}
	if !almostEqual(merged.Brands["Acme"], 1.0) {
		t.Errorf("update-only brand = %v, want 1.0", merged.Brands["Acme"])
	}
}

func TestMergeOccasions(t *testing.T) {
	t.Parallel()

	existing := Preferences{
		Occasions: map[string]OccasionPattern{
			"work": {Styles: map[string]float64{"business": 1.0}},
		},
	}
	update := Preferences{
		Occasions: map[string]OccasionPattern{
			"work":  {Styles: map[string]float64{"business": 0.5, "formal": 0.5}},
			"party": {Styles: map[string]float64{"trendy": 1.0}},
		},
	}

	merged := Merge(existing, update)

	work := merged.Occasions["work"]
	if !almostEqual(work.Styles["business"], 0.75) {
		t.Errorf("work business = %v, want 0.75", work.Styles["business"])
	}
	if !almostEqual(work.Styles["formal"], 0.5) {
		t.Errorf("work formal = %v, want 0.5", work.Styles["formal"])
	}
	if _, ok := merged.Occasions["party"]; !ok {
		t.Error("update-only occasion missing")
	}
}
