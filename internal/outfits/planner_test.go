// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package outfits

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/stylehaus/internal/match"
)

// testPlanWardrobe has two of each core category so a second day can be
// dressed without repeating the first day's picks.
func testPlanWardrobe() []match.ClothingItem {
	return []match.ClothingItem{
		{ID: "top-1", Category: match.CategoryTops, Colors: []string{"#000000"}, Style: "casual"},
		{ID: "top-2", Category: match.CategoryTops, Colors: []string{"#ffffff"}, Style: "casual"},
		{ID: "bottom-1", Category: match.CategoryBottoms, Colors: []string{"#ffffff"}, Style: "casual"},
		{ID: "bottom-2", Category: match.CategoryBottoms, Colors: []string{"#000000"}, Style: "casual"},
		{ID: "shoes-1", Category: match.CategoryShoes, Colors: []string{"#000000"}, Style: "casual"},
		{ID: "shoes-2", Category: match.CategoryShoes, Colors: []string{"#ffffff"}, Style: "casual"},
	}
}

func TestPlanValidation(t *testing.T) {
	t.Parallel()

	gen := testGenerator(t)

	tests := []struct {
		name string
		req  PlanRequest
	}{
		{"zero days", PlanRequest{Wardrobe: testPlanWardrobe(), Days: 0}},
		{"too many days", PlanRequest{Wardrobe: testPlanWardrobe(), Days: 31}},
		{"empty wardrobe", PlanRequest{Days: 2}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := gen.Plan(context.Background(), tt.req); err == nil {
				t.Error("Plan() did not error")
			}
		})
	}
}

func TestPlanDayKeys(t *testing.T) {
	t.Parallel()

	gen := testGenerator(t)
	start := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	plan, err := gen.Plan(context.Background(), PlanRequest{
		Wardrobe:  testPlanWardrobe(),
		StartDate: start,
		Days:      3,
	})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	wantKeys := []string{"day_1_2026-08-29", "day_2_2026-08-30", "day_3_2026-08-31"}
	if len(plan) != len(wantKeys) {
		t.Fatalf("Plan() has %d days, want %d", len(plan), len(wantKeys))
	}
	for _, key := range wantKeys {
		outfits, ok := plan[key]
		if !ok {
			t.Fatalf("Plan() missing key %q", key)
		}
		if len(outfits) > gen.Config().MaxPerDay {
			t.Errorf("day %q has %d outfits, want at most %d", key, len(outfits), gen.Config().MaxPerDay)
		}
	}
}

func TestPlanAvoidsRepeats(t *testing.T) {
	t.Parallel()

	gen := testGenerator(t)
	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	plan, err := gen.Plan(context.Background(), PlanRequest{
		Wardrobe:  testPlanWardrobe(),
		StartDate: start,
		Days:      2,
	})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	day1 := plan["day_1_2026-08-10"]
	day2 := plan["day_2_2026-08-11"]
	if len(day1) == 0 || len(day2) == 0 {
		t.Fatalf("expected outfits on both days, got %d and %d", len(day1), len(day2))
	}

	worn := make(map[string]bool)
	for _, item := range day1[0].Items {
		worn[item.ID] = true
	}
	for i, outfit := range day2 {
		for _, item := range outfit.Items {
			if worn[item.ID] {
				t.Errorf("day 2 outfit %d repeats item %q from day 1", i, item.ID)
			}
		}
	}
}

func TestPlanResetsWhenExhausted(t *testing.T) {
	t.Parallel()

	// One top and one bottom: day 1 wears both, later days must reuse them.
	wardrobe := []match.ClothingItem{
		{ID: "top-1", Category: match.CategoryTops, Colors: []string{"#000000"}, Style: "casual"},
		{ID: "bottom-1", Category: match.CategoryBottoms, Colors: []string{"#ffffff"}, Style: "casual"},
	}

	gen := testGenerator(t)
	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	plan, err := gen.Plan(context.Background(), PlanRequest{
		Wardrobe:  wardrobe,
		StartDate: start,
		Days:      3,
	})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	for key, outfits := range plan {
		if len(outfits) != 1 {
			t.Errorf("day %q has %d outfits, want 1", key, len(outfits))
			continue
		}
		if len(outfits[0].Items) != 2 {
			t.Errorf("day %q outfit has %d items, want 2", key, len(outfits[0].Items))
		}
	}
}

func TestPlanContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := testGenerator(t)
	if _, err := gen.Plan(ctx, PlanRequest{Wardrobe: testPlanWardrobe(), Days: 2}); err == nil {
		t.Error("Plan() with cancelled context did not error")
	}
}
