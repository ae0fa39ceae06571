// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package outfits

import (
	"context"
	"fmt"

	"github.com/tomtom215/stylehaus/internal/match"
)

// maxPlanDays bounds event plans to keep request cost predictable.
const maxPlanDays = 30

// Plan builds a multi-day outfit plan for an event. Each day gets up to
// MaxPerDay outfit options, and the first option's items are considered
// worn for the rest of the event. When the remaining wardrobe can no
// longer form an outfit the worn set is reset so repeats are allowed.
func (g *Generator) Plan(ctx context.Context, req PlanRequest) (Plan, error) {
	g.planCount.Add(1)

	if req.Days < 1 {
		return nil, fmt.Errorf("days must be at least 1, got %d", req.Days)
	}
	if req.Days > maxPlanDays {
		return nil, fmt.Errorf("days must be at most %d, got %d", maxPlanDays, req.Days)
	}
	if len(req.Wardrobe) == 0 {
		return nil, fmt.Errorf("wardrobe is empty")
	}

	plan := make(Plan, req.Days)
	worn := make(map[string]struct{})

	for day := 0; day < req.Days; day++ {
		if err := match.ContextCancelled(ctx); err != nil {
			return nil, err
		}

		available := excludeWorn(req.Wardrobe, worn)
		if len(available) < 2 {
			// Wardrobe exhausted: allow repeats from here on.
			worn = make(map[string]struct{})
			available = req.Wardrobe
		}

		outfits, err := g.Generate(ctx, GenerateRequest{
			Wardrobe:  available,
			Occasion:  req.Occasion,
			Formality: req.Formality,
			Profile:   req.Profile,
			Limit:     g.config.MaxPerDay,
		})
		if err != nil {
			return nil, err
		}

		date := req.StartDate.AddDate(0, 0, day)
		key := fmt.Sprintf("day_%d_%s", day+1, date.Format("2006-01-02"))
		plan[key] = outfits

		if len(outfits) > 0 {
			for _, item := range outfits[0].Items {
				worn[item.ID] = struct{}{}
			}
		}
	}

	g.logger.Debug().
		Int("days", req.Days).
		Str("occasion", req.Occasion).
		Msg("Built event plan")

	return plan, nil
}

func excludeWorn(wardrobe []match.ClothingItem, worn map[string]struct{}) []match.ClothingItem {
	if len(worn) == 0 {
		return wardrobe
	}
	available := make([]match.ClothingItem, 0, len(wardrobe))
	for _, item := range wardrobe {
		if _, used := worn[item.ID]; !used {
			available = append(available, item)
		}
	}
	return available
}
