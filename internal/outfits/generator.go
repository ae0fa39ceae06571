// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package outfits

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylehaus/internal/match"
)

// outfitStructures lists the item category templates a generated outfit
// may follow, in the order they are tried.
var outfitStructures = [][]match.Category{
	{match.CategoryTops, match.CategoryBottoms},
	{match.CategoryTops, match.CategoryBottoms, match.CategoryShoes},
	{match.CategoryTops, match.CategoryBottoms, match.CategoryOuterwear},
	{match.CategoryDresses},
	{match.CategoryDresses, match.CategoryShoes},
	{match.CategoryDresses, match.CategoryOuterwear},
}

// Generator builds and ranks outfit combinations from a wardrobe.
// It is safe for concurrent use.
type Generator struct {
	engine *match.Engine
	config Config
	logger zerolog.Logger

	// mu guards rng: rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand

	generateCount atomic.Int64
	planCount     atomic.Int64
}

// GeneratorStats reports generator activity counters.
type GeneratorStats struct {
	GenerateCount int64 `json:"generate_count"`
	PlanCount     int64 `json:"plan_count"`
}

// NewGenerator creates a Generator backed by a compatibility engine.
func NewGenerator(engine *match.Engine, cfg Config, logger zerolog.Logger) (*Generator, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid outfits config: %w", err)
	}

	g := &Generator{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("component", "outfits").Logger(),
		rng:    rand.New(rand.NewSource(cfg.Seed)), //nolint:gosec // G404: sampling only, not security sensitive
	}

	g.logger.Info().
		Float64("score_threshold", cfg.ScoreThreshold).
		Float64("occasion_threshold", cfg.OccasionThreshold).
		Int("max_combinations", cfg.MaxCombinations).
		Msg("Outfit generator initialized")

	return g, nil
}

// Config returns a copy of the generator configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Generate builds outfit ideas from the request's wardrobe. Results are
// filtered to the score threshold and ranked by the mean of compatibility
// and occasion fit, best first.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) ([]Outfit, error) {
	g.generateCount.Add(1)

	if len(req.Wardrobe) == 0 {
		return []Outfit{}, nil
	}
	if err := match.ContextCancelled(ctx); err != nil {
		return nil, err
	}

	pool := g.filterByOccasion(req.Wardrobe, req.Occasion)
	groups := groupByCategory(pool)
	combos := g.sampleCombinations(groups)

	outfits := make([]Outfit, 0, len(combos))
	for _, items := range combos {
		if err := match.ContextCancelled(ctx); err != nil {
			return nil, err
		}

		outfit := g.scoreOutfit(items, req.Occasion, req.Profile)
		// Strict: a score exactly at the threshold is not kept.
		if outfit.Score <= g.config.ScoreThreshold {
			continue
		}
		if req.Formality != "" {
			fm := FormalityMatch(items, req.Formality)
			outfit.FormalityMatch = &fm
		}
		outfits = append(outfits, outfit)
	}

	sort.SliceStable(outfits, func(i, j int) bool {
		return rankScore(outfits[i]) > rankScore(outfits[j])
	})

	if req.Limit > 0 && len(outfits) > req.Limit {
		outfits = outfits[:req.Limit]
	}

	g.logger.Debug().
		Int("wardrobe", len(req.Wardrobe)).
		Int("pool", len(pool)).
		Int("combinations", len(combos)).
		Int("outfits", len(outfits)).
		Str("occasion", req.Occasion).
		Msg("Generated outfits")

	return outfits, nil
}

// Stats returns a snapshot of generator counters.
func (g *Generator) Stats() GeneratorStats {
	return GeneratorStats{
		GenerateCount: g.generateCount.Load(),
		PlanCount:     g.planCount.Load(),
	}
}

// rankScore orders outfits by the mean of compatibility and occasion fit.
func rankScore(o Outfit) float64 {
	return (o.Score + o.OccasionFit) / 2
}

// filterByOccasion drops items whose style does not fit the occasion.
// Without an occasion the pool passes through unchanged.
func (g *Generator) filterByOccasion(wardrobe []match.ClothingItem, occasion string) []match.ClothingItem {
	if occasion == "" {
		return wardrobe
	}
	pool := make([]match.ClothingItem, 0, len(wardrobe))
	for _, item := range wardrobe {
		if match.OccasionScore(item.Style, occasion) > g.config.OccasionThreshold {
			pool = append(pool, item)
		}
	}
	return pool
}

func groupByCategory(items []match.ClothingItem) map[match.Category][]match.ClothingItem {
	groups := make(map[match.Category][]match.ClothingItem)
	for _, item := range items {
		cat := match.NormalizeCategory(string(item.Category))
		groups[cat] = append(groups[cat], item)
	}
	return groups
}

// sampleCombinations draws item combinations for each outfit structure the
// pool can satisfy, deduplicated by item IDs and capped at MaxCombinations
// overall. Sampling is driven by the generator's seeded source, so results
// are deterministic for a given pool.
func (g *Generator) sampleCombinations(groups map[match.Category][]match.ClothingItem) [][]match.ClothingItem {
	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[string]struct{})
	combos := make([][]match.ClothingItem, 0, g.config.MaxCombinations)

	for _, structure := range outfitStructures {
		if len(combos) >= g.config.MaxCombinations {
			break
		}
		if !hasCategories(groups, structure) {
			continue
		}

		// Cap attempts so tiny pools cannot spin on duplicates.
		attempts := g.config.MaxCombinations * 4
		for i := 0; i < attempts && len(combos) < g.config.MaxCombinations; i++ {
			items := make([]match.ClothingItem, 0, len(structure))
			for _, cat := range structure {
				pool := groups[cat]
				items = append(items, pool[g.rng.Intn(len(pool))])
			}

			key := comboKey(items)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			combos = append(combos, items)
		}
	}

	return combos
}

func hasCategories(groups map[match.Category][]match.ClothingItem, structure []match.Category) bool {
	for _, cat := range structure {
		if len(groups[cat]) == 0 {
			return false
		}
	}
	return true
}

func comboKey(items []match.ClothingItem) string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}

// scoreOutfit scores one combination. Multi-item outfits use the mean
// pairwise compatibility; a single-item outfit (a dress) is scored by its
// occasion fit alone.
func (g *Generator) scoreOutfit(items []match.ClothingItem, occasion string, profile *match.PreferenceProfile) Outfit {
	score := g.meanPairwiseScore(items, occasion, profile)
	fit := meanOccasionFit(items, occasion)

	return Outfit{
		Items:       items,
		Score:       score,
		OccasionFit: fit,
		Reasons:     buildOutfitReasons(items, occasion, fit),
	}
}

func (g *Generator) meanPairwiseScore(items []match.ClothingItem, occasion string, profile *match.PreferenceProfile) float64 {
	if len(items) == 1 {
		return match.OccasionScore(items[0].Style, occasion)
	}

	var sum float64
	var pairs int
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			result := g.engine.Score(match.ScoreRequest{
				A:        items[i],
				B:        items[j],
				Occasion: occasion,
				Profile:  profile,
			})
			sum += result.Score
			pairs++
		}
	}
	return sum / float64(pairs)
}

// meanOccasionFit averages per-item occasion fit. Without an occasion every
// item is a neutral 0.5.
func meanOccasionFit(items []match.ClothingItem, occasion string) float64 {
	if occasion == "" {
		return 0.5
	}
	var sum float64
	for _, item := range items {
		sum += match.OccasionScore(item.Style, occasion)
	}
	return sum / float64(len(items))
}

func buildOutfitReasons(items []match.ClothingItem, occasion string, fit float64) []string {
	reasons := make([]string, 0, 2)

	if occasion != "" && fit > 0.7 {
		reasons = append(reasons, fmt.Sprintf("Perfect for %s occasions", occasion))
	}

	if style, ok := sharedStyle(items); ok {
		reasons = append(reasons, fmt.Sprintf("Consistent %s style throughout", style))
	}

	return reasons
}

// sharedStyle reports the common style label when every item carries the
// same non-empty style.
func sharedStyle(items []match.ClothingItem) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	style := strings.ToLower(strings.TrimSpace(items[0].Style))
	if style == "" {
		return "", false
	}
	for _, item := range items[1:] {
		if strings.ToLower(strings.TrimSpace(item.Style)) != style {
			return "", false
		}
	}
	return style, true
}
