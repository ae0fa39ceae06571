// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package profile

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylehaus/internal/match"
)

// Wear weighting: a worn color counts double an owned one, a worn style
// triple.
const (
	wornColorWeight = 2
	wornStyleWeight = 3
)

// Analyzer derives taste profiles from wardrobe and wear history.
type Analyzer struct {
	logger zerolog.Logger
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		logger: logger.With().Str("component", "profile").Logger(),
	}
}

// Analyze extracts a preference profile from behavior data.
func (a *Analyzer) Analyze(data BehaviorData) Preferences {
	prefs := Preferences{
		Colors:     a.analyzeColors(data),
		Styles:     a.analyzeStyles(data),
		Categories: a.analyzeCategories(data),
		Occasions:  a.analyzeOccasions(data),
		Seasons:    a.analyzeSeasons(data),
		Brands:     a.analyzeBrands(data),
	}

	a.logger.Debug().
		Int("wardrobe", len(data.WardrobeItems)).
		Int("history", len(data.OutfitHistory)).
		Int("colors", len(prefs.Colors)).
		Int("styles", len(prefs.Styles)).
		Msg("Analyzed preferences")

	return prefs
}

func (a *Analyzer) analyzeColors(data BehaviorData) map[string]float64 {
	counts := make(map[string]int)
	total := 0

	for _, item := range data.WardrobeItems {
		for _, color := range item.Colors {
			counts[color]++
			total++
		}
	}
	for _, outfit := range data.OutfitHistory {
		for _, item := range outfit.Items {
			for _, color := range item.Colors {
				counts[color] += wornColorWeight
				total += wornColorWeight
			}
		}
	}

	return normalize(counts, total)
}

func (a *Analyzer) analyzeStyles(data BehaviorData) map[string]float64 {
	counts := make(map[string]int)
	total := 0

	for _, item := range data.WardrobeItems {
		counts[itemStyle(item)]++
		total++
	}
	for _, outfit := range data.OutfitHistory {
		for _, item := range outfit.Items {
			counts[itemStyle(item)] += wornStyleWeight
			total += wornStyleWeight
		}
	}

	return normalize(counts, total)
}

func (a *Analyzer) analyzeCategories(data BehaviorData) map[string]float64 {
	counts := make(map[string]int)
	for _, item := range data.WardrobeItems {
		counts[itemCategory(item)]++
	}
	return normalize(counts, len(data.WardrobeItems))
}

func (a *Analyzer) analyzeOccasions(data BehaviorData) map[string]OccasionPattern {
	type rawPattern struct {
		styles, colors, categories map[string]int
		styleN, colorN, categoryN  int
	}
	raw := make(map[string]*rawPattern)

	for _, outfit := range data.OutfitHistory {
		occasion := strings.ToLower(strings.TrimSpace(outfit.Occasion))
		if occasion == "" {
			occasion = "casual"
		}
		p, ok := raw[occasion]
		if !ok {
			p = &rawPattern{
				styles:     make(map[string]int),
				colors:     make(map[string]int),
				categories: make(map[string]int),
			}
			raw[occasion] = p
		}

		for _, item := range outfit.Items {
			p.styles[itemStyle(item)]++
			p.styleN++
			for _, color := range item.Colors {
				p.colors[color]++
				p.colorN++
			}
			p.categories[itemCategory(item)]++
			p.categoryN++
		}
	}

	patterns := make(map[string]OccasionPattern, len(raw))
	for occasion, p := range raw {
		patterns[occasion] = OccasionPattern{
			Styles:     normalize(p.styles, p.styleN),
			Colors:     normalize(p.colors, p.colorN),
			Categories: normalize(p.categories, p.categoryN),
		}
	}
	return patterns
}

func (a *Analyzer) analyzeSeasons(data BehaviorData) map[string]map[string]float64 {
	counts := map[string]map[string]int{
		"spring": {}, "summer": {}, "autumn": {}, "winter": {},
	}
	totals := make(map[string]int)

	for _, outfit := range data.OutfitHistory {
		if outfit.Date.IsZero() {
			continue
		}
		season := SeasonForDate(outfit.Date)
		for _, item := range outfit.Items {
			counts[season][itemCategory(item)]++
			totals[season]++
		}
	}

	seasons := make(map[string]map[string]float64, len(counts))
	for season, categories := range counts {
		seasons[season] = normalize(categories, totals[season])
	}
	return seasons
}

func (a *Analyzer) analyzeBrands(data BehaviorData) map[string]float64 {
	counts := make(map[string]int)
	total := 0
	for _, item := range data.WardrobeItems {
		brand := strings.TrimSpace(item.Brand)
		if brand == "" {
			continue
		}
		counts[brand]++
		total++
	}
	return normalize(counts, total)
}

// SeasonForDate maps a date to its northern-hemisphere season.
func SeasonForDate(date time.Time) string {
	switch date.Month() {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "autumn"
	}
}

func itemStyle(item match.ClothingItem) string {
	style := strings.ToLower(strings.TrimSpace(item.Style))
	if style == "" {
		return "casual"
	}
	return style
}

func itemCategory(item match.ClothingItem) string {
	cat := string(match.NormalizeCategory(string(item.Category)))
	if cat == "" {
		return "unknown"
	}
	return cat
}

func normalize(counts map[string]int, total int) map[string]float64 {
	normalized := make(map[string]float64, len(counts))
	if total <= 0 {
		return normalized
	}
	for key, count := range counts {
		normalized[key] = float64(count) / float64(total)
	}
	return normalized
}
