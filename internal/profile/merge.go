// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package profile

// Merge folds new preferences into existing ones. Values present on both
// sides are averaged; values only on one side carry over unchanged.
func Merge(existing, update Preferences) Preferences {
	return Preferences{
		Colors:     mergeMaps(existing.Colors, update.Colors),
		Styles:     mergeMaps(existing.Styles, update.Styles),
		Categories: mergeMaps(existing.Categories, update.Categories),
		Occasions:  mergeOccasions(existing.Occasions, update.Occasions),
		Seasons:    mergeSeasons(existing.Seasons, update.Seasons),
		Brands:     mergeMaps(existing.Brands, update.Brands),
	}
}

func mergeMaps(a, b map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(a)+len(b))
	for key, value := range a {
		merged[key] = value
	}
	for key, value := range b {
		if prev, ok := merged[key]; ok {
			merged[key] = (prev + value) / 2
		} else {
			merged[key] = value
		}
	}
	return merged
}

func mergeOccasions(a, b map[string]OccasionPattern) map[string]OccasionPattern {
	merged := make(map[string]OccasionPattern, len(a)+len(b))
	for occasion, pattern := range a {
		merged[occasion] = pattern
	}
	for occasion, pattern := range b {
		if prev, ok := merged[occasion]; ok {
			merged[occasion] = OccasionPattern{
				Styles:     mergeMaps(prev.Styles, pattern.Styles),
				Colors:     mergeMaps(prev.Colors, pattern.Colors),
				Categories: mergeMaps(prev.Categories, pattern.Categories),
			}
		} else {
			merged[occasion] = pattern
		}
	}
	return merged
}

func mergeSeasons(a, b map[string]map[string]float64) map[string]map[string]float64 {
	merged := make(map[string]map[string]float64, len(a)+len(b))
	for season, categories := range a {
		merged[season] = categories
	}
	for season, categories := range b {
		if prev, ok := merged[season]; ok {
			merged[season] = mergeMaps(prev, categories)
		} else {
			merged[season] = categories
		}
	}
	return merged
}
