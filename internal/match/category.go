// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

// categoryPair is an unordered pair of categories, stored sorted.
type categoryPair struct {
	a, b Category
}

// newCategoryPair builds the sorted pair key.
func newCategoryPair(a, b Category) categoryPair {
	if a > b {
		a, b = b, a
	}
	return categoryPair{a: a, b: b}
}

// categoryScores maps category pairs to their complementarity score.
var categoryScores = map[categoryPair]float64{
	newCategoryPair(CategoryTops, CategoryBottoms):        0.9,
	newCategoryPair(CategoryTops, CategoryOuterwear):      0.8,
	newCategoryPair(CategoryBottoms, CategoryShoes):       0.8,
	newCategoryPair(CategoryTops, CategoryAccessories):    0.7,
	newCategoryPair(CategoryBottoms, CategoryAccessories): 0.7,
	newCategoryPair(CategoryOuterwear, CategoryAccessories): 0.6,
	newCategoryPair(CategoryShoes, CategoryAccessories):     0.6,
}

// CategoryScore scores how well two garment categories complement each
// other. Two items from the same category rarely belong in one outfit and
// score 0.3; unlisted cross-category pairs default to 0.5.
func CategoryScore(a, b Category) float64 {
	ca := NormalizeCategory(string(a))
	cb := NormalizeCategory(string(b))

	if ca == cb {
		return 0.3
	}
	if score, ok := categoryScores[newCategoryPair(ca, cb)]; ok {
		return score
	}
	return 0.5
}
