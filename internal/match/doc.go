// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

/*
Package match scores garment compatibility.

The composite score of an item pair blends five components:

  - Color harmony over the union of both items' colors (hue-circle rules
    with neutral colors pairing with anything)
  - Style adjacency (identical 1.0, adjacent 0.8, floor 0.3)
  - Category complementarity (tops with bottoms score highest, same
    category lowest)
  - Occasion fit averaged over both items (preferred styles 0.9, avoided
    0.2, otherwise formality distance)
  - User preference (neutral without a profile)

Weights default to 0.30/0.25/0.20/0.15/0.10 and are normalized at engine
creation.

# Usage

	engine, err := match.NewEngine(match.DefaultConfig(), logger)
	if err != nil {
	    return err
	}

	result := engine.Score(match.ScoreRequest{A: blazer, B: chinos, Occasion: "work"})
	fmt.Println(result.Score, result.Reasons)

	suggestions, err := engine.Suggestions(ctx, match.SuggestionRequest{
	    Item:     blazer,
	    Wardrobe: wardrobe,
	    Occasion: "work",
	})

All scoring is deterministic: identical input yields identical output.
Suggestion results are cached with a TTL keyed on the request shape.

The free functions (PairHarmony, StyleCompatibility, OccasionScore,
CategoryScore, ComplementaryPalette, Temperature) are exported for use
by the outfits and profile packages.
*/
package match
