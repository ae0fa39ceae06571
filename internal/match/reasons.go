// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

package match

import (
	"fmt"
)

// buildReasons produces human-readable explanations for a scored pair.
// Thresholds are strict ("greater than"), so a score of exactly 0.7 does
// not earn the stronger phrasing.
func buildReasons(a, b *ClothingItem, r *CompatibilityResult) []string {
	var reasons []string

	switch {
	case r.ColorScore > 0.7:
		reasons = append(reasons, "Excellent color harmony")
	case r.ColorScore > 0.5:
		reasons = append(reasons, "Good color compatibility")
	}

	switch {
	case r.StyleScore > 0.8:
		reasons = append(reasons, fmt.Sprintf("Perfect style match (%s + %s)", a.Style, b.Style))
	case r.StyleScore > 0.6:
		reasons = append(reasons, fmt.Sprintf("Compatible styles (%s + %s)", a.Style, b.Style))
	}

	switch {
	case r.Score > 0.8:
		reasons = append(reasons, "Highly recommended combination")
	case r.Score > 0.6:
		reasons = append(reasons, "Good pairing option")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Compatible items")
	}
	return reasons
}
