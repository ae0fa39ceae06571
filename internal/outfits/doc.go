// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

// Package outfits assembles complete outfits from a wardrobe.
//
// The Generator draws item combinations following a fixed set of outfit
// structures (top and bottom, top, bottom, and shoes, a dress with or
// without shoes or outerwear), scores each with the match engine, and
// ranks survivors by the mean of compatibility and occasion fit. It also
// builds multi-day event plans that avoid repeating items until the
// wardrobe runs out, estimates how well an outfit hits a dress code, and
// reports wardrobe gaps.
//
// Sampling uses a seeded source, so a given wardrobe and configuration
// always produce the same outfits.
package outfits
