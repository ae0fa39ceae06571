// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

// Package profile learns a user's taste from their wardrobe and wear
// history. The Analyzer turns raw behavior data into normalized frequency
// distributions over colors, styles, categories, occasions, seasons, and
// brands; PersonalizedScore and Recommend rank items against that profile.
// ToPreferenceProfile bridges analyzed preferences into the match engine's
// explicit preference format.
package profile
