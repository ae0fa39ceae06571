// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

// errors.go - Common API error definitions

package api

import "errors"

// Common API errors
var (
	// ErrWardrobeTooLarge indicates the request wardrobe exceeds the item cap
	ErrWardrobeTooLarge = errors.New("wardrobe exceeds the item limit")

	// ErrBulkThrottled indicates the bulk scoring throttle rejected the request
	ErrBulkThrottled = errors.New("bulk scoring throttled")
)
