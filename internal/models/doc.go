// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

/*
Package models defines shared data structures for the StyleHaus application.

This package contains the API transport models used by the HTTP layer:
the standardized response envelope, structured error payloads, response
metadata, and the health endpoint payload. Domain types (clothing items,
preference profiles, outfits) live with their packages under
internal/match, internal/outfits, and internal/profile.

Key Components:

  - APIResponse: Standard response wrapper with status, data, and metadata
  - APIError: Structured error details with machine-readable codes
  - Metadata: Response timing and cache observability
  - HealthStatus: Health endpoint payload

Usage Example:

	resp := models.APIResponse{
	    Status: "success",
	    Data:   result,
	    Metadata: models.Metadata{
	        Timestamp:   time.Now().UTC(),
	        QueryTimeMS: elapsed.Milliseconds(),
	    },
	}
*/
package models
