// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

/*
Package config loads and validates application configuration.

Configuration is layered with Koanf v2, in increasing priority:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML config file (config.yaml, or CONFIG_PATH)
 3. Environment variables with the STYLEHAUS_ prefix

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Invalid configuration")
	}

# Environment Variables

Variables map to config paths by section and key:

	STYLEHAUS_SERVER_PORT=8820           -> server.port
	STYLEHAUS_LOGGING_LEVEL=debug        -> logging.level
	STYLEHAUS_MATCH_MATCH_THRESHOLD=0.5  -> match.match_threshold

Slice values (security.cors_origins) accept comma-separated strings.

# Validation

Load validates the result and fails fast on invalid values. Scoring
weights only need to be non-negative; the match engine normalizes them
so that only ratios matter.
*/
package config
