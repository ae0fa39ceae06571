// StyleHaus - Digital Wardrobe Intelligence and Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylehaus

/*
Package supervisor provides process supervision using suture v4.

The tree manages the lifecycle of long-running services with Erlang/OTP-style
supervision: automatic restart with exponential backoff, failure isolation,
and graceful shutdown.

	RootSupervisor ("stylehaus")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The scoring stack is in-memory, so the HTTP server is the only supervised
service today. The layer indirection stays so future background workers get
their own failure domain without restructuring startup.

Supervisor events are logged through sutureslog, bridged into zerolog by
internal/logging's slog adapter.
*/
package supervisor
