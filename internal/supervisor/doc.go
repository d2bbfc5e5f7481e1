// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

/*
Package supervisor runs the dashboard's long-running services under suture v4.

	root ("salesdash")
	├── data-layer
	│   └── dimension cache sweepers
	└── api-layer
	    └── HTTPServerService

Crashed services restart with backoff. Supervisor events are logged through
sutureslog into the zerolog-backed slog handler from the logging package.
Canceling the context passed to Serve stops every service, each bounded by
TreeConfig.ShutdownTimeout.
*/
package supervisor
