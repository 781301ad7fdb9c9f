// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server hosts the read-only heatmap HTTP API.
//
// Query handlers are supplied by the caller as a pattern to handler map and
// mounted on a chi router. Patterns use chi syntax, e.g. /api/similarity/{apiId}.
// Trailing slashes are stripped before routing, so /api/usage/ and
// /api/usage resolve to the same handler.
//
// Every response carries permissive CORS headers: any origin, any method and
// any request header are allowed, and credentials are not.
//
// Each query request passes through, outermost first:
//
//   - Prometheus request metrics labeled by route pattern
//   - API version negotiation from the Accept header (X-API-Version)
//   - X-Request-Id propagation, generating a UUID when absent or invalid
//   - panic recovery into a 500 INTERNAL response
//   - token bucket rate limiting (golang.org/x/time/rate), 429 when exceeded
//   - debug request logging
//
// The health checks /health and /ready and the /metrics endpoint bypass rate
// limiting. /ready reports 503 until Start is listening and again once
// shutdown begins.
//
// Errors use one JSON shape:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "API with ID '42' not found.",
//	  "details": {"apiId": "42"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-12T12:00:00Z",
//	  "retryable": false
//	}
//
// Usage:
//
//	s := server.New(
//	    server.WithName("heatmapd"),
//	    server.WithVersion(version),
//	    server.WithHandler(svc.Routes()),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Configuration is read from the environment: PORT and
// SHUTDOWN_TIMEOUT_SECONDS. Invalid values are ignored.
package server
