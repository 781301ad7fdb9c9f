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

// Package api runs heatmapd, the HTTP service for the API impact heatmap.
//
// Serve is the whole program: it configures structured logging, loads the
// catalog named by CATALOG_SOURCE (embedded when unset), builds the
// similarity index, and hands the query routes to pkg/server.
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        os.Exit(1)
//	    }
//	}
//
// Endpoints:
//   - GET /api/fingerprint/{apiId} - API metadata record
//   - GET /api/usage               - usage summaries with impact scores
//   - GET /api/usage/{apiId}       - usage summary of one API
//   - GET /api/similarity/{apiId}  - APIs similar to one API
//   - GET /api/similarity          - all similarity groups
//   - GET /api/similarity/matrix   - pairwise similarity of every API
//   - GET /health, /ready          - health checks (not rate limited)
//   - GET /metrics                 - Prometheus metrics
//
// Environment:
//   - CATALOG_SOURCE: file path, http(s) URL, or cm://namespace/name
//   - KUBECONFIG: kubeconfig for ConfigMap sources
//   - PORT, SHUTDOWN_TIMEOUT_SECONDS: server settings
//   - SIMILARITY_THRESHOLD, FINGERPRINT_NAME_WEIGHT, FINGERPRINT_INCLUDE_PARAMS,
//     FINGERPRINT_INCLUDE_SCHEMA, IMPACT_CALLS_WEIGHT, IMPACT_CONSUMERS_WEIGHT:
//     query tuning; malformed values abort startup
//   - LOG_LEVEL: debug, info, warn, error
//
// Version information is set at build time:
//
//	go build -ldflags="-X 'github.com/NVIDIA/api-impact-heatmap/pkg/api.version=1.0.0'"
package api
