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

// Package defaults provides centralized configuration constants for the
// API impact heatmap service.
//
// This package defines timeout values and the similarity and impact tuning
// values used across the codebase. Centralizing these values keeps the
// server, the CLI, and the tests in agreement.
//
// # Categories
//
//   - Handler timeouts: For HTTP request processing
//   - Startup timeouts: For catalog loading and the one-time index build
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For remote catalog downloads
//   - Similarity tuning: threshold, name weight, precision
//   - Impact weighting: calls and consumers weights
//
// # Usage
//
//	import "github.com/NVIDIA/api-impact-heatmap/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.IndexBuildTimeout)
//	defer cancel()
//
// Tuning constants are defaults only. The server reads overrides from the
// environment and the CLI from flags; see insights.ConfigFromEnv.
package defaults
