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

// Package insights answers the heatmap queries over a loaded catalog:
// API metadata, usage with impact scores, and similar APIs.
//
// New fingerprints every API, builds the similarity index once, and returns
// a read-only Service:
//
//	store, err := catalog.Load(ctx, source)
//	if err != nil {
//	    return err
//	}
//	cfg, err := insights.ConfigFromEnv()
//	if err != nil {
//	    return err
//	}
//	svc, err := insights.New(ctx, store, insights.WithConfig(cfg))
//	if err != nil {
//	    return err
//	}
//	similar := svc.Similar("1") // [{apiId: "7", apiName: "getProfile", similarity: 0.9294}]
//
// Routes returns the HTTP handlers for server.WithHandler:
//
//	GET /api/fingerprint/{apiId}  metadata record, 404 when unknown
//	GET /api/usage                usage summaries in identifier order
//	GET /api/usage/{apiId}        usage summary of one API, 404 without usage data
//	GET /api/similarity/{apiId}   similar APIs, [] when none or unknown
//	GET /api/similarity           every API with at least one similar API
//	GET /api/similarity/matrix    pairwise scores of every API, no threshold
//
// Similarity scores are rounded to four decimals after the threshold is
// applied, so a reported 0.8 may stand for a raw score just above it.
package insights
