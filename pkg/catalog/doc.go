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

// Package catalog holds the API metadata and usage records the service
// answers from.
//
// A Store is built once from a Document and never mutated:
//
//	store, err := catalog.Load(ctx, "cm://default/api-catalog")
//	if err != nil {
//	    return err
//	}
//	rec, err := store.Get("7") // NOT_FOUND structured error when absent
//
// Load accepts the embedded default catalog, local JSON/YAML files, http(s)
// URLs and Kubernetes ConfigMaps. NewStore rejects empty or duplicate
// identifiers and negative usage counts with INVALID_REQUEST.
//
// Identifiers are ordered by SortIDs: numerically when every identifier is
// an integer, lexicographically otherwise.
//
// UsageRecord.ImpactScore computes calls*0.7 + consumers*0.3 rounded to two
// decimals, with the weights overridable through ImpactWeights.
package catalog
