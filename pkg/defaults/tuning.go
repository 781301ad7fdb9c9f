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

package defaults

// Similarity tuning. These are domain-tuning values; callers override them
// through configuration rather than editing code.
const (
	// SimilarityThreshold is the exclusive lower bound a similarity score
	// must exceed to be reported.
	SimilarityThreshold = 0.8

	// SimilarityPrecision is the number of decimals similarity scores are
	// rounded to in query results.
	SimilarityPrecision = 4

	// FingerprintNameWeight is how many times the API name is repeated in
	// a fingerprint to bias the vector toward name similarity.
	FingerprintNameWeight = 5

	// IndexBuildConcurrency caps the number of matrix rows computed in parallel.
	IndexBuildConcurrency = 8
)

// Impact score weighting.
const (
	// ImpactCallsWeight is the weight applied to an API's call count.
	ImpactCallsWeight = 0.7

	// ImpactConsumersWeight is the weight applied to an API's consumer count.
	ImpactConsumersWeight = 0.3

	// ImpactPrecision is the number of decimals impact scores are rounded to.
	ImpactPrecision = 2
)
