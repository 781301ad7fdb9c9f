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

// Package similarity builds a TF-IDF vector space over text documents and
// answers nearest-neighbor queries from a precomputed cosine matrix.
//
// Tokens are lower-cased runs of letters, digits and underscores of at least
// two runes. Term weights use raw counts and smoothed IDF,
// ln((1+n)/(1+df))+1, and each vector is L2-normalized.
//
//	idx, err := similarity.Build(ctx, docs, similarity.WithThreshold(0.8))
//	if err != nil {
//	    return err
//	}
//	for _, n := range idx.Neighbors("1") {
//	    fmt.Println(n.ID, n.Score)
//	}
//
// The matrix is computed once during Build and never mutated, so an Index
// can be queried concurrently without locking. Neighbors applies the
// threshold as an exclusive bound and never includes the target itself.
package similarity
