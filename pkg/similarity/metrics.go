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

package similarity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heatmap_similarity_index_builds_total",
			Help: "Total number of similarity index builds by result",
		},
		[]string{"result"},
	)

	indexBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "heatmap_similarity_index_build_duration_seconds",
			Help:    "Time spent building the similarity index",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		},
	)

	indexDocuments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "heatmap_similarity_index_documents",
			Help: "Number of documents in the most recently built similarity index",
		},
	)

	indexVocabulary = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "heatmap_similarity_index_vocabulary_terms",
			Help: "Number of distinct terms in the most recently built similarity index",
		},
	)

	neighborQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heatmap_similarity_neighbor_queries_total",
			Help: "Total number of neighbor queries by whether the target was indexed",
		},
		[]string{"target"},
	)

	neighborResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "heatmap_similarity_neighbor_results",
			Help:    "Number of neighbors returned per query of a known target",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)
)
