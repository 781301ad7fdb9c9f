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
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/api-impact-heatmap/pkg/catalog"
	"github.com/NVIDIA/api-impact-heatmap/pkg/defaults"
	hmerrors "github.com/NVIDIA/api-impact-heatmap/pkg/errors"
)

// ErrEmptyCorpus is returned by Build when there are no documents to index.
var ErrEmptyCorpus = hmerrors.New(hmerrors.ErrCodeInvalidRequest, "similarity corpus is empty")

// Document is one text to index under a unique identifier.
type Document struct {
	ID   string
	Text string
}

// Neighbor is a document whose similarity to a query target exceeds the
// index threshold.
type Neighbor struct {
	ID    string  `json:"apiId" yaml:"apiId"`
	Score float64 `json:"score" yaml:"score"`
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	threshold   float64
	concurrency int
}

// WithThreshold sets the exclusive lower bound for Neighbors.
// Must be within [0, 1].
func WithThreshold(t float64) Option {
	return func(o *buildOptions) {
		o.threshold = t
	}
}

// WithConcurrency caps the number of matrix rows computed in parallel.
// Values below 1 use the default.
func WithConcurrency(n int) Option {
	return func(o *buildOptions) {
		o.concurrency = n
	}
}

// Index is an immutable pairwise cosine-similarity matrix over a fixed
// corpus. All methods are safe for concurrent use.
type Index struct {
	ids       []string
	positions map[string]int
	scores    [][]float64
	threshold float64
	vocabSize int
}

// Build tokenizes and vectorizes docs, then computes the full similarity
// matrix. Documents are ordered by identifier (see catalog.SortIDs).
// The upper triangle is computed once and mirrored so the matrix is exactly
// symmetric.
func Build(ctx context.Context, docs []Document, opts ...Option) (*Index, error) {
	o := &buildOptions{
		threshold:   defaults.SimilarityThreshold,
		concurrency: defaults.IndexBuildConcurrency,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.concurrency < 1 {
		o.concurrency = defaults.IndexBuildConcurrency
	}
	if math.IsNaN(o.threshold) || o.threshold < 0 || o.threshold > 1 {
		return nil, hmerrors.NewWithContext(hmerrors.ErrCodeInvalidRequest,
			"similarity threshold must be within [0, 1]", map[string]any{"threshold": o.threshold})
	}
	if len(docs) == 0 {
		indexBuildsTotal.WithLabelValues("error").Inc()
		return nil, ErrEmptyCorpus
	}

	start := time.Now()
	ordered, err := orderDocuments(docs)
	if err != nil {
		indexBuildsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	tok := NewTokenizer()
	corpus := make([][]string, len(ordered))
	ids := make([]string, len(ordered))
	positions := make(map[string]int, len(ordered))
	for i, d := range ordered {
		corpus[i] = tok.Tokens(d.Text)
		ids[i] = d.ID
		positions[d.ID] = i
	}

	vectors, vocabSize := vectorize(corpus)

	scores, err := computeMatrix(ctx, vectors, o.concurrency)
	if err != nil {
		indexBuildsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to compute similarity matrix: %w", err)
	}

	idx := &Index{
		ids:       ids,
		positions: positions,
		scores:    scores,
		threshold: o.threshold,
		vocabSize: vocabSize,
	}

	elapsed := time.Since(start)
	indexBuildsTotal.WithLabelValues("success").Inc()
	indexBuildDuration.Observe(elapsed.Seconds())
	indexDocuments.Set(float64(len(ids)))
	indexVocabulary.Set(float64(vocabSize))

	slog.Debug("similarity index built",
		"documents", len(ids),
		"vocabulary", vocabSize,
		"threshold", o.threshold,
		"duration", elapsed)

	return idx, nil
}

func orderDocuments(docs []Document) ([]Document, error) {
	byID := make(map[string]Document, len(docs))
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		if strings.TrimSpace(d.ID) == "" {
			return nil, hmerrors.New(hmerrors.ErrCodeInvalidRequest, "document has empty identifier")
		}
		if _, dup := byID[d.ID]; dup {
			return nil, hmerrors.NewWithContext(hmerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate document identifier %q", d.ID), map[string]any{"id": d.ID})
		}
		byID[d.ID] = d
		ids = append(ids, d.ID)
	}

	catalog.SortIDs(ids)

	out := make([]Document, len(ids))
	for i, id := range ids {
		out[i] = byID[id]
	}
	return out, nil
}

// computeMatrix fills the upper triangle row by row in parallel, then
// mirrors it. Each goroutine writes only its own row.
func computeMatrix(ctx context.Context, vectors []vector, concurrency int) ([][]float64, error) {
	n := len(vectors)
	scores := make([][]float64, n)
	for i := range scores {
		scores[i] = make([]float64, n)
		scores[i][i] = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := 0; i < n; i++ {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := scores[i]
			for j := i + 1; j < n; j++ {
				row[j] = cosine(vectors[i], vectors[j])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			scores[j][i] = scores[i][j]
		}
	}
	return scores, nil
}

// cosine of two L2-normalized vectors, clamped to [0, 1]. Identical
// non-zero vectors score exactly 1.
func cosine(a, b vector) float64 {
	if a.isZero() || b.isZero() {
		return 0
	}
	if a.equal(b) {
		return 1
	}
	s := dot(a, b)
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	default:
		return s
	}
}

// Neighbors returns the documents scoring strictly above the threshold
// against id, excluding id itself, ordered by score descending and then by
// identifier order. Unknown identifiers yield an empty slice.
func (x *Index) Neighbors(id string) []Neighbor {
	pos, ok := x.positions[id]
	if !ok {
		neighborQueries.WithLabelValues("unknown").Inc()
		return []Neighbor{}
	}
	neighborQueries.WithLabelValues("known").Inc()

	row := x.scores[pos]
	out := make([]Neighbor, 0)
	for j, score := range row {
		if j == pos || score <= x.threshold {
			continue
		}
		out = append(out, Neighbor{ID: x.ids[j], Score: score})
	}

	// Candidates are collected in index order, so a stable sort keeps ties
	// in identifier order.
	slices.SortStableFunc(out, func(a, b Neighbor) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	neighborResults.Observe(float64(len(out)))
	return out
}

// Similarity returns the raw score between a and b.
func (x *Index) Similarity(a, b string) (float64, bool) {
	i, ok := x.positions[a]
	if !ok {
		return 0, false
	}
	j, ok := x.positions[b]
	if !ok {
		return 0, false
	}
	return x.scores[i][j], true
}

// Contains reports whether id is indexed.
func (x *Index) Contains(id string) bool {
	_, ok := x.positions[id]
	return ok
}

// Len returns the number of indexed documents.
func (x *Index) Len() int {
	return len(x.ids)
}

// IDs returns the indexed identifiers in index order.
func (x *Index) IDs() []string {
	return slices.Clone(x.ids)
}

// Vocabulary returns the number of distinct terms in the corpus.
func (x *Index) Vocabulary() int {
	return x.vocabSize
}

// Threshold returns the exclusive lower bound used by Neighbors.
func (x *Index) Threshold() float64 {
	return x.threshold
}
