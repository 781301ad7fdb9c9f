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

package insights

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/NVIDIA/api-impact-heatmap/pkg/catalog"
	"github.com/NVIDIA/api-impact-heatmap/pkg/defaults"
	hmerrors "github.com/NVIDIA/api-impact-heatmap/pkg/errors"
	"github.com/NVIDIA/api-impact-heatmap/pkg/fingerprint"
	"github.com/NVIDIA/api-impact-heatmap/pkg/similarity"
)

// UsageSummary is one row of the usage report.
type UsageSummary struct {
	ID            string  `json:"apiId" yaml:"apiId"`
	Name          string  `json:"apiName" yaml:"apiName"`
	OwningService string  `json:"owningService" yaml:"owningService"`
	Calls         int64   `json:"calls" yaml:"calls"`
	Consumers     int64   `json:"consumers" yaml:"consumers"`
	ImpactScore   float64 `json:"impactScore" yaml:"impactScore"`
}

// SimilarAPI is an API scoring above the threshold against a query target.
type SimilarAPI struct {
	ID         string  `json:"apiId" yaml:"apiId"`
	Name       string  `json:"apiName" yaml:"apiName"`
	Similarity float64 `json:"similarity" yaml:"similarity"`
}

// SimilarityGroup is an API together with its similar APIs.
type SimilarityGroup struct {
	ID      string       `json:"apiId" yaml:"apiId"`
	Name    string       `json:"apiName" yaml:"apiName"`
	Similar []SimilarAPI `json:"similarApis" yaml:"similarApis"`
}

// SimilarityMatrix holds the pairwise scores of every indexed API.
// Scores[i][j] is the similarity between IDs[i] and IDs[j]; the matrix is
// symmetric with ones on the diagonal.
type SimilarityMatrix struct {
	IDs    []string    `json:"apiIds" yaml:"apiIds"`
	Scores [][]float64 `json:"scores" yaml:"scores"`
}

// Option configures a Service.
type Option func(*Config)

// WithConfig replaces the whole tuning configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithThreshold sets the exclusive similarity threshold.
func WithThreshold(t float64) Option {
	return func(c *Config) {
		c.Threshold = t
	}
}

// WithNameWeight sets the fingerprint name repetition count.
func WithNameWeight(n int) Option {
	return func(c *Config) {
		c.NameWeight = n
	}
}

// WithImpactWeights sets the impact score weighting.
func WithImpactWeights(w catalog.ImpactWeights) Option {
	return func(c *Config) {
		c.Impact = w
	}
}

// Service answers metadata, usage and similarity queries over a catalog.
// The similarity index is built once in New; all methods are read-only and
// safe for concurrent use.
type Service struct {
	config  Config
	store   *catalog.Store
	builder *fingerprint.Builder
	index   *similarity.Index
}

// New fingerprints every API in store and builds the similarity index.
// An empty catalog or invalid configuration is an error.
func New(ctx context.Context, store *catalog.Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, hmerrors.New(hmerrors.ErrCodeInvalidRequest, "catalog store is nil")
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	builder := fingerprint.New(
		fingerprint.WithNameWeight(cfg.NameWeight),
		fingerprint.WithParams(cfg.IncludeParams),
		fingerprint.WithResponseSchema(cfg.IncludeSchema),
	)

	apis := store.APIs()
	texts := builder.BuildAll(apis)
	docs := make([]similarity.Document, len(apis))
	for i, rec := range apis {
		docs[i] = similarity.Document{ID: rec.ID, Text: texts[i]}
	}

	buildCtx, cancel := context.WithTimeout(ctx, defaults.IndexBuildTimeout)
	defer cancel()

	start := time.Now()
	index, err := similarity.Build(buildCtx, docs,
		similarity.WithThreshold(cfg.Threshold),
		similarity.WithConcurrency(cfg.Concurrency),
	)
	if err != nil {
		code := hmerrors.CodeOf(err)
		switch {
		case code != "":
		case errors.Is(err, context.DeadlineExceeded):
			code = hmerrors.ErrCodeTimeout
		default:
			code = hmerrors.ErrCodeInternal
		}
		return nil, hmerrors.Wrap(code, "failed to build similarity index", err)
	}

	slog.Info("insights service ready",
		"apis", index.Len(),
		"vocabulary", index.Vocabulary(),
		"threshold", index.Threshold(),
		"nameWeight", builder.NameWeight(),
		"duration", time.Since(start).String(),
	)

	return &Service{
		config:  cfg,
		store:   store,
		builder: builder,
		index:   index,
	}, nil
}

// Config returns the effective tuning configuration.
func (s *Service) Config() Config {
	return s.config
}

// Metadata returns the API record for id or a NOT_FOUND error.
func (s *Service) Metadata(id string) (*catalog.APIRecord, error) {
	return s.store.Get(id)
}

// Fingerprint returns the fingerprint text indexed for id.
func (s *Service) Fingerprint(id string) (string, error) {
	rec, err := s.store.Get(id)
	if err != nil {
		return "", err
	}
	return s.builder.Build(*rec), nil
}

// Usage returns a summary for every usage record in identifier order.
// Name and owning service come from the API metadata when it exists.
func (s *Service) Usage() []UsageSummary {
	records := s.store.UsageRecords()
	out := make([]UsageSummary, 0, len(records))
	for _, u := range records {
		out = append(out, s.summarize(u))
	}
	return out
}

// UsageFor returns the usage summary of one API or a NOT_FOUND error when
// the catalog has no usage record for it.
func (s *Service) UsageFor(id string) (*UsageSummary, error) {
	u, ok := s.store.Usage(id)
	if !ok {
		return nil, hmerrors.NewWithContext(hmerrors.ErrCodeNotFound,
			fmt.Sprintf("No usage data for API with ID '%s'.", id), map[string]any{"apiId": id})
	}
	summary := s.summarize(u)
	return &summary, nil
}

func (s *Service) summarize(u catalog.UsageRecord) UsageSummary {
	name, service := u.Name, u.OwningService
	if rec, ok := s.store.Lookup(u.ID); ok {
		name, service = rec.Name, rec.OwningService
	}
	return UsageSummary{
		ID:            u.ID,
		Name:          name,
		OwningService: service,
		Calls:         u.Calls,
		Consumers:     u.Consumers,
		ImpactScore:   u.ImpactScore(s.config.Impact),
	}
}

// Similar returns the APIs scoring strictly above the threshold against id,
// highest first. Unknown identifiers yield an empty slice.
func (s *Service) Similar(id string) []SimilarAPI {
	if !s.index.Contains(id) {
		slog.Debug("similarity requested for unknown API", "apiId", id)
	}

	neighbors := s.index.Neighbors(id)
	out := make([]SimilarAPI, 0, len(neighbors))
	for _, n := range neighbors {
		rec, _ := s.store.Lookup(n.ID)
		out = append(out, SimilarAPI{
			ID:         n.ID,
			Name:       rec.Name,
			Similarity: catalog.Round(n.Score, defaults.SimilarityPrecision),
		})
	}
	return out
}

// Groups returns, in identifier order, every API with at least one similar API.
func (s *Service) Groups() []SimilarityGroup {
	out := make([]SimilarityGroup, 0)
	for _, id := range s.index.IDs() {
		similar := s.Similar(id)
		if len(similar) == 0 {
			continue
		}
		rec, _ := s.store.Lookup(id)
		out = append(out, SimilarityGroup{
			ID:      id,
			Name:    rec.Name,
			Similar: similar,
		})
	}
	return out
}

// Matrix returns the pairwise similarity of every API in identifier order,
// rounded like Similar.
func (s *Service) Matrix() SimilarityMatrix {
	ids := s.store.APIIDs()
	scores := make([][]float64, len(ids))
	for i, a := range ids {
		row := make([]float64, len(ids))
		for j, b := range ids {
			score, _ := s.index.Similarity(a, b)
			row[j] = catalog.Round(score, defaults.SimilarityPrecision)
		}
		scores[i] = row
	}
	return SimilarityMatrix{IDs: ids, Scores: scores}
}
