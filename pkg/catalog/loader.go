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

package catalog

import (
	"context"
	_ "embed"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/api-impact-heatmap/pkg/defaults"
	hmerrors "github.com/NVIDIA/api-impact-heatmap/pkg/errors"
	"github.com/NVIDIA/api-impact-heatmap/pkg/serializer"
)

// DefaultSource selects the catalog embedded in the binary.
const DefaultSource = "embedded"

var (
	//go:embed data/catalog.yaml
	embeddedCatalog []byte

	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the store built from the embedded catalog.
// It is parsed once and shared.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		catalogCacheMisses.Inc()

		var doc Document
		if err := yaml.Unmarshal(embeddedCatalog, &doc); err != nil {
			defaultErr = hmerrors.Wrap(hmerrors.ErrCodeInternal, "failed to parse embedded catalog", err)
			return
		}
		defaultStore, defaultErr = NewStore(&doc)
		if defaultErr == nil {
			recordLoaded(DefaultSource, defaultStore)
		}
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	catalogCacheHits.Inc()
	return defaultStore, nil
}

// Load reads a catalog document from source and validates it.
// An empty source or "embedded" returns Default(). Other sources are local
// files, http(s) URLs, or ConfigMaps (cm://namespace/name).
func Load(ctx context.Context, source string, opts ...serializer.SourceOption) (*Store, error) {
	source = strings.TrimSpace(source)
	if source == "" || source == DefaultSource {
		return Default()
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	start := time.Now()
	doc, err := serializer.FromSource[Document](ctx, source, opts...)
	if err != nil {
		catalogLoadTotal.WithLabelValues(sourceKind(source), "error").Inc()
		return nil, hmerrors.WrapWithContext(hmerrors.ErrCodeUnavailable,
			"failed to read catalog", err, map[string]any{"source": source})
	}

	store, err := NewStore(doc)
	if err != nil {
		catalogLoadTotal.WithLabelValues(sourceKind(source), "invalid").Inc()
		return nil, err
	}

	recordLoaded(source, store)
	slog.Debug("catalog loaded",
		"source", source,
		"apis", store.Len(),
		"usage", len(store.usageIDs),
		"duration", time.Since(start))
	return store, nil
}

func recordLoaded(source string, s *Store) {
	catalogLoadTotal.WithLabelValues(sourceKind(source), "success").Inc()
	catalogAPIs.Set(float64(s.Len()))
	catalogUsageRecords.Set(float64(len(s.usageIDs)))
}

// sourceKind keeps metric label cardinality bounded.
func sourceKind(source string) string {
	switch {
	case source == DefaultSource:
		return DefaultSource
	case strings.HasPrefix(source, serializer.ConfigMapURIScheme):
		return "configmap"
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return "url"
	default:
		return "file"
	}
}
