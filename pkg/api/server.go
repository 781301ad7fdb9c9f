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

package api

import (
	"context"
	"log/slog"
	"os"

	"github.com/NVIDIA/api-impact-heatmap/pkg/catalog"
	"github.com/NVIDIA/api-impact-heatmap/pkg/insights"
	"github.com/NVIDIA/api-impact-heatmap/pkg/logging"
	"github.com/NVIDIA/api-impact-heatmap/pkg/serializer"
	"github.com/NVIDIA/api-impact-heatmap/pkg/server"
)

const (
	name           = "heatmapd"
	versionDefault = "dev"

	// EnvVarCatalogSource selects the catalog: a file path, an http(s) URL,
	// or cm://namespace/name. Empty uses the embedded catalog.
	EnvVarCatalogSource = "CATALOG_SOURCE"

	// EnvVarKubeconfig points to the kubeconfig used for cm:// sources.
	EnvVarKubeconfig = "KUBECONFIG"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/api-impact-heatmap/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve loads the catalog, builds the similarity index, and serves the API
// until SIGINT or SIGTERM. Any startup failure is returned before the
// server listens; it never serves a partial index.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, err := newServer(ctx, os.Getenv(EnvVarCatalogSource),
		serializer.WithKubeconfig(os.Getenv(EnvVarKubeconfig)))
	if err != nil {
		slog.Error("startup failed", "error", err)
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// newServer wires catalog, insights service and HTTP server together.
func newServer(ctx context.Context, source string, opts ...serializer.SourceOption) (*server.Server, error) {
	store, err := catalog.Load(ctx, source, opts...)
	if err != nil {
		return nil, err
	}

	cfg, err := insights.ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	svc, err := insights.New(ctx, store, insights.WithConfig(cfg))
	if err != nil {
		return nil, err
	}

	return server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(svc.Routes()),
	), nil
}
