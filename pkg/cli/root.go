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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/api-impact-heatmap/pkg/catalog"
	"github.com/NVIDIA/api-impact-heatmap/pkg/defaults"
	"github.com/NVIDIA/api-impact-heatmap/pkg/insights"
	"github.com/NVIDIA/api-impact-heatmap/pkg/logging"
	"github.com/NVIDIA/api-impact-heatmap/pkg/serializer"
)

const (
	name           = "heatmap"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage: `Output destination: file path or ConfigMap URI (cm://namespace/name).
	Defaults to stdout.`,
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
)

// Execute runs the CLI with os.Args and exits non-zero on error, with
// exitNotFound when an API identifier is unknown.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "API impact heatmap: usage, metadata and similar APIs",
		Description: `Query an API catalog for usage impact and metadata, and find APIs whose
metadata fingerprints are nearly identical (TF-IDF cosine similarity).

The catalog is read from --catalog: a local JSON/YAML file, an HTTP(S) URL,
or a ConfigMap (cm://namespace/name). Without it the embedded catalog is used.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Value:   catalog.DefaultSource,
				Sources: cli.EnvVars("CATALOG_SOURCE"),
				Usage: `Path/URI to the API catalog.
	Supports: file paths, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).`,
			},
			&cli.StringFlag{
				Name:    "kubeconfig",
				Aliases: []string{"k"},
				Sources: cli.EnvVars("KUBECONFIG"),
				Usage:   "Path to kubeconfig file for ConfigMap catalogs and outputs",
			},
			&cli.FloatFlag{
				Name:    "threshold",
				Value:   defaults.SimilarityThreshold,
				Sources: cli.EnvVars(insights.EnvVarThreshold),
				Usage:   "Exclusive lower bound for reported similarity scores",
			},
			&cli.IntFlag{
				Name:    "name-weight",
				Value:   defaults.FingerprintNameWeight,
				Sources: cli.EnvVars(insights.EnvVarNameWeight),
				Usage:   "Times the API name is repeated in its fingerprint",
			},
			&cli.BoolFlag{
				Name:    "include-params",
				Sources: cli.EnvVars(insights.EnvVarIncludeParams),
				Usage:   "Append parameter names to fingerprints",
			},
			&cli.BoolFlag{
				Name:    "include-schema",
				Sources: cli.EnvVars(insights.EnvVarIncludeSchema),
				Usage:   "Append response schema field names to fingerprints",
			},
			&cli.FloatFlag{
				Name:    "calls-weight",
				Value:   defaults.ImpactCallsWeight,
				Sources: cli.EnvVars(insights.EnvVarCallsWeight),
				Usage:   "Impact score weight of the call count",
			},
			&cli.FloatFlag{
				Name:    "consumers-weight",
				Value:   defaults.ImpactConsumersWeight,
				Sources: cli.EnvVars(insights.EnvVarConsumersWeight),
				Usage:   "Impact score weight of the consumer count",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logLevel := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", logLevel)
			return ctx, nil
		},
		Commands: []*cli.Command{
			metadataCmd(),
			usageCmd(),
			similarCmd(),
			groupsCmd(),
			matrixCmd(),
			serveCmd(),
		},
	}
}
