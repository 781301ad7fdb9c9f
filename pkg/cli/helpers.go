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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/api-impact-heatmap/pkg/catalog"
	hmerrors "github.com/NVIDIA/api-impact-heatmap/pkg/errors"
	"github.com/NVIDIA/api-impact-heatmap/pkg/insights"
	"github.com/NVIDIA/api-impact-heatmap/pkg/serializer"
)

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v",
			cmd.String("format"), serializer.SupportedFormats())
	}
	return format, nil
}

// configFromCmd builds the insights tuning configuration from flags, which
// already fall back to their environment variables.
func configFromCmd(cmd *cli.Command) insights.Config {
	cfg := insights.DefaultConfig()
	cfg.Threshold = cmd.Float("threshold")
	cfg.NameWeight = cmd.Int("name-weight")
	cfg.IncludeParams = cmd.Bool("include-params")
	cfg.IncludeSchema = cmd.Bool("include-schema")
	cfg.Impact = catalog.ImpactWeights{
		Calls:     cmd.Float("calls-weight"),
		Consumers: cmd.Float("consumers-weight"),
	}
	return cfg
}

// loadService reads the catalog named by --catalog and builds the index.
func loadService(ctx context.Context, cmd *cli.Command) (*insights.Service, error) {
	source := cmd.String("catalog")
	store, err := catalog.Load(ctx, source, serializer.WithKubeconfig(cmd.String("kubeconfig")))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %q: %w", source, err)
	}

	svc, err := insights.New(ctx, store, insights.WithConfig(configFromCmd(cmd)))
	if err != nil {
		return nil, fmt.Errorf("failed to build similarity index: %w", err)
	}
	return svc, nil
}

// apiIDArg returns the single positional API identifier.
func apiIDArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("expected exactly one API identifier, got %d arguments", cmd.Args().Len())
	}
	id := strings.TrimSpace(cmd.Args().First())
	if id == "" {
		return "", fmt.Errorf("API identifier cannot be empty")
	}
	return id, nil
}

// Process exit codes. A lookup of an identifier the catalog does not know
// exits with exitNotFound so scripts can tell it apart from other failures.
const (
	exitFailure  = 1
	exitNotFound = 2
)

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case hmerrors.IsNotFound(err):
		return exitNotFound
	default:
		return exitFailure
	}
}

// writeResult serializes v to --output in --format.
func writeResult(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
