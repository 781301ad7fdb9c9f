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
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/api-impact-heatmap/pkg/catalog"
	hmerrors "github.com/NVIDIA/api-impact-heatmap/pkg/errors"
	"github.com/NVIDIA/api-impact-heatmap/pkg/insights"
	"github.com/NVIDIA/api-impact-heatmap/pkg/serializer"
)

// runWith executes a bare command carrying flags and hands the parsed
// command to check.
func runWith(t *testing.T, flags []cli.Flag, args []string, check func(*cli.Command)) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(_ context.Context, c *cli.Command) error {
			check(c)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

// clearEnv unsets the variables backing the root flags for the duration
// of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    serializer.Format
		wantErr bool
	}{
		{format: "yaml", want: serializer.FormatYAML},
		{format: "json", want: serializer.FormatJSON},
		{format: "table", want: serializer.FormatTable},
		{format: "JSON", want: serializer.FormatJSON},
		{format: " yaml ", want: serializer.FormatYAML},
		{format: "xml", wantErr: true},
		{format: "csv", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.format), func(t *testing.T) {
			flags := []cli.Flag{&cli.StringFlag{Name: "format", Value: tt.format}}
			runWith(t, flags, nil, func(c *cli.Command) {
				got, err := parseOutputFormat(c)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestAPIIDArg(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		want   string
		errMsg string
	}{
		{name: "single id", args: []string{"7"}, want: "7"},
		{name: "trimmed", args: []string{"  28 "}, want: "28"},
		{name: "non numeric", args: []string{"orders-v2"}, want: "orders-v2"},
		{name: "no args", errMsg: "got 0 arguments"},
		{name: "two args", args: []string{"1", "2"}, errMsg: "got 2 arguments"},
		{name: "blank", args: []string{"   "}, errMsg: "API identifier cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runWith(t, nil, tt.args, func(c *cli.Command) {
				got, err := apiIDArg(c)
				if tt.errMsg != "" {
					require.Error(t, err)
					assert.Contains(t, err.Error(), tt.errMsg)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestConfigFromCmd(t *testing.T) {
	clearEnv(t,
		insights.EnvVarThreshold,
		insights.EnvVarNameWeight,
		insights.EnvVarIncludeParams,
		insights.EnvVarIncludeSchema,
		insights.EnvVarCallsWeight,
		insights.EnvVarConsumersWeight,
	)

	t.Run("defaults", func(t *testing.T) {
		runWith(t, newRootCmd().Flags, nil, func(c *cli.Command) {
			assert.Equal(t, insights.DefaultConfig(), configFromCmd(c))
		})
	})

	t.Run("flags", func(t *testing.T) {
		args := []string{
			"--threshold", "0.5",
			"--name-weight", "3",
			"--include-params",
			"--include-schema",
			"--calls-weight", "1",
			"--consumers-weight", "0.25",
		}
		runWith(t, newRootCmd().Flags, args, func(c *cli.Command) {
			cfg := configFromCmd(c)
			assert.Equal(t, 0.5, cfg.Threshold)
			assert.Equal(t, 3, cfg.NameWeight)
			assert.True(t, cfg.IncludeParams)
			assert.True(t, cfg.IncludeSchema)
			assert.Equal(t, catalog.ImpactWeights{Calls: 1, Consumers: 0.25}, cfg.Impact)
			assert.Equal(t, insights.DefaultConfig().Concurrency, cfg.Concurrency)
		})
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(insights.EnvVarThreshold, "0.9")
		t.Setenv(insights.EnvVarNameWeight, "1")
		runWith(t, newRootCmd().Flags, nil, func(c *cli.Command) {
			cfg := configFromCmd(c)
			assert.Equal(t, 0.9, cfg.Threshold)
			assert.Equal(t, 1, cfg.NameWeight)
			assert.NoError(t, cfg.Validate())
		})
	})
}

func TestExitCode(t *testing.T) {
	notFound := hmerrors.New(hmerrors.ErrCodeNotFound, "API with ID '9' not found.")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: exitFailure},
		{name: "not found", err: notFound, want: exitNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", notFound), want: exitNotFound},
		{name: "other code", err: hmerrors.New(hmerrors.ErrCodeInvalidRequest, "bad"), want: exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
