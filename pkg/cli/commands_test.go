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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/api-impact-heatmap/pkg/catalog"
	"github.com/NVIDIA/api-impact-heatmap/pkg/insights"
)

// run executes the root command as "heatmap <global...> <sub> --output <tmp> <args...>"
// and returns what the subcommand wrote.
func run(t *testing.T, global []string, sub string, args ...string) (string, error) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out")

	full := append([]string{name}, global...)
	full = append(full, sub, "--output", out)
	full = append(full, args...)

	err := newRootCmd().Run(context.Background(), full)
	data, readErr := os.ReadFile(out)
	if readErr != nil {
		return "", err
	}
	return string(data), err
}

func TestSimilarCommand(t *testing.T) {
	out, err := run(t, nil, "similar", "1")
	require.NoError(t, err)

	var got []insights.SimilarAPI
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "7", got[0].ID)
	assert.Equal(t, "getProfile", got[0].Name)
	assert.InDelta(t, 0.9294, got[0].Similarity, 1e-4)

	out, err = run(t, nil, "similar", "404")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestSimilarCommand_Threshold(t *testing.T) {
	out, err := run(t, []string{"--threshold=0.99"}, "similar", "1")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestMetadataCommand(t *testing.T) {
	out, err := run(t, nil, "metadata", "--format", "yaml", "28")
	require.NoError(t, err)
	assert.Contains(t, out, "apiName: deleteUser")
	assert.Contains(t, out, "owningService: UserService")

	out, err = run(t, nil, "metadata", "--fingerprint", "1")
	require.NoError(t, err)
	var fp FingerprintResult
	require.NoError(t, json.Unmarshal([]byte(out), &fp))
	assert.Equal(t, "1", fp.ID)
	assert.True(t, strings.HasPrefix(fp.Fingerprint, "getProfile getProfile"))

	_, err = run(t, nil, "metadata", "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, exitNotFound, exitCode(err))
}

func TestUsageCommand(t *testing.T) {
	out, err := run(t, nil, "usage", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "[0].impactScore")
	assert.Contains(t, out, "9.1")

	out, err = run(t, []string{"--calls-weight=1", "--consumers-weight=0"}, "usage")
	require.NoError(t, err)
	var got []insights.UsageSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got)
	assert.Equal(t, 10.0, got[0].ImpactScore)
}

func TestUsageCommand_SingleAPI(t *testing.T) {
	out, err := run(t, nil, "usage", "1")
	require.NoError(t, err)

	var got insights.UsageSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "getProfile", got.Name)
	assert.Equal(t, 9.1, got.ImpactScore)

	_, err = run(t, nil, "usage", "999")
	require.Error(t, err)
	assert.Equal(t, exitNotFound, exitCode(err))
}

func TestMatrixCommand(t *testing.T) {
	out, err := run(t, nil, "matrix")
	require.NoError(t, err)

	var got insights.SimilarityMatrix
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.IDs, 30)
	require.Len(t, got.Scores, 30)
	for i := range got.Scores {
		assert.Equal(t, 1.0, got.Scores[i][i])
		for j := range got.Scores[i] {
			assert.Equal(t, got.Scores[i][j], got.Scores[j][i])
		}
	}

	out, err = run(t, nil, "matrix", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "apiIds:")
	assert.Contains(t, out, "scores:")
}

func TestGroupsCommand(t *testing.T) {
	out, err := run(t, nil, "groups")
	require.NoError(t, err)

	var got []insights.SimilarityGroup
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	ids := make([]string, 0, len(got))
	for _, g := range got {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"1", "2", "5", "7", "28", "29"}, ids)
}

func TestCommands_CatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	doc := catalog.Document{
		APIs: []catalog.APIRecord{
			{ID: "x", Name: "searchOrders", OwningService: "Orders"},
			{ID: "y", Name: "searchOrders", OwningService: "Orders"},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := run(t, []string{"--catalog=" + path}, "similar", "y")
	require.NoError(t, err)
	var got []insights.SimilarAPI
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].ID)
	assert.Equal(t, 1.0, got[0].Similarity)
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name   string
		global []string
		sub    string
		args   []string
		errMsg string
	}{
		{name: "missing id", sub: "similar", errMsg: "expected exactly one API identifier"},
		{name: "too many ids", sub: "metadata", args: []string{"1", "2"}, errMsg: "expected exactly one API identifier"},
		{name: "usage with two ids", sub: "usage", args: []string{"1", "2"}, errMsg: "expected exactly one API identifier"},
		{name: "bad format", sub: "usage", args: []string{"--format", "xml"}, errMsg: "unknown output format"},
		{name: "missing catalog", global: []string{"--catalog=/nonexistent/catalog.yaml"}, sub: "usage", errMsg: "failed to load catalog"},
		{name: "invalid threshold", global: []string{"--threshold=2"}, sub: "groups", errMsg: "failed to build similarity index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.global, tt.sub, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestServerConfigFromCmd(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantErr   bool
		wantPort  int
		wantLimit rate.Limit
		wantBurst int
	}{
		{name: "defaults", args: []string{"serve"}, wantPort: 8080, wantLimit: 100, wantBurst: 200},
		{name: "custom", args: []string{"serve", "--port", "9090", "--rate-limit", "5"}, wantPort: 9090, wantLimit: 5, wantBurst: 10},
		{name: "invalid port", args: []string{"serve", "--port", "70000"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			require.NoError(t, os.Unsetenv("PORT"))
			cmd := &cli.Command{
				Flags: serveCmd().Flags,
				Action: func(_ context.Context, c *cli.Command) error {
					cfg, err := serverConfigFromCmd(c)
					if tt.wantErr {
						assert.Error(t, err)
						return nil
					}
					require.NoError(t, err)
					assert.Equal(t, tt.wantPort, cfg.Port)
					assert.Equal(t, tt.wantLimit, cfg.RateLimit)
					assert.Equal(t, tt.wantBurst, cfg.RateLimitBurst)
					return nil
				},
			}
			require.NoError(t, cmd.Run(context.Background(), tt.args))
		})
	}
}
