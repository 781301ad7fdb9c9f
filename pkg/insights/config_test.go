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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/api-impact-heatmap/pkg/defaults"
	hmerrors "github.com/NVIDIA/api-impact-heatmap/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, defaults.SimilarityThreshold, cfg.Threshold)
	assert.Equal(t, defaults.FingerprintNameWeight, cfg.NameWeight)
	assert.Equal(t, defaults.ImpactCallsWeight, cfg.Impact.Calls)
	assert.Equal(t, defaults.ImpactConsumersWeight, cfg.Impact.Consumers)
	assert.False(t, cfg.IncludeParams)
	assert.False(t, cfg.IncludeSchema)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "no overrides",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
		{
			name: "all overrides",
			env: map[string]string{
				EnvVarThreshold:       "0.65",
				EnvVarNameWeight:      "3",
				EnvVarIncludeParams:   "true",
				EnvVarIncludeSchema:   "1",
				EnvVarCallsWeight:     "0.5",
				EnvVarConsumersWeight: "0.5",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 0.65, cfg.Threshold)
				assert.Equal(t, 3, cfg.NameWeight)
				assert.True(t, cfg.IncludeParams)
				assert.True(t, cfg.IncludeSchema)
				assert.Equal(t, 0.5, cfg.Impact.Calls)
				assert.Equal(t, 0.5, cfg.Impact.Consumers)
			},
		},
		{
			name: "blank values ignored",
			env:  map[string]string{EnvVarThreshold: "  ", EnvVarNameWeight: ""},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, defaults.SimilarityThreshold, cfg.Threshold)
				assert.Equal(t, defaults.FingerprintNameWeight, cfg.NameWeight)
			},
		},
		{name: "invalid threshold", env: map[string]string{EnvVarThreshold: "high"}, wantErr: true},
		{name: "threshold out of range", env: map[string]string{EnvVarThreshold: "1.2"}, wantErr: true},
		{name: "invalid name weight", env: map[string]string{EnvVarNameWeight: "five"}, wantErr: true},
		{name: "invalid bool", env: map[string]string{EnvVarIncludeParams: "sometimes"}, wantErr: true},
		{name: "negative weight", env: map[string]string{EnvVarCallsWeight: "-1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, name := range []string{
				EnvVarThreshold, EnvVarNameWeight, EnvVarIncludeParams,
				EnvVarIncludeSchema, EnvVarCallsWeight, EnvVarConsumersWeight,
			} {
				t.Setenv(name, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := ConfigFromEnv()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, hmerrors.ErrCodeInvalidRequest, hmerrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
