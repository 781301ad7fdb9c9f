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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/NVIDIA/api-impact-heatmap/pkg/catalog"
	"github.com/NVIDIA/api-impact-heatmap/pkg/defaults"
	hmerrors "github.com/NVIDIA/api-impact-heatmap/pkg/errors"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvVarThreshold       = "SIMILARITY_THRESHOLD"
	EnvVarNameWeight      = "FINGERPRINT_NAME_WEIGHT"
	EnvVarIncludeParams   = "FINGERPRINT_INCLUDE_PARAMS"
	EnvVarIncludeSchema   = "FINGERPRINT_INCLUDE_SCHEMA"
	EnvVarCallsWeight     = "IMPACT_CALLS_WEIGHT"
	EnvVarConsumersWeight = "IMPACT_CONSUMERS_WEIGHT"
)

// Config holds the tuning values of a Service.
type Config struct {
	// Threshold is the exclusive lower bound for reported similarity scores.
	Threshold float64

	// NameWeight is how many times an API name is repeated in its fingerprint.
	NameWeight int

	// IncludeParams appends parameter names to fingerprints.
	IncludeParams bool

	// IncludeSchema appends response schema field names to fingerprints.
	IncludeSchema bool

	// Impact weights calls and consumers into the impact score.
	Impact catalog.ImpactWeights

	// Concurrency caps parallel rows during the index build.
	Concurrency int
}

// DefaultConfig returns the built-in tuning values.
func DefaultConfig() Config {
	return Config{
		Threshold:   defaults.SimilarityThreshold,
		NameWeight:  defaults.FingerprintNameWeight,
		Impact:      catalog.DefaultImpactWeights(),
		Concurrency: defaults.IndexBuildConcurrency,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by any tuning environment
// variables that are set. A malformed value is an error.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if err := envFloat(EnvVarThreshold, &cfg.Threshold); err != nil {
		return cfg, err
	}
	if err := envInt(EnvVarNameWeight, &cfg.NameWeight); err != nil {
		return cfg, err
	}
	if err := envBool(EnvVarIncludeParams, &cfg.IncludeParams); err != nil {
		return cfg, err
	}
	if err := envBool(EnvVarIncludeSchema, &cfg.IncludeSchema); err != nil {
		return cfg, err
	}
	if err := envFloat(EnvVarCallsWeight, &cfg.Impact.Calls); err != nil {
		return cfg, err
	}
	if err := envFloat(EnvVarConsumersWeight, &cfg.Impact.Consumers); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate checks that the threshold is within [0, 1] and the impact
// weights are non-negative.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return hmerrors.NewWithContext(hmerrors.ErrCodeInvalidRequest,
			"similarity threshold must be within [0, 1]", map[string]any{"threshold": c.Threshold})
	}
	if c.Impact.Calls < 0 || c.Impact.Consumers < 0 {
		return hmerrors.NewWithContext(hmerrors.ErrCodeInvalidRequest,
			"impact weights must be non-negative", map[string]any{
				"calls":     c.Impact.Calls,
				"consumers": c.Impact.Consumers,
			})
	}
	return nil
}

func envValue(name string) (string, bool) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func envFloat(name string, dst *float64) error {
	v, ok := envValue(name)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return invalidEnv(name, v, err)
	}
	*dst = f
	return nil
}

func envInt(name string, dst *int) error {
	v, ok := envValue(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return invalidEnv(name, v, err)
	}
	*dst = n
	return nil
}

func envBool(name string, dst *bool) error {
	v, ok := envValue(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return invalidEnv(name, v, err)
	}
	*dst = b
	return nil
}

func invalidEnv(name, value string, err error) error {
	return hmerrors.WrapWithContext(hmerrors.ErrCodeInvalidRequest,
		fmt.Sprintf("invalid value for %s", name), err, map[string]any{"value": value})
}
