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

package server

import (
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		t.Setenv(EnvVarPort, "")
		t.Setenv(EnvVarShutdownTimeout, "")
		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}
		if cfg.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Port)
		}
		if cfg.RateLimit != 100 || cfg.RateLimitBurst != 200 {
			t.Errorf("unexpected rate limit %v/%d", cfg.RateLimit, cfg.RateLimitBurst)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Errorf("expected CORS to allow any origin, got %v", cfg.CORSAllowedOrigins)
		}
		if cfg.RequestTimeout != 5*time.Second {
			t.Errorf("expected request timeout 5s, got %v", cfg.RequestTimeout)
		}
		if cfg.ReadTimeout != 10*time.Second {
			t.Errorf("expected read timeout 10s, got %v", cfg.ReadTimeout)
		}
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
		}
	})

	tests := []struct {
		name         string
		port         string
		shutdown     string
		wantPort     int
		wantShutdown time.Duration
	}{
		{"custom port", "9090", "", 9090, 30 * time.Second},
		{"invalid port uses default", "invalid", "", 8080, 30 * time.Second},
		{"out of range port uses default", "70000", "", 8080, 30 * time.Second},
		{"custom shutdown timeout", "", "45", 8080, 45 * time.Second},
		{"non-positive shutdown uses default", "", "0", 8080, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvVarPort, tt.port)
			t.Setenv(EnvVarShutdownTimeout, tt.shutdown)

			cfg := parseConfig()
			if cfg.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", cfg.Port, tt.wantPort)
			}
			if cfg.ShutdownTimeout != tt.wantShutdown {
				t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout, tt.wantShutdown)
			}
		})
	}
}
