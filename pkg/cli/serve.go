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

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/api-impact-heatmap/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Serve the heatmap HTTP API",
		Description: `Build the similarity index and serve it over HTTP until interrupted:

  GET /api/fingerprint/{apiId}
  GET /api/usage
  GET /api/similarity/{apiId}
  GET /api/similarity

All routes accept an optional trailing slash and allow cross-origin requests.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Sources: cli.EnvVars(server.EnvVarPort),
				Usage:   "Port to listen on",
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to bind (default: all interfaces)",
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Value: 100,
				Usage: "Requests per second allowed on query routes",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := loadService(ctx, cmd)
			if err != nil {
				return err
			}

			cfg, err := serverConfigFromCmd(cmd)
			if err != nil {
				return err
			}

			s := server.New(
				server.WithConfig(cfg),
				server.WithName(name),
				server.WithVersion(version),
				server.WithHandler(svc.Routes()),
			)
			return s.Run(ctx)
		},
	}
}

func serverConfigFromCmd(cmd *cli.Command) (*server.Config, error) {
	cfg := server.NewConfig()

	port := cmd.Int("port")
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be within 1-65535", port)
	}
	cfg.Port = port
	cfg.Address = cmd.String("address")

	if rl := cmd.Float("rate-limit"); rl > 0 {
		cfg.RateLimit = rate.Limit(rl)
		cfg.RateLimitBurst = max(1, int(rl*2))
	}
	return cfg, nil
}
