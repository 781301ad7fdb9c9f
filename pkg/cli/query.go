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

	"github.com/urfave/cli/v3"
)

// FingerprintResult is the output of metadata --fingerprint.
type FingerprintResult struct {
	ID          string `json:"apiId" yaml:"apiId"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

func metadataCmd() *cli.Command {
	return &cli.Command{
		Name:                  "metadata",
		EnableShellCompletion: true,
		Usage:                 "Show the metadata record of one API",
		ArgsUsage:             "<apiId>",
		Description: `Print the catalog metadata of an API: name, owning service, path, method,
parameters, response schema and tags.

Use --fingerprint to print the text the similarity index was built from instead.

# Examples

  heatmap metadata 7
  heatmap metadata --fingerprint --format yaml 7`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fingerprint",
				Usage: "Print the fingerprint text instead of the metadata record",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := apiIDArg(cmd)
			if err != nil {
				return err
			}
			svc, err := loadService(ctx, cmd)
			if err != nil {
				return err
			}

			if cmd.Bool("fingerprint") {
				fp, err := svc.Fingerprint(id)
				if err != nil {
					return err
				}
				return writeResult(ctx, cmd, FingerprintResult{ID: id, Fingerprint: fp})
			}

			rec, err := svc.Metadata(id)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, rec)
		},
	}
}

func usageCmd() *cli.Command {
	return &cli.Command{
		Name:                  "usage",
		EnableShellCompletion: true,
		Usage:                 "List call volume, consumers and impact score per API",
		ArgsUsage:             "[apiId]",
		Description: `List every API with usage data, in identifier order, with its impact score:

  impact = calls * calls-weight + consumers * consumers-weight

rounded to two decimals. Weights default to 0.7 and 0.3.

With an API identifier only that API is reported; an identifier without
usage data is an error.

# Examples

  heatmap usage --format table
  heatmap usage 7`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var id string
			if cmd.Args().Present() {
				var err error
				if id, err = apiIDArg(cmd); err != nil {
					return err
				}
			}

			svc, err := loadService(ctx, cmd)
			if err != nil {
				return err
			}
			if id == "" {
				return writeResult(ctx, cmd, svc.Usage())
			}

			summary, err := svc.UsageFor(id)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, summary)
		},
	}
}

func similarCmd() *cli.Command {
	return &cli.Command{
		Name:                  "similar",
		EnableShellCompletion: true,
		Usage:                 "List APIs similar to one API",
		ArgsUsage:             "<apiId>",
		Description: `List the APIs whose fingerprint similarity to the given API is strictly
above --threshold, highest first. An unknown identifier yields an empty list.

# Examples

  heatmap similar 1
  heatmap --threshold 0.5 similar --format table 1`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := apiIDArg(cmd)
			if err != nil {
				return err
			}
			svc, err := loadService(ctx, cmd)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, svc.Similar(id))
		},
	}
}

func groupsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "groups",
		EnableShellCompletion: true,
		Usage:                 "List every API that has similar APIs",
		Description: `List, in identifier order, each API with at least one similar API together
with those APIs. Useful to spot duplicated endpoints across services.

# Examples

  heatmap groups --output cm://platform/api-duplicates`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := loadService(ctx, cmd)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, svc.Groups())
		},
	}
}

func matrixCmd() *cli.Command {
	return &cli.Command{
		Name:                  "matrix",
		EnableShellCompletion: true,
		Usage:                 "Print the pairwise similarity of every API",
		Description: `Print the full similarity matrix: the API identifiers in order, and for
each pair the cosine similarity of their fingerprints rounded to four
decimals. The matrix is symmetric with ones on the diagonal. The threshold
does not apply.

# Examples

  heatmap matrix --format yaml
  heatmap matrix --output cm://platform/api-similarity`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, err := loadService(ctx, cmd)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, svc.Matrix())
		},
	}
}
