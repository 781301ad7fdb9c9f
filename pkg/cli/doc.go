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

// Package cli implements the heatmap command line.
//
// # Commands
//
// metadata - Show one API's metadata record (or its fingerprint):
//
//	heatmap metadata 7
//	heatmap metadata --fingerprint 7
//
// usage - List call volume, consumers and impact score per API, or one API:
//
//	heatmap usage --format table
//	heatmap usage 7
//
// similar - List APIs whose similarity to one API exceeds the threshold:
//
//	heatmap --threshold 0.85 similar 1
//
// groups - List every API that has similar APIs:
//
//	heatmap groups --output cm://platform/api-duplicates
//
// matrix - Print the pairwise similarity of every API:
//
//	heatmap matrix --format yaml
//
// serve - Serve the same queries over HTTP:
//
//	heatmap serve --port 8080
//
// # Global Flags
//
//	--catalog, -c       Catalog file, URL, or cm://namespace/name (default: embedded)
//	--kubeconfig, -k    Kubeconfig for ConfigMap catalogs and outputs
//	--threshold         Exclusive similarity threshold (default: 0.8)
//	--name-weight       Name repetitions in fingerprints (default: 5)
//	--include-params    Add parameter names to fingerprints
//	--include-schema    Add response schema fields to fingerprints
//	--calls-weight      Impact weight of calls (default: 0.7)
//	--consumers-weight  Impact weight of consumers (default: 0.3)
//	--log-level         debug, info, warn, error
//
// Query commands also take --output/-o (file or cm://namespace/name,
// default stdout) and --format/-t (json, yaml, table; default json).
//
// # Environment Variables
//
//	CATALOG_SOURCE, KUBECONFIG, SIMILARITY_THRESHOLD, FINGERPRINT_NAME_WEIGHT,
//	FINGERPRINT_INCLUDE_PARAMS, FINGERPRINT_INCLUDE_SCHEMA, IMPACT_CALLS_WEIGHT,
//	IMPACT_CONSUMERS_WEIGHT, LOG_LEVEL, PORT
//
// Flags take precedence over environment variables.
//
// # Exit Codes
//
//	0  Success
//	1  Any other error (invalid arguments, unreadable catalog)
//	2  Unknown API identifier
package cli
