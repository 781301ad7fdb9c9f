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
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/NVIDIA/api-impact-heatmap/pkg/defaults"
	hmerrors "github.com/NVIDIA/api-impact-heatmap/pkg/errors"
	"github.com/NVIDIA/api-impact-heatmap/pkg/serializer"
	"github.com/NVIDIA/api-impact-heatmap/pkg/server"
)

// Route patterns served by Routes. Trailing slashes are stripped by the
// server, so /api/usage/ resolves to RouteUsage.
const (
	RouteFingerprint      = "/api/fingerprint/{apiId}"
	RouteUsage            = "/api/usage"
	RouteUsageAPI         = "/api/usage/{apiId}"
	RouteSimilarity       = "/api/similarity/{apiId}"
	RouteSimilarities     = "/api/similarity"
	RouteSimilarityMatrix = "/api/similarity/matrix"
)

const apiIDParam = "apiId"

var (
	// queryCacheTTL can be overridden for testing
	queryCacheTTL = defaults.QueryCacheTTL
)

// Routes returns the query handlers keyed by route pattern, for server.WithHandler.
func (s *Service) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RouteFingerprint:      withQueryTimeout(s.HandleFingerprint),
		RouteUsage:            withQueryTimeout(s.HandleUsage),
		RouteUsageAPI:         withQueryTimeout(s.HandleUsageFor),
		RouteSimilarity:       withQueryTimeout(s.HandleSimilar),
		RouteSimilarities:     withQueryTimeout(s.HandleGroups),
		RouteSimilarityMatrix: withQueryTimeout(s.HandleMatrix),
	}
}

// withQueryTimeout adds a request-scoped timeout to the handler context.
func withQueryTimeout(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), defaults.QueryHandlerTimeout)
		defer cancel()
		next(w, r.WithContext(ctx))
	}
}

// HandleFingerprint returns the metadata record of one API, or 404 when the
// identifier is unknown.
func (s *Service) HandleFingerprint(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	id := strings.TrimSpace(chi.URLParam(r, apiIDParam))
	rec, err := s.Metadata(id)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to look up API metadata", nil)
		return
	}

	respond(w, rec)
}

// HandleUsage returns the usage summary of every API with usage data.
func (s *Service) HandleUsage(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	respond(w, s.Usage())
}

// HandleUsageFor returns the usage summary of one API, or 404 when the
// catalog has no usage data for it.
func (s *Service) HandleUsageFor(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	id := strings.TrimSpace(chi.URLParam(r, apiIDParam))
	summary, err := s.UsageFor(id)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to look up API usage", nil)
		return
	}

	respond(w, summary)
}

// HandleSimilar returns the APIs similar to one API. Unknown identifiers
// yield an empty list, not an error.
func (s *Service) HandleSimilar(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	id := strings.TrimSpace(chi.URLParam(r, apiIDParam))
	respond(w, s.Similar(id))
}

// HandleGroups returns every API that has at least one similar API.
func (s *Service) HandleGroups(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	respond(w, s.Groups())
}

// HandleMatrix returns the full pairwise similarity matrix. The static
// route takes precedence over RouteSimilarity, so an API whose identifier
// is "matrix" cannot be queried through /api/similarity/{apiId}.
func (s *Service) HandleMatrix(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	respond(w, s.Matrix())
}

// allowGet writes a 405 for anything but GET and HEAD and reports whether
// the request may proceed.
func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, hmerrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{http.MethodGet},
		})
	return false
}

func respond(w http.ResponseWriter, data any) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(queryCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, data)
}
