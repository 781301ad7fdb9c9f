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

package catalog

import (
	"fmt"
	"strings"

	hmerrors "github.com/NVIDIA/api-impact-heatmap/pkg/errors"
)

// Store holds API metadata and usage records keyed by identifier.
// It is read-only after NewStore returns and safe for concurrent use.
type Store struct {
	apis     map[string]APIRecord
	apiIDs   []string
	usage    map[string]UsageRecord
	usageIDs []string
}

// NewStore validates doc and indexes its records.
// Records are copied; later changes to doc do not affect the store.
func NewStore(doc *Document) (*Store, error) {
	if doc == nil {
		return nil, hmerrors.New(hmerrors.ErrCodeInvalidRequest, "catalog document is nil")
	}

	s := &Store{
		apis:  make(map[string]APIRecord, len(doc.APIs)),
		usage: make(map[string]UsageRecord, len(doc.Usage)),
	}

	for i, rec := range doc.APIs {
		rec.ID = strings.TrimSpace(rec.ID)
		if rec.ID == "" {
			return nil, hmerrors.NewWithContext(hmerrors.ErrCodeInvalidRequest,
				"API record has empty identifier", map[string]any{"index": i})
		}
		if _, dup := s.apis[rec.ID]; dup {
			return nil, hmerrors.NewWithContext(hmerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate API identifier %q", rec.ID), map[string]any{"index": i})
		}
		s.apis[rec.ID] = normalizeAPI(rec)
		s.apiIDs = append(s.apiIDs, rec.ID)
	}

	for i, u := range doc.Usage {
		u.ID = strings.TrimSpace(u.ID)
		if u.ID == "" {
			return nil, hmerrors.NewWithContext(hmerrors.ErrCodeInvalidRequest,
				"usage record has empty identifier", map[string]any{"index": i})
		}
		if _, dup := s.usage[u.ID]; dup {
			return nil, hmerrors.NewWithContext(hmerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate usage identifier %q", u.ID), map[string]any{"index": i})
		}
		if u.Calls < 0 || u.Consumers < 0 {
			return nil, hmerrors.NewWithContext(hmerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("usage record %q has negative counts", u.ID),
				map[string]any{"calls": u.Calls, "consumers": u.Consumers})
		}
		s.usage[u.ID] = u
		s.usageIDs = append(s.usageIDs, u.ID)
	}

	SortIDs(s.apiIDs)
	SortIDs(s.usageIDs)

	return s, nil
}

// normalizeAPI replaces nil collections with empty ones and copies them so
// the store never shares backing arrays with the caller.
func normalizeAPI(rec APIRecord) APIRecord {
	params := make([]string, len(rec.Params))
	copy(params, rec.Params)
	rec.Params = params

	tags := make([]string, len(rec.Tags))
	copy(tags, rec.Tags)
	rec.Tags = tags

	schema := make(map[string]string, len(rec.ResponseSchema))
	for k, v := range rec.ResponseSchema {
		schema[k] = v
	}
	rec.ResponseSchema = schema

	return rec
}

// Get returns the API record for id or a NOT_FOUND structured error.
func (s *Store) Get(id string) (*APIRecord, error) {
	rec, ok := s.Lookup(id)
	if !ok {
		return nil, hmerrors.NewWithContext(hmerrors.ErrCodeNotFound,
			fmt.Sprintf("API with ID '%s' not found.", id), map[string]any{"apiId": id})
	}
	return &rec, nil
}

// Lookup returns a copy of the API record for id.
func (s *Store) Lookup(id string) (APIRecord, bool) {
	rec, ok := s.apis[id]
	if !ok {
		return APIRecord{}, false
	}
	return normalizeAPI(rec), true
}

// Usage returns the usage record for id.
func (s *Store) Usage(id string) (UsageRecord, bool) {
	u, ok := s.usage[id]
	return u, ok
}

// APIIDs returns API identifiers in catalog order.
func (s *Store) APIIDs() []string {
	out := make([]string, len(s.apiIDs))
	copy(out, s.apiIDs)
	return out
}

// APIs returns copies of all API records in catalog order.
func (s *Store) APIs() []APIRecord {
	out := make([]APIRecord, 0, len(s.apiIDs))
	for _, id := range s.apiIDs {
		out = append(out, normalizeAPI(s.apis[id]))
	}
	return out
}

// UsageRecords returns all usage records in catalog order.
func (s *Store) UsageRecords() []UsageRecord {
	out := make([]UsageRecord, 0, len(s.usageIDs))
	for _, id := range s.usageIDs {
		out = append(out, s.usage[id])
	}
	return out
}

// Len returns the number of API records.
func (s *Store) Len() int {
	return len(s.apiIDs)
}
