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

package fingerprint

import (
	"sort"
	"strings"

	"github.com/NVIDIA/api-impact-heatmap/pkg/catalog"
	"github.com/NVIDIA/api-impact-heatmap/pkg/defaults"
)

// Option configures a Builder.
type Option func(*Builder)

// WithNameWeight sets how many times the API name is repeated.
// Values below 1 are treated as 1.
func WithNameWeight(n int) Option {
	return func(b *Builder) {
		b.nameWeight = n
	}
}

// WithParams appends parameter names after the tags.
func WithParams(enabled bool) Option {
	return func(b *Builder) {
		b.includeParams = enabled
	}
}

// WithResponseSchema appends response schema field names, sorted, at the end.
func WithResponseSchema(enabled bool) Option {
	return func(b *Builder) {
		b.includeSchema = enabled
	}
}

// Builder renders API records into weighted text fingerprints.
// A Builder is immutable after New and safe for concurrent use.
type Builder struct {
	nameWeight    int
	includeParams bool
	includeSchema bool
}

// New returns a Builder with the default name weight and no optional fields.
func New(opts ...Option) *Builder {
	b := &Builder{nameWeight: defaults.FingerprintNameWeight}
	for _, opt := range opts {
		opt(b)
	}
	if b.nameWeight < 1 {
		b.nameWeight = 1
	}
	return b
}

// NameWeight returns the effective name repetition count.
func (b *Builder) NameWeight() int {
	return b.nameWeight
}

// Build returns the fingerprint of rec: the name repeated NameWeight times,
// then owning service, path, method and tags, single-space separated.
// Empty fields are skipped.
func (b *Builder) Build(rec catalog.APIRecord) string {
	parts := make([]string, 0, b.nameWeight+4+len(rec.Tags)+len(rec.Params)+len(rec.ResponseSchema))

	if name := strings.Join(strings.Fields(rec.Name), " "); name != "" {
		for i := 0; i < b.nameWeight; i++ {
			parts = append(parts, name)
		}
	}
	parts = appendFields(parts, rec.OwningService, rec.Path, rec.Method)
	parts = appendFields(parts, rec.Tags...)

	if b.includeParams {
		parts = appendFields(parts, rec.Params...)
	}
	if b.includeSchema && len(rec.ResponseSchema) > 0 {
		fields := make([]string, 0, len(rec.ResponseSchema))
		for k := range rec.ResponseSchema {
			fields = append(fields, k)
		}
		sort.Strings(fields)
		parts = appendFields(parts, fields...)
	}

	return strings.Join(parts, " ")
}

// BuildAll fingerprints every record in the order given.
func (b *Builder) BuildAll(recs []catalog.APIRecord) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = b.Build(rec)
	}
	return out
}

// appendFields appends each non-blank value, collapsing inner whitespace so
// the joined result never contains doubled spaces.
func appendFields(parts []string, values ...string) []string {
	for _, v := range values {
		if f := strings.Fields(v); len(f) > 0 {
			parts = append(parts, strings.Join(f, " "))
		}
	}
	return parts
}
