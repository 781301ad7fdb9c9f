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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hmerrors "github.com/NVIDIA/api-impact-heatmap/pkg/errors"
)

func testDocument() *Document {
	return &Document{
		APIs: []APIRecord{
			{ID: "10", Name: "listOrders", OwningService: "OrderService", Tags: []string{"orders"}},
			{ID: "2", Name: "getUser", OwningService: "UserService", ResponseSchema: map[string]string{"id": "string"}},
			{ID: "1", Name: "createUser"},
		},
		Usage: []UsageRecord{
			{ID: "2", Calls: 5, Consumers: 1},
			{ID: "99", Name: "legacyExport", OwningService: "ExportService", Calls: 1},
		},
	}
}

func TestNewStore(t *testing.T) {
	s, err := NewStore(testDocument())
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"1", "2", "10"}, s.APIIDs())

	usage := s.UsageRecords()
	require.Len(t, usage, 2)
	assert.Equal(t, "2", usage[0].ID)
	assert.Equal(t, "99", usage[1].ID)
}

func TestNewStore_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
	}{
		{name: "nil document", doc: nil},
		{name: "empty api id", doc: &Document{APIs: []APIRecord{{ID: " "}}}},
		{name: "duplicate api id", doc: &Document{APIs: []APIRecord{{ID: "1"}, {ID: "1"}}}},
		{name: "empty usage id", doc: &Document{Usage: []UsageRecord{{ID: ""}}}},
		{name: "duplicate usage id", doc: &Document{Usage: []UsageRecord{{ID: "1"}, {ID: "1"}}}},
		{name: "negative calls", doc: &Document{Usage: []UsageRecord{{ID: "1", Calls: -1}}}},
		{name: "negative consumers", doc: &Document{Usage: []UsageRecord{{ID: "1", Consumers: -3}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(tt.doc)
			require.Error(t, err)
			assert.Equal(t, hmerrors.ErrCodeInvalidRequest, hmerrors.CodeOf(err))
		})
	}
}

func TestStore_Get(t *testing.T) {
	s, err := NewStore(testDocument())
	require.NoError(t, err)

	rec, err := s.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "getUser", rec.Name)
	assert.NotNil(t, rec.Params, "absent lists decode to empty")
	assert.NotNil(t, rec.Tags)
	assert.Equal(t, "string", rec.ResponseSchema["id"])

	_, err = s.Get("404")
	require.Error(t, err)
	assert.True(t, hmerrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "API with ID '404' not found")
}

func TestStore_IsolatedFromCaller(t *testing.T) {
	doc := testDocument()
	s, err := NewStore(doc)
	require.NoError(t, err)

	doc.APIs[0].Tags[0] = "mutated"
	rec, ok := s.Lookup("10")
	require.True(t, ok)
	assert.Equal(t, "orders", rec.Tags[0])

	rec.Tags[0] = "mutated-again"
	again, _ := s.Lookup("10")
	assert.Equal(t, "orders", again.Tags[0])
}

func TestStore_Usage(t *testing.T) {
	s, err := NewStore(testDocument())
	require.NoError(t, err)

	u, ok := s.Usage("99")
	require.True(t, ok)
	assert.Equal(t, "legacyExport", u.Name)

	_, ok = s.Usage("1")
	assert.False(t, ok)
}
