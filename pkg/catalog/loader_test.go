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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	hmerrors "github.com/NVIDIA/api-impact-heatmap/pkg/errors"
	"github.com/NVIDIA/api-impact-heatmap/pkg/serializer"
)

const smallCatalog = `apis:
  - apiId: "1"
    apiName: getProfile
    owningService: ProfileService
usage:
  - apiId: "1"
    calls: 10
    consumers: 7
`

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 30, s.Len())

	ids := s.APIIDs()
	assert.Equal(t, "1", ids[0])
	assert.Equal(t, "30", ids[len(ids)-1])

	rec, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "getProfile", rec.Name)
	assert.Equal(t, "ProfileService", rec.OwningService)

	u, ok := s.Usage("1")
	require.True(t, ok)
	assert.Equal(t, int64(10), u.Calls)
	assert.Equal(t, int64(7), u.Consumers)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, s, again)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("empty source uses embedded catalog", func(t *testing.T) {
		s, err := Load(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 30, s.Len())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0o600))

		s, err := Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("configmap", func(t *testing.T) {
		c := fake.NewClientset(&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "api-catalog", Namespace: "platform"},
			Data:       map[string]string{"catalog.yaml": smallCatalog},
		})
		s, err := Load(ctx, "cm://platform/api-catalog", serializer.WithKubeClient(c))
		require.NoError(t, err)
		u, ok := s.Usage("1")
		require.True(t, ok)
		assert.Equal(t, int64(10), u.Calls)
	})

	t.Run("unreadable source", func(t *testing.T) {
		_, err := Load(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Equal(t, hmerrors.ErrCodeUnavailable, hmerrors.CodeOf(err))
	})

	t.Run("invalid document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dup.yaml")
		require.NoError(t, os.WriteFile(path, []byte("apis:\n  - apiId: \"1\"\n  - apiId: \"1\"\n"), 0o600))
		_, err := Load(ctx, path)
		require.Error(t, err)
		assert.Equal(t, hmerrors.ErrCodeInvalidRequest, hmerrors.CodeOf(err))
	})
}

func TestSourceKind(t *testing.T) {
	assert.Equal(t, "embedded", sourceKind(DefaultSource))
	assert.Equal(t, "configmap", sourceKind("cm://a/b"))
	assert.Equal(t, "url", sourceKind("https://example.com/c.yaml"))
	assert.Equal(t, "file", sourceKind("./c.json"))
}
