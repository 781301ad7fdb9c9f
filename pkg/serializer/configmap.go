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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/NVIDIA/api-impact-heatmap/pkg/k8s/client"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
)

const (
	// ConfigMapReportKey is the base name of the data entry written by ConfigMapWriter.
	ConfigMapReportKey = "report"

	configMapFieldManager = "heatmap"
	configMapWriteTimeout = 30 * time.Second
)

// ConfigMapWriter writes serialized query results to a Kubernetes ConfigMap
// using server-side apply, creating it when missing.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	client    client.Interface
}

// NewConfigMapWriter creates a ConfigMapWriter for namespace/name. A nil
// client resolves the shared client on first Serialize.
func NewConfigMapWriter(namespace, name string, format Format, c client.Interface) *ConfigMapWriter {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    format,
		client:    c,
	}
}

// Serialize writes v under data.report.{json|yaml|txt} with format and
// timestamp entries alongside.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, configMapWriteTimeout)
	defer cancel()

	c := w.client
	if c == nil {
		var err error
		c, _, err = client.GetKubeClient()
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	var (
		content   []byte
		extension string
		err       error
	)
	switch w.format {
	case FormatJSON:
		content, err = serializeJSON(v)
		extension = "json"
	case FormatYAML:
		content, err = serializeYAML(v)
		extension = "yaml"
	case FormatTable:
		content, err = serializeTable(v)
		extension = "txt"
	default:
		return fmt.Errorf("unsupported format for ConfigMap: %s", w.format)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "api-impact-heatmap",
			"app.kubernetes.io/component": ConfigMapReportKey,
		}).
		WithData(map[string]string{
			ConfigMapReportKey + "." + extension: string(content),
			"format":                             string(w.format),
			"timestamp":                          time.Now().UTC().Format(time.RFC3339),
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	_, err = c.CoreV1().ConfigMaps(w.namespace).Apply(
		writeCtx,
		configMap,
		metav1.ApplyOptions{
			FieldManager: configMapFieldManager,
			Force:        true,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap: %w", err)
	}
	return nil
}

// Close is a no-op; it satisfies the Closer interface.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// parseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}

	return namespace, name, nil
}
