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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/NVIDIA/api-impact-heatmap/pkg/k8s/client"
	"gopkg.in/yaml.v3"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//
// Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader deserializes JSON or YAML from an io.Reader.
// Close must be called when the reader was created from a file.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader source.
// Table format is write-only and rejected.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader opens filePath and returns a Reader for it.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r, err := NewReader(format, file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

// Deserialize reads data from the input source and unmarshals it into v.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader. Safe to call more than once.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// SourceOption configures FromSource.
type SourceOption func(*sourceOptions)

type sourceOptions struct {
	kubeconfig string
	kubeClient client.Interface
	httpReader *HttpReader
}

// WithKubeconfig sets the kubeconfig used for cm:// sources.
func WithKubeconfig(path string) SourceOption {
	return func(o *sourceOptions) {
		o.kubeconfig = path
	}
}

// WithKubeClient supplies the Kubernetes client used for cm:// sources.
func WithKubeClient(c client.Interface) SourceOption {
	return func(o *sourceOptions) {
		o.kubeClient = c
	}
}

// WithHttpReader supplies the reader used for http(s):// sources.
func WithHttpReader(r *HttpReader) SourceOption {
	return func(o *sourceOptions) {
		o.httpReader = r
	}
}

// FromSource reads and deserializes data into T from one of:
//   - Local file paths: /path/to/catalog.yaml, ./catalog.json
//   - HTTP URLs: https://example.com/catalog.yaml
//   - ConfigMap URIs: cm://namespace/name
//
// File and URL formats are determined by extension. ConfigMaps carry their
// format in the "format" data key and default to YAML.
func FromSource[T any](ctx context.Context, source string, opts ...SourceOption) (*T, error) {
	o := &sourceOptions{}
	for _, opt := range opts {
		opt(o)
	}

	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return nil, fmt.Errorf("source is empty")
	case strings.HasPrefix(source, ConfigMapURIScheme):
		namespace, name, err := parseConfigMapURI(source)
		if err != nil {
			return nil, fmt.Errorf("invalid ConfigMap URI: %w", err)
		}
		c := o.kubeClient
		if c == nil {
			if o.kubeconfig != "" {
				c, _, err = client.GetKubeClientWithConfig(o.kubeconfig)
			} else {
				c, _, err = client.GetKubeClient()
			}
			if err != nil {
				return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
			}
		}
		return FromConfigMap[T](ctx, c, namespace, name)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		hr := o.httpReader
		if hr == nil {
			hr = NewHttpReader()
		}
		return fromURL[T](ctx, hr, source)
	default:
		return fromFile[T](source)
	}
}

func fromFile[T any](path string) (*T, error) {
	format := FormatFromPath(path)
	slog.Debug("determined file format", "path", path, "format", format)

	r, err := NewFileReader(format, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	var out T
	if err := r.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}
	return &out, nil
}

func fromURL[T any](ctx context.Context, hr *HttpReader, rawURL string) (*T, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	data, err := hr.ReadWithContext(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	r, err := NewReader(FormatFromPath(u.Path), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var out T
	if err := r.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", rawURL, err)
	}
	return &out, nil
}

// FromConfigMap reads and deserializes the catalog.<format> entry of a ConfigMap.
// When the format-specific key is missing it falls back to any known extension.
func FromConfigMap[T any](ctx context.Context, c client.Interface, namespace, name string) (*T, error) {
	cm, err := c.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	format := FormatYAML
	if f, ok := cm.Data["format"]; ok && !Format(f).IsUnknown() {
		format = Format(f)
	}

	content, ok := cm.Data[configMapKey(format)]
	if !ok {
		for _, f := range []Format{FormatYAML, FormatJSON} {
			if data, found := cm.Data[configMapKey(f)]; found {
				content, format, ok = data, f, true
				break
			}
		}
	}
	if !ok || content == "" {
		return nil, fmt.Errorf("ConfigMap %s/%s has no %s data", namespace, name, ConfigMapDataKey)
	}

	slog.Debug("reading from ConfigMap",
		"namespace", namespace,
		"name", name,
		"format", format,
		"size", len(content))

	r, err := NewReader(format, strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for ConfigMap data: %w", err)
	}

	var out T
	if err := r.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to deserialize ConfigMap data: %w", err)
	}
	return &out, nil
}

func configMapKey(f Format) string {
	return ConfigMapDataKey + "." + string(f)
}
