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

// Package serializer reads catalog documents and writes query results.
//
// # Reading
//
// FromSource decodes a value from a local file, an http(s) URL or a
// Kubernetes ConfigMap (cm://namespace/name). File and URL formats follow
// the extension (.json, .yaml, .yml); ConfigMaps carry a "format" key and
// store content under catalog.<format>.
//
//	doc, err := serializer.FromSource[catalog.Document](ctx, "cm://default/api-catalog")
//
// # Writing
//
// NewFileWriterOrStdout picks a destination from a path: stdout when empty,
// a ConfigMap for cm:// URIs, a file otherwise. Supported formats are json,
// yaml and table. Table output flattens nested values into FIELD/VALUE rows
// keyed by json tag names and is write-only.
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatTable, "")
//	defer func() {
//	    if c, ok := w.(serializer.Closer); ok {
//	        _ = c.Close()
//	    }
//	}()
//	err := w.Serialize(ctx, usage)
//
// RespondJSON is the buffered JSON response helper used by HTTP handlers.
package serializer
