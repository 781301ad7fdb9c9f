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

// Package fingerprint renders API metadata into the weighted text documents
// the similarity index is built from.
//
// The canonical fingerprint is the API name repeated five times followed by
// owning service, path, method and tags:
//
//	getProfile getProfile getProfile getProfile getProfile ProfileService /path1 POST tagA tagB
//
// Parameter names and response schema fields can be appended with
// WithParams and WithResponseSchema.
package fingerprint
