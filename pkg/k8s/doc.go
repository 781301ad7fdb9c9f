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

// Package k8s groups the Kubernetes integration of the heatmap.
//
// The client sub-package resolves and caches clientsets per kubeconfig:
//
//	clientset, _, err := client.GetKubeClient()
//	if err != nil {
//	    return err
//	}
//
// Clients are used to read catalogs from ConfigMaps (cm://namespace/name)
// and to write query results back to ConfigMaps with server-side apply.
// In-cluster configuration is used when no kubeconfig is found.
package k8s
