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

// Package client provides shared Kubernetes clients used to read catalogs
// from ConfigMaps and to publish query results back to the cluster.
//
// Clients are cached per kubeconfig path:
//
//	c, _, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	cm, err := c.CoreV1().ConfigMaps("default").Get(ctx, "catalog", metav1.GetOptions{})
//
// Discovery order when no path is given:
//   - KUBECONFIG environment variable
//   - ~/.kube/config
//   - in-cluster service account
//
// BuildKubeClient bypasses the cache. Tests inject fake.NewClientset()
// wherever an Interface is accepted.
package client
