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

package client

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// Interface is an alias for kubernetes.Interface so callers can inject
// fake.NewClientset() in tests.
type Interface = kubernetes.Interface

type cachedClient struct {
	client Interface
	config *rest.Config
	err    error
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*cachedClient{}
)

// GetKubeClient returns the shared client for the auto-discovered kubeconfig,
// building it on first use. Failures are cached too, so a missing cluster is
// reported consistently without repeated discovery.
func GetKubeClient() (Interface, *rest.Config, error) {
	return GetKubeClientWithConfig("")
}

// GetKubeClientWithConfig returns the shared client for kubeconfig. An empty
// path uses the same discovery as BuildKubeClient.
func GetKubeClientWithConfig(kubeconfig string) (Interface, *rest.Config, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if c, ok := cache[kubeconfig]; ok {
		return c.client, c.config, c.err
	}

	entry := &cachedClient{}
	clientset, config, err := BuildKubeClient(kubeconfig)
	if err != nil {
		entry.err = err
	} else {
		entry.client, entry.config = clientset, config
	}
	cache[kubeconfig] = entry
	return entry.client, entry.config, entry.err
}

// BuildKubeClient creates a new, uncached client. When kubeconfig is empty
// the path is resolved from KUBECONFIG, then ~/.kube/config, then the
// in-cluster service account.
func BuildKubeClient(kubeconfig string) (*kubernetes.Clientset, *rest.Config, error) {
	config, err := restConfig(resolveKubeconfig(kubeconfig))
	if err != nil {
		return nil, nil, err
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return clientset, config, nil
}

func resolveKubeconfig(kubeconfig string) string {
	if kubeconfig != "" {
		return kubeconfig
	}
	if env := os.Getenv("KUBECONFIG"); env != "" {
		return env
	}
	home := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(home); err == nil {
		return home
	}
	return ""
}

func restConfig(kubeconfig string) (*rest.Config, error) {
	// InClusterConfig directly avoids clientcmd's "Neither --kubeconfig nor --master" warning.
	if kubeconfig == "" {
		config, err := rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
		return config, nil
	}

	config, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build kube config from %s: %w", kubeconfig, err)
	}
	return config, nil
}
