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
	"math"

	"github.com/NVIDIA/api-impact-heatmap/pkg/defaults"
)

// APIRecord is the descriptive metadata of a single API.
// Absent optional fields decode to their zero values and are treated as empty.
type APIRecord struct {
	ID             string            `json:"apiId" yaml:"apiId"`
	Name           string            `json:"apiName" yaml:"apiName"`
	OwningService  string            `json:"owningService" yaml:"owningService"`
	Path           string            `json:"path" yaml:"path"`
	Method         string            `json:"method" yaml:"method"`
	Params         []string          `json:"params" yaml:"params"`
	ResponseSchema map[string]string `json:"responseSchema" yaml:"responseSchema"`
	Tags           []string          `json:"tags" yaml:"tags"`
}

// UsageRecord holds call volume for one API identifier. Name and owning
// service are optional and only used when the identifier has no APIRecord.
type UsageRecord struct {
	ID            string `json:"apiId" yaml:"apiId"`
	Name          string `json:"apiName,omitempty" yaml:"apiName,omitempty"`
	OwningService string `json:"owningService,omitempty" yaml:"owningService,omitempty"`
	Calls         int64  `json:"calls" yaml:"calls"`
	Consumers     int64  `json:"consumers" yaml:"consumers"`
}

// Document is the serialized form of a catalog as read from a file, URL,
// or ConfigMap.
type Document struct {
	APIs  []APIRecord   `json:"apis" yaml:"apis"`
	Usage []UsageRecord `json:"usage" yaml:"usage"`
}

// ImpactWeights weights call volume and consumer count into an impact score.
type ImpactWeights struct {
	Calls     float64
	Consumers float64
}

// DefaultImpactWeights returns the default 0.7/0.3 weighting.
func DefaultImpactWeights() ImpactWeights {
	return ImpactWeights{
		Calls:     defaults.ImpactCallsWeight,
		Consumers: defaults.ImpactConsumersWeight,
	}
}

// ImpactScore returns calls*w.Calls + consumers*w.Consumers rounded to
// two decimals.
func (u UsageRecord) ImpactScore(w ImpactWeights) float64 {
	raw := float64(u.Calls)*w.Calls + float64(u.Consumers)*w.Consumers
	return Round(raw, defaults.ImpactPrecision)
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
