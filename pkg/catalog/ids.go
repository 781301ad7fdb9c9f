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
	"cmp"
	"slices"
	"strconv"
)

// SortIDs sorts identifiers in place: numerically ascending when every
// identifier parses as an integer, lexicographically otherwise.
// Numeric ties such as "01" and "1" fall back to lexicographic order.
func SortIDs(ids []string) {
	nums := make(map[string]int64, len(ids))
	for _, id := range ids {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			slices.Sort(ids)
			return
		}
		nums[id] = n
	}

	slices.SortFunc(ids, func(a, b string) int {
		if c := cmp.Compare(nums[a], nums[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
}
