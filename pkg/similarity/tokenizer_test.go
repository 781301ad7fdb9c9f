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

package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizer_Tokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "fingerprint",
			in:   "getProfile getProfile ProfileService /path1 POST tagA",
			want: []string{"getprofile", "getprofile", "profileservice", "path1", "post", "taga"},
		},
		{name: "single characters dropped", in: "a b cd e", want: []string{"cd"}},
		{name: "punctuation separates", in: "users.get/v2-beta", want: []string{"users", "get", "v2", "beta"}},
		{name: "underscore is a word rune", in: "list_all __", want: []string{"list_all", "__"}},
		{name: "unicode letters", in: "Über Straße", want: []string{"über", "straße"}},
		{name: "digits", in: "404 7", want: []string{"404"}},
		{name: "empty", in: "", want: nil},
		{name: "separators only", in: " /-. ", want: nil},
	}

	tok := NewTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Tokens(tt.in))
		})
	}
}
