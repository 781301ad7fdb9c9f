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
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minTokenRunes is the shortest token kept; single characters are dropped.
const minTokenRunes = 2

// Tokenizer lower-cases text and splits it into word tokens: maximal runs of
// letters, digits and underscores at least two runes long.
//
// A Tokenizer wraps a cases.Caser and must not be shared between goroutines.
type Tokenizer struct {
	lower cases.Caser
}

// NewTokenizer returns a Tokenizer using Unicode default case folding rules.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{lower: cases.Lower(language.Und)}
}

// Tokens returns the tokens of text in order of appearance, duplicates kept.
func (t *Tokenizer) Tokens(text string) []string {
	lowered := t.lower.String(text)

	var tokens []string
	start, runes := -1, 0
	flush := func(end int) {
		if start >= 0 && runes >= minTokenRunes {
			tokens = append(tokens, lowered[start:end])
		}
		start, runes = -1, 0
	}

	for i, r := range lowered {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(lowered))
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
