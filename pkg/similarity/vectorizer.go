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
	"math"
	"sort"
)

// vector is a sparse, L2-normalized TF-IDF vector with ascending term indices.
type vector struct {
	terms   []int
	weights []float64
}

func (v vector) isZero() bool {
	return len(v.terms) == 0
}

func (v vector) equal(o vector) bool {
	if len(v.terms) != len(o.terms) {
		return false
	}
	for i := range v.terms {
		if v.terms[i] != o.terms[i] || v.weights[i] != o.weights[i] {
			return false
		}
	}
	return true
}

// dot returns the inner product of two sparse vectors.
func dot(a, b vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.terms) && j < len(b.terms) {
		switch {
		case a.terms[i] == b.terms[j]:
			sum += a.weights[i] * b.weights[j]
			i++
			j++
		case a.terms[i] < b.terms[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// vectorize builds TF-IDF vectors for the tokenized corpus.
//
// Term frequency is the raw count. IDF is smoothed as ln((1+n)/(1+df))+1 so
// terms present in every document keep a non-zero weight. Vectors are
// L2-normalized; a document with no tokens yields the zero vector.
// Returns the vectors and the vocabulary size.
func vectorize(corpus [][]string) ([]vector, int) {
	vocab := buildVocabulary(corpus)

	df := make([]int, len(vocab))
	counts := make([]map[int]int, len(corpus))
	for d, tokens := range corpus {
		tf := make(map[int]int, len(tokens))
		for _, tok := range tokens {
			tf[vocab[tok]]++
		}
		for term := range tf {
			df[term]++
		}
		counts[d] = tf
	}

	n := float64(len(corpus))
	idf := make([]float64, len(vocab))
	for term, freq := range df {
		idf[term] = math.Log((1+n)/(1+float64(freq))) + 1
	}

	vectors := make([]vector, len(corpus))
	for d, tf := range counts {
		vectors[d] = weigh(tf, idf)
	}
	return vectors, len(vocab)
}

// buildVocabulary assigns term indices in lexical order so vectors are
// reproducible across runs.
func buildVocabulary(corpus [][]string) map[string]int {
	seen := make(map[string]struct{})
	for _, tokens := range corpus {
		for _, tok := range tokens {
			seen[tok] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for tok := range seen {
		terms = append(terms, tok)
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	for i, tok := range terms {
		vocab[tok] = i
	}
	return vocab
}

func weigh(tf map[int]int, idf []float64) vector {
	if len(tf) == 0 {
		return vector{}
	}

	v := vector{
		terms:   make([]int, 0, len(tf)),
		weights: make([]float64, 0, len(tf)),
	}
	for term := range tf {
		v.terms = append(v.terms, term)
	}
	sort.Ints(v.terms)

	var norm float64
	for _, term := range v.terms {
		w := float64(tf[term]) * idf[term]
		v.weights = append(v.weights, w)
		norm += w * w
	}

	norm = math.Sqrt(norm)
	for i := range v.weights {
		v.weights[i] /= norm
	}
	return v
}
