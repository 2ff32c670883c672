// Copyright 2026 The seqscan Authors. All Rights Reserved.
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

// Package kmp implements Knuth-Morris-Pratt substring search: construction
// of the failure (LPS) table for a pattern, and first-occurrence search of a
// pattern in a text using that table to skip redundant comparisons.
package kmp

// Table computes the failure table for pattern. Entry i records the length
// of the longest proper prefix of pattern[:i+1] that is also a suffix of it,
// so Table(p)[0] == 0 and 0 <= Table(p)[i] <= i. The table for an empty
// pattern is empty.
//
// Each fallback strictly shortens the candidate prefix, so construction runs
// in O(n) time and space for a pattern of length n.
func Table(pattern string) []int {
	lps := make([]int, len(pattern))

	// prev is the length of the best prefix-suffix match ending at the
	// position before curr.
	prev := 0
	for curr := 1; curr < len(pattern); {
		if pattern[prev] == pattern[curr] {
			prev++
			lps[curr] = prev
			curr++
		} else if prev == 0 {
			lps[curr] = 0
			curr++
		} else {
			// Fall back to the next-longest prefix-suffix candidate and retry
			// the comparison at the same position.
			prev = lps[prev-1]
		}
	}
	return lps
}

// Find returns the index of the first occurrence of pattern in text, and
// whether one was found. When the pattern does not occur, Find returns -1,
// false. An empty text or an empty pattern is reported as not found.
//
// Find runs in O(n+m) time for a text of length n and a pattern of length m,
// using O(m) space for the failure table.
func Find(text, pattern string) (int, bool) {
	if text == "" || pattern == "" {
		return -1, false
	}
	lps := Table(pattern)

	i, j := 0, 0 // cursors in text, pattern
	for i < len(text) {
		if text[i] == pattern[j] {
			i++
			j++
		} else if j == 0 {
			i++ // no useful prefix to fall back to
		} else {
			j = lps[j-1] // resume from the next candidate alignment
		}
		if j == len(pattern) {
			return i - len(pattern), true
		}
	}
	return -1, false
}
