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

// Package repeats finds the distinct fixed-length windows that occur more
// than once in a sequence, using a rolling polynomial hash so that each
// window after the first costs O(1) to examine.
//
// A window is recorded as repeated when its hash collides with the hash of
// an earlier window. Distinct windows that happen to collide under the
// modulus are therefore reported as repeats unless verification is enabled;
// see Options.
package repeats

import (
	"errors"
	"fmt"

	"github.com/creachadair/mds/mapset"

	"github.com/seqtool/seqscan/alphabet"
	"github.com/seqtool/seqscan/polyhash"
)

// An Event describes a single window examined during a scan, as delivered to
// the Trace callback.
type Event struct {
	Pos      int    // starting offset of the window in the sequence
	Window   string // the literal window contents
	Hash     uint64 // the polynomial hash of the window
	Repeated bool   // whether the window was recorded as repeated
}

// A HashSet tracks which hash values a scan has already visited. The default
// is an exact in-memory set. An approximate implementation such as
// [winset.Set] may be substituted to bound memory on very long sequences, at
// the cost of additional false "repeated" reports.
//
// [winset.Set]: https://godoc.org/github.com/seqtool/seqscan/winset
type HashSet interface {
	// Add records v as visited.
	Add(v uint64)

	// Has reports whether v has been recorded as visited.
	Has(v uint64) bool
}

// Options provide optional settings for a scan. A nil *Options is ready for
// use and provides default values as described.
type Options struct {
	// The hash modulus. If 0, polyhash.DefaultModulus is used.
	Modulus uint64

	// If true, a hash hit is confirmed by comparing the window against the
	// first window seen with the same hash, and discarded on mismatch. Every
	// window reported under Verify literally occurs at least twice in the
	// sequence. Verify requires the default exact visited set and cannot be
	// combined with Visited.
	Verify bool

	// The visited-hash set to use. If nil, an exact set is used.
	Visited HashSet

	// If non-nil, Trace is called once per window in scan order, after the
	// repeat decision for that window has been made.
	Trace func(Event)
}

func (o *Options) modulus() uint64 {
	if o == nil {
		return 0
	}
	return o.Modulus
}

func (o *Options) verify() bool { return o != nil && o.Verify }

func (o *Options) visited() HashSet {
	if o == nil {
		return nil
	}
	return o.Visited
}

func (o *Options) trace(e Event) {
	if o != nil && o.Trace != nil {
		o.Trace(e)
	}
}

// Find returns the distinct windows of length k that occur at two or more
// positions of seq, as judged by their polynomial hashes over ab. The result
// holds literal window contents, unordered and deduplicated; callers that
// need positions or multiplicities should use the Trace hook instead.
//
// Find reports an error wrapping polyhash.ErrWindowLen if k <= 0 or
// k > len(seq), and an error wrapping alphabet.ErrUnknownSymbol if seq
// contains a symbol outside ab. The visited and repeated sets are local to
// each call, so concurrent calls over shared inputs are safe provided the
// options do not share a Visited set.
func Find(seq string, k int, ab *alphabet.Alphabet, opts *Options) (mapset.Set[string], error) {
	n := len(seq)
	if k <= 0 || k > n {
		return nil, fmt.Errorf("window length %d for sequence length %d: %w",
			k, n, polyhash.ErrWindowLen)
	}
	visited := opts.visited()
	if opts.verify() && visited != nil {
		return nil, errors.New("verification requires the exact visited set")
	}

	// Resolve the rank of every symbol up front so the rolling loop does no
	// lookups and unknown symbols fail before any windows are reported.
	ranks, err := ab.Ranks(seq)
	if err != nil {
		return nil, err
	}
	h, err := polyhash.New(ab, k, opts.modulus())
	if err != nil {
		return nil, err
	}

	// In exact mode, track the first position seen for each hash so that
	// Verify can compare literal windows.
	var first map[uint64]int
	if visited == nil {
		first = make(map[uint64]int)
	}

	var repeated mapset.Set[string]
	var hash uint64
	for i := 0; i+k <= n; i++ {
		if i == 0 {
			hash, err = h.Sum(seq[:k]) // stationary hash of the first window
			if err != nil {
				return nil, err
			}
		} else {
			hash = h.Roll(hash, ranks[i-1], ranks[i+k-1])
		}

		win := seq[i : i+k]
		isRepeat := false
		if first != nil {
			if p, ok := first[hash]; ok {
				if !opts.verify() || seq[p:p+k] == win {
					repeated.Add(win)
					isRepeat = true
				}
			} else {
				first[hash] = i
			}
		} else if visited.Has(hash) {
			repeated.Add(win)
			isRepeat = true
		} else {
			visited.Add(hash)
		}
		opts.trace(Event{Pos: i, Window: win, Hash: hash, Repeated: isRepeat})
	}
	return repeated, nil
}
