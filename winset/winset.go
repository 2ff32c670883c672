// Copyright 2021 Michael J. Fromberger. All Rights Reserved.
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

// Package winset implements an approximate membership set for 64-bit hash
// values, backed by a Bloom filter. It serves as a bounded-memory visited
// set for repeated-window scans over very long sequences: membership tests
// may report false positives, but never false negatives, so a scan using it
// can over-report repeats but never miss one it would otherwise find.
package winset

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// A Set holds an approximate set of 64-bit values. The zero value is not
// ready for use; construct sets with New. A Set satisfies the HashSet
// interface of the repeats package.
type Set struct {
	numValues int       // number of values added
	bits      bitVector // a multiple of 64 bits
	nbits     uint64    // the number of bits in the vector (≥ m)
	seeds     []uint64  // hash seeds (length = k)
}

// New constructs an empty set with capacity for the specified number of
// values. A nil opts value is ready for use and provides default values as
// described on Options. New will panic if numValues ≤ 0.
func New(numValues int, opts *Options) *Set {
	if numValues <= 0 {
		panic("winset: capacity must be positive")
	}
	p := opts.falsePositiveRate()

	// The optimal filter width for n elements at false-positive rate p is
	// m = -n*ln(p)/ln(2)^2 bits, and the optimal number of probes per value
	// for an m-bit filter holding n elements is k = m*ln(2)/n.
	m := math.Ceil(-float64(numValues) * math.Log(p) / (math.Ln2 * math.Ln2))
	k := math.Ceil((m * math.Ln2) / float64(numValues))

	s := &Set{
		bits:  newBitVector(int(m)),
		seeds: make([]uint64, int(k)),
	}
	s.nbits = 64 * uint64(len(s.bits))
	for i := range s.seeds {
		s.seeds[i] = rand.Uint64()
	}
	return s
}

// Add adds v to the set.
func (s *Set) Add(v uint64) {
	hash := hashValue(v)
	for _, seed := range s.seeds {
		pos := int((hash ^ seed) % s.nbits)
		s.bits.Set(pos)
	}
	s.numValues++
}

// Has reports whether v is one of the values added to the set. False
// positives are possible for values that were not added, but no false
// negatives.
func (s *Set) Has(v uint64) bool {
	hash := hashValue(v)
	for _, seed := range s.seeds {
		pos := int((hash ^ seed) % s.nbits)
		if !s.bits.IsSet(pos) {
			return false
		}
	}
	return true
}

// Stats returns size and capacity statistics for the set.
func (s *Set) Stats() Stats {
	return Stats{
		NumValues:  s.numValues,
		FilterBits: int(s.nbits),
		NumHashes:  len(s.seeds),
	}
}

// hashValue computes the base probe hash for v. The seeds perturb this one
// hash rather than rehashing v per probe.
func hashValue(v uint64) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}

// Options provide optional settings for a Set. A nil *Options is ready for
// use and provides default values as described.
type Options struct {
	// The maximum false positive rate to permit. A value ≤ 0 defaults to
	// 0.03. Decreasing this value increases the memory required for the set.
	FalsePositiveRate float64
}

func (o *Options) falsePositiveRate() float64 {
	if o == nil || o.FalsePositiveRate <= 0 {
		return 0.03
	}
	return o.FalsePositiveRate
}

// Stats record size and capacity statistics for a Set.
type Stats struct {
	NumValues  int // the number of values added to the set
	FilterBits int // the number of bits allocated to the Bloom filter (m)
	NumHashes  int // the number of hash seeds allocated (k)
}

type bitVector []uint64

func newBitVector(size int) bitVector  { return make(bitVector, (size+63)/64) }
func (b bitVector) IsSet(pos int) bool { return b[(pos>>6)%len(b)]&(uint64(1)<<(pos&0x3f)) != 0 }
func (b bitVector) Set(pos int)        { b[(pos>>6)%len(b)] |= uint64(1) << (pos & 0x3f) }
