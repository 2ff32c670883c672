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

// Package polyhash implements the positional polynomial hash used by
// Rabin-Karp style window scans: the rank of each symbol in a window is
// weighted by a power of the alphabet size determined by its position, and
// the weighted terms are summed modulo a prime.
//
// Hash values are fully reduced: both the one-shot Sum and the Roll update
// reduce modulo the modulus at every step, so a hash maintained by rolling
// always agrees with the one-shot hash of the same window.
package polyhash

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/seqtool/seqscan/alphabet"
)

// DefaultModulus is the modulus used when a modulus of 0 is requested.
// It is prime, and small enough that modular products over any byte alphabet
// fit comfortably in 64 bits.
const DefaultModulus = 1000000007

// MaxModulus is the largest modulus Sum and New accept. The bound keeps every
// product of a residue with an alphabet rank inside 64 bits.
const MaxModulus = 1<<55 - 1

// ErrWindowLen is reported when a requested window length is not positive or
// does not fit the sequence being hashed.
var ErrWindowLen = errors.New("invalid window length")

// ErrModulus is reported when a requested modulus exceeds MaxModulus.
var ErrModulus = errors.New("modulus out of range")

// Sum computes the polynomial hash of window over the given alphabet:
//
//	h = Σ rank(window[j]) * a^(k-j-1)  (mod modulus)
//
// where k = len(window), a = ab.Len(), and ranks are 1-based. An empty
// window hashes to 0. A modulus of 0 selects DefaultModulus; a modulus above
// MaxModulus reports an error wrapping ErrModulus. Sum reports an error
// wrapping alphabet.ErrUnknownSymbol if any symbol of window is not in the
// alphabet.
func Sum(window string, ab *alphabet.Alphabet, modulus uint64) (uint64, error) {
	mod := pickModulus(modulus)
	if mod > MaxModulus {
		return 0, fmt.Errorf("modulus %d: %w", mod, ErrModulus)
	}
	base := uint64(ab.Len())

	var h uint64
	for i := 0; i < len(window); i++ {
		r, err := ab.Rank(window[i])
		if err != nil {
			return 0, err
		}
		h = (h*base + uint64(r)) % mod
	}
	return h, nil
}

// A Hasher hashes fixed-length windows over an alphabet, and supports O(1)
// rolling updates as a window slides one position along a sequence.
//
// A Hasher is immutable after construction and is safe for concurrent use by
// multiple goroutines.
type Hasher struct {
	ab   *alphabet.Alphabet
	k    int    // window length
	mod  uint64 // modulus, should be prime
	base uint64 // alphabet size
	lead uint64 // base^(k-1) mod mod, the weight of the outgoing symbol
}

// New constructs a Hasher for windows of length k over the alphabet ab. A
// modulus of 0 selects DefaultModulus; the modulus should be prime, though
// the constructor does not check primality. New reports an error wrapping
// ErrWindowLen if k <= 0, or wrapping ErrModulus if the modulus exceeds
// MaxModulus.
func New(ab *alphabet.Alphabet, k int, modulus uint64) (*Hasher, error) {
	if k <= 0 {
		return nil, fmt.Errorf("window length %d: %w", k, ErrWindowLen)
	}
	mod := pickModulus(modulus)
	if mod > MaxModulus {
		return nil, fmt.Errorf("modulus %d: %w", mod, ErrModulus)
	}
	base := uint64(ab.Len())
	return &Hasher{
		ab:   ab,
		k:    k,
		mod:  mod,
		base: base,
		lead: exptmod(base, uint64(k-1), mod),
	}, nil
}

// WindowLen returns the window length the Hasher was constructed with.
func (h *Hasher) WindowLen() int { return h.k }

// Modulus returns the modulus the Hasher reduces by.
func (h *Hasher) Modulus() uint64 { return h.mod }

// Sum computes the hash of window, which must have length WindowLen.
func (h *Hasher) Sum(window string) (uint64, error) {
	if len(window) != h.k {
		return 0, fmt.Errorf("window length %d, want %d: %w", len(window), h.k, ErrWindowLen)
	}
	return Sum(window, h.ab, h.mod)
}

// Roll returns the hash of the window starting one position later, given the
// hash prev of the current window, the rank of the symbol leaving the window
// at the front, and the rank of the symbol entering it at the back. Ranks
// are 1-based per the alphabet.
func (h *Hasher) Roll(prev uint64, out, in int) uint64 {
	// Remove the outgoing symbol's weighted term, shift the remaining terms
	// up one power, and append the incoming symbol's term.
	d := (prev + h.mod - uint64(out)*h.lead%h.mod) % h.mod
	return (d*h.base + uint64(in)) % h.mod
}

func pickModulus(m uint64) uint64 {
	if m == 0 {
		return DefaultModulus
	}
	return m
}

// exptmod(b, e, m) computes b**e modulo m.
func exptmod(b, e, m uint64) uint64 {
	s := uint64(1)
	b %= m
	for e != 0 {
		if e&1 == 1 {
			s = mulmod(s, b, m)
		}
		b = mulmod(b, b, m)
		e >>= 1
	}
	return s
}

// mulmod computes x*y modulo m through a 128-bit intermediate product, so
// the multiplication cannot wrap even when both factors approach m.
func mulmod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}
