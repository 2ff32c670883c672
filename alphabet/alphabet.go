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

// Package alphabet defines finite symbol alphabets and the mapping from
// symbols to their 1-based ranks, as used by the polynomial hashing and
// repeated-window scanning packages.
package alphabet

import (
	"errors"
	"fmt"
)

// An Alphabet is an ordered collection of distinct byte symbols. The position
// of a symbol in the alphabet determines its rank: the first symbol has rank
// 1, the second rank 2, and so on. Rank 0 is reserved to mean "not in the
// alphabet".
//
// An Alphabet is immutable after construction and is safe for concurrent use
// by multiple goroutines.
type Alphabet struct {
	symbols string
	rank    [256]byte // 1-based rank per symbol; 0 = absent
}

// New constructs an Alphabet from the symbols of s, in order. It reports an
// error if s is empty, contains a duplicate symbol, or has more than 255
// symbols, since ranks are stored in a byte and rank 0 is reserved.
func New(s string) (*Alphabet, error) {
	if s == "" {
		return nil, errors.New("empty alphabet")
	} else if len(s) > 255 {
		return nil, fmt.Errorf("alphabet has %d symbols, the limit is 255", len(s))
	}
	a := &Alphabet{symbols: s}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if a.rank[c] != 0 {
			return nil, fmt.Errorf("duplicate symbol %q", c)
		}
		a.rank[c] = byte(i + 1)
	}
	return a, nil
}

// MustNew is as New, but panics if an error is reported. It is intended for
// use in static initializers.
func MustNew(s string) *Alphabet {
	a, err := New(s)
	if err != nil {
		panic("alphabet: " + err.Error())
	}
	return a
}

// DNA is the four-symbol nucleotide alphabet.
var DNA = MustNew("ACGT")

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int { return len(a.symbols) }

// String returns the symbols of the alphabet in rank order.
func (a *Alphabet) String() string { return a.symbols }

// Contains reports whether c is a symbol of the alphabet.
func (a *Alphabet) Contains(c byte) bool { return a.rank[c] != 0 }

// Rank returns the 1-based rank of c. If c is not in the alphabet, Rank
// reports an ErrUnknownSymbol error identifying c.
func (a *Alphabet) Rank(c byte) (int, error) {
	if r := a.rank[c]; r != 0 {
		return int(r), nil
	}
	return 0, unknownSymbol(c)
}

// Ranks returns the ranks of all the symbols of s, in order. If any symbol of
// s is not in the alphabet, Ranks reports an ErrUnknownSymbol error for the
// first such symbol.
func (a *Alphabet) Ranks(s string) ([]int, error) {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		r := a.rank[s[i]]
		if r == 0 {
			return nil, unknownSymbol(s[i])
		}
		out[i] = int(r)
	}
	return out, nil
}

// ErrUnknownSymbol is reported when a sequence contains a symbol that has no
// rank in the alphabet in use.
var ErrUnknownSymbol = errors.New("symbol not in alphabet")

// A SymbolError is the concrete type of errors involving an alphabet symbol.
// The caller may type-assert to *SymbolError to recover the symbol.
type SymbolError struct {
	Symbol byte  // the symbol that provoked the error
	Err    error // the underlying error
}

// Error implements the error interface for SymbolError.
func (s *SymbolError) Error() string { return fmt.Sprintf("symbol %q: %v", s.Symbol, s.Err) }

// Unwrap supports error wrapping for a SymbolError.
func (s *SymbolError) Unwrap() error { return s.Err }

func unknownSymbol(c byte) error { return &SymbolError{Symbol: c, Err: ErrUnknownSymbol} }
