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

package alphabet

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	tests := []struct {
		symbols string
		ok      bool
	}{
		{"", false},
		{"A", true},
		{"ACGT", true},
		{"ACGA", false}, // duplicate symbol
		{"abcdefghijklmnopqrstuvwxyz", true},
	}
	for _, test := range tests {
		a, err := New(test.symbols)
		if got := err == nil; got != test.ok {
			t.Errorf("New(%q): got err=%v, want ok=%v", test.symbols, err, test.ok)
			continue
		}
		if err == nil && a.String() != test.symbols {
			t.Errorf("New(%q).String(): got %q", test.symbols, a.String())
		}
	}
}

func TestNewTooBig(t *testing.T) {
	big := make([]byte, 256)
	for i := range big {
		big[i] = byte(i)
	}
	if a, err := New(string(big)); err == nil {
		t.Errorf("New(256 symbols): got %+v, want error", a)
	}
}

func TestRanks(t *testing.T) {
	a := MustNew("ACGT")

	if n := a.Len(); n != 4 {
		t.Errorf("Len: got %d, want 4", n)
	}
	for i := 0; i < len("ACGT"); i++ {
		c := "ACGT"[i]
		got, err := a.Rank(c)
		if err != nil {
			t.Errorf("Rank(%q): unexpected error: %v", c, err)
		}
		if want := i + 1; got != want {
			t.Errorf("Rank(%q): got %d, want %d", c, got, want)
		}
		if !a.Contains(c) {
			t.Errorf("Contains(%q): got false, want true", c)
		}
	}

	got, err := a.Ranks("TAGACAT")
	if err != nil {
		t.Fatalf("Ranks: unexpected error: %v", err)
	}
	want := []int{4, 1, 3, 1, 2, 1, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ranks (-want, +got):\n%s", diff)
	}
}

func TestUnknownSymbol(t *testing.T) {
	a := MustNew("ACGT")

	if a.Contains('X') {
		t.Error("Contains('X'): got true, want false")
	}
	if r, err := a.Rank('X'); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Rank('X'): got %d, %v; want ErrUnknownSymbol", r, err)
	}

	_, err := a.Ranks("ACXGT")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("Ranks: got error %v, want ErrUnknownSymbol", err)
	}
	var serr *SymbolError
	if !errors.As(err, &serr) {
		t.Fatalf("Ranks: error %v is not a *SymbolError", err)
	}
	if serr.Symbol != 'X' {
		t.Errorf("SymbolError.Symbol: got %q, want 'X'", serr.Symbol)
	}
}

func TestDNA(t *testing.T) {
	if got := DNA.String(); got != "ACGT" {
		t.Errorf("DNA alphabet: got %q, want ACGT", got)
	}
}
