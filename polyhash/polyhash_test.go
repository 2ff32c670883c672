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

package polyhash

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/seqtool/seqscan/alphabet"
)

func TestSum(t *testing.T) {
	tests := []struct {
		window  string
		modulus uint64
		want    uint64
	}{
		{"", 0, 0},
		{"A", 0, 1},
		{"T", 0, 4},
		{"AGA", 0, 29},     // 1*16 + 3*4 + 1
		{"AGACCTAGAC", 0, 486518},
		{"AGA", 7, 29 % 7}, // small modulus exercises reduction
	}
	for _, test := range tests {
		got, err := Sum(test.window, alphabet.DNA, test.modulus)
		if err != nil {
			t.Errorf("Sum(%q): unexpected error: %v", test.window, err)
		}
		if got != test.want {
			t.Errorf("Sum(%q, mod=%d): got %d, want %d", test.window, test.modulus, got, test.want)
		}
	}
}

func TestSumUnknownSymbol(t *testing.T) {
	got, err := Sum("AGXA", alphabet.DNA, 0)
	if !errors.Is(err, alphabet.ErrUnknownSymbol) {
		t.Errorf("Sum(AGXA): got %d, %v; want ErrUnknownSymbol", got, err)
	}
}

func TestNewInvalid(t *testing.T) {
	for _, k := range []int{0, -1, -100} {
		h, err := New(alphabet.DNA, k, 0)
		if !errors.Is(err, ErrWindowLen) {
			t.Errorf("New(k=%d): got %+v, %v; want ErrWindowLen", k, h, err)
		}
	}
}

func TestModulusRange(t *testing.T) {
	if h, err := New(alphabet.DNA, 4, MaxModulus); err != nil {
		t.Errorf("New(mod=MaxModulus): got %+v, %v; want success", h, err)
	}
	if h, err := New(alphabet.DNA, 4, MaxModulus+1); !errors.Is(err, ErrModulus) {
		t.Errorf("New(mod=MaxModulus+1): got %+v, %v; want ErrModulus", h, err)
	}
	if v, err := Sum("ACGT", alphabet.DNA, MaxModulus+1); !errors.Is(err, ErrModulus) {
		t.Errorf("Sum(mod=MaxModulus+1): got %d, %v; want ErrModulus", v, err)
	}
}

func TestHasherSumLength(t *testing.T) {
	h, err := New(alphabet.DNA, 3, 0)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	if v, err := h.Sum("ACGT"); !errors.Is(err, ErrWindowLen) {
		t.Errorf("Sum(ACGT) with k=3: got %d, %v; want ErrWindowLen", v, err)
	}
	if v, err := h.Sum("AGA"); err != nil || v != 29 {
		t.Errorf("Sum(AGA): got %d, %v; want 29, nil", v, err)
	}
}

// TestRoll walks a window along generated sequences, comparing the rolled
// hash at each position to the one-shot hash of the same window computed
// without rolling.
func TestRoll(t *testing.T) {
	rng := rand.New(rand.NewSource(20240417))
	ab := alphabet.DNA

	// Rolling agrees with the one-shot hash for any modulus, so the list can
	// include composite values; the large entries exercise moduli whose
	// squared residues overflow 64-bit arithmetic.
	for _, modulus := range []uint64{0, 97, 1031, 2147483659, 1099511627791, MaxModulus} {
		for k := 1; k <= 8; k++ {
			h, err := New(ab, k, modulus)
			if err != nil {
				t.Fatalf("New(k=%d): unexpected error: %v", k, err)
			}
			seq := randomDNA(rng, 200)
			ranks, err := ab.Ranks(seq)
			if err != nil {
				t.Fatalf("Ranks: unexpected error: %v", err)
			}

			var rolled uint64
			for i := 0; i+k <= len(seq); i++ {
				if i == 0 {
					rolled, err = h.Sum(seq[:k])
					if err != nil {
						t.Fatalf("Sum: unexpected error: %v", err)
					}
				} else {
					rolled = h.Roll(rolled, ranks[i-1], ranks[i+k-1])
				}
				want, err := h.Sum(seq[i : i+k])
				if err != nil {
					t.Fatalf("Sum: unexpected error: %v", err)
				}
				if rolled != want {
					t.Errorf("mod=%d k=%d offset %d: rolled hash %d, want %d",
						modulus, k, i, rolled, want)
				}
			}
		}
	}
}

func TestHasherSettings(t *testing.T) {
	h, err := New(alphabet.DNA, 12, 0)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	if got := h.WindowLen(); got != 12 {
		t.Errorf("WindowLen: got %d, want 12", got)
	}
	if got := h.Modulus(); got != DefaultModulus {
		t.Errorf("Modulus: got %d, want %d", got, uint64(DefaultModulus))
	}
}

func TestExptmod(t *testing.T) {
	tests := []struct {
		b, e, m, want uint64
	}{
		{4, 0, 97, 1},
		{4, 1, 97, 4},
		{4, 2, 1000000007, 16},
		{4, 11, 1000000007, 4194304},
		{2, 10, 1000, 24},
		{7, 5, 13, 11},

		// 4^60 = 2^120 and 2^40 ≡ -15 (mod 2^40+15), so the result is
		// (2^40+15) - 15^3. Squaring residues of this modulus overflows
		// 64-bit products.
		{4, 60, 1099511627791, 1099511624416},
	}
	for _, test := range tests {
		if got := exptmod(test.b, test.e, test.m); got != test.want {
			t.Errorf("exptmod(%d, %d, %d): got %d, want %d",
				test.b, test.e, test.m, got, test.want)
		}
	}
}

func randomDNA(rng *rand.Rand, n int) string {
	const symbols = "ACGT"
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = symbols[rng.Intn(len(symbols))]
	}
	return string(buf)
}
