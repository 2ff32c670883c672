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

// Package batch fans many independent searches out across a bounded pool of
// goroutines. The pattern and alphabet are shared immutably among the
// workers; all per-search state is local, so the searches do not contend.
package batch

import (
	"context"
	"fmt"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/taskgroup"

	"github.com/seqtool/seqscan/alphabet"
	"github.com/seqtool/seqscan/kmp"
	"github.com/seqtool/seqscan/repeats"
)

// DefaultLimit is the number of concurrent searches permitted when no limit
// is set in the options.
const DefaultLimit = 64

// Options provide optional settings for a batch. A nil *Options is ready for
// use and provides default values as described.
type Options struct {
	// The maximum number of searches to run concurrently. A value ≤ 0
	// defaults to DefaultLimit.
	Limit int

	// Scan options forwarded to repeats.Find by Repeats. Leave the Visited
	// set unset in batched scans: a set carried in the options would be
	// shared across concurrent scans, which visited sets do not support. A
	// Trace callback, if any, must be safe for concurrent use.
	Scan *repeats.Options
}

func (o *Options) limit() int {
	if o == nil || o.Limit <= 0 {
		return DefaultLimit
	}
	return o.Limit
}

func (o *Options) scan() *repeats.Options {
	if o == nil {
		return nil
	}
	return o.Scan
}

// A Match reports the outcome of a single search in a batch.
type Match struct {
	Pos int  // index of the first occurrence, or -1
	OK  bool // whether the pattern was found
}

// Find searches each of texts for the first occurrence of pattern, in
// parallel. The results are in the same order as texts. If ctx ends before
// all the texts have been searched, Find reports its error and the results
// are discarded.
func Find(ctx context.Context, pattern string, texts []string, opts *Options) ([]Match, error) {
	out := make([]Match, len(texts))

	g, run := taskgroup.New(nil).Limit(opts.limit())
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		run(taskgroup.NoError(func() {
			pos, ok := kmp.Find(text, pattern)
			out[i] = Match{Pos: pos, OK: ok}
		}))
	}
	g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Repeats scans each of seqs for repeated windows of length k over ab, in
// parallel. The results are in the same order as seqs. The first scan to
// fail cancels the rest, and Repeats reports its error.
func Repeats(ctx context.Context, seqs []string, k int, ab *alphabet.Alphabet, opts *Options) ([]mapset.Set[string], error) {
	out := make([]mapset.Set[string], len(seqs))

	ictx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, run := taskgroup.New(taskgroup.Trigger(cancel)).Limit(opts.limit())
	for i, seq := range seqs {
		if ictx.Err() != nil {
			break
		}
		run(func() error {
			set, err := repeats.Find(seq, k, ab, opts.scan())
			if err != nil {
				return fmt.Errorf("sequence %d: %w", i, err)
			}
			out[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
