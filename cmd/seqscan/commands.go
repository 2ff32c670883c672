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

package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/creachadair/command"
	"github.com/creachadair/mds/mapset"

	"github.com/seqtool/seqscan/batch"
	"github.com/seqtool/seqscan/kmp"
	"github.com/seqtool/seqscan/polyhash"
	"github.com/seqtool/seqscan/repeats"
)

func getContext(env *command.Env) context.Context {
	return env.Config.(*settings).Context
}

func lpsCmd(env *command.Env, args []string) error {
	if len(args) != 1 {
		return errors.New("usage is: lps <pattern>")
	}
	table := kmp.Table(args[0])
	strs := make([]string, len(table))
	for i, v := range table {
		strs[i] = fmt.Sprint(v)
	}
	fmt.Println(strings.Join(strs, " "))
	return nil
}

func findCmd(env *command.Env, args []string) error {
	if len(args) < 2 {
		//lint:ignore ST1005 The punctuation signifies repetition to the user.
		return errors.New("usage is: find <pattern> <text>...")
	}
	pattern, texts := args[0], args[1:]
	if len(texts) == 1 {
		pos, ok := kmp.Find(texts[0], pattern)
		if !ok {
			return fmt.Errorf("pattern %q not found", pattern)
		}
		fmt.Println(pos)
		return nil
	}

	ms, err := batch.Find(getContext(env), pattern, texts, nil)
	if err != nil {
		return err
	}
	for i, m := range ms {
		if m.OK {
			fmt.Printf("%d: %d\n", i, m.Pos)
		} else {
			fmt.Printf("%d: not found\n", i)
		}
	}
	return nil
}

func hashCmd(env *command.Env, args []string) error {
	if len(args) == 0 {
		//lint:ignore ST1005 The punctuation signifies repetition to the user.
		return errors.New("usage is: hash <window>...")
	}
	cfg := env.Config.(*settings)
	for _, win := range args {
		h, err := polyhash.Sum(win, cfg.ab, cfg.Modulus)
		if err != nil {
			return err
		}
		fmt.Println(h)
	}
	return nil
}

func repeatsCmd(env *command.Env, args []string) error {
	if len(args) != 1 {
		return errors.New("usage is: repeats <sequence>")
	}
	cfg := env.Config.(*settings)
	k, err := cfg.windowLen()
	if err != nil {
		return err
	}

	opts := &repeats.Options{Modulus: cfg.Modulus, Verify: cfg.Verify}
	if cfg.Trace {
		opts.Trace = func(e repeats.Event) {
			fmt.Printf("# %d\t%s\t%d\trepeated=%v\n", e.Pos, e.Window, e.Hash, e.Repeated)
		}
	}
	set, err := repeats.Find(args[0], k, cfg.ab, opts)
	if err != nil {
		return err
	}
	for _, win := range sortedWindows(set) {
		fmt.Println(win)
	}
	return nil
}

// sortedWindows flattens set into a sorted slice for stable output.
func sortedWindows(set mapset.Set[string]) []string {
	out := make([]string, 0, set.Len())
	for win := range set {
		out = append(out, win)
	}
	sort.Strings(out)
	return out
}
