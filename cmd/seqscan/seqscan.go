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

// Program seqscan searches sequences over a finite alphabet for exact
// substrings and repeated fixed-length windows.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/creachadair/command"

	"github.com/seqtool/seqscan/alphabet"
	"github.com/seqtool/seqscan/cmd/seqscan/config"
)

type settings struct {
	Context context.Context

	// Flag targets
	ConfigPath string // global
	Alphabet   string // global
	Modulus    uint64 // global
	K          int    // repeats, scan
	Verify     bool   // repeats, scan
	Trace      bool   // repeats
	Output     string // scan
	Compress   bool   // scan

	// Resolved in Init from the flags and the config file.
	ab   *alphabet.Alphabet
	defK int
}

func main() {
	if err := command.Run(tool.NewEnv(&settings{
		Context: context.Background(),
	}), os.Args[1:]); err != nil {
		if errors.Is(err, command.ErrUsage) {
			os.Exit(2)
		}
		log.Fatalf("Error: %v", err)
	}
}

var tool = &command.C{
	Name: filepath.Base(os.Args[0]),
	Usage: `[options] command [args...]
help [command]`,
	Help: `Search sequences over a finite alphabet.

The lps and find commands implement Knuth-Morris-Pratt substring search.
The hash, repeats, and scan commands use a rolling polynomial hash to
identify repeated fixed-length windows.

The SEQSCAN_CONFIG environment variable is read to choose a default
configuration file; otherwise -config may be set. Command-line flags
override values from the configuration file.`,

	SetFlags: func(env *command.Env, fs *flag.FlagSet) {
		cfg := env.Config.(*settings)
		fs.StringVar(&cfg.ConfigPath, "config", os.Getenv("SEQSCAN_CONFIG"), "Configuration file path")
		fs.StringVar(&cfg.Alphabet, "alphabet", "", "Alphabet symbols in rank order (overrides config)")
		fs.Uint64Var(&cfg.Modulus, "modulus", 0, "Hash modulus (0 uses the default prime)")
	},

	Init: func(env *command.Env) error {
		cfg := env.Config.(*settings)
		stored, err := config.Load(os.ExpandEnv(cfg.ConfigPath))
		if err != nil {
			return err
		}
		symbols := cfg.Alphabet
		if symbols == "" {
			symbols = stored.Alphabet
		}
		ab, err := alphabet.New(symbols)
		if err != nil {
			return err
		}
		cfg.ab = ab
		cfg.defK = stored.WindowLen
		if cfg.Modulus == 0 {
			cfg.Modulus = stored.Modulus
		}
		return nil
	},

	Commands: []*command.C{
		{
			Name:  "lps",
			Usage: "lps <pattern>",
			Help:  "Print the failure (LPS) table for a pattern",
			Run:   lpsCmd,
		},
		{
			Name:  "find",
			Usage: "find <pattern> <text>...",
			Help:  "Print the index of the first occurrence of a pattern in each text",
			Run:   findCmd,
		},
		{
			Name:  "hash",
			Usage: "hash <window>...",
			Help:  "Print the polynomial hash of each window under the alphabet",
			Run:   hashCmd,
		},
		{
			Name:  "repeats",
			Usage: "repeats <sequence>",
			Help:  "Print the distinct windows of length k repeated in a sequence",

			SetFlags: func(env *command.Env, fs *flag.FlagSet) {
				cfg := env.Config.(*settings)
				fs.IntVar(&cfg.K, "k", 0, "Window length (overrides config)")
				fs.BoolVar(&cfg.Verify, "verify", false, "Discard hash collisions between unequal windows")
				fs.BoolVar(&cfg.Trace, "trace", false, "Print every window visited during the scan")
			},
			Run: repeatsCmd,
		},
		{
			Name:  "scan",
			Usage: "scan <dir>",
			Help: `Scan the sequence files in a directory for repeated windows.

Files with a .sz extension are decompressed with snappy before scanning.
Files whose contents duplicate an earlier file are scanned only once.`,

			SetFlags: func(env *command.Env, fs *flag.FlagSet) {
				cfg := env.Config.(*settings)
				fs.IntVar(&cfg.K, "k", 0, "Window length (overrides config)")
				fs.BoolVar(&cfg.Verify, "verify", false, "Discard hash collisions between unequal windows")
				fs.StringVar(&cfg.Output, "out", "", "Write the report to this path (default stdout)")
				fs.BoolVar(&cfg.Compress, "z", false, "Compress the report with snappy")
			},
			Run: scanCmd,
		},
		command.HelpCommand(nil),
	},
}

// windowLen resolves the window length for a scan from the -k flag and the
// configuration file.
func (s *settings) windowLen() (int, error) {
	k := s.K
	if k <= 0 {
		k = s.defK
	}
	if k <= 0 {
		return 0, errors.New("a window length must be set with -k or the config file")
	}
	return k, nil
}
