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
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/creachadair/atomicfile"
	"github.com/creachadair/command"
	"github.com/golang/snappy"
	"golang.org/x/crypto/blake2b"

	"github.com/seqtool/seqscan/batch"
	"github.com/seqtool/seqscan/repeats"
)

func scanCmd(env *command.Env, args []string) error {
	if len(args) != 1 {
		return errors.New("usage is: scan <dir>")
	}
	cfg := env.Config.(*settings)
	k, err := cfg.windowLen()
	if err != nil {
		return err
	}

	paths, seqs, err := readSequences(args[0])
	if err != nil {
		return err
	}
	sets, err := batch.Repeats(cfg.Context, seqs, k, cfg.ab, &batch.Options{
		Scan: &repeats.Options{Modulus: cfg.Modulus, Verify: cfg.Verify},
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for i, path := range paths {
		if wins := sortedWindows(sets[i]); len(wins) == 0 {
			fmt.Fprintf(&buf, "%s:\n", path)
		} else {
			fmt.Fprintf(&buf, "%s: %s\n", path, strings.Join(wins, " "))
		}
	}
	if cfg.Output == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	data := buf.Bytes()
	if cfg.Compress {
		data = snappy.Encode(nil, data)
	}
	return atomicfile.WriteData(cfg.Output, data, 0644)
}

// readSequences loads the contents of each regular file under dir, skipping
// files whose contents duplicate an earlier file (as judged by their
// BLAKE2b-256 digests). Files named *.sz are decompressed with snappy.
func readSequences(dir string) (paths, seqs []string, _ error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	seen := make(map[[32]byte]string) // content digest → first path
	for _, ent := range entries {
		if !ent.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, ent.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		if strings.HasSuffix(ent.Name(), ".sz") {
			data, err = snappy.Decode(nil, data)
			if err != nil {
				return nil, nil, fmt.Errorf("decompressing %s: %w", path, err)
			}
		}
		seq := strings.TrimSpace(string(data))

		digest := blake2b.Sum256([]byte(seq))
		if prev, ok := seen[digest]; ok {
			log.Printf("Skipping %s (duplicate of %s)", path, prev)
			continue
		}
		seen[digest] = path

		paths = append(paths, path)
		seqs = append(seqs, seq)
	}
	return paths, seqs, nil
}
