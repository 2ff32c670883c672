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

// Package config defines the configuration settings shared by the
// subcommands of the seqscan command-line tool.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/seqtool/seqscan/alphabet"
)

// Settings represents the stored configuration settings for the seqscan
// tool. Fields left empty in the file keep their default values.
type Settings struct {
	// Symbols of the default alphabet, in rank order.
	Alphabet string `json:"alphabet" yaml:"alphabet"`

	// Default window length for repeated-window scans.
	WindowLen int `json:"windowLen" yaml:"window-length"`

	// Default hash modulus. Zero selects the built-in default prime.
	Modulus uint64 `json:"modulus" yaml:"modulus"`
}

// Load reads and parses the contents of a YAML configuration file from path.
// If path is empty or does not exist, Load returns default settings without
// error.
func Load(path string) (*Settings, error) {
	cfg := &Settings{Alphabet: alphabet.DNA.String()}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Alphabet == "" {
		cfg.Alphabet = alphabet.DNA.String()
	}
	return cfg, nil
}
