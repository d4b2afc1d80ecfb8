// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config reads the JSON configuration files that tell urlcheck
// which imports and functions to report.
package config

import (
	"encoding/json"
	"errors"
	"os"
)

// BannedAPI is an import or function that should be reported, together
// with the message explaining what to use instead.
type BannedAPI struct {
	Name       string      `json:"name"` // fully qualified identifier name
	Msg        string      `json:"msg"`  // additional information e.g. the suggested replacement
	Exemptions []Exemption `json:"exemptions"`
}

// Exemption excuses the packages matching AllowedPkg from a ban.
type Exemption struct {
	Justification string `json:"justification"`
	AllowedPkg    string `json:"allowedPkg"` // pattern in filepath.Match syntax
}

// Config holds the banned imports and functions of one or more
// configuration files.
type Config struct {
	Imports   []BannedAPI `json:"imports"`
	Functions []BannedAPI `json:"functions"`
}

// ReadConfigs reads banned APIs from all given config files and
// concatenates them into one Config.
func ReadConfigs(files []string) (*Config, error) {
	var cfg Config

	for _, file := range files {
		c, err := unmarshalCfg(file)
		if err != nil {
			return nil, err
		}
		cfg.Imports = append(cfg.Imports, c.Imports...)
		cfg.Functions = append(cfg.Functions, c.Functions...)
	}

	return &cfg, nil
}

// unmarshalCfg reads the JSON object from a file and converts it to a
// Config.
func unmarshalCfg(filename string) (*Config, error) {
	f, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func openFile(filename string) (*os.File, error) {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return nil, errors.New("file does not exist")
	}
	if info.IsDir() {
		return nil, errors.New("file is a directory")
	}

	return os.Open(filename)
}
