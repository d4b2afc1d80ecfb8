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

package config

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestReadConfigs(t *testing.T) {
	tests := []struct {
		desc  string
		files map[string]string
		want  *Config
	}{
		{
			desc: "file with empty definitions",
			files: map[string]string{
				"file.json": `
				{}
				`,
			},
			want: &Config{},
		},
		{
			desc: "file with unknown field",
			files: map[string]string{
				"file.json": `
				{
					"unknown": 1
				}
				`,
			},
			want: &Config{},
		},
		{
			desc: "file with a banned import",
			files: map[string]string{
				"file.json": `
				{
					"imports": [{
						"name": "net/url",
						"msg": "Use safeurl",
						"exemptions": [{
							"justification": "vetted migration shim",
							"allowedPkg": "mycompany.com/vetted/*"
						}]
					}]
				}
				`,
			},
			want: &Config{
				Imports: []BannedAPI{
					{
						Name: "net/url",
						Msg:  "Use safeurl",
						Exemptions: []Exemption{
							{
								Justification: "vetted migration shim",
								AllowedPkg:    "mycompany.com/vetted/*",
							},
						},
					},
				},
			},
		},
		{
			desc: "multiple files are concatenated",
			files: map[string]string{
				"file1.json": `
				{
					"functions": [{
						"name": "net/url.Parse",
						"msg": "Banned by team A"
					}]
				}
				`,
				"file2.json": `
				{
					"functions": [{
						"name": "net/url.ParseQuery",
						"msg": "Banned by team B"
					}]
				}
				`,
			},
			want: &Config{
				Functions: []BannedAPI{
					{Name: "net/url.Parse", Msg: "Banned by team A"},
					{Name: "net/url.ParseQuery", Msg: "Banned by team B"},
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			dir, cleanup, err := analysistest.WriteFiles(test.files)
			if err != nil {
				t.Fatalf("WriteFiles() returned err: %v", err)
			}
			defer cleanup()

			var files []string
			for name := range test.files {
				files = append(files, filepath.Join(dir, "src", name))
			}
			sort.Strings(files)

			got, err := ReadConfigs(files)
			if err != nil {
				t.Fatalf("ReadConfigs() returned err: %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("ReadConfigs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadConfigsErrors(t *testing.T) {
	tests := []struct {
		desc  string
		files map[string]string
		read  []string
	}{
		{
			desc:  "missing file",
			files: map[string]string{},
			read:  []string{"nonexistent.json"},
		},
		{
			desc: "malformed JSON",
			files: map[string]string{
				"file.json": `
				{"imports": [
				`,
			},
			read: []string{"file.json"},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			dir, cleanup, err := analysistest.WriteFiles(test.files)
			if err != nil {
				t.Fatalf("WriteFiles() returned err: %v", err)
			}
			defer cleanup()

			var files []string
			for _, name := range test.read {
				files = append(files, filepath.Join(dir, "src", name))
			}

			if _, err := ReadConfigs(files); err == nil {
				t.Error("ReadConfigs() got: nil want: error")
			}
		})
	}
}
