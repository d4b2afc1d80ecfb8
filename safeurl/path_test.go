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

package safeurl

import "testing"

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		hasScheme    bool
		hasAuthority bool
		wantErr      bool
	}{
		{
			name:         "Empty path with authority",
			path:         "",
			hasAuthority: true,
		},
		{
			name:         "Rooted path with authority",
			path:         "/a/b",
			hasAuthority: true,
		},
		{
			name:         "Relative path with authority",
			path:         "a/b",
			hasAuthority: true,
			wantErr:      true,
		},
		{
			name: "Relative path without authority",
			path: "a/b",
		},
		{
			name:    "Double-slash path without authority",
			path:    "//a",
			wantErr: true,
		},
		{
			name:      "Double-slash path with scheme only",
			path:      "//a",
			hasScheme: true,
		},
		{
			name:    "Colon-leading path without scheme",
			path:    ":a",
			wantErr: true,
		},
		{
			name:      "Colon-leading path with scheme",
			path:      ":a",
			hasScheme: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePath(tt.path, tt.hasScheme, tt.hasAuthority)
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Errorf("validatePath(%q, %v, %v) got err: %v wantErr: %v", tt.path, tt.hasScheme, tt.hasAuthority, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "No dot segments",
			path: "/a/b/c",
			want: "/a/b/c",
		},
		{
			name: "Single dots dropped",
			path: "/a/./b/.",
			want: "/a/b",
		},
		{
			name: "Double dot pops a segment",
			path: "/a/../b",
			want: "/b",
		},
		{
			name: "Double dot cannot pop past the root",
			path: "/../../a",
			want: "/a",
		},
		{
			name: "Trailing double dot",
			path: "/a/b/..",
			want: "/a",
		},
		{
			name: "Relative path",
			path: "a/../b",
			want: "b",
		},
		{
			name: "Dots inside a segment are kept",
			path: "/a.b/c..d",
			want: "/a.b/c..d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePath(tt.path); got != tt.want {
				t.Errorf("normalizePath(%q) got: %q want: %q", tt.path, got, tt.want)
			}
		})
	}
}
