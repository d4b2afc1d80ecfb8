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

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		text string
		safe *safeSet
		want string
	}{
		{
			name: "Unreserved characters stay verbatim",
			text: "abc-XYZ_0.9~",
			safe: pathSafe,
			want: "abc-XYZ_0.9~",
		},
		{
			name: "Space in a path",
			text: "/path to here",
			safe: pathSafe,
			want: "/path%20to%20here",
		},
		{
			name: "Existing escape is not double-encoded",
			text: "/a%20b c",
			safe: pathSafe,
			want: "/a%20b%20c",
		},
		{
			name: "Stray percent is kept by the path set",
			text: "/100%zz",
			safe: pathSafe,
			want: "/100%zz",
		},
		{
			name: "Multi-byte characters encode per UTF-8 byte",
			text: "/café",
			safe: pathSafe,
			want: "/caf%C3%A9",
		},
		{
			name: "Question mark allowed in a query",
			text: "a?b",
			safe: querySafe,
			want: "a?b",
		},
		{
			name: "Hash never allowed in a query",
			text: "a#b",
			safe: querySafe,
			want: "a%23b",
		},
		{
			name: "Colon encoded in a username",
			text: "a:b",
			safe: usernameSafe,
			want: "a%3Ab",
		},
		{
			name: "Colon kept in a combined userinfo",
			text: "a:b",
			safe: userinfoSafe,
			want: "a:b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quote(tt.text, tt.safe); got != tt.want {
				t.Errorf("quote(%q) got: %q want: %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestPercentDecode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "No escapes",
			text: "/plain",
			want: "/plain",
		},
		{
			name: "Escaped space and at sign",
			text: "jo%40email.com:a%20secret",
			want: "jo@email.com:a secret",
		},
		{
			name: "Multi-byte sequence",
			text: "caf%C3%A9",
			want: "café",
		},
		{
			name: "Invalid escape left verbatim",
			text: "100%zz",
			want: "100%zz",
		},
		{
			name: "Truncated escape left verbatim",
			text: "100%",
			want: "100%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentDecode(tt.text); got != tt.want {
				t.Errorf("percentDecode(%q) got: %q want: %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormEncoding(t *testing.T) {
	encoded := formEncode("a b+c")
	if want := "a+b%2Bc"; encoded != want {
		t.Errorf(`formEncode("a b+c") got: %q want: %q`, encoded, want)
	}
	if got, want := formDecode(encoded), "a b+c"; got != want {
		t.Errorf("formDecode(%q) got: %q want: %q", encoded, got, want)
	}
}

func TestNonPrintableIndex(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantIndex int
		wantFound bool
	}{
		{
			name: "Printable ASCII",
			text: "http://example.com/ path",
		},
		{
			name: "Non-ASCII is not control",
			text: "café",
		},
		{
			name:      "Newline",
			text:      "ab\ncd",
			wantIndex: 2,
			wantFound: true,
		},
		{
			name:      "Leading NUL",
			text:      "\x00abc",
			wantIndex: 0,
			wantFound: true,
		},
		{
			name:      "DEL",
			text:      "abc\x7f",
			wantIndex: 3,
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, found := nonPrintableIndex(tt.text)
			if index != tt.wantIndex || found != tt.wantFound {
				t.Errorf("nonPrintableIndex(%q) got: %v, %v want: %v, %v", tt.text, index, found, tt.wantIndex, tt.wantFound)
			}
		})
	}
}
