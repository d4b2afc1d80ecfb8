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

// Package safeurl provides an immutable, validating URL type.
//
// It parses URLs into the five structural parts of RFC 3986 (scheme,
// authority, path, query, fragment), splits the authority into userinfo,
// host and port, and produces a canonical ASCII form: the scheme is
// lowercased, hosts are IDNA-encoded or validated as IP literals, default
// ports are elided, dot segments are resolved, and every component is
// percent-encoded against the WHATWG encode set for that component.
//
// Parsing is strict where it matters for safety. URLs and individually
// supplied components are rejected when they exceed a hard length limit,
// contain ASCII control characters, or fail their component grammar. A
// parsed URL can only be edited through CopyWith, which reruns the whole
// parse so that no edit bypasses validation:
//
//	u, err := safeurl.Parse("https://example.com/a/../b?k=v")
//	if err != nil {
//		// Handle the rejected URL.
//	}
//	u.String() // "https://example.com/b?k=v"
//
//	u2, err := u.CopyWith(safeurl.WithScheme("http"), safeurl.WithPort(8080))
//
// URLs can also be built from parts instead of a string. Options supply
// components individually, and derived options such as WithNetloc,
// WithUsername and WithRawPath are rewritten onto the canonical
// components before validation:
//
//	u, err := safeurl.Parse("",
//		safeurl.WithScheme("https"),
//		safeurl.WithNetloc("example.com:8080"),
//		safeurl.WithRawPath("/search?q=go"),
//	)
//
// The distinction between an absent component and an empty one is
// preserved throughout: "http://example.com/path?" carries an empty
// query, while "http://example.com/path" carries none. Accessors for
// optional components use a comma-ok form.
//
// All types in this package are immutable once constructed and safe for
// concurrent use without locking.
package safeurl
