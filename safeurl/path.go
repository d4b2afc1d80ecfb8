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

import "strings"

// validatePath rejects path shapes that would reparse differently when
// the URL is serialized.
// https://datatracker.ietf.org/doc/html/rfc3986#section-3.3
func validatePath(path string, hasScheme, hasAuthority bool) error {
	if hasAuthority && path != "" && !strings.HasPrefix(path, "/") {
		return errPath("for absolute URLs, path must be empty or begin with '/'")
	}
	if !hasScheme && !hasAuthority {
		// "//" would reparse as an authority marker, and a ":" in the
		// first segment would reparse as a scheme separator.
		if strings.HasPrefix(path, "//") {
			return errPath("relative URLs cannot have a path starting with '//'")
		}
		if strings.HasPrefix(path, ":") {
			return errPath("relative URLs cannot have a path starting with ':'")
		}
	}
	return nil
}

// normalizePath removes "." and ".." segments from a path.
// https://datatracker.ietf.org/doc/html/rfc3986#section-5.2.4
func normalizePath(path string) string {
	if !strings.Contains(path, ".") {
		return path
	}

	segments := strings.Split(path, "/")
	normalized := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case ".":
			// Skip.
		case "..":
			// ".." never pops past the root marker of an absolute path.
			if len(normalized) > 0 && !(len(normalized) == 1 && normalized[0] == "") {
				normalized = normalized[:len(normalized)-1]
			}
		default:
			normalized = append(normalized, segment)
		}
	}
	return strings.Join(normalized, "/")
}
