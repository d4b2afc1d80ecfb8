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

import "regexp"

// urlRegex splits a URL into its five structural parts:
//
//	{scheme}:      (optional)
//	//{authority}  (optional)
//	{path}
//	?{query}       (optional)
//	#{fragment}    (optional)
//
// It matches every input. Groups may capture the empty string, and the
// optional query and fragment groups are absent (not empty) when their
// delimiter is missing. https://datatracker.ietf.org/doc/html/rfc3986#section-3
var urlRegex = regexp.MustCompile(
	`\A` +
		`(?:((?:[a-zA-Z][a-zA-Z0-9+.\-]*)?):)?` + // scheme
		`(?://([^/?#]*))?` + // authority
		`([^?#]*)` + // path
		`(?:\?([^#]*))?` + // query
		`(?:#(.*))?` + // fragment
		`\z`)

// authorityRegex splits an authority into userinfo, host and port:
//
//	{userinfo}@    (optional)
//	{host}
//	:{port}        (optional)
//
// The userinfo group is greedy and extends to the last "@". The host is
// either a bracketed IP literal or any run excluding ":" and "@". Like
// urlRegex, it matches every input.
var authorityRegex = regexp.MustCompile(
	`\A` +
		`(?:(.*)@)?` + // userinfo
		`(\[.*\]|[^:@]*)` + // host
		`:?(.*)` + // port
		`\z`)

// componentRegex validates components that are supplied individually
// through options, since those never pass through urlRegex.
var componentRegex = map[string]*regexp.Regexp{
	"scheme":    regexp.MustCompile(`\A(?:[a-zA-Z][a-zA-Z0-9+.\-]*)?\z`),
	"authority": regexp.MustCompile(`\A[^/?#]*\z`),
	"userinfo":  regexp.MustCompile(`\A[^@]*\z`),
	"host":      regexp.MustCompile(`\A(?:\[.*\]|[^:]*)\z`),
	"port":      regexp.MustCompile(`\A.*\z`),
	"path":      regexp.MustCompile(`\A[^?#]*\z`),
	"query":     regexp.MustCompile(`\A[^#]*\z`),
	"fragment":  regexp.MustCompile(`\A.*\z`),
}

// group returns the text of the n-th capture group of a
// FindStringSubmatchIndex result, and whether the group participated in
// the match at all.
func group(s string, m []int, n int) (string, bool) {
	if m[2*n] < 0 {
		return "", false
	}
	return s[m[2*n]:m[2*n+1]], true
}
