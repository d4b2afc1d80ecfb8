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

import (
	"strconv"
	"strings"
)

// A ParseResult is the canonical form of a parsed URL. All components
// are plain ASCII: the scheme is lowercased, the host is IDNA-encoded
// or a validated IP literal, and userinfo, path, query and fragment
// are percent-encoded. A ParseResult is immutable; derive edited
// copies with CopyWith.
type ParseResult struct {
	scheme   string
	userinfo string
	host     string
	port     int
	hasPort  bool
	path     string

	query       string
	hasQuery    bool
	fragment    string
	hasFragment bool
}

// Scheme returns the lowercased scheme, or "" for a relative
// reference.
func (r ParseResult) Scheme() string {
	return r.scheme
}

// Userinfo returns the percent-encoded userinfo, or "".
func (r ParseResult) Userinfo() string {
	return r.userinfo
}

// Host returns the normalized ASCII host, or "". IPv6 literals are
// returned without brackets.
func (r ParseResult) Host() string {
	return r.host
}

// Port returns the port and whether one is present. A port equal to
// the scheme's well-known default reads as not present.
func (r ParseResult) Port() (int, bool) {
	return r.port, r.hasPort
}

// Path returns the percent-encoded path. Dot segments are resolved
// whenever the URL has a scheme or an authority.
func (r ParseResult) Path() string {
	return r.path
}

// Query returns the percent-encoded query and whether one is present.
// A URL with a trailing bare "?" has a present, empty query; a URL
// without "?" has none.
func (r ParseResult) Query() (string, bool) {
	return r.query, r.hasQuery
}

// Fragment returns the percent-encoded fragment and whether one is
// present, with the same empty/absent distinction as Query.
func (r ParseResult) Fragment() (string, bool) {
	return r.fragment, r.hasFragment
}

// Authority returns the userinfo@host:port view of the URL, with every
// absent part and its delimiter dropped. An IPv6 host is bracketed.
func (r ParseResult) Authority() string {
	var b strings.Builder
	if r.userinfo != "" {
		b.WriteString(r.userinfo)
		b.WriteByte('@')
	}
	b.WriteString(r.displayHost())
	if r.hasPort {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(r.port))
	}
	return b.String()
}

// Netloc returns the host:port view of the URL, without userinfo. This
// is the value to use for a Host header.
func (r ParseResult) Netloc() string {
	var b strings.Builder
	b.WriteString(r.displayHost())
	if r.hasPort {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(r.port))
	}
	return b.String()
}

// displayHost re-adds the brackets an IPv6 literal needs inside an
// authority. Only a host containing ":" can be one.
func (r ParseResult) displayHost() string {
	if strings.Contains(r.host, ":") {
		return "[" + r.host + "]"
	}
	return r.host
}

// String serializes the URL. Parsing the serialization again yields an
// equal ParseResult.
func (r ParseResult) String() string {
	var b strings.Builder
	if r.scheme != "" {
		b.WriteString(r.scheme)
		b.WriteByte(':')
	}
	if authority := r.Authority(); authority != "" {
		b.WriteString("//")
		b.WriteString(authority)
	}
	b.WriteString(r.path)
	if r.hasQuery {
		b.WriteByte('?')
		b.WriteString(r.query)
	}
	if r.hasFragment {
		b.WriteByte('#')
		b.WriteString(r.fragment)
	}
	return b.String()
}

// CopyWith returns a copy of the URL with the supplied components
// replaced. The copy is produced by rerunning the whole parse over the
// current components plus the supplied ones, so every edit is fully
// re-validated and re-normalized; no edit can splice an invalid value
// into a ParseResult. With no options the receiver is returned as is.
func (r ParseResult) CopyWith(opts ...Option) (ParseResult, error) {
	if len(opts) == 0 {
		return r, nil
	}
	defaults := []Option{
		WithScheme(r.scheme),
		WithAuthority(r.Authority()),
		WithPath(r.path),
	}
	if r.hasQuery {
		defaults = append(defaults, WithQuery(r.query))
	} else {
		defaults = append(defaults, WithoutQuery())
	}
	if r.hasFragment {
		defaults = append(defaults, WithFragment(r.fragment))
	} else {
		defaults = append(defaults, WithoutFragment())
	}
	return ParseComponents("", append(defaults, opts...)...)
}
