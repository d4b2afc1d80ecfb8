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
	"strings"

	"golang.org/x/net/idna"
)

// A URL wraps a ParseResult with decoded, human-oriented views of its
// components. The Raw accessors expose the canonical ASCII components;
// the plain accessors percent-decode them and decode IDNA hosts back
// to Unicode. Like ParseResult, a URL is immutable.
type URL struct {
	r ParseResult
}

// Parse parses a URL string with optional component options and
// returns it as a URL. See ParseComponents for the parsing rules.
func Parse(rawurl string, opts ...Option) (URL, error) {
	r, err := ParseComponents(rawurl, opts...)
	if err != nil {
		return URL{}, err
	}
	return URL{r: r}, nil
}

// Result returns the underlying canonical ParseResult.
func (u URL) Result() ParseResult {
	return u.r
}

// Scheme returns the lowercased scheme, or "".
func (u URL) Scheme() string {
	return u.r.scheme
}

// Userinfo returns the percent-encoded userinfo, such as
// "jo%40email.com:a%20secret".
func (u URL) Userinfo() string {
	return u.r.userinfo
}

// Username returns the percent-decoded username part of the userinfo.
func (u URL) Username() string {
	username, _, _ := strings.Cut(u.r.userinfo, ":")
	return percentDecode(username)
}

// Password returns the percent-decoded password part of the userinfo,
// or "" when there is none.
func (u URL) Password() string {
	_, password, _ := strings.Cut(u.r.userinfo, ":")
	return percentDecode(password)
}

// Host returns the host with IDNA-encoded names decoded back to
// Unicode, so "xn--fiqs8s.icom.museum" reads as its Unicode form. Use
// RawHost for the ASCII form that goes on the wire.
func (u URL) Host() string {
	host := u.r.host
	if strings.HasPrefix(host, "xn--") {
		if decoded, err := idna.Lookup.ToUnicode(host); err == nil {
			return decoded
		}
	}
	return host
}

// RawHost returns the normalized ASCII host, without IPv6 brackets.
func (u URL) RawHost() string {
	return u.r.host
}

// Port returns the port and whether one is present, with the
// default-port elision of ParseResult.Port.
func (u URL) Port() (int, bool) {
	return u.r.Port()
}

// Authority returns the userinfo@host:port view of the URL.
func (u URL) Authority() string {
	return u.r.Authority()
}

// Netloc returns the host:port view of the URL, the value to use for
// a Host header.
func (u URL) Netloc() string {
	return u.r.Netloc()
}

// Path returns the percent-decoded path. An empty path reads as "/".
func (u URL) Path() string {
	path := u.r.path
	if path == "" {
		path = "/"
	}
	return percentDecode(path)
}

// RawPath returns the percent-encoded path joined with the query, if
// one is present. This is the request target of an HTTP request line:
//
//	GET /users?search=some%20text HTTP/1.1
//
// An empty path reads as "/".
func (u URL) RawPath() string {
	path := u.r.path
	if path == "" {
		path = "/"
	}
	if u.r.hasQuery {
		path += "?" + u.r.query
	}
	return path
}

// RawQuery returns the percent-encoded query and whether one is
// present.
func (u URL) RawQuery() (string, bool) {
	return u.r.Query()
}

// Fragment returns the percent-decoded fragment, or "" when there is
// none.
func (u URL) Fragment() string {
	return percentDecode(u.r.fragment)
}

// RawFragment returns the percent-encoded fragment and whether one is
// present.
func (u URL) RawFragment() (string, bool) {
	return u.r.Fragment()
}

// Params returns the query parsed into query parameters. A URL without
// a query yields an empty QueryParams.
func (u URL) Params() QueryParams {
	return ParseQuery(u.r.query)
}

// IsAbsolute reports whether the URL names a scheme and a host to
// connect to, like "http://example.com/path" and unlike "/path". A
// fragment does not make a URL relative.
func (u URL) IsAbsolute() bool {
	return u.r.scheme != "" && u.r.host != ""
}

// IsRelative reports the opposite of IsAbsolute.
func (u URL) IsRelative() bool {
	return !u.IsAbsolute()
}

// CopyWith returns a copy of the URL with the supplied components
// replaced, rerunning the full parse like ParseResult.CopyWith.
func (u URL) CopyWith(opts ...Option) (URL, error) {
	r, err := u.r.CopyWith(opts...)
	if err != nil {
		return URL{}, err
	}
	return URL{r: r}, nil
}

// CopySetParam returns a copy of the URL with value as the only value
// for the query parameter key.
func (u URL) CopySetParam(key, value string) (URL, error) {
	return u.CopyWith(WithParams(u.Params().Set(key, value)))
}

// CopyAddParam returns a copy of the URL with value appended to the
// query parameter key.
func (u URL) CopyAddParam(key, value string) (URL, error) {
	return u.CopyWith(WithParams(u.Params().Add(key, value)))
}

// CopyRemoveParam returns a copy of the URL without the query
// parameter key. Removing the last parameter leaves the URL with no
// query at all.
func (u URL) CopyRemoveParam(key string) (URL, error) {
	return u.CopyWith(WithParams(u.Params().Remove(key)))
}

// CopyMergeParams returns a copy of the URL with the given parameters
// merged over its own, as in QueryParams.Merge.
func (u URL) CopyMergeParams(params QueryParams) (URL, error) {
	return u.CopyWith(WithParams(u.Params().Merge(params)))
}

// String serializes the URL in its canonical form.
func (u URL) String() string {
	return u.r.String()
}

// Redacted is like String but masks any password with "xxxxx",
// making the result safe to log.
func (u URL) Redacted() string {
	if username, _, found := strings.Cut(u.r.userinfo, ":"); found {
		masked := u.r
		masked.userinfo = username + ":xxxxx"
		return masked.String()
	}
	return u.r.String()
}

// Equal reports whether two URLs have the same canonical form.
func (u URL) Equal(other URL) bool {
	return u.r == other.r
}

// MarshalText implements encoding.TextMarshaler, serializing the URL
// in its canonical form.
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing and
// validating text like Parse.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
