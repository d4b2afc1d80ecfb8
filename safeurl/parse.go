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

// MaxURLLength is the hard limit, in bytes, on a URL and on every
// individually supplied component.
const MaxURLLength = 65536

// ParseComponents parses a URL string, applies the supplied component
// options on top of it, and returns the validated canonical form. The
// URL string may be empty, in which case the result is built from the
// options alone.
//
// Parsing is lenient about delimiters in the URL string: a literal,
// unescaped "?" or "#" is read as the start of the query or fragment
// rather than rejected. Components supplied through options are held
// to their component grammar instead.
func ParseComponents(rawurl string, opts ...Option) (ParseResult, error) {
	if len(rawurl) > MaxURLLength {
		return ParseResult{}, errTooLong()
	}
	if i, ok := nonPrintableIndex(rawurl); ok {
		return ParseResult{}, errNonPrintable("", rawurl[i], i)
	}

	var o overrides
	for _, opt := range opts {
		opt(&o)
	}
	o.reconcile()
	if err := o.validate(); err != nil {
		return ParseResult{}, err
	}

	// The URL grammar always matches, but groups may be empty or
	// absent. Scheme, authority and path read as "" when absent; the
	// query and fragment keep the absent/empty distinction.
	m := urlRegex.FindStringSubmatchIndex(rawurl)
	capturedScheme, _ := group(rawurl, m, 1)
	capturedAuthority, _ := group(rawurl, m, 2)
	capturedPath, _ := group(rawurl, m, 3)

	scheme, _ := o.scheme.merged(capturedScheme, true)
	authority, _ := o.authority.merged(capturedAuthority, true)
	path, _ := o.path.merged(capturedPath, true)
	query, hasQuery := o.query.merged(group(rawurl, m, 4))
	fragment, hasFragment := o.fragment.merged(group(rawurl, m, 5))

	// The authority grammar always matches as well. Userinfo and host
	// read as "" when absent; empty port text means no port.
	am := authorityRegex.FindStringSubmatchIndex(authority)
	capturedUserinfo, _ := group(authority, am, 1)
	capturedHost, _ := group(authority, am, 2)
	capturedPort, _ := group(authority, am, 3)

	userinfo, _ := o.userinfo.merged(capturedUserinfo, true)
	host, _ := o.host.merged(capturedHost, true)
	portText, _ := o.port.merged(capturedPort, true)

	// Normalize and validate each component, ending up with a parsed
	// representation whose components are plain ASCII strings.
	parsedScheme := strings.ToLower(scheme)
	parsedUserinfo := quote(userinfo, userinfoSafe)
	parsedHost, err := encodeHost(host)
	if err != nil {
		return ParseResult{}, err
	}
	parsedPort, hasPort, err := normalizePort(portText, parsedScheme)
	if err != nil {
		return ParseResult{}, err
	}

	hasScheme := parsedScheme != ""
	hasAuthority := parsedUserinfo != "" || parsedHost != "" || hasPort
	if err := validatePath(path, hasScheme, hasAuthority); err != nil {
		return ParseResult{}, err
	}
	// A relative reference keeps its dot segments: they can only be
	// resolved against the base URL the caller joins it with.
	if hasScheme || hasAuthority {
		path = normalizePath(path)
	}

	r := ParseResult{
		scheme:      parsedScheme,
		userinfo:    parsedUserinfo,
		host:        parsedHost,
		port:        parsedPort,
		hasPort:     hasPort,
		path:        quote(path, pathSafe),
		hasQuery:    hasQuery,
		hasFragment: hasFragment,
	}
	if hasQuery {
		r.query = quote(query, querySafe)
	}
	if hasFragment {
		r.fragment = quote(fragment, fragmentSafe)
	}
	return r, nil
}
