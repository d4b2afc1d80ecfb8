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

// An Option supplies one URL component to Parse, ParseComponents or
// CopyWith. A supplied component takes precedence over the
// corresponding part of the URL string. Supplying the same component
// twice keeps the last value.
//
// Options come in three flavors, matching the three states a component
// can be in: not supplying an option leaves the component to the URL
// string, a With option supplies a concrete value, and a Without option
// supplies an explicitly absent component.
type Option func(*overrides)

// An override is a component value supplied through an option. present
// distinguishes a concrete value from a component that was explicitly
// supplied as absent.
type override struct {
	value   string
	present bool
}

// text collapses the absent states: both an unsupplied and an
// explicitly absent override read as "".
func (o *override) text() string {
	if o == nil {
		return ""
	}
	return o.value
}

// merged resolves an override against a captured grammar group,
// preserving the absent/empty distinction of whichever side wins.
func (o *override) merged(captured string, ok bool) (string, bool) {
	if o == nil {
		return captured, ok
	}
	return o.value, o.present
}

func supplied(value string) *override {
	return &override{value: value, present: true}
}

// overrides is the bag of components supplied through options. A nil
// field means the component was not supplied at all. The derived
// fields (netloc, username, password, rawPath, params) only exist
// until reconcile rewrites them onto the canonical components.
type overrides struct {
	scheme    *override
	authority *override
	netloc    *override
	userinfo  *override
	username  *override
	password  *override
	host      *override
	port      *override
	path      *override
	rawPath   *override
	query     *override
	fragment  *override
	params    *QueryParams
}

// WithScheme supplies the URL scheme, such as "http" or "https".
func WithScheme(scheme string) Option {
	return func(o *overrides) { o.scheme = supplied(scheme) }
}

// WithAuthority supplies the full authority, in userinfo@host:port
// form.
func WithAuthority(authority string) Option {
	return func(o *overrides) { o.authority = supplied(authority) }
}

// WithNetloc supplies the host and optional port as a single
// "host:port" value, replacing any host or port supplied earlier.
func WithNetloc(netloc string) Option {
	return func(o *overrides) { o.netloc = supplied(netloc) }
}

// WithUserinfo supplies the userinfo component. The value is treated
// as a combined username:password pair, so a ":" it contains stays
// unescaped. To build the userinfo from parts, use WithUsername and
// WithPassword instead.
func WithUserinfo(userinfo string) Option {
	return func(o *overrides) { o.userinfo = supplied(userinfo) }
}

// WithUsername supplies the username part of the userinfo. It is
// percent-encoded on its own before being joined with the password, so
// it may contain any character, including ":" and "@".
func WithUsername(username string) Option {
	return func(o *overrides) { o.username = supplied(username) }
}

// WithPassword supplies the password part of the userinfo. Like
// WithUsername, it is percent-encoded on its own before joining.
func WithPassword(password string) Option {
	return func(o *overrides) { o.password = supplied(password) }
}

// WithHost supplies the host. An IPv6 literal may be given with or
// without its surrounding brackets.
func WithHost(host string) Option {
	return func(o *overrides) { o.host = supplied(host) }
}

// WithPort supplies the port.
func WithPort(port int) Option {
	return func(o *overrides) { o.port = supplied(strconv.Itoa(port)) }
}

// WithoutPort supplies an explicitly absent port, discarding any port
// in the URL string.
func WithoutPort() Option {
	return func(o *overrides) { o.port = &override{} }
}

// WithPath supplies the path.
func WithPath(path string) Option {
	return func(o *overrides) { o.path = supplied(path) }
}

// WithRawPath supplies the path and query as a single request-target
// value: everything after the first "?" becomes the query. Without a
// "?" the query is explicitly absent.
func WithRawPath(rawPath string) Option {
	return func(o *overrides) { o.rawPath = supplied(rawPath) }
}

// WithQuery supplies the query. The empty string is a present, empty
// query and serializes as a trailing "?".
func WithQuery(query string) Option {
	return func(o *overrides) { o.query = supplied(query) }
}

// WithoutQuery supplies an explicitly absent query.
func WithoutQuery() Option {
	return func(o *overrides) { o.query = &override{} }
}

// WithFragment supplies the fragment. The empty string is a present,
// empty fragment and serializes as a trailing "#".
func WithFragment(fragment string) Option {
	return func(o *overrides) { o.fragment = supplied(fragment) }
}

// WithoutFragment supplies an explicitly absent fragment.
func WithoutFragment() Option {
	return func(o *overrides) { o.fragment = &override{} }
}

// WithParams supplies the query as a QueryParams value, replacing any
// query supplied earlier. An empty QueryParams makes the query absent.
func WithParams(params QueryParams) Option {
	return func(o *overrides) { o.params = &params }
}

// reconcile rewrites the derived fields onto the canonical components,
// leaving only scheme, authority, userinfo, host, port, path, query
// and fragment behind.
func (o *overrides) reconcile() {
	// Replace netloc with host and port.
	if o.netloc != nil {
		host, port, _ := strings.Cut(o.netloc.text(), ":")
		o.host = supplied(host)
		o.port = supplied(port)
		o.netloc = nil
	}

	// Replace username and/or password with userinfo. Each part is
	// percent-encoded with its own safe set, under which ":" is never
	// exempt, before the separator is inserted.
	if o.username != nil || o.password != nil {
		username := quote(o.username.text(), usernameSafe)
		password := quote(o.password.text(), passwordSafe)
		if password != "" {
			o.userinfo = supplied(username + ":" + password)
		} else {
			o.userinfo = supplied(username)
		}
		o.username = nil
		o.password = nil
	}

	// Replace params with query.
	if o.params != nil {
		if o.params.Len() == 0 {
			o.query = &override{}
		} else {
			o.query = supplied(o.params.String())
		}
		o.params = nil
	}

	// Replace rawPath with path and query.
	if o.rawPath != nil {
		path, query, found := strings.Cut(o.rawPath.text(), "?")
		o.path = supplied(path)
		if found {
			o.query = supplied(query)
		} else {
			o.query = &override{}
		}
		o.rawPath = nil
	}

	// Ensure an IPv6 host is bracket-delimited, so the authority
	// grammar does not misread the literal's internal colons as the
	// host:port separator.
	if o.host != nil && o.host.present {
		if h := o.host.value; strings.Contains(h, ":") && !(strings.HasPrefix(h, "[") && strings.HasSuffix(h, "]")) {
			o.host = supplied("[" + h + "]")
		}
	}
}

// validate checks every supplied component against the length cap, the
// control-character ban and its component grammar. It must run after
// reconcile, so that derived values like a netloc-supplied host are
// checked too.
func (o *overrides) validate() error {
	components := []struct {
		name string
		o    *override
	}{
		{"scheme", o.scheme},
		{"authority", o.authority},
		{"userinfo", o.userinfo},
		{"host", o.host},
		{"port", o.port},
		{"path", o.path},
		{"query", o.query},
		{"fragment", o.fragment},
	}
	for _, c := range components {
		if c.o == nil || !c.o.present {
			continue
		}
		if len(c.o.value) > MaxURLLength {
			return errComponentTooLong(c.name)
		}
		if i, ok := nonPrintableIndex(c.o.value); ok {
			return errNonPrintable(c.name, c.o.value[i], i)
		}
		if !componentRegex[c.name].MatchString(c.o.value) {
			return errComponentSyntax(c.name)
		}
	}
	return nil
}
