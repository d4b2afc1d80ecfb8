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

import "fmt"

// Reason classifies why a URL or URL component was rejected.
type Reason int

const (
	// ReasonTooLong indicates a URL longer than MaxURLLength.
	ReasonTooLong Reason = iota + 1
	// ReasonComponentTooLong indicates a supplied component longer than
	// MaxURLLength.
	ReasonComponentTooLong
	// ReasonNonPrintable indicates an ASCII control character in the URL
	// or in a supplied component.
	ReasonNonPrintable
	// ReasonComponentSyntax indicates a supplied component that does not
	// match its component grammar.
	ReasonComponentSyntax
	// ReasonHost indicates a malformed IP literal or IDNA hostname.
	ReasonHost
	// ReasonPort indicates a non-numeric or out-of-range port.
	ReasonPort
	// ReasonPath indicates a path shape that conflicts with the presence
	// or absence of a scheme or authority.
	ReasonPath
)

// InvalidURLError describes a URL rejected by Parse, ParseComponents or
// CopyWith. Parsing never produces a partial result alongside an error.
type InvalidURLError struct {
	// Reason classifies the failure.
	Reason Reason
	// Component names the component the failure applies to, such as
	// "host" or "port". It is empty for whole-URL failures.
	Component string
	// Index is the byte offset of the offending character when Reason is
	// ReasonNonPrintable.
	Index int

	msg string
}

func (e *InvalidURLError) Error() string {
	return e.msg
}

func errTooLong() error {
	return &InvalidURLError{Reason: ReasonTooLong, msg: "URL too long"}
}

func errComponentTooLong(component string) error {
	return &InvalidURLError{
		Reason:    ReasonComponentTooLong,
		Component: component,
		msg:       fmt.Sprintf("URL component %q too long", component),
	}
}

func errNonPrintable(component string, char byte, index int) error {
	e := &InvalidURLError{Reason: ReasonNonPrintable, Component: component, Index: index}
	if component == "" {
		e.msg = fmt.Sprintf("invalid non-printable ASCII character %q in URL at position %d", char, index)
	} else {
		e.msg = fmt.Sprintf("invalid non-printable ASCII character %q in URL %s component at position %d", char, component, index)
	}
	return e
}

func errComponentSyntax(component string) error {
	return &InvalidURLError{
		Reason:    ReasonComponentSyntax,
		Component: component,
		msg:       fmt.Sprintf("invalid URL component %q", component),
	}
}

func errHost(format string, args ...interface{}) error {
	return &InvalidURLError{
		Reason:    ReasonHost,
		Component: "host",
		msg:       fmt.Sprintf(format, args...),
	}
}

func errPort(port string) error {
	return &InvalidURLError{
		Reason:    ReasonPort,
		Component: "port",
		msg:       fmt.Sprintf("invalid port: %q", port),
	}
}

func errPath(msg string) error {
	return &InvalidURLError{Reason: ReasonPath, Component: "path", msg: msg}
}
