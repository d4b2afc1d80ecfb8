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
	"net/netip"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// A cheap shape check before handing off to net/netip for real
// validation: anything of this shape must parse as an IPv4 address.
var ipv4StyleHost = regexp.MustCompile(`\A[0-9]+\.[0-9]+\.[0-9]+\.[0-9]+\z`)

// encodeHost normalizes free-form host text into its canonical ASCII
// form: a validated IPv4 or IPv6 literal (without brackets), a
// lowercased registered name, or an IDNA-encoded internationalized
// name. It returns a host-invalid error for malformed IP literals and
// for names that IDNA rejects.
func encodeHost(host string) (string, error) {
	if host == "" {
		return "", nil
	}

	if ipv4StyleHost.MatchString(host) {
		addr, err := netip.ParseAddr(host)
		if err != nil || !addr.Is4() {
			return "", errHost("invalid IPv4 address: %q", host)
		}
		return host, nil
	}

	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		// The brackets exist only to delimit the literal within an
		// authority. The canonical host is the bare address text.
		ip := host[1 : len(host)-1]
		addr, err := netip.ParseAddr(ip)
		if err != nil || !addr.Is6() {
			return "", errHost("invalid IPv6 address: %q", host)
		}
		return ip, nil
	}

	if isASCII(host) {
		return quote(strings.ToLower(host), hostSafe), nil
	}

	encoded, err := idna.Lookup.ToASCII(norm.NFC.String(strings.ToLower(host)))
	if err != nil {
		return "", errHost("invalid IDNA hostname: %q", host)
	}
	return encoded, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
