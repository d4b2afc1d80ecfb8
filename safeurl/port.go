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

import "strconv"

// Well-known default ports, elided from the canonical form.
// https://url.spec.whatwg.org/#url-miscellaneous
var defaultPorts = map[string]int{
	"ftp":   21,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

// normalizePort parses optional port text into an integer. It reports
// no port both when the text is empty and when the port equals the
// well-known default for the given scheme, so "http://example.com:80"
// and "http://example.com" normalize identically. Non-numeric or
// out-of-range text is a port-invalid error.
func normalizePort(port, scheme string) (int, bool, error) {
	if port == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return 0, false, errPort(port)
	}
	if d, ok := defaultPorts[scheme]; ok && n == d {
		return 0, false, nil
	}
	return n, true, nil
}
