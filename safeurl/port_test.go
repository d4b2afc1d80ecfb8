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
	"errors"
	"testing"
)

func TestNormalizePort(t *testing.T) {
	tests := []struct {
		name     string
		port     string
		scheme   string
		wantPort int
		wantOK   bool
	}{
		{
			name:   "No port text",
			port:   "",
			scheme: "http",
		},
		{
			name:   "Default HTTP port elided",
			port:   "80",
			scheme: "http",
		},
		{
			name:   "Default HTTPS port elided",
			port:   "443",
			scheme: "https",
		},
		{
			name:   "Default FTP port elided",
			port:   "21",
			scheme: "ftp",
		},
		{
			name:   "Default websocket port elided",
			port:   "80",
			scheme: "ws",
		},
		{
			name:   "Elision compares numeric values",
			port:   "080",
			scheme: "http",
		},
		{
			name:     "Non-default port kept",
			port:     "8080",
			scheme:   "http",
			wantPort: 8080,
			wantOK:   true,
		},
		{
			name:     "Unknown scheme keeps any port",
			port:     "80",
			scheme:   "gopher",
			wantPort: 80,
			wantOK:   true,
		},
		{
			name:     "No scheme keeps any port",
			port:     "8080",
			scheme:   "",
			wantPort: 8080,
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port, ok, err := normalizePort(tt.port, tt.scheme)
			if err != nil {
				t.Fatalf("normalizePort(%q, %q) got err: %v want: nil", tt.port, tt.scheme, err)
			}
			if port != tt.wantPort || ok != tt.wantOK {
				t.Errorf("normalizePort(%q, %q) got: %v, %v want: %v, %v", tt.port, tt.scheme, port, ok, tt.wantPort, tt.wantOK)
			}
		})
	}
}

func TestNormalizePortInvalid(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{
			name: "Non-numeric",
			port: "abc",
		},
		{
			name: "Negative",
			port: "-1",
		},
		{
			name: "Above 65535",
			port: "70000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := normalizePort(tt.port, "http")
			if err == nil {
				t.Fatalf("normalizePort(%q) got: nil want: port error", tt.port)
			}
			var urlErr *InvalidURLError
			if !errors.As(err, &urlErr) || urlErr.Reason != ReasonPort {
				t.Errorf("normalizePort(%q) error got: %v want reason: ReasonPort", tt.port, err)
			}
		})
	}
}
