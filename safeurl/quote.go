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

// https://datatracker.ietf.org/doc/html/rfc3986#section-2.2
const subDelims = "!$&'()*+,;="

// A safeSet holds the characters of one URL component that are exempt
// from percent-encoding, in addition to the always-safe unreserved set.
type safeSet [128]bool

func (s *safeSet) contains(c byte) bool {
	return c < 128 && s[c]
}

// printableExcluding returns the printable ASCII range (0x20 through
// 0x7e) minus the given characters.
func printableExcluding(chars string) *safeSet {
	var s safeSet
	for c := 0x20; c <= 0x7e; c++ {
		s[c] = true
	}
	for i := 0; i < len(chars); i++ {
		s[chars[i]] = false
	}
	return &s
}

// setOf returns the set holding exactly the given characters.
func setOf(chars string) *safeSet {
	var s safeSet
	for i := 0; i < len(chars); i++ {
		s[chars[i]] = true
	}
	return &s
}

// The sets below follow the WHATWG percent-encode sets:
// https://url.spec.whatwg.org/#percent-encoded-bytes
var (
	// The fragment percent-encode set is the C0 control percent-encode
	// set and U+0020 SPACE, U+0022 ("), U+003C (<), U+003E (>), and
	// U+0060 (`).
	fragmentSafe = printableExcluding(" \"<>`")

	// The query percent-encode set is the C0 control percent-encode set
	// and U+0020 SPACE, U+0022 ("), U+0023 (#), U+003C (<), and
	// U+003E (>).
	querySafe = printableExcluding(" \"#<>")

	// The path percent-encode set is the query percent-encode set and
	// U+003F (?), U+0060 (`), U+007B ({), and U+007D (}).
	pathSafe = printableExcluding(" \"#<>?`{}")

	// The WHATWG userinfo percent-encode set is the path percent-encode
	// set and U+002F (/), U+003A (:), U+003B (;), U+003D (=),
	// U+0040 (@), U+005B ([) through U+005E (^), and U+007C (|). It
	// applies to the username and password parts individually.
	usernameSafe = printableExcluding(" \"#<>?`{}/:;=@[\\]^|")
	passwordSafe = printableExcluding(" \"#<>?`{}/:;=@[\\]^|")

	// The combined userinfo component keeps U+003A (:) unescaped so a
	// username:password separator already present in a value survives.
	userinfoSafe = printableExcluding(" \"#<>?`{}/;=@[\\]^|")

	// The host parser leaves the sub-delimiters and a few additional
	// characters verbatim. https://url.spec.whatwg.org/#host-parsing
	hostSafe = setOf(subDelims + "\"`{}%|\\")
)

// isUnreserved reports whether c may appear unescaped in any component.
// https://datatracker.ietf.org/doc/html/rfc3986#section-2.3
func isUnreserved(c byte) bool {
	return 'A' <= c && c <= 'Z' ||
		'a' <= c && c <= 'z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

const upperhex = "0123456789ABCDEF"

// percentEncoded replaces every byte outside the unreserved set and the
// given safe set with its %XX form. Multi-byte characters are encoded
// one UTF-8 byte at a time.
func percentEncoded(text string, safe *safeSet) string {
	escape := false
	for i := 0; i < len(text); i++ {
		if c := text[i]; !isUnreserved(c) && !safe.contains(c) {
			escape = true
			break
		}
	}
	if !escape {
		return text
	}

	var b strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isUnreserved(c) || safe.contains(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

// quote percent-encodes text like percentEncoded, but leaves existing
// %XX escape sequences intact rather than double-encoding them.
func quote(text string, safe *safeSet) string {
	if !strings.Contains(text, "%") {
		return percentEncoded(text, safe)
	}

	var b strings.Builder
	start := 0
	for i := 0; i < len(text); {
		if text[i] == '%' && i+2 < len(text) && ishex(text[i+1]) && ishex(text[i+2]) {
			b.WriteString(percentEncoded(text[start:i], safe))
			b.WriteString(text[i : i+3])
			i += 3
			start = i
			continue
		}
		i++
	}
	b.WriteString(percentEncoded(text[start:], safe))
	return b.String()
}

// percentDecode reverses percent-encoding. Invalid or truncated escape
// sequences are left verbatim rather than rejected, mirroring the
// leniency of the encoder.
func percentDecode(text string) string {
	if !strings.Contains(text, "%") {
		return text
	}

	var b strings.Builder
	for i := 0; i < len(text); {
		if text[i] == '%' && i+2 < len(text) && ishex(text[i+1]) && ishex(text[i+2]) {
			b.WriteByte(unhex(text[i+1])<<4 | unhex(text[i+2]))
			i += 3
			continue
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

// formEncode escapes text for use in a form-encoded query: spaces become
// "+" and every byte outside the unreserved set is percent-encoded.
func formEncode(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == ' ':
			b.WriteByte('+')
		case isUnreserved(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}

// formDecode reverses form encoding: "+" becomes a space, then
// percent-encoding is removed.
func formDecode(text string) string {
	return percentDecode(strings.ReplaceAll(text, "+", " "))
}

// nonPrintableIndex returns the byte offset of the first ASCII control
// character (0x00 through 0x1f, or 0x7f) in text.
func nonPrintableIndex(text string) (int, bool) {
	for i := 0; i < len(text); i++ {
		if c := text[i]; c < 0x20 || c == 0x7f {
			return i, true
		}
	}
	return 0, false
}
