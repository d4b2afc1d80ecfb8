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
	"sort"
	"strings"
)

// QueryParams holds URL query parameters as an immutable multimap that
// preserves the order in which keys first appear. The editing methods
// return a new QueryParams and leave the receiver untouched, so values
// can be shared freely. The zero value is an empty QueryParams.
type QueryParams struct {
	keys   []string
	values map[string][]string
}

// ParseQuery parses form-encoded query text, such as "a=1&b=2&a=3".
// Items without "=" become keys with an empty value. Keys and values
// are form-decoded.
func ParseQuery(query string) QueryParams {
	if query == "" {
		return QueryParams{}
	}
	var p QueryParams
	for _, item := range strings.Split(query, "&") {
		key, value, _ := strings.Cut(item, "=")
		p.append(formDecode(key), formDecode(value))
	}
	return p
}

// NewQueryParams builds a QueryParams from key-value pairs, keeping
// the given order and multiplicity.
func NewQueryParams(pairs ...[2]string) QueryParams {
	var p QueryParams
	for _, pair := range pairs {
		p.append(pair[0], pair[1])
	}
	return p
}

// append mutates p. It is only used while a new value is under
// construction, before it is handed out.
func (p *QueryParams) append(key, value string) {
	if p.values == nil {
		p.values = make(map[string][]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = append(p.values[key], value)
}

func (p QueryParams) clone() QueryParams {
	q := QueryParams{
		keys:   append([]string(nil), p.keys...),
		values: make(map[string][]string, len(p.values)),
	}
	for key, values := range p.values {
		q.values[key] = append([]string(nil), values...)
	}
	return q
}

// Keys returns the distinct keys, in first-insertion order.
func (p QueryParams) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Get returns the first value for key and whether the key is present.
func (p QueryParams) Get(key string) (string, bool) {
	values, ok := p.values[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// GetAll returns all values for key, in insertion order.
func (p QueryParams) GetAll(key string) []string {
	return append([]string(nil), p.values[key]...)
}

// Has reports whether key is present.
func (p QueryParams) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Len returns the number of distinct keys.
func (p QueryParams) Len() int {
	return len(p.keys)
}

// Set returns a copy of p with value as the only value for key.
func (p QueryParams) Set(key, value string) QueryParams {
	q := p.clone()
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = []string{value}
	return q
}

// Add returns a copy of p with value appended to the values for key.
func (p QueryParams) Add(key, value string) QueryParams {
	q := p.clone()
	q.append(key, value)
	return q
}

// Remove returns a copy of p without key.
func (p QueryParams) Remove(key string) QueryParams {
	q := p.clone()
	if _, ok := q.values[key]; !ok {
		return q
	}
	delete(q.values, key)
	for i, k := range q.keys {
		if k == key {
			q.keys = append(q.keys[:i], q.keys[i+1:]...)
			break
		}
	}
	return q
}

// Merge returns a copy of p with every key of other replacing the
// receiver's values for that key. The receiver's keys keep their
// order; keys new to p follow in other's order.
func (p QueryParams) Merge(other QueryParams) QueryParams {
	q := p.clone()
	for _, key := range other.keys {
		if _, ok := q.values[key]; !ok {
			q.keys = append(q.keys, key)
		}
		q.values[key] = append([]string(nil), other.values[key]...)
	}
	return q
}

// String renders the parameters in form encoding, in multimap order.
func (p QueryParams) String() string {
	var b strings.Builder
	for _, key := range p.keys {
		for _, value := range p.values[key] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(formEncode(key))
			b.WriteByte('=')
			b.WriteString(formEncode(value))
		}
	}
	return b.String()
}

// Equal reports whether p and other hold the same multiset of
// key-value pairs, ignoring order.
func (p QueryParams) Equal(other QueryParams) bool {
	a := p.sortedPairs()
	b := other.sortedPairs()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (p QueryParams) sortedPairs() [][2]string {
	var pairs [][2]string
	for _, key := range p.keys {
		for _, value := range p.values[key] {
			pairs = append(pairs, [2]string{key, value})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}
