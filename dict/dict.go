// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dict

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// CodeSep separates codes in the value returned by CodesFor.
const CodeSep = ","

// ErrMalformed indicates that a packed dictionary is not well formed. It is
// only returned when Options.Strict is set.
var ErrMalformed = errors.New("malformed dictionary")

var (
	errLetterKey   = errors.New("key is an ASCII letter")
	errInvalidUTF8 = errors.New("invalid utf-8")
)

// Options are options for reading a dictionary.
type Options struct {
	// Strict rejects keys that are ASCII letters and keys that are not valid
	// utf-8. A letter key usually means that the preceding code was longer
	// than MaxCodeLen.
	Strict bool
}

// DefaultOptions is the default options for a Dict.
var DefaultOptions = &Options{}

// Dict is an in-memory character dictionary. A Dict is immutable once
// created and is safe for concurrent use.
type Dict struct {
	entries map[string][]string

	// keys holds keys in the order they were first read.
	keys []string
}

// New returns a new Dict by reading the packed dictionary from r.
func New(r io.Reader, options *Options) (*Dict, error) {
	if options == nil {
		options = DefaultOptions
	}

	d := &Dict{
		entries: map[string][]string{},
	}

	s := NewScanner(r)
	for s.Scan() {
		e := s.Entry()
		if options.Strict {
			if err := validate(e); err != nil {
				return nil, fmt.Errorf("%w: key %q at offset %d: %w", ErrMalformed, e.Key, s.Offset(), err)
			}
		}

		codes, ok := d.entries[e.Key]
		if !ok {
			d.keys = append(d.keys, e.Key)
		}
		d.entries[e.Key] = append(codes, e.Code)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning dictionary: %w", err)
	}

	return d, nil
}

// Parse returns a new Dict from the packed string.
func Parse(packed string, options *Options) (*Dict, error) {
	return New(strings.NewReader(packed), options)
}

func validate(e *Entry) error {
	r, size := utf8.DecodeRuneInString(e.Key)
	if r == utf8.RuneError && size <= 1 {
		return errInvalidUTF8
	}
	if size == 1 && isLetter(e.Key[0]) {
		return errLetterKey
	}
	return nil
}

// CodesFor returns the codes for the key joined by CodeSep and whether the
// key was found.
func (d *Dict) CodesFor(key string) (string, bool) {
	codes, ok := d.entries[key]
	if !ok {
		return "", false
	}
	return strings.Join(codes, CodeSep), true
}

// Codes returns the codes for the key in the order they were read. It
// returns nil if the key is not in the dictionary.
func (d *Dict) Codes(key string) []string {
	return slices.Clone(d.entries[key])
}

// Len returns the number of keys in the dictionary.
func (d *Dict) Len() int {
	return len(d.keys)
}

// Keys returns the keys in the dictionary in the order they were first read.
func (d *Dict) Keys() []string {
	return slices.Clone(d.keys)
}
