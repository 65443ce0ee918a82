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

package pron

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// Missing is returned by Resolve for codes that have no pronunciation.
const Missing = " "

// ErrMalformed indicates that a packed table is not well formed. It is only
// returned when Options.Strict is set.
var ErrMalformed = errors.New("malformed pronunciation table")

// Options are options for reading a pronunciation table.
type Options struct {
	// Strict rejects pairs without a ':' separator, pairs with more than one
	// separator and pairs with an empty code.
	Strict bool
}

// DefaultOptions is the default options for a Table.
var DefaultOptions = &Options{}

// Table is an in-memory pronunciation table. A Table is immutable once
// created and is safe for concurrent use.
type Table struct {
	entries map[string]string
}

// New returns a new Table by reading the packed table from r.
func New(r io.Reader, options *Options) (*Table, error) {
	if options == nil {
		options = DefaultOptions
	}

	t := &Table{
		entries: map[string]string{},
	}

	s := NewScanner(r)
	for s.Scan() {
		p := s.Pair()
		if options.Strict {
			if err := validate(p); err != nil {
				return nil, fmt.Errorf("%w: pair %q at offset %d: %w", ErrMalformed, s.Text(), s.Offset(), err)
			}
		}

		if p.NoSeparator {
			// The code is defined but has no pronunciation. This also shadows
			// any earlier definition.
			delete(t.entries, p.Code)
			continue
		}
		t.entries[p.Code] = p.Pron
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning pronunciation table: %w", err)
	}

	return t, nil
}

// Parse returns a new Table from the packed string.
func Parse(packed string, options *Options) (*Table, error) {
	return New(strings.NewReader(packed), options)
}

var (
	errNoSeparator = errors.New("missing separator")
	errExtraFields = errors.New("too many separators")
	errEmptyCode   = errors.New("empty code")
)

func validate(p *Pair) error {
	switch {
	case p.NoSeparator:
		return errNoSeparator
	case p.ExtraFields:
		return errExtraFields
	case p.Code == "":
		return errEmptyCode
	}
	return nil
}

// Lookup returns the raw pronunciation for the code and whether the code
// was present in the table.
func (t *Table) Lookup(code string) (string, bool) {
	p, ok := t.entries[code]
	return p, ok
}

// Resolve returns the pronunciation for the code. Missing is returned if the
// code is empty, is not in the table or its pronunciation is empty.
func (t *Table) Resolve(code string) string {
	if code == "" {
		return Missing
	}
	if p := t.entries[code]; p != "" {
		return p
	}
	return Missing
}

// Len returns the number of codes in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Codes returns the codes in the table in sorted order.
func (t *Table) Codes() []string {
	return slices.Sorted(maps.Keys(t.entries))
}
