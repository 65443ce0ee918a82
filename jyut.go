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

package jyut

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/ianlewis/go-jyut/dict"
	"github.com/ianlewis/go-jyut/pron"
)

// Placeholder is the pronunciation returned when a lookup has no result.
const Placeholder = pron.Missing

// Option is an option for New.
type Option func(*options)

type options struct {
	pronMap *string
	dict    *string
	strict  bool
	logger  *slog.Logger
}

// WithPronMap loads the packed pronunciation table when the Converter is
// created.
func WithPronMap(packed string) Option {
	return func(o *options) {
		o.pronMap = &packed
	}
}

// WithDict loads the packed character dictionary when the Converter is
// created.
func WithDict(packed string) Option {
	return func(o *options) {
		o.dict = &packed
	}
}

// WithStrict makes loads reject malformed packed strings instead of reading
// them permissively. See [pron.Options] and [dict.Options].
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLogger sets the logger used to report table loads.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Converter looks up the pronunciations of characters. Each table is
// replaced as a whole when it is loaded. Converter is safe for concurrent
// use, though there is no atomicity across the two tables. A lookup
// concurrent with loads may see only one of them loaded.
type Converter struct {
	pronMap atomic.Pointer[pron.Table]
	dict    atomic.Pointer[dict.Dict]

	strict bool
	logger *slog.Logger

	// mu guards reverse.
	mu      sync.Mutex
	reverse *reverseIndex
}

// New returns a new Converter. Tables given with WithPronMap and WithDict
// are loaded before New returns.
func New(opts ...Option) (*Converter, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Converter{
		strict: o.strict,
		logger: o.logger,
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if o.pronMap != nil {
		if err := c.LoadPronMap(*o.pronMap); err != nil {
			return nil, err
		}
	}
	if o.dict != nil {
		if err := c.LoadDict(*o.dict); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// LoadPronMap replaces the pronunciation table with the packed table. An
// error is returned only in strict mode. The previous table is kept if an
// error is returned.
func (c *Converter) LoadPronMap(packed string) error {
	return c.ReadPronMap(strings.NewReader(packed))
}

// ReadPronMap replaces the pronunciation table with the packed table read
// from r.
func (c *Converter) ReadPronMap(r io.Reader) error {
	t, err := pron.New(r, &pron.Options{Strict: c.strict})
	if err != nil {
		return fmt.Errorf("loading pronunciation table: %w", err)
	}
	c.pronMap.Store(t)
	c.logger.Debug("loaded pronunciation table", slog.Int("codes", t.Len()))
	return nil
}

// LoadDict replaces the character dictionary with the packed dictionary. An
// error is returned only in strict mode. The previous dictionary is kept if
// an error is returned.
func (c *Converter) LoadDict(packed string) error {
	return c.ReadDict(strings.NewReader(packed))
}

// ReadDict replaces the character dictionary with the packed dictionary
// read from r.
func (c *Converter) ReadDict(r io.Reader) error {
	d, err := dict.New(r, &dict.Options{Strict: c.strict})
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}
	c.dict.Store(d)
	c.logger.Debug("loaded dictionary", slog.Int("characters", d.Len()))
	return nil
}

// Ready reports whether both tables are loaded.
func (c *Converter) Ready() bool {
	return c.pronMap.Load() != nil && c.dict.Load() != nil
}

// Pronounce returns the pronunciations of char, one per code in the order
// the codes were read. Codes without a pronunciation yield Placeholder in
// their slot. If the Converter is not ready or char has no entry the result
// is []string{Placeholder}.
func (c *Converter) Pronounce(char string) []string {
	return c.snapshot().lookup(char).pronunciations()
}

// PronounceString returns the pronunciations of each character in text. The
// result has one element per character in text whether or not the
// Converter is ready.
func (c *Converter) PronounceString(text string) [][]string {
	return c.snapshot().lookupString(text)
}

// PronounceLines splits text on newlines and returns the result of
// PronounceString for each line. Empty lines yield empty results.
func (c *Converter) PronounceLines(text string) [][][]string {
	s := c.snapshot()
	lines := strings.Split(text, "\n")
	out := make([][][]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, s.lookupString(line))
	}
	return out
}

// tables is a view of the two tables at one point in time.
type tables struct {
	pronMap *pron.Table
	dict    *dict.Dict
}

func (c *Converter) snapshot() tables {
	return tables{
		pronMap: c.pronMap.Load(),
		dict:    c.dict.Load(),
	}
}

type status int

const (
	statusNotReady status = iota
	statusNoEntry
	statusResolved
)

type result struct {
	status status
	prons  []string
}

// pronunciations renders the result. Both unresolved states render as the
// placeholder list.
func (r result) pronunciations() []string {
	if r.status != statusResolved {
		return []string{Placeholder}
	}
	return r.prons
}

func (t tables) lookup(char string) result {
	if t.pronMap == nil || t.dict == nil {
		return result{status: statusNotReady}
	}

	codes := t.dict.Codes(char)
	if codes == nil {
		return result{status: statusNoEntry}
	}

	prons := make([]string, len(codes))
	for i, code := range codes {
		prons[i] = t.pronMap.Resolve(code)
	}
	return result{
		status: statusResolved,
		prons:  prons,
	}
}

func (t tables) lookupString(text string) [][]string {
	out := make([][]string, 0, utf8.RuneCountInString(text))
	for i := 0; i < len(text); {
		// Invalid utf-8 is looked up byte by byte, as the dictionary reads it.
		_, size := utf8.DecodeRuneInString(text[i:])
		out = append(out, t.lookup(text[i:i+size]).pronunciations())
		i += size
	}
	return out
}
