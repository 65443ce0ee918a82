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
	"log/slog"

	"github.com/ianlewis/go-jyut/dict"
	"github.com/ianlewis/go-jyut/internal/folding"
	"github.com/ianlewis/go-jyut/internal/index"
	"github.com/ianlewis/go-jyut/pron"
)

type reading struct {
	folded string
	char   string
}

func (r *reading) String() string {
	return r.folded
}

// reverseIndex maps folded pronunciations back to characters for one pair
// of tables.
type reverseIndex struct {
	pronMap *pron.Table
	dict    *dict.Dict
	index   *index.Index[*reading]
}

// Search returns the characters that have the pronunciation query. The
// query and the pronunciations are compared after folding case, width and
// white space. Characters are returned once each, ordered by pronunciation
// and then by their order in the dictionary. Search returns nil if the
// Converter is not ready.
func (c *Converter) Search(query string) ([]string, error) {
	return c.search(query, (*index.Index[*reading]).Search)
}

// SearchPrefix is like Search but returns the characters that have a
// pronunciation starting with prefix, such as all tones of a syllable.
func (c *Converter) SearchPrefix(prefix string) ([]string, error) {
	return c.search(prefix, (*index.Index[*reading]).Prefix)
}

func (c *Converter) search(query string, find func(*index.Index[*reading], string) []*reading) ([]string, error) {
	idx, err := c.readings()
	if err != nil {
		return nil, err
	}
	if idx == nil {
		return nil, nil
	}

	folded, err := folding.String(query)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}

	var chars []string
	seen := map[string]bool{}
	for _, r := range find(idx, folded) {
		if seen[r.char] {
			continue
		}
		seen[r.char] = true
		chars = append(chars, r.char)
	}
	return chars, nil
}

// readings returns the reverse index for the current tables, building it
// if the tables changed since it was last built.
func (c *Converter) readings() (*index.Index[*reading], error) {
	t := c.snapshot()
	if t.pronMap == nil || t.dict == nil {
		return nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reverse != nil && c.reverse.pronMap == t.pronMap && c.reverse.dict == t.dict {
		return c.reverse.index, nil
	}

	var readings []*reading
	for _, char := range t.dict.Keys() {
		for _, code := range t.dict.Codes(char) {
			p := t.pronMap.Resolve(code)
			if p == Placeholder {
				continue
			}
			folded, err := folding.String(p)
			if err != nil {
				return nil, fmt.Errorf("indexing %q: %w", char, err)
			}
			readings = append(readings, &reading{
				folded: folded,
				char:   char,
			})
		}
	}

	c.reverse = &reverseIndex{
		pronMap: t.pronMap,
		dict:    t.dict,
		index:   index.New(readings),
	}
	c.logger.Debug("built reverse index", slog.Int("readings", len(readings)))
	return c.reverse.index, nil
}
