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

package testutil

import (
	"strings"

	"github.com/ianlewis/go-jyut/dict"
	"github.com/ianlewis/go-jyut/pron"
)

// MakePronMap makes a packed pronunciation table from the given pairs.
// Pairs with NoSeparator set are written as a bare code.
func MakePronMap(pairs []*pron.Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.Code)
		if !p.NoSeparator {
			b.WriteByte(':')
			b.WriteString(p.Pron)
		}
	}
	return b.String()
}

// MakeDict makes a packed dictionary from the given entries. Entries are
// written as is, so codes longer than dict.MaxCodeLen produce a dictionary
// that is misread.
func MakeDict(entries []*dict.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Key)
		b.WriteString(e.Code)
	}
	return b.String()
}
