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

// Package folding implements folding of pronunciation readings so that
// they can be compared loosely.
package folding

import (
	"fmt"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Reading returns a new [transform.Transformer] that folds a reading. Full
// width forms are narrowed, case is folded and all white space is removed,
// so "ＯＩ3" and " oi3 " both fold to "oi3".
func Reading() transform.Transformer {
	return transform.Chain(
		width.Narrow,
		cases.Fold(),
		runes.Remove(runes.In(unicode.White_Space)),
	)
}

// String folds the reading s.
func String(s string) (string, error) {
	folded, _, err := transform.String(Reading(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}
