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
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

// TestScanner tests Scanner.
func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		packed   string
		expected []*Pair
		offsets  []int64
	}{
		{
			name:     "empty",
			packed:   "",
			expected: nil,
			offsets:  nil,
		},
		{
			name:   "pairs",
			packed: "Jn:oi3,gf:ngoi3",
			expected: []*Pair{
				{Code: "Jn", Pron: "oi3"},
				{Code: "gf", Pron: "ngoi3"},
			},
			offsets: []int64{0, 7},
		},
		{
			name:   "malformed",
			packed: "Jn,a:b:c,:x",
			expected: []*Pair{
				{Code: "Jn", NoSeparator: true},
				{Code: "a", Pron: "b", ExtraFields: true},
				{Code: "", Pron: "x"},
			},
			offsets: []int64{0, 3, 9},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			// Read one byte at a time to exercise split on partial data.
			s := NewScanner(iotest.OneByteReader(strings.NewReader(test.packed)))

			var pairs []*Pair
			var offsets []int64
			for s.Scan() {
				pairs = append(pairs, s.Pair())
				offsets = append(offsets, s.Offset())
			}
			if err := s.Err(); err != nil {
				t.Fatalf("Scan: %v", err)
			}

			if diff := cmp.Diff(test.expected, pairs); diff != "" {
				t.Errorf("Pair (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.offsets, offsets); diff != "" {
				t.Errorf("Offset (-want, +got):\n%s", diff)
			}
		})
	}
}
