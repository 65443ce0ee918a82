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

package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type reading struct {
	key  string
	char string
}

func (r reading) String() string {
	return r.key
}

var readings = []reading{
	{key: "sam1", char: "心"},
	{key: "oi3", char: "愛"},
	{key: "ngoi3", char: "愛"},
	{key: "oi3", char: "噯"},
	{key: "oi1", char: "哀"},
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "single result",
			query:    "sam1",
			expected: []string{"心"},
		},
		{
			name:     "multiple results keep order",
			query:    "oi3",
			expected: []string{"愛", "噯"},
		},
		{
			name:     "no results",
			query:    "oi",
			expected: nil,
		},
		{
			name:     "past the end",
			query:    "zzz",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := New(readings)

			var got []string
			for _, r := range idx.Search(test.query) {
				got = append(got, r.char)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_Prefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefix   string
		expected []string
	}{
		{
			name:     "tones",
			prefix:   "oi",
			expected: []string{"哀", "愛", "噯"},
		},
		{
			name:     "exact",
			prefix:   "ngoi3",
			expected: []string{"愛"},
		},
		{
			name:     "all",
			prefix:   "",
			expected: []string{"愛", "哀", "愛", "噯", "心"},
		},
		{
			name:     "none",
			prefix:   "x",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := New(readings)

			var got []string
			for _, r := range idx.Prefix(test.prefix) {
				got = append(got, r.char)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Prefix (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNew_copies(t *testing.T) {
	t.Parallel()

	values := []reading{{key: "b"}, {key: "a"}}
	idx := New(values)

	if want, got := "b", values[0].key; want != got {
		t.Fatalf("input modified; want: %q, got: %q", want, got)
	}
	if want, got := 2, idx.Len(); want != got {
		t.Fatalf("Len; want: %d, got: %d", want, got)
	}
}
