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

package folding

import (
	"testing"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "unchanged",
			input:    "ngoi3",
			expected: "ngoi3",
		},
		{
			name:     "case",
			input:    "NGOI3",
			expected: "ngoi3",
		},
		{
			name:     "full width",
			input:    "ｏｉ３",
			expected: "oi3",
		},
		{
			name:     "white space",
			input:    " \toi 3\n",
			expected: "oi3",
		},
		{
			name:     "ideographic space",
			input:    "oi　3",
			expected: "oi3",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := String(test.input)
			if err != nil {
				t.Fatalf("String: %v", err)
			}
			if want := test.expected; want != got {
				t.Fatalf("String(%q); want: %q, got: %q", test.input, want, got)
			}
		})
	}
}
