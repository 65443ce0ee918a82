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
	"fmt"
	"slices"
	"strings"
)

// Index is a read-only sorted array index. Values are keyed by the result of
// their String method.
type Index[V fmt.Stringer] struct {
	// values is sorted by key. Values with equal keys keep their original
	// relative order.
	values []V
}

// New creates an index from the given values. The slice is copied.
func New[V fmt.Stringer](values []V) *Index[V] {
	sorted := slices.Clone(values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return strings.Compare(a.String(), b.String())
	})

	return &Index[V]{
		values: sorted,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.values)
}

// Search performs a binary search over the index and returns the values
// whose key equals key.
func (idx *Index[V]) Search(key string) []V {
	i, found := idx.find(key)
	if !found {
		return nil
	}

	j := i + 1
	for j < len(idx.values) && idx.values[j].String() == key {
		j++
	}
	return idx.values[i:j:j]
}

// Prefix returns the values whose key starts with prefix, in key order.
func (idx *Index[V]) Prefix(prefix string) []V {
	i, _ := idx.find(prefix)

	j := i
	for j < len(idx.values) && strings.HasPrefix(idx.values[j].String(), prefix) {
		j++
	}
	if i == j {
		return nil
	}
	return idx.values[i:j:j]
}

// find returns the position of the first value with a key not less than key.
func (idx *Index[V]) find(key string) (int, bool) {
	return slices.BinarySearchFunc(idx.values, key, func(v V, k string) int {
		return strings.Compare(v.String(), k)
	})
}
