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

// Package jyut implements character pronunciation lookup over packed
// pronunciation dictionaries in pure Go.
//
// A dictionary is supplied as two packed strings:
//  1. A pronunciation table that maps short codes to pronunciations (e.g.
//     Jyutping). See package [github.com/ianlewis/go-jyut/pron].
//  2. A character dictionary that maps characters to one or more codes.
//     See package [github.com/ianlewis/go-jyut/dict].
//
// The two tables are loaded independently and in any order into a
// [Converter], which answers lookups for characters, strings and multi-line
// text. Lookups never fail. Until both tables are loaded, and for characters
// without an entry, the result is the single element placeholder list
// []string{" "}.
package jyut
