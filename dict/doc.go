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

// Package dict implements reading packed character dictionaries.
//
// A packed character dictionary maps characters to pronunciation codes. It
// has no separators. Each entry comes in two parts:
//  1. The key: a single utf-8 encoded character. Any character is allowed
//     except the ASCII letters.
//  2. The code: zero, one or two ASCII letters (A-Z, a-z).
//
// Entries are read greedily from left to right, so the dictionary
//
//	愛Jngf心ab
//
// maps 愛 to the code "Jn", then 愛 again to "gf", then 心 to "ab". A key
// that appears more than once accumulates its codes in the order they were
// read.
//
// The format relies on two preconditions that the decoder cannot check
// without ambiguity: codes are at most two letters long and keys are never
// ASCII letters. Input that breaks them is silently misparsed unless
// Options.Strict is set.
package dict
