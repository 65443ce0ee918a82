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

package dict

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// MaxCodeLen is the maximum number of letters read for a single code.
const MaxCodeLen = 2

// Entry is a single key and code read from a packed dictionary.
type Entry struct {
	// Key is the dictionary key. It is a single character.
	Key string

	// Code is the code following the key. It may be empty.
	Code string
}

// Scanner scans a packed dictionary from start to end.
type Scanner struct {
	s      *bufio.Scanner
	offset int64
	start  int64
}

// NewScanner returns a new Scanner that reads entries from r.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		s: bufio.NewScanner(r),
	}
	s.s.Split(s.splitEntry)
	return s
}

// Scan advances the scanner to the next entry. It returns false if the scan
// stops either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Offset returns the byte offset of the current entry in the input.
func (s *Scanner) Offset() int64 {
	return s.start
}

// Entry returns the current entry.
func (s *Scanner) Entry() *Entry {
	b := s.s.Bytes()
	_, size := utf8.DecodeRune(b)
	return &Entry{
		Key:  string(b[:size]),
		Code: string(b[size:]),
	}
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// splitEntry splits a key and the letters that follow it.
func (s *Scanner) splitEntry(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if !atEOF && !utf8.FullRune(data) {
		// Request more data.
		return 0, nil, nil
	}

	_, i := utf8.DecodeRune(data)
	for n := 0; n < MaxCodeLen; n++ {
		if i >= len(data) {
			if atEOF {
				break
			}
			// The next byte decides whether the code continues.
			return 0, nil, nil
		}
		if !isLetter(data[i]) {
			break
		}
		i++
	}

	s.start = s.offset
	s.offset += int64(i)
	return i, data[:i], nil
}
