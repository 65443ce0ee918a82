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
	"bufio"
	"bytes"
	"io"
	"math"
	"strings"
)

const (
	pairSep  = ','
	fieldSep = ":"
)

// Pair is a single code and pronunciation pair from a packed table.
type Pair struct {
	// Code is the pronunciation code.
	Code string

	// Pron is the pronunciation. It is empty if the pair had no separator.
	Pron string

	// NoSeparator is true if the pair had no ':' separator at all.
	NoSeparator bool

	// ExtraFields is true if the pair had more than one ':' separator. Only
	// the first two fields are used.
	ExtraFields bool
}

// Scanner scans a packed pronunciation table from start to end.
type Scanner struct {
	s      *bufio.Scanner
	offset int64
	start  int64
}

// NewScanner returns a new Scanner that reads pairs from r.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		s: bufio.NewScanner(r),
	}
	// Pairs have no length limit.
	s.s.Buffer(nil, math.MaxInt)
	s.s.Split(s.splitPair)
	return s
}

// Scan advances the scanner to the next pair. It returns false if the scan
// stops either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Offset returns the byte offset of the current pair in the input.
func (s *Scanner) Offset() int64 {
	return s.start
}

// Text returns the raw text of the current pair.
func (s *Scanner) Text() string {
	return s.s.Text()
}

// Pair returns the current pair.
func (s *Scanner) Pair() *Pair {
	fields := strings.SplitN(s.s.Text(), fieldSep, 3)
	p := &Pair{Code: fields[0]}
	switch len(fields) {
	case 1:
		p.NoSeparator = true
	case 3:
		p.ExtraFields = true
		fallthrough
	default:
		p.Pron = fields[1]
	}
	return p
}

// splitPair splits the input on the pair separator.
func (s *Scanner) splitPair(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, pairSep); i >= 0 {
		s.start = s.offset
		s.offset += int64(i + 1)
		return i + 1, data[:i], nil
	}

	if atEOF {
		s.start = s.offset
		s.offset += int64(len(data))
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}
