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

// Package asset implements opening packed dictionary files.
//
// Packed files may be stored plain, gzip compressed (.gz) or dictzip
// compressed (.dz), and may be in a legacy text encoding.
package asset

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNotFound indicates that no packed file was found.
var ErrNotFound = errors.New("asset not found")

// ErrUnknownEncoding indicates that the text encoding name is not known.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Options are options for opening packed files.
type Options struct {
	// Encoding is the WHATWG name of the text encoding of the file (e.g.
	// "big5", "gbk"). The default is utf-8.
	Encoding string
}

// DefaultOptions is the default options.
var DefaultOptions = &Options{}

// exts are the file extensions probed by Find, in order.
var exts = []string{
	"",
	".gz",
	".GZ",
	".dz",
	".DZ",
}

// Find returns the path of the first packed file named base in dirs. A
// file with a compressed extension added to base is also accepted.
func Find(dirs []string, base string) (string, error) {
	for _, dir := range dirs {
		for _, ext := range exts {
			path := filepath.Join(dir, base+ext)
			info, err := os.Stat(path)
			if err == nil && !info.IsDir() {
				return path, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("finding %q: %w", base, err)
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, base)
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

// Close closes the decompressor, if any, and the file.
func (r *readCloser) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i].Close())
	}
	return errors.Join(errs...)
}

// Open opens the packed file at path. The returned reader decompresses and
// decodes the file to utf-8 and must be closed by the caller.
func Open(path string, options *Options) (io.ReadCloser, error) {
	if options == nil {
		options = DefaultOptions
	}

	dec, err := decoder(options.Encoding)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	rc := &readCloser{
		Reader:  f,
		closers: []io.Closer{f},
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		rc.Reader = z
		rc.closers = append(rc.closers, z)
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		rc.Reader = z
		rc.closers = append(rc.closers, z)
	}

	if dec != nil {
		rc.Reader = transform.NewReader(rc.Reader, dec)
	}

	return rc, nil
}

// ReadString reads the whole packed file at path.
func ReadString(path string, options *Options) (string, error) {
	r, err := Open(path, options)
	if err != nil {
		return "", err
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	return string(b), nil
}

// decoder returns the decoder for the named encoding, or nil for utf-8.
func decoder(name string) (transform.Transformer, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc.NewDecoder(), nil
}
