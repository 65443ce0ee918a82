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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-jyut/dict"
	"github.com/ianlewis/go-jyut/internal/asset"
	"github.com/ianlewis/go-jyut/internal/testutil"
)

// NOTE: cli.Command values are shared between apps and are modified when an
//       app is run so these tests do not run in parallel.

// makeDataDir writes a data directory with a plain pronunciation table and
// a gzip compressed dictionary.
func makeDataDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	testutil.WriteFile(t, dir, pronMapName, []byte("Jn:oi3,gf:ngoi3,sm:sam1"), testutil.None)
	testutil.WriteFile(t, dir, dictName+".gz", []byte("愛Jn愛gf心ab森sm"), testutil.Gzip)
	return dir
}

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newJyutApp()
	app.Name = "jyututil"
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"jyututil"}, args...))
	return stdout.String(), err
}

func TestLookup(t *testing.T) {
	dir := makeDataDir(t)

	out, err := runApp(t, "", "--data-dir", dir, "lookup", "愛心", "森")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			rows = append(rows, fields)
		}
	}

	for _, want := range [][]string{
		{"Character", "Pronunciation"},
		{"愛", "oi3/ngoi3"},
		// The placeholder pronunciation is blank.
		{"心"},
		{"森", "sam1"},
	} {
		if !slices.ContainsFunc(rows, func(row []string) bool { return slices.Equal(row, want) }) {
			t.Errorf("lookup: missing row %q in output:\n%s", want, out)
		}
	}
}

func TestConvert(t *testing.T) {
	dir := makeDataDir(t)
	inputPath := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(inputPath, []byte("愛心\n森\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "json stdin",
			stdin:    "愛心\n森\n",
			args:     []string{"--format", "json"},
			expected: `[[["oi3","ngoi3"],[" "]],[["sam1"]]]` + "\n",
		},
		{
			name:     "json empty line",
			stdin:    "愛\n\n森",
			args:     []string{"-f", "json", "-"},
			expected: `[[["oi3","ngoi3"]],[],[["sam1"]]]` + "\n",
		},
		{
			name:     "text file",
			args:     []string{inputPath},
			expected: "愛心\noi3/ngoi3  \n森\nsam1\n",
		},
		{
			name:     "html",
			stdin:    "愛心<\n森",
			args:     []string{"--format", "html"},
			expected: "<ruby>愛<rp>(</rp><rt>oi3/ngoi3</rt><rp>)</rp></ruby>心&lt;<br>\n<ruby>森<rp>(</rp><rt>sam1</rt><rp>)</rp></ruby>\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			args := append([]string{"--data-dir", dir, "convert"}, test.args...)
			out, err := runApp(t, test.stdin, args...)
			if err != nil {
				t.Fatalf("convert: %v", err)
			}
			if diff := cmp.Diff(test.expected, out); diff != "" {
				t.Fatalf("convert (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_htmlInput(t *testing.T) {
	dir := makeDataDir(t)

	out, err := runApp(t, "<b>愛</b>森", "--data-dir", dir, "convert", "--html-input", "--format", "json")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if want := `[[["oi3","ngoi3"],["sam1"]`; !strings.HasPrefix(out, want) {
		t.Fatalf("convert; want prefix: %q, got: %q", want, out)
	}
}

func TestSearch(t *testing.T) {
	dir := makeDataDir(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "exact",
			args:     []string{"OI3"},
			expected: "愛\n",
		},
		{
			name:     "prefix",
			args:     []string{"--prefix", "s"},
			expected: "森\n",
		},
		{
			name:     "no match",
			args:     []string{"oi"},
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			args := append([]string{
				"--pron-map", filepath.Join(dir, pronMapName),
				"--dict", filepath.Join(dir, dictName+".gz"),
				"search",
			}, test.args...)
			out, err := runApp(t, "", args...)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if diff := cmp.Diff(test.expected, out); diff != "" {
				t.Fatalf("search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestApp_errors(t *testing.T) {
	dir := makeDataDir(t)
	strictDir := t.TempDir()
	testutil.WriteFile(t, strictDir, pronMapName, []byte("Jn:oi3"), testutil.None)
	testutil.WriteFile(t, strictDir, dictName, []byte("愛Jnx"), testutil.None)

	tests := []struct {
		name string
		args []string
		err  error
	}{
		{
			name: "lookup without text",
			args: []string{"--data-dir", dir, "lookup"},
			err:  ErrFlagParse,
		},
		{
			name: "search without pronunciation",
			args: []string{"--data-dir", dir, "search"},
			err:  ErrFlagParse,
		},
		{
			name: "unknown format",
			args: []string{"--data-dir", dir, "convert", "--format", "xml"},
			err:  ErrFlagParse,
		},
		{
			name: "unknown flag",
			args: []string{"--data-dir", dir, "lookup", "--nope", "愛"},
			err:  ErrFlagParse,
		},
		{
			name: "no data",
			args: []string{"--data-dir", t.TempDir(), "lookup", "愛"},
			err:  asset.ErrNotFound,
		},
		{
			name: "unknown encoding",
			args: []string{"--data-dir", dir, "--encoding", "klingon", "lookup", "愛"},
			err:  asset.ErrUnknownEncoding,
		},
		{
			name: "strict",
			args: []string{"--data-dir", strictDir, "--strict", "lookup", "愛"},
			err:  dict.ErrMalformed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := runApp(t, "", test.args...)
			if !errors.Is(err, test.err) {
				t.Fatalf("Run; want: %v, got: %v", test.err, err)
			}
		})
	}

	// The same files load without --strict.
	if _, err := runApp(t, "", "--data-dir", strictDir, "lookup", "愛"); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := runApp(t, "", "--version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if want := "jyututil "; !strings.HasPrefix(out, want) {
		t.Fatalf("version; want prefix: %q, got: %q", want, out)
	}
	if want := "Ian Lewis"; !strings.Contains(out, want) {
		t.Fatalf("version; want: %q, got: %q", want, out)
	}
}
