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
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-jyut"
)

const (
	formatText = "text"
	formatHTML = "html"
	formatJSON = "json"
)

var convertCommand = &cli.Command{
	Name:      "convert",
	Usage:     "Annotate text with pronunciations",
	ArgsUsage: "[FILE]",
	Description: strings.Join([]string{
		"Reads text from FILE, or standard input if FILE is missing or '-', and",
		"prints the pronunciation of each character line by line.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output `FORMAT`: text, html or json",
			Aliases: []string{"f"},
			Value:   formatText,
		},
		&cli.BoolFlag{
			Name:  "html-input",
			Usage: "convert HTML input to plain text first",
		},
	},
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		if c.NArg() > 1 {
			return fmt.Errorf("%w: too many arguments", ErrFlagParse)
		}

		var write func(io.Writer, *jyut.Converter, string) error
		switch format := c.String("format"); format {
		case formatText:
			write = writeText
		case formatHTML:
			write = writeHTML
		case formatJSON:
			write = writeJSON
		default:
			return fmt.Errorf("%w: unknown format %q", ErrFlagParse, format)
		}

		text, err := readInput(c)
		if err != nil {
			return err
		}
		if c.Bool("html-input") {
			text = html2text.HTML2Text(text)
		}
		// Only trailing newlines are removed. Text is otherwise unnormalized.
		text = strings.TrimRight(text, "\n")

		conv, err := newConverter(c)
		if err != nil {
			return err
		}

		return write(c.App.Writer, conv, text)
	},
}

// writeText writes each line followed by a line with the pronunciations of
// each of its characters.
func writeText(w io.Writer, conv *jyut.Converter, text string) error {
	lines := strings.Split(text, "\n")
	for i, line := range conv.PronounceLines(text) {
		cells := make([]string, len(line))
		for j, prons := range line {
			cells[j] = strings.Join(prons, "/")
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", lines[i], strings.Join(cells, " ")); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

// writeHTML writes the text as HTML with ruby annotations. Characters
// without a pronunciation are written unannotated.
func writeHTML(w io.Writer, conv *jyut.Converter, text string) error {
	var b strings.Builder
	lines := strings.Split(text, "\n")
	for i, line := range conv.PronounceLines(text) {
		if i > 0 {
			b.WriteString("<br>\n")
		}
		cs := chars(lines[i])
		for j, prons := range line {
			char := html.EscapeString(cs[j])
			if len(prons) == 1 && prons[0] == jyut.Placeholder {
				b.WriteString(char)
				continue
			}
			fmt.Fprintf(&b, "<ruby>%s<rp>(</rp><rt>%s</rt><rp>)</rp></ruby>",
				char, html.EscapeString(strings.Join(prons, "/")))
		}
	}
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// writeJSON writes the result of PronounceLines as JSON.
func writeJSON(w io.Writer, conv *jyut.Converter, text string) error {
	if err := json.NewEncoder(w).Encode(conv.PronounceLines(text)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
