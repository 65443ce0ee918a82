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
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Print the pronunciations of characters",
	ArgsUsage: "TEXT...",
	Description: strings.Join([]string{
		"Prints a table of each character in TEXT and its pronunciations.",
		"Characters with more than one pronunciation have them separated by '/'.",
	}, "\n"),
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing TEXT", ErrFlagParse)
		}

		conv, err := newConverter(c)
		if err != nil {
			return err
		}

		tbl := table.New("Character", "Pronunciation").WithWriter(c.App.Writer)
		for _, text := range c.Args().Slice() {
			cs := chars(text)
			for i, prons := range conv.PronounceString(text) {
				tbl.AddRow(cs[i], strings.Join(prons, "/"))
			}
		}
		tbl.Print()

		return nil
	},
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}
