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

	"github.com/urfave/cli/v2"
)

var searchCommand = &cli.Command{
	Name:        "search",
	Usage:       "Find characters by pronunciation",
	ArgsUsage:   "PRONUNCIATION",
	Description: "Prints each character that has PRONUNCIATION on its own line.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "prefix",
			Usage: "match pronunciations that start with PRONUNCIATION",
		},
	},
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected one PRONUNCIATION", ErrFlagParse)
		}

		conv, err := newConverter(c)
		if err != nil {
			return err
		}

		search := conv.Search
		if c.Bool("prefix") {
			search = conv.SearchPrefix
		}
		result, err := search(c.Args().First())
		if err != nil {
			return fmt.Errorf("searching: %w", err)
		}

		for _, char := range result {
			if _, err := fmt.Fprintln(c.App.Writer, char); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		return nil
	},
}
