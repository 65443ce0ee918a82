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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-jyut"
	"github.com/ianlewis/go-jyut/internal/asset"
	"github.com/ianlewis/go-jyut/internal/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

const (
	// pronMapName is the file name of the packed pronunciation table in a
	// data directory.
	pronMapName = "pron_map.txt"

	// dictName is the file name of the packed dictionary in a data
	// directory.
	dictName = "dict.txt"
)

// ErrJyututil is a parent error for all command errors.
var ErrJyututil = errors.New("jyututil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrJyututil)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

// settings are the global flags merged over the configuration.
type settings struct {
	dataDirs []string
	pronMap  string
	dict     string
	encoding string
	strict   bool
	level    slog.Level
}

func loadSettings(c *cli.Context) (*settings, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	s := &settings{
		dataDirs: cfg.DataDirs,
		pronMap:  cfg.PronMap,
		dict:     cfg.Dict,
		encoding: cfg.Encoding,
		strict:   cfg.Strict,
		level:    level,
	}
	if len(s.dataDirs) == 0 {
		s.dataDirs = dataLocations()
	}

	if c.IsSet("data-dir") {
		s.dataDirs = c.StringSlice("data-dir")
	}
	if c.IsSet("pron-map") {
		s.pronMap = c.String("pron-map")
	}
	if c.IsSet("dict") {
		s.dict = c.String("dict")
	}
	if c.IsSet("encoding") {
		s.encoding = c.String("encoding")
	}
	if c.IsSet("strict") {
		s.strict = c.Bool("strict")
	}
	if c.Bool("verbose") {
		s.level = slog.LevelDebug
	}

	return s, nil
}

// newConverter loads the packed files named by the flags and configuration.
func newConverter(c *cli.Context) (*jyut.Converter, error) {
	s, err := loadSettings(c)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: s.level,
	}))

	opts := &asset.Options{
		Encoding: s.encoding,
	}

	pronMap, err := readAsset(logger, s.pronMap, s.dataDirs, pronMapName, opts)
	if err != nil {
		return nil, err
	}
	dict, err := readAsset(logger, s.dict, s.dataDirs, dictName, opts)
	if err != nil {
		return nil, err
	}

	//nolint:wrapcheck // errors are already wrapped
	return jyut.New(
		jyut.WithLogger(logger),
		jyut.WithStrict(s.strict),
		jyut.WithPronMap(pronMap),
		jyut.WithDict(dict),
	)
}

// readAsset reads the packed file at path, or finds name in dirs if path is
// empty.
func readAsset(logger *slog.Logger, path string, dirs []string, name string, opts *asset.Options) (string, error) {
	if path == "" {
		var err error
		path, err = asset.Find(dirs, name)
		if err != nil {
			return "", fmt.Errorf("%w (searched %s)", err, strings.Join(dirs, string(os.PathListSeparator)))
		}
	}

	packed, err := asset.ReadString(path, opts)
	if err != nil {
		return "", err
	}
	logger.Debug("read packed file", slog.String("path", path), slog.Int("bytes", len(packed)))
	return packed, nil
}

// chars splits text into characters the same way the Converter does.
func chars(text string) []string {
	result := make([]string, 0, utf8.RuneCountInString(text))
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		result = append(result, text[i:i+size])
		i += size
	}
	return result
}

// readInput reads the file named by the first argument, or standard input.
func readInput(c *cli.Context) (string, error) {
	var r io.Reader = c.App.Reader
	if path := c.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(b), nil
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, "%s %s\n%s\n",
		c.App.Name,
		versionInfo.GitVersion,
		c.App.Copyright,
	)
	if err != nil {
		return fmt.Errorf("printing version: %w", err)
	}
	return nil
}

func newJyutApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Look up character pronunciations in packed dictionaries.",
		Description: strings.Join([]string{
			"Jyutping lookup utility written in Go.",
			"http://github.com/ianlewis/go-jyut",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "search for packed files in `DIR`",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:  "pron-map",
				Usage: "read the packed pronunciation table from `FILE`",
			},
			&cli.StringFlag{
				Name:  "dict",
				Usage: "read the packed character dictionary from `FILE`",
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "text encoding `NAME` of the packed files",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "reject malformed packed files",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				EnvVars: []string{config.PathEnv},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "print debug logs",
				Aliases: []string{"v"},
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    onUsageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			//nolint:wrapcheck // help errors need not be wrapped
			return cli.ShowAppHelp(c)
		},
		Commands: []*cli.Command{
			lookupCommand,
			convertCommand,
			searchCommand,
		},
	}
}
