// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewGlobalFlags returns the flags shared by every reading command. ns is the
// command name, used to namespace config file lookups; path is the config
// file.
func NewGlobalFlags(ns, path string) []cli.Flag {
	return []cli.Flag{
		NewOutputFlag(ns, path),
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored table output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".color", altsrc.StringSourcer(path)),
				yaml.YAML("color", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "parse",
			Aliases: []string{"p"},
			Usage:   "parser applied to the split lines",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".parse", altsrc.StringSourcer(path)),
			),
			Value: "lines",
			Validator: func(value string) error {
				return FlagValidators(value, ParseValidator)
			},
		},
		&cli.StringFlag{
			Name:  "sep",
			Usage: "separator used by --parse join",
			Value: "",
		},
		&cli.StringFlag{
			Name:    "split",
			Aliases: []string{"s"},
			Usage:   "regular expression the input is split on (default newline)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".split", altsrc.StringSourcer(path)),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, SplitValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".titles", altsrc.StringSourcer(path)),
				yaml.YAML("titles", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
	}
}

func NewOutputFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+".output", altsrc.StringSourcer(path)),
			yaml.YAML("output", altsrc.StringSourcer(path)),
		),
		Value: "text",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
}

// NewRemoteFlags returns the flags that shape a remote level read: where to
// fetch from, who as, and where to cache.
func NewRemoteFlags(ns, path string) []cli.Flag {
	return []cli.Flag{
		NewYearFlag(ns, path),
		NewHostFlag(ns, path),
		NewCacheDirFlag(ns, path),
		&cli.StringFlag{
			Name:  "session",
			Usage: "session cookie value for the puzzle site",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AOC_SESSION"),
				yaml.YAML(ns+".session", altsrc.StringSourcer(path)),
				yaml.YAML("session", altsrc.StringSourcer(path)),
			),
		},
		&cli.StringFlag{
			Name:  "cache-bucket",
			Usage: "S3 bucket to cache inputs in instead of the cache dir",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AOC_CACHE_BUCKET"),
				yaml.YAML("cache.bucket", altsrc.StringSourcer(path)),
			),
		},
		&cli.StringFlag{
			Name:  "cache-prefix",
			Usage: "key prefix inside the S3 cache bucket",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("cache.prefix", altsrc.StringSourcer(path)),
			),
			Value: "aoc-cache",
		},
		&cli.StringFlag{
			Name:  "cache-region",
			Usage: "AWS region of the S3 cache bucket",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("cache.region", altsrc.StringSourcer(path)),
			),
		},
	}
}

// NewYearFlag is the puzzle year; 0 means the current year.
func NewYearFlag(ns, path string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "year",
		Aliases: []string{"y"},
		Usage:   "puzzle year (default current year)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AOC_YEAR"),
			yaml.YAML(ns+".year", altsrc.StringSourcer(path)),
			yaml.YAML("year", altsrc.StringSourcer(path)),
		),
	}
}

func NewHostFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "host",
		Usage: "base URL of the puzzle site",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AOC_HOST"),
			yaml.YAML(ns+".host", altsrc.StringSourcer(path)),
			yaml.YAML("host", altsrc.StringSourcer(path)),
		),
		Value: "https://adventofcode.com",
	}
}

func NewCacheDirFlag(ns, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "cache-dir",
		Usage: "directory holding cached inputs",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AOC_CACHE_DIR"),
			yaml.YAML("cache.dir", altsrc.StringSourcer(path)),
		),
		Value: "./aoc-cache",
	}
}
