// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/staranto/aocread/cache"
	"github.com/staranto/aocread/internal/meta"
	"github.com/staranto/aocread/internal/output"
	"github.com/staranto/aocread/reader"
)

func cacheListAction(ctx context.Context, cmd *cli.Command) error {
	entries, err := cache.NewDir(ResolvePath(cmd, cmd.String("cache-dir"))).Entries()
	if err != nil {
		return err
	}

	w := Writer(cmd)
	switch cmd.String("output") {
	case "json", "yaml", "raw":
		keys := make([]string, len(entries))
		for i, e := range entries {
			keys[i] = e.Key
		}
		return output.Spit(w, cmd.String("output"), keys, output.Options{})
	default:
		return output.CacheTable(w, entries, output.Options{
			Titles: cmd.Bool("titles"),
			Color:  output.IsTerminal(w),
		}, time.Now())
	}
}

func cachePathAction(ctx context.Context, cmd *cli.Command) error {
	level, err := LevelArg(cmd.Args().First())
	if err != nil {
		return err
	}

	c := reader.NewClient(reader.WithHost(cmd.String("host")))
	d := cache.NewDir(ResolvePath(cmd, cmd.String("cache-dir")))
	_, err = fmt.Fprintln(Writer(cmd), d.Path(c.CacheKey(level, int(cmd.Int("year")))))
	return err
}

// CacheCommandBuilder constructs "cache" and its list/path subcommands.
func CacheCommandBuilder(meta meta.Meta) *cli.Command {
	src := meta.Config.Source
	return &cli.Command{
		Name:  "cache",
		Usage: "inspect the input cache",
		Metadata: map[string]any{
			"meta": meta,
		},
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "list cached inputs",
				UsageText: `aocread cache list [options]`,
				Flags: []cli.Flag{
					NewCacheDirFlag("cache", src),
					NewOutputFlag("cache", src),
					&cli.BoolWithInverseFlag{
						Name:    "titles",
						Aliases: []string{"t"},
						Usage:   "show titles with text output",
						Value:   true,
					},
				},
				Action: cacheListAction,
			},
			{
				Name:      "path",
				Usage:     "print the cache file for a day",
				UsageText: `aocread cache path [options] <day>`,
				Flags: []cli.Flag{
					NewCacheDirFlag("cache", src),
					NewHostFlag("cache", src),
					NewYearFlag("cache", src),
				},
				Action: cachePathAction,
			},
		},
	}
}
