// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/aocread/internal/meta"
	"github.com/staranto/aocread/reader"
)

// levelCommandAction fetches (or recalls from cache) the input for one day,
// splits and parses it, and emits the result.
func levelCommandAction(ctx context.Context, cmd *cli.Command) error {
	level, err := LevelArg(cmd.Args().First())
	if err != nil {
		return err
	}

	client, err := BuildClient(ctx, cmd)
	if err != nil {
		return err
	}

	year := int(cmd.Int("year"))
	log.Debugf("level: %s", client.URL(level, year))

	result, err := reader.ReadLevel(ctx, client, reader.LevelOptions[any]{
		Level:    level,
		Year:     year,
		Splitter: BuildSplitter(cmd),
		Parser:   BuildParser(cmd),
	})
	if err != nil {
		return err
	}

	return Emit(cmd, result)
}

// LevelCommandBuilder constructs the cli.Command for "level".
func LevelCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "level",
		Usage:     "read puzzle input for a day from the puzzle site",
		UsageText: `aocread level [options] <day>`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(
			NewRemoteFlags("level", meta.Config.Source),
			NewGlobalFlags("level", meta.Config.Source)...,
		),
		Action: levelCommandAction,
	}
}
