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

// localCommandAction reads a file from disk (./input by default), splits and
// parses it, and emits the result.
func localCommandAction(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	log.Debugf("local: path=%q split=%q parse=%s", path, cmd.String("split"), cmd.String("parse"))

	result, err := reader.ReadAs(reader.Options[any]{
		Path:     path,
		Splitter: BuildSplitter(cmd),
		Parser:   BuildParser(cmd),
	})
	if err != nil {
		return err
	}

	return Emit(cmd, result)
}

// LocalCommandBuilder constructs the cli.Command for "local".
func LocalCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "local",
		Usage:     "read puzzle input from a file",
		UsageText: `aocread local [options] [path]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewGlobalFlags("local", meta.Config.Source),
		Action: localCommandAction,
	}
}
