// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/aocread/cache"
	"github.com/staranto/aocread/internal/aws"
	"github.com/staranto/aocread/internal/meta"
	"github.com/staranto/aocread/internal/output"
	"github.com/staranto/aocread/reader"
)

// parsers maps --parse values to a parser whose result output.Spit knows how
// to render.
var parsers = map[string]func(*cli.Command) reader.ParseFunc[any]{
	"lines": func(*cli.Command) reader.ParseFunc[any] {
		return func(l []string) any { return reader.Lines(l) }
	},
	"nonempty": func(*cli.Command) reader.ParseFunc[any] {
		return func(l []string) any { return reader.NonEmpty(l) }
	},
	"ints": func(*cli.Command) reader.ParseFunc[any] {
		return func(l []string) any { return reader.Ints(l) }
	},
	"fields": func(*cli.Command) reader.ParseFunc[any] {
		return func(l []string) any { return reader.Fields(l) }
	},
	"join": func(cmd *cli.Command) reader.ParseFunc[any] {
		join := reader.Join(cmd.String("sep"))
		return func(l []string) any { return join(l) }
	},
}

func parserNames() []string {
	names := make([]string, 0, len(parsers))
	for n := range parsers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// BuildParser returns the parser selected by --parse.
func BuildParser(cmd *cli.Command) reader.ParseFunc[any] {
	if p, ok := parsers[cmd.String("parse")]; ok {
		return p(cmd)
	}
	return parsers["lines"](cmd)
}

// BuildSplitter compiles --split, or returns nil for the default splitter.
// The flag validator has already vetted the pattern.
func BuildSplitter(cmd *cli.Command) *regexp.Regexp {
	s := cmd.String("split")
	if s == "" {
		return nil
	}
	return regexp.MustCompile(s)
}

// BuildCache picks the cache for a remote read: none when AOC_CACHE disables
// it, S3 when a bucket is configured, otherwise the cache directory.
func BuildCache(ctx context.Context, cmd *cli.Command) (cache.Cache, error) {
	if !cache.Enabled() {
		log.Debug("cache disabled")
		return cache.Nop{}, nil
	}

	if bucket := cmd.String("cache-bucket"); bucket != "" {
		var opts []aws.Option
		if region := cmd.String("cache-region"); region != "" {
			opts = append(opts, aws.WithRegion(region))
		}
		return aws.NewS3Cache(ctx, bucket, cmd.String("cache-prefix"), opts...)
	}

	return cache.NewDir(ResolvePath(cmd, cmd.String("cache-dir"))), nil
}

// BuildClient assembles a reader.Client from the remote flags.
func BuildClient(ctx context.Context, cmd *cli.Command) (*reader.Client, error) {
	if src := GetMeta(cmd).Config.Source; src != "" {
		log.Debugf("remote flags may come from %s", src)
	}

	cc, err := BuildCache(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return reader.NewClient(
		reader.WithHost(cmd.String("host")),
		reader.WithSession(cmd.String("session")),
		reader.WithCache(cc),
	), nil
}

// Emit renders result per the --output, --titles and --color flags.
func Emit(cmd *cli.Command, result any) error {
	w := Writer(cmd)
	return output.Spit(w, cmd.String("output"), result, output.Options{
		Titles: cmd.Bool("titles"),
		Color:  cmd.Bool("color") && output.IsTerminal(w),
	})
}

// Writer is where command output goes.
func Writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// GetMeta returns the meta.Meta stored in the Metadata of cmd or its nearest
// ancestor. If missing or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil {
		return meta.Meta{}
	}
	for _, c := range cmd.Lineage() {
		if m, ok := c.Metadata["meta"].(meta.Meta); ok {
			return m
		}
	}
	return meta.Meta{}
}

// ResolvePath anchors a relative path at the directory aocread started in.
func ResolvePath(cmd *cli.Command, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if sd := GetMeta(cmd).StartingDir; sd != "" {
		return filepath.Join(sd, p)
	}
	return p
}
