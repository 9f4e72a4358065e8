// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/apex/log"
)

// DefaultPath is read when Options.Path is empty.
const DefaultPath = "./input"

// Options configures ReadAs. Parser is required.
type Options[T any] struct {
	Path     string
	Splitter *regexp.Regexp
	Parser   ParseFunc[T]
}

// ReadAs reads the whole file at opts.Path, splits it and returns what the
// parser makes of the lines. A missing file is reported as ErrFileNotExist
// and the parser is never called.
func ReadAs[T any](opts Options[T]) (T, error) {
	var zero T

	if opts.Parser == nil {
		return zero, ErrNoParser
	}

	path := opts.Path
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, fmt.Errorf("%s: %w", path, ErrFileNotExist)
		}
		return zero, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("failed to read %s: %w", path, err)
	}
	log.Debugf("read %d bytes from %s", len(b), path)

	return opts.Parser(Split(string(b), opts.Splitter)), nil
}
