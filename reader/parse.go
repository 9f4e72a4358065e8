// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reader

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
)

// DefaultSplitter breaks input on newlines.
var DefaultSplitter = regexp.MustCompile(`\n`)

// ParseFunc turns the split lines into whatever the caller wants. Its output
// is returned untouched.
type ParseFunc[T any] func(lines []string) T

// Split breaks s on splitter, or on DefaultSplitter when splitter is nil.
// Empty input yields a single empty line and a trailing delimiter yields a
// trailing empty line.
func Split(s string, splitter *regexp.Regexp) []string {
	if splitter == nil {
		splitter = DefaultSplitter
	}
	return splitter.Split(s, -1)
}

// Lines returns the lines unchanged.
func Lines(lines []string) []string {
	return lines
}

// NonEmpty drops blank lines.
func NonEmpty(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Join returns a parser that glues the lines back together with sep.
func Join(sep string) ParseFunc[string] {
	return func(lines []string) string {
		return strings.Join(lines, sep)
	}
}

// Fields splits every line on whitespace.
func Fields(lines []string) [][]string {
	out := make([][]string, len(lines))
	for i, l := range lines {
		out[i] = strings.Fields(l)
	}
	return out
}

// Ints converts each non-blank line to an int. Lines that are not integers
// become 0.
func Ints(lines []string) []int {
	out := make([]int, 0, len(lines))
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		n, err := strconv.Atoi(l)
		if err != nil {
			log.WithError(err).Warnf("line %d is not an integer", i+1)
		}
		out = append(out, n)
	}
	return out
}
