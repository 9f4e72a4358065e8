// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package reader

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		splitter *regexp.Regexp
		want     []string
	}{
		{"default newline", "1\n2\n3", nil, []string{"1", "2", "3"}},
		{"dot", "1.2.3", regexp.MustCompile(`\.`), []string{"1", "2", "3"}},
		{"blank line groups", "a\nb\n\nc", regexp.MustCompile(`\n\n`), []string{"a\nb", "c"}},
		{"empty", "", nil, []string{""}},
		{"no delimiter", "abc", nil, []string{"abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.input, tt.splitter))
		})
	}
}

func TestParsers(t *testing.T) {
	lines := []string{"1", " 22 ", "", "x", "3"}

	assert.Equal(t, lines, Lines(lines))
	assert.Equal(t, []string{"1", " 22 ", "x", "3"}, NonEmpty(lines))
	assert.Equal(t, "1, 22 ,,x,3", Join(",")(lines))
	assert.Equal(t, []int{1, 22, 0, 3}, Ints(lines))
	assert.Equal(t, [][]string{{"a", "b"}, {}, {"c"}}, Fields([]string{"a  b", "", " c"}))
}
