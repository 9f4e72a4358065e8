// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/staranto/aocread/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func OutputValidator(value any) error {
	if !slices.Contains(output.Formats, value.(string)) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func ParseValidator(value any) error {
	if _, ok := parsers[value.(string)]; !ok {
		return fmt.Errorf("must be one of %v", parserNames())
	}
	return nil
}

// SplitValidator checks that the --split pattern compiles.
func SplitValidator(value any) error {
	if _, err := regexp.Compile(value.(string)); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	return nil
}

// LevelArg parses the positional day argument.
func LevelArg(arg string) (int, error) {
	if arg == "" {
		return 0, errors.New("a level (day) argument is required")
	}
	level, err := strconv.Atoi(arg)
	if err != nil || level < 1 {
		return 0, fmt.Errorf("level must be a positive integer, got %q", arg)
	}
	return level, nil
}
