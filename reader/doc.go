// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package reader loads puzzle input either from a local file (ReadAs) or from
// the Advent of Code site (ReadLevel), splits it into lines and hands the
// lines to a caller supplied parser. Remote input is cached by URL and never
// fetched twice.
//
//	nums, err := reader.ReadAs(reader.Options[[]int]{Parser: reader.Ints})
//
//	c := reader.NewClientFromEnv()
//	lines, err := reader.ReadLevel(ctx, c, reader.LevelOptions[[]string]{
//		Level:  1,
//		Year:   2023,
//		Parser: reader.Lines,
//	})
package reader
