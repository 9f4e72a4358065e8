// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reader

import "errors"

var (
	ErrNoParser      = errors.New("parser is required")
	ErrFileNotExist  = errors.New("file does not exist")
	ErrSessionNotSet = errors.New("AOC_SESSION environment variable not set")
	ErrLevelNotFound = errors.New("AOC Level input not found")
	ErrInvalidLevel  = errors.New("level must be a positive day number")
)
