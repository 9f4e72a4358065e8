// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package cache stores raw puzzle input keyed by a filename-safe token
// derived from the request URL. Entries are written once and never expire.
package cache
