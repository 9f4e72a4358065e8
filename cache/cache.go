// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"os"
	"strings"

	"github.com/staranto/aocread/internal/config"
)

// DefaultDir is where Dir caches live unless told otherwise.
const DefaultDir = "./aoc-cache"

// keyPrefixLen is the length of the scheme remnant ("https") dropped from
// the stripped URL.
const keyPrefixLen = 5

// ErrMiss is returned by Read when no entry exists for the key.
var ErrMiss = errors.New("cache entry not found")

// Cache is the capability set the level reader needs. An entry, once
// written, is treated as authoritative.
type Cache interface {
	Exists(key string) (bool, error)
	Read(key string) (string, error)
	Write(key, value string) error
}

var keyReplacer = strings.NewReplacer("/", "", ":", "", ".", "", "|", "")

// KeyFromURL flattens url into a cache key by removing '/', ':', '.' and
// '|' and then dropping the leading scheme remnant.
//
//	https://adventofcode.com/2000/day/1/input -> adventofcodecom2000day1input
func KeyFromURL(url string) string {
	k := keyReplacer.Replace(url)
	if len(k) <= keyPrefixLen {
		return ""
	}
	return k[keyPrefixLen:]
}

// Enabled returns false when AOC_CACHE is "0" or "false". Without AOC_CACHE
// the cache.enabled config key decides, defaulting to true.
func Enabled() bool {
	if v, ok := os.LookupEnv("AOC_CACHE"); ok && v != "" {
		return v != "0" && v != "false"
	}
	enabled, err := config.GetBool("cache.enabled", true)
	if err != nil {
		return true
	}
	return enabled
}

// Nop never hits and discards writes.
type Nop struct{}

func (Nop) Exists(string) (bool, error) { return false, nil }
func (Nop) Read(string) (string, error) { return "", ErrMiss }
func (Nop) Write(string, string) error  { return nil }
