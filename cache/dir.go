// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/apex/log"
)

// Entry describes a cached input on disk.
type Entry struct {
	Key     string
	Path    string
	Size    int64
	ModTime time.Time
}

// Dir is a Cache backed by one flat directory, one file per key.
type Dir struct {
	Root string
}

// NewDir returns a Dir rooted at root, or DefaultDir when root is empty.
func NewDir(root string) *Dir {
	if root == "" {
		root = DefaultDir
	}
	return &Dir{Root: root}
}

// EnsureDir creates the cache directory if it does not already exist.
func (d *Dir) EnsureDir() error {
	if err := os.MkdirAll(d.Root, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// Path returns where the entry for key lives, whether or not it exists.
func (d *Dir) Path(key string) string {
	return filepath.Join(d.Root, key)
}

func (d *Dir) Exists(key string) (bool, error) {
	if err := d.EnsureDir(); err != nil {
		return false, err
	}
	info, err := os.Stat(d.Path(key))
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat cache entry: %w", err)
}

func (d *Dir) Read(key string) (string, error) {
	if err := d.EnsureDir(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(d.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", key, ErrMiss)
		}
		return "", fmt.Errorf("failed to read cache entry: %w", err)
	}
	return string(b), nil
}

func (d *Dir) Write(key, value string) error {
	if err := d.EnsureDir(); err != nil {
		return err
	}
	p := d.Path(key)
	if err := os.WriteFile(p, []byte(value), os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Debugf("cached %s", p)
	return nil
}

// Entries lists the cached inputs sorted by key. A missing directory is an
// empty cache.
func (d *Dir) Entries() ([]Entry, error) {
	des, err := os.ReadDir(d.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list cache: %w", err)
	}

	var entries []Entry
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			log.WithError(err).Warnf("skipping cache file %s", de.Name())
			continue
		}
		entries = append(entries, Entry{
			Key:     de.Name(),
			Path:    d.Path(de.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries, nil
}
