// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"fmt"
	"sync"
)

// Memory is an in-process Cache, mostly useful in tests.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory returns a Memory cache pre-populated with seed.
func NewMemory(seed map[string]string) *Memory {
	m := &Memory{entries: make(map[string]string, len(seed))}
	for k, v := range seed {
		m.entries[k] = v
	}
	return m
}

func (m *Memory) Exists(key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[key]
	return ok, nil
}

func (m *Memory) Read(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", key, ErrMiss)
	}
	return v, nil
}

func (m *Memory) Write(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string]string)
	}
	m.entries[key] = value
	return nil
}

// Len reports the number of entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
