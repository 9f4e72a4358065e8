// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command wires the aocread CLI: the local, level and cache
// commands, their flags and the actions that drive the reader package.
package command
