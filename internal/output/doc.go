// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders parse results and cache listings in the formats
// selected by --output.
package output
