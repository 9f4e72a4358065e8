// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// aocread is the command line front end for the reader package. It reads
// puzzle input from a file or from the puzzle site and prints it parsed.
package main
