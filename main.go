// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/aocread/internal/command"
	"github.com/staranto/aocread/internal/config"
	mylog "github.com/staranto/aocread/internal/log"
	"github.com/staranto/aocread/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	} else {
		args = mangleArguments(args)
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

// mangleArguments expands an @set argument into the arg list stored under
// <command>.<set> in the config file. Without an explicit @set the
// "defaults" set is used if one exists.
func mangleArguments(args []string) []string {
	// We know the first two args are going to be the executable and command.
	preamble := make([]string, 2)
	copy(preamble, args[:2])

	// Short-circuit for --help/-h. If help is requested, just keep the preamble
	// and add --help flag.
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return append(preamble, "--help")
		}
	}

	set := "defaults"
	rest := make([]string, 0, len(args)-2)
	for _, a := range args[2:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			set = a[1:]
			continue
		}
		rest = append(rest, a)
	}

	if _, err := config.Load(args[1]); err != nil {
		log.Debugf("no config for @%s: %v", set, err)
	}
	setArgs, _ := config.GetStringSlice(args[1] + "." + set)

	var inserted []string
	for _, arg := range setArgs {
		inserted = append(inserted, strings.Fields(arg)...)
	}

	// Set args go first so anything on the command line wins.
	out := append(preamble, inserted...)
	out = append(out, rest...)

	log.Debugf("set=%s, args=%v", set, out)
	return out
}
