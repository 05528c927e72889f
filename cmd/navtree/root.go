// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/navroute/navtree/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "navtree",
	Short: "navtree inspects and diffs navigation tree snapshots",
	Long: `navtree loads navigation tree snapshot files (JSON or YAML) and
computes the ordered sequence of stack actions (pops, pushes, composite
changes, active-child transitions) that turns one snapshot into another.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(logging.New(level))
		if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
			color.NoColor = true
		}
	},
}

var (
	verbose bool
	noColor bool
)

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
