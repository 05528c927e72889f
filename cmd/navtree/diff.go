// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/navroute/navtree"
	"github.com/navroute/navtree/diff"
)

var diffCmd = &cobra.Command{
	Use:   "diff last current",
	Short: "Compute the stack actions between two snapshots",
	Long: `Diff loads the last and current snapshot files and prints the ordered
action sequence that turns the last navigation state into the current
one. Either argument may be the literal "none" for an absent snapshot.
The snapshot format is chosen by file extension (.json, .yaml, .yml).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		last, err := openSnapshot(args[0])
		if err != nil {
			return err
		}
		current, err := openSnapshot(args[1])
		if err != nil {
			return err
		}
		actions := diff.Diff(last, current)
		slog.Debug("computed diff", "actions", len(actions))
		for _, a := range actions {
			fmt.Fprintln(cmd.OutOrStdout(), renderAction(a))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

// openSnapshot loads a string-valued navigation tree from the given
// file, with the literal "none" standing for an absent snapshot.
func openSnapshot(path string) (*navtree.Node[string], error) {
	if path == "none" {
		return nil, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return navtree.OpenJSON[string](path)
	case ".yaml", ".yml":
		return navtree.OpenYAML[string](path)
	}
	return nil, fmt.Errorf("unsupported snapshot format %q (want .json, .yaml, or .yml)", path)
}

var (
	popColor      = color.New(color.FgRed).Sprint
	pushColor     = color.New(color.FgGreen).Sprint
	changedColor  = color.New(color.FgYellow).Sprint
	activeColor   = color.New(color.FgCyan).Sprint
	selectedColor = color.New(color.FgBlue).Sprint
)

// renderAction renders one action as a colored, diff-style line.
func renderAction(a diff.Action[string]) string {
	switch a := a.(type) {
	case diff.Pop[string]:
		return popColor("- " + a.String())
	case diff.Push[string]:
		return pushColor("+ " + a.String())
	case diff.Changed[string]:
		return changedColor("~ " + a.String())
	case diff.ChangedActiveChild[string]:
		return activeColor("* " + a.String())
	case diff.SelectedActiveChild[string]:
		return selectedColor("= " + a.String())
	}
	return a.String()
}
