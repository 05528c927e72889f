// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/navroute/navtree"
)

var showCmd = &cobra.Command{
	Use:   "show file",
	Short: "Print a snapshot as an indented tree",
	Long: `Show loads the given snapshot file and prints it as an indented tree,
marking each active child with a star.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := openSnapshot(args[0])
		if err != nil {
			return err
		}
		printTree(cmd.OutOrStdout(), root, 0)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// printTree writes the subtree rooted at n with two-space indentation
// per depth level, starring the active child of each node.
func printTree(w io.Writer, n *navtree.Node[string], depth int) {
	if n == nil {
		return
	}
	marker := "  "
	if p := n.Parent(); p != nil && p.ActiveChild() == n {
		marker = color.New(color.FgCyan).Sprint("* ")
	}
	fmt.Fprintf(w, "%s%s%v\n", strings.Repeat("  ", depth), marker, n.Value)
	for _, kid := range n.Children() {
		printTree(w, kid, depth+1)
	}
}
