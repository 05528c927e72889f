// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navroute/navtree"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of navtree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "navtree version %s\n", navtree.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
