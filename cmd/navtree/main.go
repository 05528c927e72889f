// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command navtree inspects navigation tree snapshot files and computes
// the structural diff between two of them.
package main

func main() {
	Execute()
}
