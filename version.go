// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package navtree

// Version is the version of the navtree library and CLI.
const Version = "0.1.0"
