// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package navtree

// Clone returns a deep copy of the tree from this node down. The clone
// is a root in its own right (its parent link is nil), its structure
// and active-child selections mirror the original, and no nodes are
// shared with the original. Cloning a snapshot before handing it to the
// differ lets the state layer keep mutating its own tree while the diff
// runs.
//
// Values are copied by assignment: a cloned node must stay equal to its
// original under ==, since that equality is what correlates nodes
// across snapshots.
func (n *Node[T]) Clone() *Node[T] {
	nc := New(n.Value)
	for _, kid := range n.children {
		kc := kid.Clone()
		nc.children = append(nc.children, kc)
		kc.parent = nc
		if n.active == kid {
			nc.active = kc
		}
	}
	return nc
}
