// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package navtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/navroute/navtree"
)

// walkTree is the fixture shared by the walk tests:
//
//	root
//	├── child0
//	├── child1
//	│   └── subchild1
//	│       └── subsubchild1
//	├── child2
//	└── child3
var walkTree *Node[string]

func init() {
	walkTree = New("root")
	walkTree.NewChild("child0")
	child1 := walkTree.NewChild("child1")
	subchild1 := child1.NewChild("subchild1")
	subchild1.NewChild("subsubchild1")
	walkTree.NewChild("child2")
	walkTree.NewChild("child3")
}

func TestWalkDown(t *testing.T) {
	var res []string
	walkTree.WalkDown(func(n *Node[string]) bool {
		res = append(res, n.Path())
		return Continue
	})
	assert.Equal(t, []string{"/root", "/root/child0", "/root/child1", "/root/child1/subchild1", "/root/child1/subchild1/subsubchild1", "/root/child2", "/root/child3"}, res)
}

func TestWalkDownBreak(t *testing.T) {
	var res []string
	walkTree.WalkDown(func(n *Node[string]) bool {
		res = append(res, n.Value)
		if n.Value == "child1" {
			return Break // prunes the branch, siblings still visited
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2", "child3"}, res)
}

func TestWalkDownPost(t *testing.T) {
	var res []string
	walkTree.WalkDownPost(func(n *Node[string]) bool {
		return Continue
	}, func(n *Node[string]) bool {
		res = append(res, n.Value)
		return Continue
	})
	assert.Equal(t, []string{"child0", "subsubchild1", "subchild1", "child1", "child2", "child3", "root"}, res)
}

func TestWalkDownPostShouldContinue(t *testing.T) {
	// Break from shouldContinue skips the children, not the node itself.
	var res []string
	walkTree.WalkDownPost(func(n *Node[string]) bool {
		return n.Value != "child1"
	}, func(n *Node[string]) bool {
		res = append(res, n.Value)
		return Continue
	})
	assert.Equal(t, []string{"child0", "child1", "child2", "child3", "root"}, res)
}

func TestWalkDownBreadth(t *testing.T) {
	var res []string
	walkTree.WalkDownBreadth(func(n *Node[string]) bool {
		res = append(res, n.Value)
		return Continue
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2", "child3", "subchild1", "subsubchild1"}, res)
}

func TestWalkUp(t *testing.T) {
	deep := walkTree.Find("subsubchild1")
	var res []string
	finished := deep.WalkUp(func(n *Node[string]) bool {
		res = append(res, n.Value)
		return Continue
	})
	assert.True(t, finished)
	assert.Equal(t, []string{"subsubchild1", "subchild1", "child1", "root"}, res)

	finished = deep.WalkUp(func(n *Node[string]) bool {
		res = append(res, n.Value)
		return Break
	})
	assert.False(t, finished)
}

func TestWalkRestartable(t *testing.T) {
	count := func() int {
		n := 0
		walkTree.WalkDown(func(*Node[string]) bool {
			n++
			return Continue
		})
		return n
	}
	assert.Equal(t, 7, count())
	assert.Equal(t, 7, count()) // walks have no lasting state
}
