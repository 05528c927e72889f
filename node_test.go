// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package navtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/navroute/navtree"
)

func TestNodeNewChild(t *testing.T) {
	root := New("root")
	child := root.NewChild("child1")
	assert.Equal(t, 1, root.NumChildren())
	assert.Equal(t, root, child.Parent())
	assert.Equal(t, "/root/child1", child.Path())
}

func TestNodeAddChild(t *testing.T) {
	root := New("root")
	child := New("child1")
	root.AddChild(child)
	assert.Equal(t, []*Node[string]{child}, root.Children())
	assert.Equal(t, root, child.Parent())
	assert.True(t, root.IsRoot())
	assert.False(t, child.IsRoot())
}

func TestNodeInsertChild(t *testing.T) {
	root := New("root")
	root.NewChild("a")
	root.NewChild("c")
	b := New("b")
	root.InsertChild(b, 1)
	assert.Equal(t, 3, root.NumChildren())
	assert.Equal(t, b, root.Child(1))
	assert.Equal(t, 1, b.IndexInParent())
}

func TestNodeChildOutOfRange(t *testing.T) {
	root := New("root")
	root.NewChild("a")
	assert.Nil(t, root.Child(-1))
	assert.Nil(t, root.Child(1))
}

func TestNodeRoot(t *testing.T) {
	a := New("a")
	b := a.NewChild("b")
	c := b.NewChild("c")
	assert.Equal(t, a, c.Root())
	assert.Equal(t, a, a.Root())
	assert.Equal(t, -1, a.IndexInParent())
	assert.Equal(t, 0, c.IndexInParent())
}

func TestNodeFind(t *testing.T) {
	a := New("a")
	b := a.NewChild("b")
	c := b.NewChild("c")
	d := a.NewChild("d")

	assert.Equal(t, c, a.Find("c"))
	assert.Equal(t, d, a.Find("d"))
	assert.Equal(t, a, a.Find("a"))
	assert.Nil(t, a.Find("missing"))
	assert.Nil(t, b.Find("d")) // not in this subtree

	assert.True(t, a.Contains("c"))
	assert.False(t, a.Contains("missing"))
}

func TestNodeFindFirstMatchWins(t *testing.T) {
	// Duplicate values break the uniqueness precondition; Find must
	// still return the first pre-order match without failing.
	a := New("a")
	b := a.NewChild("b")
	dup1 := b.NewChild("dup")
	c := a.NewChild("c")
	c.NewChild("dup")
	assert.Equal(t, dup1, a.Find("dup"))
}

func TestNodeChildByValue(t *testing.T) {
	a := New("a")
	b := a.NewChild("b")
	b.NewChild("deep")
	assert.Equal(t, b, a.ChildByValue("b"))
	assert.Nil(t, a.ChildByValue("deep")) // direct children only
}

func TestNodeDeleteChild(t *testing.T) {
	root := New("root")
	b := root.NewChild("b")
	c := root.NewChild("c")
	require.True(t, root.DeleteChild(b))
	assert.Equal(t, []*Node[string]{c}, root.Children())
	assert.Nil(t, b.Parent())
	assert.False(t, root.DeleteChild(b))
	assert.False(t, root.DeleteChild(nil))
}

func TestNodeDelete(t *testing.T) {
	root := New("root")
	b := root.NewChild("b")
	b.Delete()
	assert.Equal(t, 0, root.NumChildren())
	root.Delete() // no-op on a root
	assert.Equal(t, "root", root.Value)
}

func TestNodeActiveChild(t *testing.T) {
	root := New("root")
	b := root.NewChild("b")
	c := root.NewChild("c")

	assert.Nil(t, root.ActiveChild())
	root.SetActiveChild(b)
	assert.Equal(t, b, root.ActiveChild())
	root.SetActiveChild(c)
	assert.Equal(t, c, root.ActiveChild())
	root.SetActiveChild(nil)
	assert.Nil(t, root.ActiveChild())
}

func TestNodeSetActiveChildNotAChild(t *testing.T) {
	root := New("root")
	b := root.NewChild("b")
	root.SetActiveChild(b)
	stranger := New("stranger")
	root.SetActiveChild(stranger) // logged and ignored
	assert.Equal(t, b, root.ActiveChild())
}

func TestNodeDeleteActiveChildClearsSelection(t *testing.T) {
	root := New("root")
	b := root.NewChild("b")
	root.SetActiveChild(b)
	require.True(t, root.DeleteChild(b))
	assert.Nil(t, root.ActiveChild())
}

func TestNodePathEscape(t *testing.T) {
	root := New("par1")
	child := root.NewChild("child1/child1")
	assert.Equal(t, `/par1/child1\\child1`, child.Path())
	assert.Equal(t, "child1/child1", UnescapePathName(EscapePathName("child1/child1")))
}

func TestNodePathFrom(t *testing.T) {
	a := New("a")
	b := a.NewChild("b")
	c := b.NewChild("c")
	d := c.NewChild("d")
	assert.Equal(t, "c/d", d.PathFrom(b))
	assert.Equal(t, "", b.PathFrom(b))
}

func TestNodeString(t *testing.T) {
	var nilNode *Node[string]
	assert.Equal(t, "nil", nilNode.String())
	a := New("a")
	b := a.NewChild("b")
	assert.Equal(t, "/a/b", b.String())
}

func TestNodeClone(t *testing.T) {
	a := New("a")
	b := a.NewChild("b")
	c := b.NewChild("c")
	d := a.NewChild("d")
	a.SetActiveChild(b)
	b.SetActiveChild(c)

	nc := a.Clone()
	require.NotSame(t, a, nc)
	assert.Nil(t, nc.Parent())
	assert.Equal(t, "a", nc.Value)
	require.Equal(t, 2, nc.NumChildren())
	assert.Equal(t, "b", nc.Child(0).Value)
	assert.Equal(t, "d", nc.Child(1).Value)
	assert.NotSame(t, b, nc.Child(0))
	assert.NotSame(t, d, nc.Child(1))

	// active-child selections map onto the cloned nodes
	assert.Same(t, nc.Child(0), nc.ActiveChild())
	assert.Same(t, nc.Child(0).Child(0), nc.Child(0).ActiveChild())

	// mutating the clone leaves the original alone
	nc.Child(0).NewChild("extra")
	assert.Equal(t, 1, b.NumChildren())
}
