// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package navtree provides the ordered, rooted tree that backs a
// declarative navigation state. Each [Node] holds an application-defined
// value, a back-reference to its parent, an ordered list of children,
// and an optional active child marking the currently selected
// destination. Sibling order is semantically meaningful: it encodes the
// stack / display order of the destinations under one parent.
//
// Nodes in different snapshots of the same navigation state correspond
// to each other through value equality, never through pointer identity,
// so values must be unique within one tree. The diff package depends
// on this correspondence to reconcile two snapshots into stack actions.
package navtree

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Node is one navigable destination in a navigation tree.
//
// Construct nodes with [New], [Node.NewChild], [Node.AddChild], or
// [Node.InsertChild] so that parent links are maintained. The parent
// link is non-owning: children are owned by their parent's children
// list only.
type Node[T comparable] struct {

	// Value identifies this destination. Two nodes in different
	// snapshots are the same destination iff their values are equal,
	// so values must be unique within one tree.
	Value T

	parent   *Node[T]
	children []*Node[T]
	active   *Node[T]
}

// New returns a new root node holding the given value.
func New[T comparable](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// String implements [fmt.Stringer] by returning the path of the node.
func (n *Node[T]) String() string {
	if n == nil {
		return "nil"
	}
	return n.Path()
}

// Parents:

// Parent returns the parent of this node, or nil for a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// IsRoot reports whether this node has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// Root returns the root node of this node's tree.
func (n *Node[T]) Root() *Node[T] {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// IndexInParent returns our index within our parent node,
// or -1 if we don't have a parent.
func (n *Node[T]) IndexInParent() int {
	if n.parent == nil {
		return -1
	}
	return slices.Index(n.parent.children, n)
}

// Children:

// Children returns the ordered children of this node. The returned
// slice is the node's own list; callers must not modify it directly
// and should use the child helper methods instead.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// HasChildren returns whether this node has any children.
func (n *Node[T]) HasChildren() bool {
	return len(n.children) > 0
}

// NumChildren returns the number of children this node has.
func (n *Node[T]) NumChildren() int {
	return len(n.children)
}

// Child returns the child of this node at the given index and returns
// nil if the index is out of range.
func (n *Node[T]) Child(i int) *Node[T] {
	if i >= len(n.children) || i < 0 {
		return nil
	}
	return n.children[i]
}

// ChildByValue returns the direct child holding the given value,
// or nil if there is none.
func (n *Node[T]) ChildByValue(value T) *Node[T] {
	for _, c := range n.children {
		if c.Value == value {
			return c
		}
	}
	return nil
}

// AddChild adds the given child at the end of the children list.
// The child is assumed to not be on another tree; its existing parent
// link is overwritten.
func (n *Node[T]) AddChild(kid *Node[T]) {
	if kid.parent != nil {
		slog.Error("navtree.Node.AddChild: child already has a parent", "child", kid.Path())
	}
	n.children = append(n.children, kid)
	kid.parent = n
}

// NewChild creates a new node holding the given value and adds it at
// the end of the children list, returning the new node.
func (n *Node[T]) NewChild(value T) *Node[T] {
	kid := New(value)
	n.children = append(n.children, kid)
	kid.parent = n
	return kid
}

// InsertChild adds the given child at the given position in the
// children list. The child is assumed to not be on another tree.
func (n *Node[T]) InsertChild(kid *Node[T], i int) {
	if kid.parent != nil {
		slog.Error("navtree.Node.InsertChild: child already has a parent", "child", kid.Path())
	}
	n.children = slices.Insert(n.children, i, kid)
	kid.parent = n
}

// DeleteChildAt deletes the child at the given index, returning false
// if there is no child at that index. If the deleted child was the
// active child, the selection is cleared.
func (n *Node[T]) DeleteChildAt(i int) bool {
	kid := n.Child(i)
	if kid == nil {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	if n.active == kid {
		n.active = nil
	}
	kid.parent = nil
	return true
}

// DeleteChild deletes the given child node, returning false if it can
// not find it.
func (n *Node[T]) DeleteChild(kid *Node[T]) bool {
	if kid == nil {
		return false
	}
	i := slices.Index(n.children, kid)
	if i < 0 {
		return false
	}
	return n.DeleteChildAt(i)
}

// Delete removes this node from its parent's children list.
// It does nothing on a root node.
func (n *Node[T]) Delete() {
	if n.parent == nil {
		return
	}
	n.parent.DeleteChild(n)
}

// Active child:

// ActiveChild returns the currently selected child of this node,
// or nil if there is no selection.
func (n *Node[T]) ActiveChild() *Node[T] {
	return n.active
}

// SetActiveChild marks the given child as the currently selected one.
// Passing nil clears the selection. The node must be one of our
// children; anything else is a state-management bug, which is logged
// and ignored.
func (n *Node[T]) SetActiveChild(kid *Node[T]) {
	if kid == nil {
		n.active = nil
		return
	}
	if !slices.Contains(n.children, kid) {
		slog.Error("navtree.Node.SetActiveChild: node is not a child", "node", n.Path(), "child", kid.Value)
		return
	}
	n.active = kid
}

// Lookup:

// Find returns the first node in the subtree rooted at this node whose
// value equals the given value, in pre-order, or nil if there is none.
// Given unique values within the tree, the result is unique.
func (n *Node[T]) Find(value T) *Node[T] {
	var found *Node[T]
	n.WalkDown(func(k *Node[T]) bool {
		if found != nil {
			return Break
		}
		if k.Value == value {
			found = k
			return Break
		}
		return Continue
	})
	return found
}

// Contains reports whether any node in the subtree rooted at this node
// holds the given value.
func (n *Node[T]) Contains(value T) bool {
	return n.Find(value) != nil
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns a name that replaces any \\ with /
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the path to this node from the tree root, rendering
// each value with %v, separated by / delimiters. Any existing /
// characters in rendered values are escaped to \\
func (n *Node[T]) Path() string {
	if n.parent != nil {
		return n.parent.Path() + "/" + EscapePathName(fmt.Sprintf("%v", n.Value))
	}
	return "/" + EscapePathName(fmt.Sprintf("%v", n.Value))
}

// PathFrom returns the path to this node from the given parent node.
// The path excludes the name of the parent and the leading slash;
// for example, in the tree a/b/c/d/e, the result of d.PathFrom(b)
// would be c/d.
func (n *Node[T]) PathFrom(parent *Node[T]) string {
	if n == parent {
		return ""
	}
	if n.parent == nil || n.parent == parent {
		return EscapePathName(fmt.Sprintf("%v", n.Value))
	}
	return n.parent.PathFrom(parent) + "/" + EscapePathName(fmt.Sprintf("%v", n.Value))
}
