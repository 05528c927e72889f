// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"fmt"
	"strings"

	"github.com/navroute/navtree"
)

// Action is one structural or selection change between two navigation
// tree snapshots. It is a closed set: the only implementations are
// [Push], [Pop], [Changed], [ChangedActiveChild], and
// [SelectedActiveChild], so consumers can dispatch with an exhaustive
// type switch instead of inspecting runtime types of open action sets.
//
// Actions borrow node pointers from the input snapshots; they remain
// valid only as long as the caller keeps the corresponding snapshot
// alive and unmutated.
type Action[T comparable] interface {
	fmt.Stringer

	// action seals the set of implementations.
	action()
}

// Push is the addition of a single node under one parent with no
// compensating removal on that parent.
type Push[T comparable] struct {
	Node *navtree.Node[T]
}

// Pop is the removal of a single node from one parent with no
// compensating addition on that parent.
type Pop[T comparable] struct {
	Node *navtree.Node[T]
}

// Changed is a composite replacement of children under one parent,
// to be applied atomically (as a single stack splice) rather than as a
// sequence of single pushes and pops.
type Changed[T comparable] struct {

	// Popped lists the removed children, deepest first. It is empty
	// for a push-only composite.
	Popped []*navtree.Node[T]

	// Pushed is the parent's full current children list, in final
	// sibling order, not just the newly added nodes. It is empty for
	// a pop-only composite.
	Pushed []*navtree.Node[T]
}

// ChangedActiveChild reports that the active-child selection under some
// node differs between the snapshots; Child is the newly selected one.
type ChangedActiveChild[T comparable] struct {
	Child *navtree.Node[T]
}

// SelectedActiveChild reports that the active-child selection under
// some node is unchanged but reaffirmed, which lets consumers
// re-trigger display logic without restructuring.
type SelectedActiveChild[T comparable] struct {
	Child *navtree.Node[T]
}

func (a Push[T]) action()                {}
func (a Pop[T]) action()                 {}
func (a Changed[T]) action()             {}
func (a ChangedActiveChild[T]) action()  {}
func (a SelectedActiveChild[T]) action() {}

func (a Push[T]) String() string {
	return fmt.Sprintf("push %v", a.Node.Value)
}

func (a Pop[T]) String() string {
	return fmt.Sprintf("pop %v", a.Node.Value)
}

func (a Changed[T]) String() string {
	return "changed -" + values(a.Popped) + " +" + values(a.Pushed)
}

func (a ChangedActiveChild[T]) String() string {
	return fmt.Sprintf("changed active child %v", a.Child.Value)
}

func (a SelectedActiveChild[T]) String() string {
	return fmt.Sprintf("selected active child %v", a.Child.Value)
}

// values renders the values of the given nodes as a bracketed list.
func values[T comparable](nodes []*navtree.Node[T]) string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, n := range nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.Value)
	}
	b.WriteByte(']')
	return b.String()
}
