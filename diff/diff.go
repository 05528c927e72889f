// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff reconciles two snapshots of a navigation tree into a
// minimal, ordered sequence of structural change actions: pushes, pops,
// composite child replacements, and active-child transitions.
//
// The differ is a pure function over the two snapshots: it mutates
// neither tree, holds no state across calls, and may run concurrently
// against distinct tree pairs. The caller must not mutate either input
// tree for the duration of a call; see [navtree.Node.Clone] for the
// snapshot-then-diff discipline.
//
// Output ordering is guaranteed: all pop actions for unrelated subtrees
// come first, then push / composite actions, then active-child actions,
// so removals are always reported before insertions and selection
// notifications arrive after the structural shape has stabilized.
package diff

import (
	"github.com/navroute/navtree"
)

// Diff computes the actions that transform the last snapshot into the
// current one. Either snapshot may be nil: a nil last snapshot pushes
// every node of current, a nil current snapshot pops every node of
// last, and two nil snapshots yield no actions.
//
// Nodes are correlated across the snapshots by value equality, so
// values must be unique within each tree; with duplicate values the
// first match in pre-order wins. Parent grouping within one snapshot
// uses pointer identity; the two equality notions are deliberately
// distinct.
func Diff[T comparable](last, current *navtree.Node[T]) []Action[T] {
	var toPop, toPush []*navtree.Node[T]

	// Removals are gathered in post-order so that children are listed
	// before their ancestors: deeper pops must be applied first.
	if last != nil {
		last.WalkDownPost(keepGoing[T], func(n *navtree.Node[T]) bool {
			if current == nil || !current.Contains(n.Value) {
				toPop = append(toPop, n)
			}
			return navtree.Continue
		})
	}

	// Additions are gathered in pre-order so that parents are listed
	// before their descendants.
	if current != nil {
		current.WalkDown(func(n *navtree.Node[T]) bool {
			if last == nil || !last.Contains(n.Value) {
				toPush = append(toPush, n)
			}
			return navtree.Continue
		})
	}

	// Group the pushes by parent. A lone push with no removals on the
	// same parent stays a plain push; anything else becomes a composite
	// replacement whose pushed list is the parent's full current
	// children list, preserving final sibling order. Pops consumed by a
	// composite must not also produce standalone pop actions.
	var pushActions []Action[T]
	for _, parent := range uniqueParents(toPush) {
		pushes := withParent(toPush, parent)
		pops := withParentValue(toPop, parent)
		if len(pushes) == 1 && len(pops) == 0 {
			pushActions = append(pushActions, Push[T]{Node: pushes[0]})
			continue
		}
		pushed := pushes
		if parent != nil {
			// A pushed root has no parent children list to splice;
			// the pushes themselves already are the full list.
			pushed = parent.Children()
		}
		pushActions = append(pushActions, Changed[T]{Popped: pops, Pushed: pushed})
		toPop = without(toPop, pops)
	}

	// Group the remaining pops by parent: one pop stays plain, several
	// on the same parent collapse into a pop-only composite.
	var popActions []Action[T]
	for _, parent := range uniqueParents(toPop) {
		pops := withParent(toPop, parent)
		if len(pops) == 1 {
			popActions = append(popActions, Pop[T]{Node: pops[0]})
		} else {
			popActions = append(popActions, Changed[T]{Popped: pops})
		}
	}

	actions := make([]Action[T], 0, len(popActions)+len(pushActions))
	actions = append(actions, popActions...)
	actions = append(actions, pushActions...)
	return append(actions, activeChildActions(last, current)...)
}

// activeChildActions correlates active-child selections across the
// snapshots, visiting the current tree in post-order. A node of the
// current tree with no active child produces no action, even when its
// last-snapshot counterpart had one; only present selections are
// reported, as changed when the selection differs (absence in the last
// snapshot counts as different) or as selected when it is reaffirmed.
func activeChildActions[T comparable](last, current *navtree.Node[T]) []Action[T] {
	var actions []Action[T]
	if current == nil {
		return nil
	}
	current.WalkDownPost(keepGoing[T], func(n *navtree.Node[T]) bool {
		active := n.ActiveChild()
		if active == nil {
			return navtree.Continue
		}
		var lastActive *navtree.Node[T]
		if last != nil {
			if m := last.Find(n.Value); m != nil {
				lastActive = m.ActiveChild()
			}
		}
		if lastActive != nil && lastActive.Value == active.Value {
			actions = append(actions, SelectedActiveChild[T]{Child: active})
		} else {
			actions = append(actions, ChangedActiveChild[T]{Child: active})
		}
		return navtree.Continue
	})
	return actions
}

// keepGoing is the shouldContinue function for full post-order walks.
func keepGoing[T comparable](n *navtree.Node[T]) bool {
	return navtree.Continue
}

// uniqueParents returns the parents of the given nodes in
// first-encounter order, deduplicated by pointer identity. A nil
// parent (the node is a root) is a valid entry.
func uniqueParents[T comparable](nodes []*navtree.Node[T]) []*navtree.Node[T] {
	var parents []*navtree.Node[T]
	seen := map[*navtree.Node[T]]bool{}
	for _, n := range nodes {
		p := n.Parent()
		if !seen[p] {
			seen[p] = true
			parents = append(parents, p)
		}
	}
	return parents
}

// withParent returns the nodes whose parent is the given node, by
// pointer identity. All candidates live in the same snapshot as the
// parent here, so identity is the right relation.
func withParent[T comparable](nodes []*navtree.Node[T], parent *navtree.Node[T]) []*navtree.Node[T] {
	var out []*navtree.Node[T]
	for _, n := range nodes {
		if n.Parent() == parent {
			out = append(out, n)
		}
	}
	return out
}

// withParentValue returns the nodes whose parent corresponds to the
// given node by value. The candidates live in the last snapshot while
// the parent lives in the current one, so correspondence must go
// through value equality; a nil parent matches only nodes that are
// themselves roots.
func withParentValue[T comparable](nodes []*navtree.Node[T], parent *navtree.Node[T]) []*navtree.Node[T] {
	var out []*navtree.Node[T]
	for _, n := range nodes {
		np := n.Parent()
		if parent == nil {
			if np == nil {
				out = append(out, n)
			}
			continue
		}
		if np != nil && np.Value == parent.Value {
			out = append(out, n)
		}
	}
	return out
}

// without returns the nodes not contained in the given exclusion list,
// compared by pointer identity, preserving order.
func without[T comparable](nodes, exclude []*navtree.Node[T]) []*navtree.Node[T] {
	if len(exclude) == 0 {
		return nodes
	}
	ex := make(map[*navtree.Node[T]]bool, len(exclude))
	for _, n := range exclude {
		ex[n] = true
	}
	var out []*navtree.Node[T]
	for _, n := range nodes {
		if !ex[n] {
			out = append(out, n)
		}
	}
	return out
}
