// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package navtree

// This file provides the tree walking functions. Children are always
// visited in their stored order, which is what gives the diff package
// its ordering guarantees.

const (
	// Continue = true can be returned from tree walking functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree walking functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents,
// sequentially in the current goroutine. It stops walking if the
// function returns [Break] and keeps walking if it returns [Continue].
// It returns whether walking was finished (false if it was aborted
// with [Break]).
func (n *Node[T]) WalkUp(fun func(n *Node[T]) bool) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first pre-order manner (node before children), sequentially
// in the current goroutine. It stops walking the current branch of the
// tree if the function returns [Break] and keeps walking if it returns
// [Continue]. The walk has no side effects beyond calling the function;
// it can be restarted at any time and must not be used while the tree
// is being mutated elsewhere.
func (n *Node[T]) WalkDown(fun func(n *Node[T]) bool) {
	if n == nil {
		return
	}
	if !fun(n) {
		return
	}
	for _, kid := range n.children {
		kid.WalkDown(fun)
	}
}

// WalkDownPost iterates in a depth-first manner over the children,
// calling shouldContinue on each node to test if processing should
// proceed into its children (if it returns [Break] then that branch of
// the tree is not further processed), and then calls the given function
// after all of a node's children have been iterated over (children
// before node). In effect, this means that the given function is called
// for deeper nodes first.
func (n *Node[T]) WalkDownPost(shouldContinue func(n *Node[T]) bool, fun func(n *Node[T]) bool) {
	if n == nil {
		return
	}
	if shouldContinue(n) {
		for _, kid := range n.children {
			kid.WalkDownPost(shouldContinue, fun)
		}
	}
	fun(n)
}

// WalkDownBreadth calls the given function on the node and all of its
// children in breadth-first order. It stops walking the current branch
// of the tree if the function returns [Break] and keeps walking if it
// returns [Continue].
func (n *Node[T]) WalkDownBreadth(fun func(n *Node[T]) bool) {
	queue := []*Node[T]{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !fun(cur) {
			continue
		}
		queue = append(queue, cur.children...)
	}
}
