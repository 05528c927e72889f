// Copyright (c) 2025, The navtree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package navtree

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot files use a plain document form of the tree: every node is
// an object with a value, an optional active flag, and an optional
// children list. The active flag on a child marks it as its parent's
// active child; at most one child per node may carry it.

// nodeDoc is the document form of one node.
type nodeDoc[T comparable] struct {
	Value    T            `json:"value" yaml:"value"`
	Active   bool         `json:"active,omitempty" yaml:"active,omitempty"`
	Children []nodeDoc[T] `json:"children,omitempty" yaml:"children,omitempty"`
}

// doc converts the subtree rooted at this node to document form.
func (n *Node[T]) doc() nodeDoc[T] {
	d := nodeDoc[T]{Value: n.Value}
	for _, kid := range n.children {
		kd := kid.doc()
		kd.Active = n.active == kid
		d.Children = append(d.Children, kd)
	}
	return d
}

// tree converts a document back to a tree, linking parents and
// restoring active-child selections. It returns an error if a node
// marks more than one child as active.
func (d *nodeDoc[T]) tree() (*Node[T], error) {
	n := New(d.Value)
	for i := range d.Children {
		kd := &d.Children[i]
		kid, err := kd.tree()
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, kid)
		kid.parent = n
		if kd.Active {
			if n.active != nil {
				return nil, fmt.Errorf("navtree: node %q has multiple active children", n.Path())
			}
			n.active = kid
		}
	}
	return n, nil
}

// WriteJSON writes the subtree rooted at this node to the given writer
// as indented JSON in document form.
func (n *Node[T]) WriteJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(n.doc())
}

// SaveJSON saves the subtree rooted at this node to the given filename
// as indented JSON in document form.
func (n *Node[T]) SaveJSON(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := n.WriteJSON(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadJSON reads a tree in JSON document form from the given reader.
func ReadJSON[T comparable](r io.Reader) (*Node[T], error) {
	var d nodeDoc[T]
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("navtree: decoding JSON tree: %w", err)
	}
	return d.tree()
}

// OpenJSON reads a tree in JSON document form from the given filename.
func OpenJSON[T comparable](filename string) (*Node[T], error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadJSON[T](bufio.NewReader(fp))
}

// WriteYAML writes the subtree rooted at this node to the given writer
// as YAML in document form.
func (n *Node[T]) WriteYAML(w io.Writer) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(n.doc()); err != nil {
		return err
	}
	return e.Close()
}

// SaveYAML saves the subtree rooted at this node to the given filename
// as YAML in document form.
func (n *Node[T]) SaveYAML(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := n.WriteYAML(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadYAML reads a tree in YAML document form from the given reader.
func ReadYAML[T comparable](r io.Reader) (*Node[T], error) {
	var d nodeDoc[T]
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("navtree: decoding YAML tree: %w", err)
	}
	return d.tree()
}

// OpenYAML reads a tree in YAML document form from the given filename.
func OpenYAML[T comparable](filename string) (*Node[T], error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadYAML[T](bufio.NewReader(fp))
}
