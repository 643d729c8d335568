// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/mbtree/internal/ascii"
	"github.com/cockroachdb/redact"
)

// String renders the shape of the tree, for example
//
//	{keys:[4] children:[{keys:[2]} {keys:[7]}]}
//
// An empty tree is rendered as {}.
func (t *Tree[K]) String() string {
	return redact.StringWithoutMarkers(t)
}

// SafeFormat implements redact.SafeFormatter. Keys are treated as unsafe
// values.
func (t *Tree[K]) SafeFormat(w redact.SafePrinter, _ rune) {
	if t.root == noNode {
		w.SafeString("{}")
		return
	}
	t.formatNode(w, t.root)
}

func (t *Tree[K]) formatNode(w redact.SafePrinter, id nodeID) {
	n := t.arena.get(id)
	w.SafeString("{keys:[")
	for i, k := range n.keys {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Print(k)
	}
	w.SafeRune(']')
	if !n.leaf {
		w.SafeString(" children:[")
		for i, c := range n.children {
			if i > 0 {
				w.SafeRune(' ')
			}
			t.formatNode(w, c)
		}
		w.SafeRune(']')
	}
	w.SafeRune('}')
}

// Pretty renders the tree with one node per line, children indented below
// their parent:
//
//	[3 9]
//	  [1 2]
//	  [5]
//	  [13 21]
func (t *Tree[K]) Pretty() string {
	if t.root == noNode {
		return "<empty>\n"
	}
	var buf strings.Builder
	t.Walk(func(depth int, keys []K, leaf bool) {
		fmt.Fprintf(&buf, "%s%v\n", strings.Repeat("  ", depth-1), keys)
	})
	return buf.String()
}

// Walk calls fn for every node of the tree in depth-first, left-to-right
// order, passing the node's depth (the root is at depth 1), its keys and
// whether it is a leaf. The keys slice must not be retained or modified.
func (t *Tree[K]) Walk(fn func(depth int, keys []K, leaf bool)) {
	t.walkNodes(func(id nodeID, depth int) {
		n := t.arena.get(id)
		fn(depth, n.keys, n.leaf)
	})
}

// walkNodes visits the nodes in pre-order: every node before its
// descendants, siblings left to right.
func (t *Tree[K]) walkNodes(fn func(id nodeID, depth int)) {
	if t.root == noNode {
		return
	}
	type frame struct {
		id    nodeID
		depth int
	}
	stack := []frame{{id: t.root, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(f.id, f.depth)
		n := t.arena.get(f.id)
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: n.children[i], depth: f.depth + 1})
		}
	}
}

// diagramNode is the placement of a node in a Diagram.
type diagramNode struct {
	label string
	// width is the number of columns taken by the node's subtree.
	width int
	// left is the first column of the node's subtree.
	left int
}

// labelStart returns the column of the first rune of the label, which is
// centered over the subtree.
func (d *diagramNode) labelStart() int {
	return d.left + (d.width-utf8.RuneCountInString(d.label))/2
}

func (d *diagramNode) center() int {
	return d.labelStart() + utf8.RuneCountInString(d.label)/2
}

// Diagram draws the tree one level per line, with every node centered over
// its children and a connector line between levels:
//
//	      [3 9]
//	  +----++----+
//	[1 2] [5] [13 21]
func (t *Tree[K]) Diagram() string {
	if t.root == noNode {
		return "<empty>\n"
	}

	const gap = 1
	nodes := make([]diagramNode, t.arena.len()+1)
	childrenWidth := func(n *node[K]) int {
		w := 0
		for i, c := range n.children {
			if i > 0 {
				w += gap
			}
			w += nodes[c].width
		}
		return w
	}

	var order []nodeID
	t.walkNodes(func(id nodeID, _ int) { order = append(order, id) })
	// Children precede their parents in reverse pre-order.
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		n := t.arena.get(id)
		d := &nodes[id]
		d.label = fmt.Sprint(n.keys)
		d.width = max(childrenWidth(n), utf8.RuneCountInString(d.label))
	}

	var b ascii.Board
	t.walkNodes(func(id nodeID, depth int) {
		n := t.arena.get(id)
		d := &nodes[id]
		row := 2 * (depth - 1)
		b.Write(row, d.labelStart(), d.label)
		if n.leaf {
			return
		}

		x := d.left + (d.width-childrenWidth(n))/2
		for _, c := range n.children {
			nodes[c].left = x
			x += nodes[c].width + gap
		}
		first, last := nodes[n.children[0]].center(), nodes[n.children[len(n.children)-1]].center()
		b.Repeat(row+1, first, last-first+1, '-')
		b.Set(row+1, d.center(), '+')
		for _, c := range n.children {
			b.Set(row+1, nodes[c].center(), '+')
		}
	})
	return b.String() + "\n"
}
