// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package mbtree

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"
)

// bound is an optional exclusive key bound inherited from an ancestor.
type bound[K any] struct {
	key K
	set bool
}

type verifyFrame[K any] struct {
	id     nodeID
	parent nodeID
	depth  int
	lo, hi bound[K]
}

// CheckInvariants verifies the structural invariants of the tree:
//
//   - keys within a node are strictly increasing,
//   - every key lies strictly between the keys that bracket its subtree in
//     the ancestors,
//   - internal nodes have one more child than keys,
//   - every node holds between 1 and MaxKeys keys,
//   - all leaves are at the same depth,
//   - every node's parent handle names the node that links to it, and every
//     allocated node is reachable from the root exactly once.
//
// It returns an assertion failure describing the first violation found.
func (t *Tree[K]) CheckInvariants() error {
	if t.root == noNode {
		if t.length != 0 || t.arena.len() != 0 {
			return errors.AssertionFailedf("mbtree: empty tree has %d keys and %d nodes",
				t.length, t.arena.len())
		}
		return nil
	}

	visited := swiss.New[nodeID, struct{}](t.arena.len())
	stack := []verifyFrame[K]{{id: t.root, parent: noNode, depth: 1}}
	leafDepth := 0
	keys := 0
	maxKeys := t.MaxKeys()
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited.Get(f.id); ok {
			return errors.AssertionFailedf("mbtree: node %d reachable more than once", f.id)
		}
		visited.Put(f.id, struct{}{})

		n := t.arena.get(f.id)
		if n.parent != f.parent {
			return errors.AssertionFailedf("mbtree: node %d has parent %d, linked from %d",
				f.id, n.parent, f.parent)
		}
		if len(n.keys) == 0 || len(n.keys) > maxKeys {
			return errors.AssertionFailedf("mbtree: node %d has %d keys, must be in [1, %d]",
				f.id, len(n.keys), maxKeys)
		}
		for i := 1; i < len(n.keys); i++ {
			if t.cmp(n.keys[i-1], n.keys[i]) >= 0 {
				return errors.AssertionFailedf("mbtree: node %d keys are not sorted @ %d: %v >= %v",
					f.id, i, n.keys[i-1], n.keys[i])
			}
		}
		if f.lo.set && t.cmp(n.keys[0], f.lo.key) <= 0 {
			return errors.AssertionFailedf("mbtree: node %d key %v <= ancestor key %v",
				f.id, n.keys[0], f.lo.key)
		}
		if last := n.keys[len(n.keys)-1]; f.hi.set && t.cmp(last, f.hi.key) >= 0 {
			return errors.AssertionFailedf("mbtree: node %d key %v >= ancestor key %v",
				f.id, last, f.hi.key)
		}
		keys += len(n.keys)

		if n.leaf {
			if len(n.children) != 0 {
				return errors.AssertionFailedf("mbtree: leaf %d has %d children", f.id, len(n.children))
			}
			if leafDepth == 0 {
				leafDepth = f.depth
			} else if leafDepth != f.depth {
				return errors.AssertionFailedf("mbtree: leaf %d at depth %d, expected %d",
					f.id, f.depth, leafDepth)
			}
			continue
		}

		if len(n.children) != len(n.keys)+1 {
			return errors.AssertionFailedf("mbtree: node %d has %d keys and %d children",
				f.id, len(n.keys), len(n.children))
		}
		for i, c := range n.children {
			if c == noNode || int(c) > t.arena.len() {
				return errors.AssertionFailedf("mbtree: node %d child %d is invalid handle %d", f.id, i, c)
			}
			child := verifyFrame[K]{id: c, parent: f.id, depth: f.depth + 1, lo: f.lo, hi: f.hi}
			if i > 0 {
				child.lo = bound[K]{key: n.keys[i-1], set: true}
			}
			if i < len(n.keys) {
				child.hi = bound[K]{key: n.keys[i], set: true}
			}
			stack = append(stack, child)
		}
	}

	if visited.Len() != t.arena.len() {
		return errors.AssertionFailedf("mbtree: %d of %d nodes reachable from the root",
			visited.Len(), t.arena.len())
	}
	if keys != t.length {
		return errors.AssertionFailedf("mbtree: found %d keys, expected %d", keys, t.length)
	}
	return nil
}
